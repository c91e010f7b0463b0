// Package tui provides the console presentation layer: a reporter that
// renders engine events and a Bubble Tea prompt for per-pair confirmation.
package tui

import (
	"fmt"
	"io"

	"github.com/robby/glassign/internal/reconcile"
)

// ConsoleReporter renders reconciliation events as styled console lines.
// It is the only place run output is formatted; the engine itself never
// touches the terminal.
type ConsoleReporter struct {
	w       io.Writer
	verbose bool
}

// NewConsoleReporter creates a reporter writing to w. When verbose is set,
// unmatched destination issues are listed individually instead of only
// counted.
func NewConsoleReporter(w io.Writer, verbose bool) *ConsoleReporter {
	return &ConsoleReporter{w: w, verbose: verbose}
}

// Publish renders one event.
func (r *ConsoleReporter) Publish(e reconcile.Event) {
	switch ev := e.(type) {
	case reconcile.UserResolvedEvent:
		fmt.Fprintln(r.w, InfoStyle.Render(fmt.Sprintf(
			"User id found in %s for %s is %d (%s)", ev.Side, ev.Username, ev.User.ID, ev.User.Name)))
	case reconcile.UserNotFoundEvent:
		fmt.Fprintln(r.w, WarnStyle.Render(fmt.Sprintf(
			"No user named %q on %s instance", ev.Username, ev.Side)))
	case reconcile.ProjectsListedEvent:
		fmt.Fprintln(r.w, InfoStyle.Render(fmt.Sprintf(
			"Retrieved %d projects from %s", ev.Count, ev.Side)))
	case reconcile.IssuesHarvestedEvent:
		fmt.Fprintln(r.w, InfoStyle.Render(fmt.Sprintf(
			"Total retrieved issues from %s: %d", ev.Side, ev.Count)))
	case reconcile.PairMatchedEvent:
		fmt.Fprintln(r.w, MatchStyle.Render(fmt.Sprintf(
			"Found matching issue %s : %s in source", ev.Pair.Source.ShortRef(), ev.Pair.Source.Title)))
		fmt.Fprintln(r.w, MatchStyle.Render(fmt.Sprintf(
			"Which matches issue %s : %s in destination", ev.Pair.Dest.ShortRef(), ev.Pair.Dest.Title)))
	case reconcile.PairSkippedEvent:
		fmt.Fprintln(r.w, DimStyle.Render(fmt.Sprintf(
			"Skipped %s", ev.Pair.Dest.ShortRef())))
	case reconcile.IssueReassignedEvent:
		suffix := ""
		if ev.Verified {
			suffix = " (verified)"
		}
		fmt.Fprintln(r.w, InfoStyle.Render(fmt.Sprintf(
			"Reassigned %s to user %d%s", ev.Pair.Dest.ShortRef(), ev.AssigneeID, suffix)))
	case reconcile.UnmatchedDestEvent:
		fmt.Fprintln(r.w, DimStyle.Render(fmt.Sprintf(
			"%d destination issues had no matching source issue", len(ev.Issues))))
		if r.verbose {
			for _, pi := range ev.Issues {
				fmt.Fprintln(r.w, DimStyle.Render(fmt.Sprintf(
					"  unmatched %s : %s", pi.Issue.ShortRef(), pi.Issue.Title)))
			}
		}
	case reconcile.SummaryEvent:
		fmt.Fprintln(r.w, DoneStyle.Render(fmt.Sprintf(
			"Done! matched=%d reassigned=%d skipped=%d unmatched=%d",
			ev.Matched, ev.Reassigned, ev.Skipped, ev.Unmatched)))
	}
}
