package reconcile

import "github.com/robby/glassign/internal/domain"

// Side identifies which instance an event refers to.
type Side string

const (
	SideSource Side = "source"
	SideDest   Side = "destination"
)

// Event is a progress notification emitted by the engine.
// The engine never writes to the console itself; a Reporter implementation
// decides how (and whether) each event is rendered.
type Event interface {
	event()
}

// Reporter consumes engine events.
type Reporter interface {
	Publish(Event)
}

// UserResolvedEvent is emitted when a username resolves to a user record.
type UserResolvedEvent struct {
	Side     Side
	Username string
	User     domain.User
}

// UserNotFoundEvent is emitted when a username matches no user on the
// instance.
type UserNotFoundEvent struct {
	Side     Side
	Username string
}

// ProjectsListedEvent is emitted after the membership projects of one
// instance have been listed.
type ProjectsListedEvent struct {
	Side  Side
	Count int
}

// IssuesHarvestedEvent is emitted after every project of one instance has
// been harvested. Count is the total across all projects.
type IssuesHarvestedEvent struct {
	Side  Side
	Count int
}

// PairMatchedEvent is emitted for each source/destination pair the matcher
// produced, before the pair is confirmed.
type PairMatchedEvent struct {
	Pair domain.MatchedPair
}

// PairSkippedEvent is emitted when the user declines a pair at the prompt.
type PairSkippedEvent struct {
	Pair domain.MatchedPair
}

// IssueReassignedEvent is emitted after a destination issue has been
// reassigned. Verified reports whether the post-mutation read-back confirmed
// the new assignee.
type IssueReassignedEvent struct {
	Pair       domain.MatchedPair
	AssigneeID int64
	Verified   bool
}

// UnmatchedDestEvent carries the destination issues for which no source
// issue shares a short reference. Purely diagnostic.
type UnmatchedDestEvent struct {
	Issues []domain.ProjectIssue
}

// SummaryEvent is the final event of a completed run.
type SummaryEvent struct {
	Matched    int
	Reassigned int
	Skipped    int
	Unmatched  int
}

func (UserResolvedEvent) event()    {}
func (UserNotFoundEvent) event()    {}
func (ProjectsListedEvent) event()  {}
func (IssuesHarvestedEvent) event() {}
func (PairMatchedEvent) event()     {}
func (PairSkippedEvent) event()     {}
func (IssueReassignedEvent) event() {}
func (UnmatchedDestEvent) event()   {}
func (SummaryEvent) event()         {}
