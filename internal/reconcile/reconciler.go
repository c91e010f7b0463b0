// Package reconcile implements the cross-instance issue reconciliation
// engine: it correlates issues between two GitLab instances by short
// reference and applies confirmation-gated assignee changes on the
// destination side.
package reconcile

import (
	"context"
	"errors"
	"fmt"

	"github.com/robby/glassign/internal/domain"
)

var (
	// ErrUserNotFound indicates a username resolved to no user on the
	// instance it was looked up against.
	ErrUserNotFound = errors.New("user not found")
	// ErrVerificationFailed indicates a reassignment completed at the
	// transport level but the read-back showed a different assignee.
	ErrVerificationFailed = errors.New("assignee verification failed")
	// ErrAborted indicates the user quit at the confirmation prompt.
	ErrAborted = errors.New("aborted by user")
)

// InstanceClient is the view of one GitLab instance the engine depends on.
// *gitlab.Client satisfies it; tests inject fakes.
type InstanceClient interface {
	GetUserByUsername(ctx context.Context, username string) (*domain.User, error)
	ListProjects(ctx context.Context) ([]domain.Project, error)
	ListProjectIssues(ctx context.Context, projectID int64, assignee *domain.User) ([]domain.Issue, error)
	GetIssue(ctx context.Context, projectID, issueIID int64) (*domain.Issue, error)
	UpdateIssueAssignee(ctx context.Context, projectID, issueIID, assigneeID int64) error
}

// Options configures one reconciliation run.
type Options struct {
	// Username is looked up on the source instance and used to filter the
	// source harvest.
	Username string
	// DestUsername, when non-empty, is looked up on the destination
	// instance instead of Username.
	DestUsername string
	// Verify enables the post-mutation read-back of each reassigned issue.
	Verify bool
}

// Reconciler orchestrates one full reconciliation run.
// Execution is strictly sequential; every network call completes before the
// next is issued, and any transport or decode failure aborts the run with
// no rollback of mutations already applied.
type Reconciler struct {
	source   InstanceClient
	dest     InstanceClient
	confirm  Confirmer
	reporter Reporter
	opts     Options
}

// New creates a Reconciler. The reporter may be nil when no progress output
// is wanted.
func New(source, dest InstanceClient, confirm Confirmer, reporter Reporter, opts Options) *Reconciler {
	return &Reconciler{
		source:   source,
		dest:     dest,
		confirm:  confirm,
		reporter: reporter,
		opts:     opts,
	}
}

func (r *Reconciler) publish(e Event) {
	if r.reporter != nil {
		r.reporter.Publish(e)
	}
}

// Run executes the reconciliation state machine:
// resolve source user, harvest source issues (filtered), harvest destination
// issues (unfiltered), resolve destination user, match, then confirm and
// reassign each matched pair in matcher output order.
func (r *Reconciler) Run(ctx context.Context) error {
	srcUser, err := r.source.GetUserByUsername(ctx, r.opts.Username)
	if err != nil {
		return err
	}
	if srcUser == nil {
		r.publish(UserNotFoundEvent{Side: SideSource, Username: r.opts.Username})
		return fmt.Errorf("%w: %q on source instance", ErrUserNotFound, r.opts.Username)
	}
	r.publish(UserResolvedEvent{Side: SideSource, Username: r.opts.Username, User: *srcUser})

	sourceIssues, err := r.harvest(ctx, r.source, SideSource, srcUser)
	if err != nil {
		return err
	}

	destIssues, err := r.harvest(ctx, r.dest, SideDest, nil)
	if err != nil {
		return err
	}

	destUsername := r.opts.Username
	if r.opts.DestUsername != "" {
		destUsername = r.opts.DestUsername
	}
	destUser, err := r.dest.GetUserByUsername(ctx, destUsername)
	if err != nil {
		return err
	}
	if destUser == nil {
		r.publish(UserNotFoundEvent{Side: SideDest, Username: destUsername})
	} else {
		r.publish(UserResolvedEvent{Side: SideDest, Username: destUsername, User: *destUser})
	}

	pairs, unmatched := Match(sourceIssues, destIssues)
	for _, pair := range pairs {
		r.publish(PairMatchedEvent{Pair: pair})
	}
	if len(unmatched) > 0 {
		r.publish(UnmatchedDestEvent{Issues: unmatched})
	}

	if destUser == nil && len(pairs) > 0 {
		return fmt.Errorf("%w: %q on destination instance, cannot reassign %d matched issues", ErrUserNotFound, destUsername, len(pairs))
	}

	reassigned, skipped, err := r.apply(ctx, pairs, destUser)

	r.publish(SummaryEvent{
		Matched:    len(pairs),
		Reassigned: reassigned,
		Skipped:    skipped,
		Unmatched:  len(unmatched),
	})

	return err
}

// harvest lists the membership projects of one instance and retrieves the
// issues of each, optionally filtered by assignee, flattening the results
// into (project id, issue) pairs.
func (r *Reconciler) harvest(ctx context.Context, client InstanceClient, side Side, assignee *domain.User) ([]domain.ProjectIssue, error) {
	projects, err := client.ListProjects(ctx)
	if err != nil {
		return nil, err
	}
	r.publish(ProjectsListedEvent{Side: side, Count: len(projects)})

	var all []domain.ProjectIssue
	for _, p := range projects {
		issues, err := client.ListProjectIssues(ctx, p.ID, assignee)
		if err != nil {
			return nil, err
		}
		for _, issue := range issues {
			all = append(all, domain.ProjectIssue{ProjectID: p.ID, Issue: issue})
		}
	}
	r.publish(IssuesHarvestedEvent{Side: side, Count: len(all)})

	return all, nil
}

// apply runs the confirm/mutate/verify loop over the matched pairs.
// It returns the reassigned and skipped counts alongside the first error;
// pairs reassigned before a failure are not rolled back and pairs after it
// are not attempted.
func (r *Reconciler) apply(ctx context.Context, pairs []domain.MatchedPair, destUser *domain.User) (reassigned, skipped int, err error) {
	confirmAll := false
	for _, pair := range pairs {
		if !confirmAll {
			decision, err := r.confirm.Confirm(pair)
			if err != nil {
				return reassigned, skipped, err
			}
			switch decision {
			case DecisionQuit:
				skipped += r.remaining(pairs, reassigned, skipped)
				return reassigned, skipped, ErrAborted
			case DecisionNo:
				skipped++
				r.publish(PairSkippedEvent{Pair: pair})
				continue
			case DecisionAll:
				confirmAll = true
			}
		}

		if err := r.dest.UpdateIssueAssignee(ctx, pair.DestProjectID, pair.Dest.IID, destUser.ID); err != nil {
			return reassigned, skipped, err
		}

		verified := false
		if r.opts.Verify {
			updated, err := r.dest.GetIssue(ctx, pair.DestProjectID, pair.Dest.IID)
			if err != nil {
				return reassigned, skipped, err
			}
			if updated.AssigneeID() != destUser.ID {
				return reassigned, skipped, fmt.Errorf("%w: issue %s still assigned to user %d, expected %d",
					ErrVerificationFailed, pair.Dest.ShortRef(), updated.AssigneeID(), destUser.ID)
			}
			verified = true
		}

		reassigned++
		r.publish(IssueReassignedEvent{Pair: pair, AssigneeID: destUser.ID, Verified: verified})
	}

	return reassigned, skipped, nil
}

// remaining counts the pairs not yet decided when the user quits.
func (r *Reconciler) remaining(pairs []domain.MatchedPair, reassigned, skipped int) int {
	return len(pairs) - reassigned - skipped
}
