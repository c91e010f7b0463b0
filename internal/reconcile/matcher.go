package reconcile

import "github.com/robby/glassign/internal/domain"

// Match pairs destination issues with source issues by short-reference
// equality. For each destination issue, in input order, the first source
// issue (in input order) whose short reference is byte-equal wins; the
// comparison is case-sensitive and a missing reference on either side never
// matches. A single source issue may pair with several destination issues
// when references collide; deduplication is the caller's responsibility.
//
// The second return value lists the destination issues for which no source
// issue matched, in input order, so callers can surface them instead of
// dropping them silently.
func Match(source, dest []domain.ProjectIssue) ([]domain.MatchedPair, []domain.ProjectIssue) {
	var pairs []domain.MatchedPair
	var unmatched []domain.ProjectIssue

	for _, d := range dest {
		found := false
		if ref := d.Issue.ShortRef(); ref != "" {
			for _, s := range source {
				if s.Issue.ShortRef() == ref {
					pairs = append(pairs, domain.MatchedPair{
						SourceProjectID: s.ProjectID,
						Source:          s.Issue,
						DestProjectID:   d.ProjectID,
						Dest:            d.Issue,
					})
					found = true
					break
				}
			}
		}
		if !found {
			unmatched = append(unmatched, d)
		}
	}

	return pairs, unmatched
}
