package reconcile

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/robby/glassign/internal/domain"
)

func issue(id, iid int64, title, shortRef string) domain.Issue {
	return domain.Issue{
		ID:         id,
		IID:        iid,
		Title:      title,
		References: domain.References{Short: shortRef},
	}
}

func TestMatch_PairsEqualShortRefs(t *testing.T) {
	source := []domain.ProjectIssue{
		{ProjectID: 1, Issue: issue(10, 1, "Bug", "proj#5")},
	}
	dest := []domain.ProjectIssue{
		{ProjectID: 2, Issue: issue(20, 3, "Bug (mirrored)", "proj#5")},
	}

	pairs, unmatched := Match(source, dest)

	require.Len(t, pairs, 1)
	assert.Empty(t, unmatched)
	assert.Equal(t, int64(1), pairs[0].SourceProjectID)
	assert.Equal(t, int64(2), pairs[0].DestProjectID)
	assert.Equal(t, "Bug", pairs[0].Source.Title)
	assert.Equal(t, int64(3), pairs[0].Dest.IID)
}

func TestMatch_FirstSourceWins(t *testing.T) {
	source := []domain.ProjectIssue{
		{ProjectID: 1, Issue: issue(10, 1, "First", "proj#5")},
		{ProjectID: 1, Issue: issue(11, 2, "Second", "proj#5")},
	}
	dest := []domain.ProjectIssue{
		{ProjectID: 2, Issue: issue(20, 3, "Mirror", "proj#5")},
	}

	pairs, _ := Match(source, dest)

	require.Len(t, pairs, 1)
	assert.Equal(t, "First", pairs[0].Source.Title)
}

func TestMatch_MissingRefNeverMatches(t *testing.T) {
	source := []domain.ProjectIssue{
		{ProjectID: 1, Issue: issue(10, 1, "No ref source", "")},
	}
	dest := []domain.ProjectIssue{
		{ProjectID: 2, Issue: issue(20, 3, "No ref dest", "")},
		{ProjectID: 2, Issue: issue(21, 4, "Has ref", "proj#9")},
	}

	pairs, unmatched := Match(source, dest)

	assert.Empty(t, pairs)
	assert.Len(t, unmatched, 2)
}

func TestMatch_CaseSensitive(t *testing.T) {
	source := []domain.ProjectIssue{
		{ProjectID: 1, Issue: issue(10, 1, "Upper", "Proj#5")},
	}
	dest := []domain.ProjectIssue{
		{ProjectID: 2, Issue: issue(20, 3, "Lower", "proj#5")},
	}

	pairs, unmatched := Match(source, dest)

	assert.Empty(t, pairs)
	assert.Len(t, unmatched, 1)
}

func TestMatch_UnmatchedDestReported(t *testing.T) {
	source := []domain.ProjectIssue{
		{ProjectID: 1, Issue: issue(10, 1, "Bug", "proj#5")},
	}
	dest := []domain.ProjectIssue{
		{ProjectID: 2, Issue: issue(20, 3, "Mirror", "proj#5")},
		{ProjectID: 2, Issue: issue(21, 4, "Orphan", "proj#6")},
		{ProjectID: 3, Issue: issue(22, 1, "Another orphan", "other#1")},
	}

	pairs, unmatched := Match(source, dest)

	require.Len(t, pairs, 1)
	require.Len(t, unmatched, 2)
	assert.Equal(t, "Orphan", unmatched[0].Issue.Title)
	assert.Equal(t, "Another orphan", unmatched[1].Issue.Title)
}

func TestMatch_SourceMayMatchMultipleDests(t *testing.T) {
	// Reference collisions are not deduplicated; that is the caller's
	// responsibility.
	source := []domain.ProjectIssue{
		{ProjectID: 1, Issue: issue(10, 1, "Bug", "proj#5")},
	}
	dest := []domain.ProjectIssue{
		{ProjectID: 2, Issue: issue(20, 3, "Mirror one", "proj#5")},
		{ProjectID: 3, Issue: issue(21, 7, "Mirror two", "proj#5")},
	}

	pairs, unmatched := Match(source, dest)

	require.Len(t, pairs, 2)
	assert.Empty(t, unmatched)
	assert.Equal(t, int64(10), pairs[0].Source.ID)
	assert.Equal(t, int64(10), pairs[1].Source.ID)
}

func TestMatch_Deterministic(t *testing.T) {
	source := []domain.ProjectIssue{
		{ProjectID: 1, Issue: issue(10, 1, "A", "proj#1")},
		{ProjectID: 1, Issue: issue(11, 2, "B", "proj#2")},
	}
	dest := []domain.ProjectIssue{
		{ProjectID: 2, Issue: issue(20, 1, "B mirror", "proj#2")},
		{ProjectID: 2, Issue: issue(21, 2, "A mirror", "proj#1")},
	}

	first, firstUnmatched := Match(source, dest)
	second, secondUnmatched := Match(source, dest)

	assert.Equal(t, first, second)
	assert.Equal(t, firstUnmatched, secondUnmatched)
	// Pairs come out in destination order.
	require.Len(t, first, 2)
	assert.Equal(t, "B mirror", first[0].Dest.Title)
	assert.Equal(t, "A mirror", first[1].Dest.Title)
}

func TestMatch_EmptyInputs(t *testing.T) {
	pairs, unmatched := Match(nil, nil)
	assert.Empty(t, pairs)
	assert.Empty(t, unmatched)
}
