// Package domain defines the normalized domain types for GitLab issue
// reconciliation. These types mirror the GitLab REST API record shapes for
// the fields the engine actually uses; instance-local ids are never compared
// across instances.
package domain

// User represents a GitLab user resolved on one specific instance.
// The ID is only meaningful on the instance it was resolved against.
type User struct {
	ID        int64  `json:"id"`
	Username  string `json:"username"`
	Name      string `json:"name"`
	State     string `json:"state"`
	AvatarURL string `json:"avatar_url"`
	WebURL    string `json:"web_url"`
}

// Project represents a GitLab project as returned by the simple projects
// listing. Identity is the ID, stable for the duration of one run.
type Project struct {
	ID                int64   `json:"id"`
	Name              string  `json:"name"`
	PathWithNamespace string  `json:"path_with_namespace"`
	Description       *string `json:"description"`
	WebURL            string  `json:"web_url"`
	LastActivityAt    string  `json:"last_activity_at"`
}

// References holds the human-readable identifiers of an issue.
// Short (e.g. "group/project#42") is the sole cross-instance correlation
// key; it is unique within an instance but only comparable across instances
// when both mirror the same project paths.
type References struct {
	Short    string `json:"short"`
	Relative string `json:"relative"`
	Full     string `json:"full"`
}

// Issue represents a GitLab issue within one project on one instance.
// IID is the project-scoped issue number used in mutation URLs; ID is the
// instance-global id and is never used for cross-instance comparison.
type Issue struct {
	ID         int64      `json:"id"`
	IID        int64      `json:"iid"`
	Title      string     `json:"title"`
	State      string     `json:"state"`
	Assignee   *User      `json:"assignee"`
	Assignees  []User     `json:"assignees"`
	References References `json:"references"`
	WebURL     string     `json:"web_url"`
	CreatedAt  string     `json:"created_at"`
}

// ShortRef returns the issue's short reference, or "" when absent.
func (i Issue) ShortRef() string {
	return i.References.Short
}

// AssigneeID returns the id of the issue's current assignee, or 0 when
// unassigned.
func (i Issue) AssigneeID() int64 {
	if i.Assignee != nil {
		return i.Assignee.ID
	}
	if len(i.Assignees) > 0 {
		return i.Assignees[0].ID
	}
	return 0
}

// ProjectIssue associates an issue with the id of the project it was
// harvested from, preserving enough context for the mutation URL.
type ProjectIssue struct {
	ProjectID int64
	Issue     Issue
}

// MatchedPair is a source issue and a destination issue judged equivalent
// by short-reference equality. Ephemeral; produced by the matcher and
// consumed by the confirmation/mutation loop within a single run.
type MatchedPair struct {
	SourceProjectID int64
	Source          Issue
	DestProjectID   int64
	Dest            Issue
}
