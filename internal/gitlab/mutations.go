package gitlab

import (
	"context"
	"fmt"
	"net/http"
)

// UpdateIssueAssignee reassigns one issue to the given user.
// Parameters are query-encoded; the PUT carries no body and the response
// body is ignored - transport-level completion is treated as success.
// Callers wanting a stronger guarantee re-fetch the issue afterwards.
func (c *Client) UpdateIssueAssignee(ctx context.Context, projectID, issueIID, assigneeID int64) error {
	path := fmt.Sprintf("projects/%d/issues/%d?assignee_ids=%d", projectID, issueIID, assigneeID)

	if _, err := c.do(ctx, http.MethodPut, path); err != nil {
		return fmt.Errorf("failed to reassign issue %d of project %d: %w", issueIID, projectID, err)
	}
	return nil
}
