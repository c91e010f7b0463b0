package gitlab

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"

	"github.com/robby/glassign/internal/domain"
)

// collectPages fetches pages 1..n of a paginated listing until the backend
// returns an empty array, concatenating the decoded records in fetch order.
// The terminal empty page contributes nothing. Termination is decided on the
// decoded record count, never on payload byte length, so a single short
// record cannot be mistaken for the end of the listing.
func collectPages[T any](ctx context.Context, c *Client, pathFor func(page int) string) ([]T, error) {
	var all []T
	for page := 1; ; page++ {
		body, err := c.do(ctx, http.MethodGet, pathFor(page))
		if err != nil {
			return nil, err
		}

		var records []T
		if err := json.Unmarshal(body, &records); err != nil {
			return nil, fmt.Errorf("failed to decode page %d: %w", page, err)
		}
		if len(records) == 0 {
			return all, nil
		}
		all = append(all, records...)
	}
}

// GetUserByUsername resolves a username to a user record on this instance.
// Returns (nil, nil) when no user matches; the caller decides whether an
// unresolved user is fatal. When the backend returns several candidates the
// first one wins, in backend order.
func (c *Client) GetUserByUsername(ctx context.Context, username string) (*domain.User, error) {
	path := "users?username=" + url.QueryEscape(username)

	body, err := c.do(ctx, http.MethodGet, path)
	if err != nil {
		return nil, fmt.Errorf("failed to look up user %q: %w", username, err)
	}

	var users []domain.User
	if err := json.Unmarshal(body, &users); err != nil {
		return nil, fmt.Errorf("failed to decode user lookup for %q: %w", username, err)
	}

	if len(users) == 0 {
		return nil, nil
	}
	return &users[0], nil
}

// ListProjects returns the projects the token holder is a member of.
// Only the first page is requested; membership listings beyond one page are
// out of scope for the reconciliation run.
func (c *Client) ListProjects(ctx context.Context) ([]domain.Project, error) {
	body, err := c.do(ctx, http.MethodGet, "projects?membership=true&simple=true")
	if err != nil {
		return nil, fmt.Errorf("failed to list projects: %w", err)
	}

	var projects []domain.Project
	if err := json.Unmarshal(body, &projects); err != nil {
		return nil, fmt.Errorf("failed to decode project list: %w", err)
	}

	return projects, nil
}

// ListProjectIssues returns every issue of one project, across all pages.
// When assignee is non-nil the listing is restricted to issues currently
// assigned to that user; otherwise all issues are returned regardless of
// assignee.
func (c *Client) ListProjectIssues(ctx context.Context, projectID int64, assignee *domain.User) ([]domain.Issue, error) {
	pathFor := func(page int) string {
		if assignee != nil {
			return fmt.Sprintf("projects/%d/issues?assignee_id=%d&scope=all&simple=true&page=%d", projectID, assignee.ID, page)
		}
		return fmt.Sprintf("projects/%d/issues?scope=all&simple=true&page=%d", projectID, page)
	}

	issues, err := collectPages[domain.Issue](ctx, c, pathFor)
	if err != nil {
		return nil, fmt.Errorf("failed to harvest issues of project %d: %w", projectID, err)
	}
	return issues, nil
}

// GetIssue fetches one issue by project id and project-scoped issue number.
// Used to verify that a mutation actually took effect.
func (c *Client) GetIssue(ctx context.Context, projectID, issueIID int64) (*domain.Issue, error) {
	path := fmt.Sprintf("projects/%d/issues/%d", projectID, issueIID)

	body, err := c.do(ctx, http.MethodGet, path)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch issue %d of project %d: %w", issueIID, projectID, err)
	}

	var issue domain.Issue
	if err := json.Unmarshal(body, &issue); err != nil {
		return nil, fmt.Errorf("failed to decode issue %d of project %d: %w", issueIID, projectID, err)
	}

	return &issue, nil
}
