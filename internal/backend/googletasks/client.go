// Package googletasks implements service.Remote using the Google Tasks API.
package googletasks

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"strings"
	"time"

	"golang.org/x/oauth2"
	"google.golang.org/api/option"
	tasks "google.golang.org/api/tasks/v1"

	"taskcli/internal/config"
	"taskcli/internal/service"
)

const (
	// PageSize is the number of items requested per API page.
	PageSize = 100

	// APITimeout is the timeout for API calls.
	APITimeout = 5 * time.Second

	statusNeedsAction = "needsAction"
	statusCompleted   = "completed"
)

// Client implements service.Remote using Google Tasks API.
type Client struct {
	svc *tasks.Service
}

// New creates a new Google Tasks client.
// Requires oauth_client.json and token.json to exist.
func New(ctx context.Context, cfg *config.Config) (*Client, error) {
	if !cfg.HasOAuthClient() {
		return nil, fmt.Errorf("%w: oauth_client.json not found in %s", service.ErrAuth, cfg.Dir)
	}
	if !cfg.HasToken() {
		return nil, fmt.Errorf("%w: not logged in (run: task-cli login)", service.ErrAuth)
	}

	oauthConfig, err := LoadOAuthConfig(cfg)
	if err != nil {
		return nil, err
	}

	tokenData, err := os.ReadFile(cfg.TokenPath())
	if err != nil {
		return nil, fmt.Errorf("failed to read token.json: %w", err)
	}

	var token oauth2.Token
	if err := json.Unmarshal(tokenData, &token); err != nil {
		return nil, fmt.Errorf("invalid token.json: %w", err)
	}

	// Token source refreshes the access token as needed
	httpClient := oauth2.NewClient(ctx, oauthConfig.TokenSource(ctx, &token))
	return NewWithHTTPClient(ctx, httpClient)
}

// NewWithHTTPClient creates a client with a custom HTTP client.
// Extra options (e.g. option.WithEndpoint) are passed to the API client.
func NewWithHTTPClient(ctx context.Context, httpClient *http.Client, opts ...option.ClientOption) (*Client, error) {
	opts = append([]option.ClientOption{option.WithHTTPClient(httpClient)}, opts...)
	svc, err := tasks.NewService(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create tasks service: %w", err)
	}
	return &Client{svc: svc}, nil
}

// EnsureList returns the list titled title, creating it if needed.
func (c *Client) EnsureList(ctx context.Context, title string) (service.TaskList, error) {
	ctx, cancel := context.WithTimeout(ctx, APITimeout)
	defer cancel()

	want := strings.ToLower(strings.TrimSpace(title))

	var found *service.TaskList
	err := c.svc.Tasklists.List().MaxResults(PageSize).Pages(ctx, func(resp *tasks.TaskLists) error {
		for _, list := range resp.Items {
			if found == nil && strings.ToLower(strings.TrimSpace(list.Title)) == want {
				found = &service.TaskList{ID: list.Id, Title: list.Title}
			}
		}
		return nil
	})
	if err != nil {
		return service.TaskList{}, wrapError(err)
	}
	if found != nil {
		return *found, nil
	}

	created, err := c.svc.Tasklists.Insert(&tasks.TaskList{Title: strings.TrimSpace(title)}).Context(ctx).Do()
	if err != nil {
		return service.TaskList{}, wrapError(err)
	}
	return service.TaskList{ID: created.Id, Title: created.Title}, nil
}

// ListTasks returns all tasks of a list, including completed and hidden ones.
func (c *Client) ListTasks(ctx context.Context, listID string) ([]service.RemoteTask, error) {
	ctx, cancel := context.WithTimeout(ctx, APITimeout)
	defer cancel()

	var result []service.RemoteTask
	err := c.svc.Tasks.List(listID).
		MaxResults(PageSize).
		ShowCompleted(true).
		ShowHidden(true).
		ShowDeleted(false).
		Pages(ctx, func(resp *tasks.Tasks) error {
			for _, t := range resp.Items {
				result = append(result, service.RemoteTask{
					ID:        t.Id,
					Title:     t.Title,
					Notes:     t.Notes,
					Completed: t.Status == statusCompleted,
				})
			}
			return nil
		})
	if err != nil {
		return nil, wrapError(err)
	}
	return result, nil
}

// CreateTask creates a new task in the specified list.
func (c *Client) CreateTask(ctx context.Context, listID string, task service.RemoteTask) error {
	ctx, cancel := context.WithTimeout(ctx, APITimeout)
	defer cancel()

	_, err := c.svc.Tasks.Insert(listID, toAPI(task)).Context(ctx).Do()
	return wrapError(err)
}

// UpdateTask patches title, notes and status of a task.
func (c *Client) UpdateTask(ctx context.Context, listID string, task service.RemoteTask) error {
	ctx, cancel := context.WithTimeout(ctx, APITimeout)
	defer cancel()

	_, err := c.svc.Tasks.Patch(listID, task.ID, toAPI(task)).Context(ctx).Do()
	return wrapError(err)
}

// DeleteTask deletes a task.
func (c *Client) DeleteTask(ctx context.Context, listID, taskID string) error {
	ctx, cancel := context.WithTimeout(ctx, APITimeout)
	defer cancel()

	return wrapError(c.svc.Tasks.Delete(listID, taskID).Context(ctx).Do())
}

func toAPI(t service.RemoteTask) *tasks.Task {
	status := statusNeedsAction
	if t.Completed {
		status = statusCompleted
	}
	return &tasks.Task{
		Title:  t.Title,
		Notes:  t.Notes,
		Status: status,
	}
}

// wrapError wraps API errors with user-friendly messages.
func wrapError(err error) error {
	if err == nil {
		return nil
	}

	errStr := err.Error()

	if strings.Contains(errStr, "context deadline exceeded") {
		return fmt.Errorf("request timed out")
	}

	if strings.Contains(errStr, "401") || strings.Contains(errStr, "403") {
		return fmt.Errorf("%w: token expired or revoked (run: task-cli login)", service.ErrAuth)
	}

	if strings.Contains(errStr, "404") {
		return fmt.Errorf("not found")
	}

	return err
}

var _ service.Remote = (*Client)(nil)
