// Package googletasks implements store.Store on top of one Google Tasks list.
package googletasks

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/charmbracelet/log"
	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
	"google.golang.org/api/option"
	tasks "google.golang.org/api/tasks/v1"

	"tasklist/internal/config"
	"tasklist/internal/logging"
	"tasklist/internal/task"
)

const (
	// DefaultListID is the special ID for the default list.
	DefaultListID = "@default"

	// PageSize is the number of tasks fetched per request.
	PageSize = 100

	// APITimeout is the timeout for API calls.
	APITimeout = 5 * time.Second

	// Scope is the OAuth scope for Google Tasks.
	Scope = "https://www.googleapis.com/auth/tasks"
)

var (
	// ErrAuth is returned when the token is missing, expired or revoked.
	ErrAuth = errors.New("token expired or revoked (run: tasklist login)")

	// ErrNotLoggedIn is returned when token.json is missing.
	ErrNotLoggedIn = errors.New("not logged in (run: tasklist login)")

	// ErrNoOAuthClient is returned when oauth_client.json is missing.
	ErrNoOAuthClient = errors.New("oauth_client.json not found")

	// ErrNotFound is returned when the list or task does not exist.
	ErrNotFound = errors.New("not found")
)

// IsAuthError reports whether err means the user has to (re)authenticate.
func IsAuthError(err error) bool {
	return errors.Is(err, ErrAuth) || errors.Is(err, ErrNotLoggedIn) || errors.Is(err, ErrNoOAuthClient)
}

// Store keeps the task list as the open tasks of a single Google Tasks list.
type Store struct {
	svc    *tasks.Service
	listID string
	logger *log.Logger
}

// New creates a Google Tasks store from the OAuth files in cfg.
// Requires oauth_client.json and token.json to exist.
func New(ctx context.Context, cfg *config.Config, logger *log.Logger) (*Store, error) {
	if !cfg.HasOAuthClient() {
		return nil, fmt.Errorf("%w in %s", ErrNoOAuthClient, cfg.Dir)
	}
	if !cfg.HasToken() {
		return nil, ErrNotLoggedIn
	}

	clientJSON, err := os.ReadFile(cfg.OAuthClientPath())
	if err != nil {
		return nil, fmt.Errorf("failed to read oauth_client.json: %w", err)
	}

	oauthConfig, err := google.ConfigFromJSON(clientJSON, Scope)
	if err != nil {
		return nil, fmt.Errorf("invalid oauth_client.json: %w", err)
	}

	tokenData, err := os.ReadFile(cfg.TokenPath())
	if err != nil {
		return nil, fmt.Errorf("failed to read token.json: %w", err)
	}

	var token oauth2.Token
	if err := json.Unmarshal(tokenData, &token); err != nil {
		return nil, fmt.Errorf("invalid token.json: %w", err)
	}

	// Token source refreshes automatically
	httpClient := oauth2.NewClient(ctx, oauthConfig.TokenSource(ctx, &token))

	svc, err := tasks.NewService(ctx, option.WithHTTPClient(httpClient))
	if err != nil {
		return nil, fmt.Errorf("failed to create tasks service: %w", err)
	}

	return newStore(svc, cfg.Settings.GoogleList, logger), nil
}

// NewWithHTTPClient creates a store with a custom HTTP client and endpoint
// (for testing).
func NewWithHTTPClient(ctx context.Context, httpClient *http.Client, endpoint, listID string) (*Store, error) {
	opts := []option.ClientOption{option.WithHTTPClient(httpClient)}
	if endpoint != "" {
		opts = append(opts, option.WithEndpoint(endpoint))
	}
	svc, err := tasks.NewService(ctx, opts...)
	if err != nil {
		return nil, err
	}
	return newStore(svc, listID, nil), nil
}

func newStore(svc *tasks.Service, listID string, logger *log.Logger) *Store {
	if listID == "" {
		listID = DefaultListID
	}
	if logger == nil {
		logger = logging.Discard()
	}
	return &Store{svc: svc, listID: listID, logger: logger}
}

// Load implements store.Store. Tasks come back in API order.
func (s *Store) Load(ctx context.Context) ([]task.Task, error) {
	items, err := s.openTasks(ctx)
	if err != nil {
		return nil, err
	}
	result := make([]task.Task, 0, len(items))
	for _, item := range items {
		result = append(result, task.Task{ID: item.Id, Text: item.Title})
	}
	return result, nil
}

// Append implements store.Store. Google assigns the task ID, so t.ID is not
// sent; the returned task carries the ID Google chose.
func (s *Store) Append(ctx context.Context, t task.Task) (task.Task, error) {
	ctx, cancel := context.WithTimeout(ctx, APITimeout)
	defer cancel()

	// Insert without a parent/previous places the task first; ask for the
	// last position so API order matches insertion order.
	call := s.svc.Tasks.Insert(s.listID, &tasks.Task{Title: t.Text}).Context(ctx)
	last, err := s.lastTaskID(ctx)
	if err != nil {
		return task.Task{}, err
	}
	if last != "" {
		call = call.Previous(last)
	}
	inserted, err := call.Do()
	if err != nil {
		return task.Task{}, wrapError(err)
	}
	s.logger.Debug("task inserted", "id", inserted.Id, "title", inserted.Title)
	return task.Task{ID: inserted.Id, Text: inserted.Title}, nil
}

// RemoveByValue implements store.Store.
func (s *Store) RemoveByValue(ctx context.Context, text string) error {
	items, err := s.openTasks(ctx)
	if err != nil {
		return err
	}
	removed := 0
	for _, item := range items {
		if item.Title != text {
			continue
		}
		if err := s.deleteTask(ctx, item.Id); err != nil {
			return err
		}
		removed++
	}
	s.logger.Debug("remove by value", "text", text, "removed", removed)
	return nil
}

// RemoveByID implements store.Store. A task that is already gone is not an
// error.
func (s *Store) RemoveByID(ctx context.Context, id string) error {
	err := s.deleteTask(ctx, id)
	if errors.Is(err, ErrNotFound) {
		s.logger.Warn("remove by id: no such task", "id", id)
		return nil
	}
	return err
}

// Clear implements store.Store.
func (s *Store) Clear(ctx context.Context) error {
	items, err := s.openTasks(ctx)
	if err != nil {
		return err
	}
	for _, item := range items {
		if err := s.deleteTask(ctx, item.Id); err != nil {
			return err
		}
	}
	return nil
}

// openTasks pages through every open task of the list.
func (s *Store) openTasks(ctx context.Context) ([]*tasks.Task, error) {
	ctx, cancel := context.WithTimeout(ctx, APITimeout)
	defer cancel()

	var result []*tasks.Task
	err := s.svc.Tasks.List(s.listID).
		MaxResults(PageSize).
		ShowCompleted(false).
		ShowDeleted(false).
		ShowHidden(false).
		Pages(ctx, func(resp *tasks.Tasks) error {
			result = append(result, resp.Items...)
			return nil
		})
	if err != nil {
		return nil, wrapError(err)
	}
	return result, nil
}

func (s *Store) lastTaskID(ctx context.Context) (string, error) {
	items, err := s.openTasks(ctx)
	if err != nil {
		return "", err
	}
	if len(items) == 0 {
		return "", nil
	}
	return items[len(items)-1].Id, nil
}

func (s *Store) deleteTask(ctx context.Context, id string) error {
	ctx, cancel := context.WithTimeout(ctx, APITimeout)
	defer cancel()

	if err := s.svc.Tasks.Delete(s.listID, id).Context(ctx).Do(); err != nil {
		return wrapError(err)
	}
	return nil
}

// wrapError wraps API errors with user-friendly messages.
func wrapError(err error) error {
	if err == nil {
		return nil
	}

	errStr := err.Error()

	// Check for timeout
	if strings.Contains(errStr, "context deadline exceeded") {
		return fmt.Errorf("request timed out")
	}

	// Check for auth errors
	if strings.Contains(errStr, "401") || strings.Contains(errStr, "403") {
		return ErrAuth
	}

	// Check for not found
	if strings.Contains(errStr, "404") {
		return ErrNotFound
	}

	return err
}
