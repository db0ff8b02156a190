package service

import (
	"context"
	"errors"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/Ianrury/api-tash-manajement/internal/cache"
	dom "github.com/Ianrury/api-tash-manajement/internal/domain"
	"github.com/Ianrury/api-tash-manajement/internal/repo"

	"github.com/jackc/pgx/v5"
	"golang.org/x/sync/singleflight"
)

// ErrNotFound covers both a missing task and a task owned by someone else.
// Collapsing the two is what keeps other users' task ids undiscoverable.
var ErrNotFound = errors.New("task not found")

// ErrTitleLength rejects titles outside 3-200 characters. Checked here on
// the trimmed value, so whitespace padding cannot sneak a short title past
// the request binding.
var ErrTitleLength = errors.New("title must be between 3 and 200 characters")

func validTitle(title string) bool {
	n := utf8.RuneCountInString(title)
	return n >= 3 && n <= 200
}

// TaskService runs ownership-scoped task operations. The owner id comes
// from the authenticated request, never from the request body or path.
type TaskService struct {
	repo  repo.TaskRepo
	cache *cache.TaskCache
	sf    singleflight.Group
}

// NewTaskService creates a TaskService. If c is nil, caching is disabled.
func NewTaskService(r repo.TaskRepo, c *cache.TaskCache) *TaskService {
	return &TaskService{repo: r, cache: c}
}

// Create inserts a task owned by userID. Both user_id and created_by are
// forced to the caller, whatever the request body said.
func (s *TaskService) Create(ctx context.Context, userID int64, title string, description *string, status dom.Status, deadline *dom.OptionalTime) (dom.Task, error) {
	title = strings.TrimSpace(title)
	if !validTitle(title) {
		return dom.Task{}, ErrTitleLength
	}
	if status == "" {
		status = dom.StatusToDo
	}
	t := dom.Task{
		UserID:      userID,
		CreatedBy:   userID,
		Title:       title,
		Description: description,
		Status:      status,
	}
	if deadline != nil && deadline.Set {
		t.Deadline = deadline.Value
	}
	created, err := s.repo.Create(ctx, t)
	if err != nil {
		return dom.Task{}, err
	}
	s.invalidateCache(ctx, userID)
	return created, nil
}

// List returns the user's tasks for the given filter/sort. Listings are
// cached per user+variant and deduplicated with singleflight.
func (s *TaskService) List(ctx context.Context, userID int64, filter dom.TaskFilter) ([]dom.Task, error) {
	if s.cache == nil {
		return s.repo.List(ctx, userID, filter)
	}
	key := "list:" + strconv.FormatInt(userID, 10) + ":" + filterKey(filter)
	v, err, _ := s.sf.Do(key, func() (interface{}, error) {
		if list, err := s.cache.GetList(ctx, userID, filter); err == nil && list != nil {
			return list, nil
		}
		list, err := s.repo.List(ctx, userID, filter)
		if err != nil {
			return nil, err
		}
		_ = s.cache.SetList(ctx, userID, filter, list)
		return list, nil
	})
	if err != nil {
		return nil, err
	}
	return v.([]dom.Task), nil
}

func filterKey(f dom.TaskFilter) string {
	status := "all"
	if f.Status != nil {
		status = string(*f.Status)
	}
	return status + ":" + string(f.Sort)
}

// GetByID returns the task if userID owns it, ErrNotFound otherwise.
func (s *TaskService) GetByID(ctx context.Context, userID, id int64) (dom.Task, error) {
	t, err := s.repo.GetByID(ctx, userID, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return dom.Task{}, ErrNotFound
		}
		return dom.Task{}, err
	}
	return t, nil
}

// Update applies a partial update through the same ownership-scoped lookup
// as GetByID. Two concurrent updates to one task race at the storage layer;
// the later write wins.
func (s *TaskService) Update(ctx context.Context, userID, id int64, patch dom.TaskPatch) (dom.Task, error) {
	existing, err := s.repo.GetByID(ctx, userID, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return dom.Task{}, ErrNotFound
		}
		return dom.Task{}, err
	}
	next := existing
	if patch.Title != nil {
		title := strings.TrimSpace(*patch.Title)
		if !validTitle(title) {
			return dom.Task{}, ErrTitleLength
		}
		next.Title = title
	}
	if patch.Description.Set {
		next.Description = patch.Description.Value
	}
	if patch.Status != nil {
		next.Status = *patch.Status
	}
	if patch.Deadline.Set {
		next.Deadline = patch.Deadline.Value
	}
	t, err := s.repo.Update(ctx, userID, id, next)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return dom.Task{}, ErrNotFound
		}
		return dom.Task{}, err
	}
	s.invalidateCache(ctx, userID)
	return t, nil
}

// Delete removes the task permanently if userID owns it.
func (s *TaskService) Delete(ctx context.Context, userID, id int64) error {
	deleted, err := s.repo.Delete(ctx, userID, id)
	if err != nil {
		return err
	}
	if !deleted {
		return ErrNotFound
	}
	s.invalidateCache(ctx, userID)
	return nil
}

func (s *TaskService) invalidateCache(ctx context.Context, userID int64) {
	if s.cache != nil {
		_ = s.cache.InvalidateUser(ctx, userID)
	}
}
