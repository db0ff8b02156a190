package repo

import (
	"context"
	"sort"
	"sync"
	"time"

	dom "github.com/Ianrury/api-tash-manajement/internal/domain"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// In-memory UserRepo/TaskRepo implementations. Used by tests and useful for
// running the API without Postgres. They return the same sentinel errors the
// PG repos surface (pgx.ErrNoRows, unique-violation PgError) so the service
// layer behaves identically on both.

type MemUserRepo struct {
	mu     sync.RWMutex
	nextID int64
	byID   map[int64]dom.User
	byName map[string]int64
}

func NewMemUserRepo() *MemUserRepo {
	return &MemUserRepo{
		nextID: 1,
		byID:   make(map[int64]dom.User),
		byName: make(map[string]int64),
	}
}

func (r *MemUserRepo) Create(ctx context.Context, name, username, passwordHash string) (dom.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, exists := r.byName[username]; exists {
		return dom.User{}, &pgconn.PgError{Code: "23505", ConstraintName: "users_username_key"}
	}
	u := dom.User{
		ID:           r.nextID,
		Name:         name,
		Username:     username,
		PasswordHash: passwordHash,
		CreatedAt:    time.Now().UTC(),
	}
	r.nextID++
	r.byID[u.ID] = u
	r.byName[u.Username] = u.ID
	return u, nil
}

func (r *MemUserRepo) GetByUsername(ctx context.Context, username string) (dom.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	id, ok := r.byName[username]
	if !ok {
		return dom.User{}, pgx.ErrNoRows
	}
	return r.byID[id], nil
}

func (r *MemUserRepo) GetByID(ctx context.Context, id int64) (dom.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	u, ok := r.byID[id]
	if !ok {
		return dom.User{}, pgx.ErrNoRows
	}
	return u, nil
}

type MemTaskRepo struct {
	mu     sync.RWMutex
	nextID int64
	tasks  map[int64]dom.Task
}

func NewMemTaskRepo() *MemTaskRepo {
	return &MemTaskRepo{nextID: 1, tasks: make(map[int64]dom.Task)}
}

func (r *MemTaskRepo) Create(ctx context.Context, t dom.Task) (dom.Task, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	now := time.Now().UTC()
	t.ID = r.nextID
	r.nextID++
	if t.Status == "" {
		t.Status = dom.StatusToDo
	}
	t.CreatedAt = now
	t.UpdatedAt = now
	r.tasks[t.ID] = t
	return t, nil
}

func (r *MemTaskRepo) GetByID(ctx context.Context, userID, id int64) (dom.Task, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	t, ok := r.tasks[id]
	if !ok || t.UserID != userID {
		return dom.Task{}, pgx.ErrNoRows
	}
	return t, nil
}

func (r *MemTaskRepo) List(ctx context.Context, userID int64, filter dom.TaskFilter) ([]dom.Task, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var list []dom.Task
	for _, t := range r.tasks {
		if t.UserID != userID {
			continue
		}
		if filter.Status != nil && t.Status != *filter.Status {
			continue
		}
		list = append(list, t)
	}
	sortTasks(list, filter.Sort)
	return list, nil
}

// sortTasks mirrors the PG ORDER BY clauses: creation time descending by
// default, deadline orders with deadline-less tasks always last.
func sortTasks(list []dom.Task, s dom.Sort) {
	sort.SliceStable(list, func(i, j int) bool {
		a, b := list[i], list[j]
		switch s {
		case dom.SortDeadlineAsc, dom.SortDeadlineDesc:
			if (a.Deadline == nil) != (b.Deadline == nil) {
				return b.Deadline == nil
			}
			if a.Deadline != nil && b.Deadline != nil && !a.Deadline.Equal(*b.Deadline) {
				if s == dom.SortDeadlineAsc {
					return a.Deadline.Before(*b.Deadline)
				}
				return a.Deadline.After(*b.Deadline)
			}
		}
		if !a.CreatedAt.Equal(b.CreatedAt) {
			return a.CreatedAt.After(b.CreatedAt)
		}
		// Stable tiebreak for rows created in the same instant.
		return a.ID > b.ID
	})
}

func (r *MemTaskRepo) Update(ctx context.Context, userID, id int64, patch dom.Task) (dom.Task, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	t, ok := r.tasks[id]
	if !ok || t.UserID != userID {
		return dom.Task{}, pgx.ErrNoRows
	}
	t.Title = patch.Title
	t.Description = patch.Description
	t.Status = patch.Status
	t.Deadline = patch.Deadline
	t.UpdatedAt = time.Now().UTC()
	r.tasks[id] = t
	return t, nil
}

func (r *MemTaskRepo) Delete(ctx context.Context, userID, id int64) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	t, ok := r.tasks[id]
	if !ok || t.UserID != userID {
		return false, nil
	}
	delete(r.tasks, id)
	return true, nil
}
