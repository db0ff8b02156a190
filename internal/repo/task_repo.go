package repo

import (
	"context"

	dom "github.com/Ianrury/api-tash-manajement/internal/domain"

	"github.com/jackc/pgx/v5/pgxpool"
)

// TaskRepo provides task persistence. Every read and write is scoped to an
// owner id: a task another user owns is indistinguishable from a task that
// does not exist.
type TaskRepo interface {
	Create(ctx context.Context, t dom.Task) (dom.Task, error)
	GetByID(ctx context.Context, userID, id int64) (dom.Task, error)
	List(ctx context.Context, userID int64, filter dom.TaskFilter) ([]dom.Task, error)
	Update(ctx context.Context, userID, id int64, patch dom.Task) (dom.Task, error)
	Delete(ctx context.Context, userID, id int64) (bool, error)
}

type PGTaskRepo struct {
	db *pgxpool.Pool
}

func NewPGTaskRepo(db *pgxpool.Pool) *PGTaskRepo {
	return &PGTaskRepo{db: db}
}

const taskColumns = `task_id, user_id, created_by, title, description, status, deadline, created_at, updated_at`

func scanTask(row interface{ Scan(dest ...any) error }) (dom.Task, error) {
	var t dom.Task
	err := row.Scan(&t.ID, &t.UserID, &t.CreatedBy, &t.Title, &t.Description,
		&t.Status, &t.Deadline, &t.CreatedAt, &t.UpdatedAt)
	return t, err
}

func (r *PGTaskRepo) Create(ctx context.Context, t dom.Task) (dom.Task, error) {
	query := `
		INSERT INTO tasks (user_id, created_by, title, description, status, deadline)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING ` + taskColumns
	return scanTask(r.db.QueryRow(ctx, query,
		t.UserID, t.CreatedBy, t.Title, t.Description, t.Status, t.Deadline))
}

func (r *PGTaskRepo) GetByID(ctx context.Context, userID, id int64) (dom.Task, error) {
	query := `SELECT ` + taskColumns + ` FROM tasks WHERE task_id = $1 AND user_id = $2`
	return scanTask(r.db.QueryRow(ctx, query, id, userID))
}

func (r *PGTaskRepo) List(ctx context.Context, userID int64, filter dom.TaskFilter) ([]dom.Task, error) {
	query := `SELECT ` + taskColumns + ` FROM tasks WHERE user_id = $1`
	args := []any{userID}
	if filter.Status != nil {
		query += ` AND status = $2`
		args = append(args, *filter.Status)
	}
	query += ` ORDER BY ` + orderClause(filter.Sort)

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var list []dom.Task
	for rows.Next() {
		t, err := scanTask(rows)
		if err != nil {
			return nil, err
		}
		list = append(list, t)
	}
	return list, rows.Err()
}

// orderClause maps a Sort to SQL. NULLS LAST keeps deadline-less tasks at
// the end in both directions.
func orderClause(s dom.Sort) string {
	switch s {
	case dom.SortDeadlineAsc:
		return `deadline ASC NULLS LAST, created_at DESC`
	case dom.SortDeadlineDesc:
		return `deadline DESC NULLS LAST, created_at DESC`
	default:
		return `created_at DESC`
	}
}

func (r *PGTaskRepo) Update(ctx context.Context, userID, id int64, patch dom.Task) (dom.Task, error) {
	query := `
		UPDATE tasks
		SET title = $3, description = $4, status = $5, deadline = $6, updated_at = NOW()
		WHERE task_id = $1 AND user_id = $2
		RETURNING ` + taskColumns
	return scanTask(r.db.QueryRow(ctx, query,
		id, userID, patch.Title, patch.Description, patch.Status, patch.Deadline))
}

// Delete removes the task permanently. Returns false when no row matched
// the id/owner pair.
func (r *PGTaskRepo) Delete(ctx context.Context, userID, id int64) (bool, error) {
	tag, err := r.db.Exec(ctx, `DELETE FROM tasks WHERE task_id = $1 AND user_id = $2`, id, userID)
	if err != nil {
		return false, err
	}
	return tag.RowsAffected() > 0, nil
}
