package repo

import (
	"context"

	dom "github.com/Ianrury/api-tash-manajement/internal/domain"

	"github.com/jackc/pgx/v5/pgxpool"
)

// UserRepo provides account persistence.
type UserRepo interface {
	Create(ctx context.Context, name, username, passwordHash string) (dom.User, error)
	GetByUsername(ctx context.Context, username string) (dom.User, error)
	GetByID(ctx context.Context, id int64) (dom.User, error)
}

// PGUserRepo implements UserRepo with Postgres.
type PGUserRepo struct {
	db *pgxpool.Pool
}

// NewPGUserRepo returns a new PGUserRepo.
func NewPGUserRepo(db *pgxpool.Pool) *PGUserRepo {
	return &PGUserRepo{db: db}
}

// Create inserts a new user and returns it.
func (r *PGUserRepo) Create(ctx context.Context, name, username, passwordHash string) (dom.User, error) {
	query := `
		INSERT INTO users (name, username, password_hash)
		VALUES ($1, $2, $3)
		RETURNING user_id, name, username, password_hash, created_at`
	var u dom.User
	err := r.db.QueryRow(ctx, query, name, username, passwordHash).Scan(
		&u.ID, &u.Name, &u.Username, &u.PasswordHash, &u.CreatedAt,
	)
	return u, err
}

// GetByUsername returns the user by username.
func (r *PGUserRepo) GetByUsername(ctx context.Context, username string) (dom.User, error) {
	var u dom.User
	err := r.db.QueryRow(ctx,
		`SELECT user_id, name, username, password_hash, created_at FROM users WHERE username = $1`,
		username,
	).Scan(&u.ID, &u.Name, &u.Username, &u.PasswordHash, &u.CreatedAt)
	return u, err
}

// GetByID returns the user by primary key.
func (r *PGUserRepo) GetByID(ctx context.Context, id int64) (dom.User, error) {
	var u dom.User
	err := r.db.QueryRow(ctx,
		`SELECT user_id, name, username, password_hash, created_at FROM users WHERE user_id = $1`,
		id,
	).Scan(&u.ID, &u.Name, &u.Username, &u.PasswordHash, &u.CreatedAt)
	return u, err
}
