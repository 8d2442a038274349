package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgconn"

	serr "github.com/IvanChernomyrdin/go-todo-planner/internal/shared/errors"
)

type UsersRepository struct {
	db *sql.DB
}

func NewUsersRepository(db *sql.DB) *UsersRepository {
	return &UsersRepository{db: db}
}

// Create вставляет аккаунт. Уникальность email гарантирует БД,
// поэтому гонка двух одновременных регистраций безопасна.
func (r *UsersRepository) Create(ctx context.Context, email, passwordHash string) (uuid.UUID, error) {
	var id uuid.UUID

	err := r.db.QueryRowContext(ctx,
		`INSERT INTO users (email, password_hash)
		 VALUES ($1,$2)
		 RETURNING id`,
		email, passwordHash,
	).Scan(&id)

	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" { // unique_violation
			return uuid.Nil, serr.ErrAlreadyExists
		}
		return uuid.Nil, mapDBError(err)
	}

	return id, nil
}

func (r *UsersRepository) GetByEmail(ctx context.Context, email string) (uuid.UUID, string, error) {
	var (
		id   uuid.UUID
		hash string
	)

	err := r.db.QueryRowContext(ctx,
		`SELECT id, password_hash FROM users WHERE email=$1`,
		email,
	).Scan(&id, &hash)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return uuid.Nil, "", serr.ErrNotFound
		}
		return uuid.Nil, "", mapDBError(err)
	}

	return id, hash, nil
}

// GetByID возвращает email пользователя. Нужен для /me.
func (r *UsersRepository) GetByID(ctx context.Context, id uuid.UUID) (string, error) {
	var email string

	err := r.db.QueryRowContext(ctx,
		`SELECT email FROM users WHERE id=$1`,
		id,
	).Scan(&email)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return "", serr.ErrNotFound
		}
		return "", mapDBError(err)
	}

	return email, nil
}
