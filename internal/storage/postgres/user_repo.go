package postgres

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	domainErrors "github.com/shopworks/storefront/internal/domain/errors"
	"github.com/shopworks/storefront/internal/domain/model"
)

type userRepository struct {
	storage *Storage
}

const userColumns = `id, email, name, password_hash, type, email_verified, verify_token, verify_token_expires, created_at, updated_at`

func scanUser(row pgx.Row) (*model.User, error) {
	var u model.User
	err := row.Scan(&u.ID, &u.Email, &u.Name, &u.PasswordHash, &u.Type, &u.EmailVerified, &u.VerifyToken, &u.VerifyTokenExpires, &u.CreatedAt, &u.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domainErrors.ErrNotFound
		}
		return nil, err
	}
	return &u, nil
}

func (r *userRepository) Create(ctx context.Context, user *model.User) (*model.User, error) {
	const query = `INSERT INTO users (id, email, name, password_hash, type, email_verified, verify_token, verify_token_expires)
                   VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
                   RETURNING created_at, updated_at`
	if user.ID == uuid.Nil {
		user.ID = uuid.New()
	}
	err := r.storage.pool.QueryRow(ctx, query,
		user.ID, user.Email, user.Name, user.PasswordHash, user.Type,
		user.EmailVerified, user.VerifyToken, user.VerifyTokenExpires,
	).Scan(&user.CreatedAt, &user.UpdatedAt)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return nil, domainErrors.ErrAlreadyExists
		}
		return nil, err
	}
	return user, nil
}

func (r *userRepository) GetByEmail(ctx context.Context, email string) (*model.User, error) {
	return scanUser(r.storage.pool.QueryRow(ctx, `SELECT `+userColumns+` FROM users WHERE email=$1`, email))
}

func (r *userRepository) GetByID(ctx context.Context, id uuid.UUID) (*model.User, error) {
	return scanUser(r.storage.pool.QueryRow(ctx, `SELECT `+userColumns+` FROM users WHERE id=$1`, id))
}

func (r *userRepository) GetByVerifyToken(ctx context.Context, token string) (*model.User, error) {
	const query = `SELECT ` + userColumns + ` FROM users WHERE verify_token=$1 AND verify_token_expires > NOW()`
	return scanUser(r.storage.pool.QueryRow(ctx, query, token))
}

func (r *userRepository) List(ctx context.Context) ([]model.User, error) {
	rows, err := r.storage.pool.Query(ctx, `SELECT `+userColumns+` FROM users ORDER BY created_at`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []model.User
	for rows.Next() {
		var u model.User
		if err := rows.Scan(&u.ID, &u.Email, &u.Name, &u.PasswordHash, &u.Type, &u.EmailVerified, &u.VerifyToken, &u.VerifyTokenExpires, &u.CreatedAt, &u.UpdatedAt); err != nil {
			return nil, err
		}
		result = append(result, u)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

func (r *userRepository) Update(ctx context.Context, id uuid.UUID, name, email string, userType model.UserType) (*model.User, error) {
	const query = `UPDATE users SET name=$1, email=$2, type=$3, updated_at=NOW() WHERE id=$4
                   RETURNING ` + userColumns
	user, err := scanUser(r.storage.pool.QueryRow(ctx, query, name, email, userType, id))
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return nil, domainErrors.ErrAlreadyExists
		}
		return nil, err
	}
	return user, nil
}

func (r *userRepository) Delete(ctx context.Context, id uuid.UUID) error {
	tag, err := r.storage.pool.Exec(ctx, `DELETE FROM users WHERE id=$1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domainErrors.ErrNotFound
	}
	return nil
}

func (r *userRepository) MarkVerified(ctx context.Context, id uuid.UUID) error {
	const query = `UPDATE users SET email_verified=TRUE, verify_token=NULL, verify_token_expires=NULL, updated_at=NOW() WHERE id=$1`
	tag, err := r.storage.pool.Exec(ctx, query, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domainErrors.ErrNotFound
	}
	return nil
}

func (r *userRepository) SetVerifyToken(ctx context.Context, id uuid.UUID, token string, expires time.Time) error {
	const query = `UPDATE users SET verify_token=$1, verify_token_expires=$2, updated_at=NOW() WHERE id=$3`
	tag, err := r.storage.pool.Exec(ctx, query, token, expires, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domainErrors.ErrNotFound
	}
	return nil
}
