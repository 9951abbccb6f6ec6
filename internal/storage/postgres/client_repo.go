package postgres

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	domainErrors "github.com/shopworks/storefront/internal/domain/errors"
	"github.com/shopworks/storefront/internal/domain/model"
)

type clientRepository struct {
	storage *Storage
}

const clientColumns = `id, user_id, full_name, contact, address, created_at, updated_at`

func scanClient(row pgx.Row) (*model.Client, error) {
	var c model.Client
	err := row.Scan(&c.ID, &c.UserID, &c.FullName, &c.Contact, &c.Address, &c.CreatedAt, &c.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domainErrors.ErrNotFound
		}
		return nil, err
	}
	return &c, nil
}

func (r *clientRepository) Create(ctx context.Context, client *model.Client) (*model.Client, error) {
	const query = `INSERT INTO clients (id, user_id, full_name, contact, address)
                   VALUES ($1, $2, $3, $4, $5)
                   RETURNING created_at, updated_at`
	if client.ID == uuid.Nil {
		client.ID = uuid.New()
	}
	err := r.storage.pool.QueryRow(ctx, query, client.ID, client.UserID, client.FullName, client.Contact, client.Address).
		Scan(&client.CreatedAt, &client.UpdatedAt)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) {
			switch pgErr.Code {
			case "23505":
				return nil, domainErrors.ErrAlreadyExists
			case "23503":
				return nil, domainErrors.ErrNotFound
			}
		}
		return nil, err
	}
	return client, nil
}

func (r *clientRepository) GetByID(ctx context.Context, id uuid.UUID) (*model.Client, error) {
	return scanClient(r.storage.pool.QueryRow(ctx, `SELECT `+clientColumns+` FROM clients WHERE id=$1`, id))
}

func (r *clientRepository) GetByUserID(ctx context.Context, userID uuid.UUID) (*model.Client, error) {
	return scanClient(r.storage.pool.QueryRow(ctx, `SELECT `+clientColumns+` FROM clients WHERE user_id=$1`, userID))
}

// List returns every profile, optionally narrowed by a case-insensitive name
// match.
func (r *clientRepository) List(ctx context.Context, name string) ([]model.Client, error) {
	query := `SELECT ` + clientColumns + ` FROM clients ORDER BY created_at`
	var args []any
	if name != "" {
		query = `SELECT ` + clientColumns + ` FROM clients WHERE full_name ILIKE '%' || $1 || '%' ORDER BY created_at`
		args = append(args, name)
	}
	rows, err := r.storage.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []model.Client
	for rows.Next() {
		var c model.Client
		if err := rows.Scan(&c.ID, &c.UserID, &c.FullName, &c.Contact, &c.Address, &c.CreatedAt, &c.UpdatedAt); err != nil {
			return nil, err
		}
		result = append(result, c)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

func (r *clientRepository) Update(ctx context.Context, id uuid.UUID, fullName, contact, address string) (*model.Client, error) {
	const query = `UPDATE clients SET full_name=$1, contact=$2, address=$3, updated_at=NOW() WHERE id=$4
                   RETURNING ` + clientColumns
	return scanClient(r.storage.pool.QueryRow(ctx, query, fullName, contact, address, id))
}

func (r *clientRepository) Delete(ctx context.Context, id uuid.UUID) error {
	tag, err := r.storage.pool.Exec(ctx, `DELETE FROM clients WHERE id=$1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domainErrors.ErrNotFound
	}
	return nil
}
