package sqlite

import (
	"context"
	"database/sql"

	"github.com/harborbank/authd/internal/authd/domain"
)

type clientsRepo struct {
	db *sql.DB
}

func (r *clientsRepo) GetClientByID(ctx context.Context, id string) (domain.Client, error) {
	row := r.db.QueryRowContext(ctx, `
		SELECT id, name, secret_hash, created_at
		FROM clients WHERE id = ?`, id)

	var c domain.Client
	if err := row.Scan(&c.ID, &c.Name, &c.SecretHash, &c.CreatedAt); err != nil {
		return domain.Client{}, mapNotFound(err)
	}
	return c, nil
}

func (r *clientsRepo) CreateClient(ctx context.Context, c domain.Client) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO clients (id, name, secret_hash)
		VALUES (?, ?, ?)`,
		c.ID, c.Name, c.SecretHash)
	return err
}

func (r *clientsRepo) IsEmpty(ctx context.Context) (bool, error) {
	var count int64
	if err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM clients`).Scan(&count); err != nil {
		return false, err
	}
	return count == 0, nil
}
