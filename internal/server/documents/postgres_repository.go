// Package documents implements the per-user key→JSON document store:
// upsert, point lookup, metadata listing, and deletion, all scoped by owner.
package documents

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"cloudtracker/internal/common"
	"cloudtracker/internal/dbx"
)

// PostgresRepository implements document storage over a dbx.DBTX
// (*sql.DB or *sql.Tx).
type PostgresRepository struct {
	db dbx.DBTX
}

func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

// Upsert atomically inserts or replaces the document at (user_id, key).
// The conflict clause on the unique constraint is the only concurrency
// control; concurrent writers serialize in the database.
func (r *PostgresRepository) Upsert(ctx context.Context, doc *Document) error {
	query := `
		INSERT INTO documents (user_id, key, value)
		VALUES ($1, $2, $3)
		ON CONFLICT (user_id, key)
		DO UPDATE SET
			value = EXCLUDED.value,
			updated_at = now();
	`
	res, err := r.db.ExecContext(ctx, query, doc.UserID, doc.Key, doc.Value)
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("rows affected error: %w", err)
	}
	if n != 1 {
		return fmt.Errorf("unexpected rows affected: %d", n)
	}
	return nil
}

func (r *PostgresRepository) Get(ctx context.Context, userID string, key string) (*Document, error) {
	query :=
		`SELECT id, user_id, key, value, updated_at FROM documents
		 WHERE user_id = $1 AND key = $2
		 `

	doc := &Document{}
	err := r.db.QueryRowContext(ctx, query, userID, key).Scan(&doc.ID, &doc.UserID, &doc.Key, &doc.Value, &doc.UpdatedAt)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}

	return doc, nil
}

// List returns key metadata for userID, most recently updated first.
func (r *PostgresRepository) List(ctx context.Context, userID string) ([]KeyInfo, error) {
	query :=
		`SELECT key, updated_at FROM documents
		 WHERE user_id = $1
		 ORDER BY updated_at DESC
		 `

	rows, err := r.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	result := []KeyInfo{}
	for rows.Next() {
		var item KeyInfo
		if err := rows.Scan(&item.Key, &item.UpdatedAt); err != nil {
			return nil, err
		}
		result = append(result, item)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows error: %w", err)
	}

	return result, nil
}

// Delete removes the document at (user_id, key). Deleting an absent key is
// an error, never a silent no-op.
func (r *PostgresRepository) Delete(ctx context.Context, userID string, key string) error {
	query :=
		`DELETE FROM documents
		 WHERE user_id = $1 AND key = $2
		 `

	res, err := r.db.ExecContext(ctx, query, userID, key)
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("rows affected error: %w", err)
	}
	if n == 0 {
		return common.ErrorNotFound
	}
	return nil
}
