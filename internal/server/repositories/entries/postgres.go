// Package entries provides the PostgreSQL-backed repository for folder/file
// entry persistence.
package entries

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/droply/internal/common"
	"github.com/dmitrijs2005/droply/internal/dbx"
	"github.com/dmitrijs2005/droply/internal/server/models"
)

// entryColumns is the column list shared by every statement that returns
// full rows. Keep in sync with scanEntry.
const entryColumns = `id, user_id, name, path, size, content_type, file_url, thumbnail_url, storage_key, parent_id, is_folder, is_starred, is_trash, created_at, updated_at`

// PostgresRepository implements entry storage over a dbx.DBTX (*sql.DB or *sql.Tx).
type PostgresRepository struct {
	db dbx.DBTX
}

// NewPostgresRepository constructs a repository bound to the given DBTX.
func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanEntry(row rowScanner) (*models.Entry, error) {
	var item models.Entry
	err := row.Scan(
		&item.ID, &item.UserID, &item.Name, &item.Path,
		&item.Size, &item.ContentType, &item.FileURL, &item.ThumbnailURL, &item.StorageKey,
		&item.ParentID, &item.IsFolder, &item.IsStarred, &item.IsTrash,
		&item.CreatedAt, &item.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &item, nil
}

// Create inserts a new entry and returns the stored row.
func (r *PostgresRepository) Create(ctx context.Context, entry *models.Entry) (*models.Entry, error) {
	query := `
		INSERT INTO entries (id, user_id, name, path, size, content_type, file_url, thumbnail_url, storage_key, parent_id, is_folder, is_starred, is_trash)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)
		RETURNING ` + entryColumns
	row := r.db.QueryRowContext(ctx, query,
		entry.ID, entry.UserID, entry.Name, entry.Path,
		entry.Size, entry.ContentType, entry.FileURL, entry.ThumbnailURL, entry.StorageKey,
		entry.ParentID, entry.IsFolder, entry.IsStarred, entry.IsTrash)
	result, err := scanEntry(row)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	return result, nil
}

// GetByID returns the entry with the given id owned by userID, or
// common.ErrorNotFound.
func (r *PostgresRepository) GetByID(ctx context.Context, id, userID string) (*models.Entry, error) {
	query := `SELECT ` + entryColumns + ` FROM entries WHERE id=$1 AND user_id=$2`
	result, err := scanEntry(r.db.QueryRowContext(ctx, query, id, userID))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}
	return result, nil
}

// GetOwnedFolder returns the entry only when it exists, is owned by userID
// and is a folder. Used for parent resolution.
func (r *PostgresRepository) GetOwnedFolder(ctx context.Context, id, userID string) (*models.Entry, error) {
	query := `SELECT ` + entryColumns + ` FROM entries WHERE id=$1 AND user_id=$2 AND is_folder=TRUE`
	result, err := scanEntry(r.db.QueryRowContext(ctx, query, id, userID))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}
	return result, nil
}

// List returns non-trashed children of parentID (root-level entries when
// parentID is nil), newest first.
func (r *PostgresRepository) List(ctx context.Context, userID string, parentID *string) ([]*models.Entry, error) {
	query := `SELECT ` + entryColumns + ` FROM entries WHERE user_id=$1 AND parent_id IS NULL AND is_trash=FALSE ORDER BY created_at DESC`
	args := []any{userID}
	if parentID != nil {
		query = `SELECT ` + entryColumns + ` FROM entries WHERE user_id=$1 AND parent_id=$2 AND is_trash=FALSE ORDER BY created_at DESC`
		args = append(args, *parentID)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to select entries: %w", err)
	}
	defer rows.Close()

	var result []*models.Entry
	for rows.Next() {
		item, err := scanEntry(rows)
		if err != nil {
			return nil, err
		}
		result = append(result, item)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

// ToggleStarred flips is_starred in a single atomic statement and returns
// the updated row.
func (r *PostgresRepository) ToggleStarred(ctx context.Context, id, userID string) (*models.Entry, error) {
	query := `UPDATE entries SET is_starred = NOT is_starred, updated_at = now() WHERE id=$1 AND user_id=$2 RETURNING ` + entryColumns
	return r.toggle(ctx, query, id, userID)
}

// ToggleTrash flips is_trash in a single atomic statement and returns the
// updated row. Descendants are not touched.
func (r *PostgresRepository) ToggleTrash(ctx context.Context, id, userID string) (*models.Entry, error) {
	query := `UPDATE entries SET is_trash = NOT is_trash, updated_at = now() WHERE id=$1 AND user_id=$2 RETURNING ` + entryColumns
	return r.toggle(ctx, query, id, userID)
}

func (r *PostgresRepository) toggle(ctx context.Context, query, id, userID string) (*models.Entry, error) {
	result, err := scanEntry(r.db.QueryRowContext(ctx, query, id, userID))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}
	return result, nil
}

// Delete removes the entry permanently and returns its prior state, or
// common.ErrorNotFound when no row matches.
func (r *PostgresRepository) Delete(ctx context.Context, id, userID string) (*models.Entry, error) {
	query := `DELETE FROM entries WHERE id=$1 AND user_id=$2 RETURNING ` + entryColumns
	result, err := scanEntry(r.db.QueryRowContext(ctx, query, id, userID))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}
	return result, nil
}

// SelectTrashed returns every trashed entry for userID.
func (r *PostgresRepository) SelectTrashed(ctx context.Context, userID string) ([]*models.Entry, error) {
	query := `SELECT ` + entryColumns + ` FROM entries WHERE user_id=$1 AND is_trash=TRUE`
	rows, err := r.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to select trashed entries: %w", err)
	}
	defer rows.Close()

	var result []*models.Entry
	for rows.Next() {
		item, err := scanEntry(rows)
		if err != nil {
			return nil, err
		}
		result = append(result, item)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

// DeleteTrashed removes every trashed entry for userID in one bulk statement
// and returns the number of rows removed.
func (r *PostgresRepository) DeleteTrashed(ctx context.Context, userID string) (int64, error) {
	query := `DELETE FROM entries WHERE user_id=$1 AND is_trash=TRUE`
	res, err := r.db.ExecContext(ctx, query, userID)
	if err != nil {
		return 0, fmt.Errorf("db error: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("rows affected error: %w", err)
	}
	return n, nil
}
