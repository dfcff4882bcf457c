package database

import (
	"context"
	"errors"
	"time"

	"droply/internal/models"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

var ErrNodeNotFound = errors.New("node not found or user is not the owner")
var ErrParentNotFound = errors.New("parent folder not found or user is not the owner")

const nodeColumns = `id, user_id, parent_id, name, path, size_bytes, mime_type,
	storage_url, storage_file_id, thumbnail_url, is_folder, is_starred, is_trash,
	created_at, updated_at`

func scanNode(row pgx.Row) (*models.Node, error) {
	var node models.Node
	err := row.Scan(
		&node.ID,
		&node.UserID,
		&node.ParentID,
		&node.Name,
		&node.Path,
		&node.SizeBytes,
		&node.MimeType,
		&node.StorageURL,
		&node.StorageFileID,
		&node.ThumbnailURL,
		&node.IsFolder,
		&node.IsStarred,
		&node.IsTrash,
		&node.CreatedAt,
		&node.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &node, nil
}

type CreateNodeParams struct {
	ID            string
	UserID        string
	ParentID      *string
	Name          string
	Path          string
	SizeBytes     int64
	MimeType      string
	StorageURL    string
	StorageFileID *string
	ThumbnailURL  *string
	IsFolder      bool
}

func (q *Queries) CreateNode(ctx context.Context, arg CreateNodeParams) (*models.Node, error) {
	query := `
		INSERT INTO nodes (id, user_id, parent_id, name, path, size_bytes, mime_type,
			storage_url, storage_file_id, thumbnail_url, is_folder, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)
		RETURNING ` + nodeColumns

	now := time.Now()

	row := q.db.QueryRow(ctx, query,
		arg.ID,
		arg.UserID,
		arg.ParentID,
		arg.Name,
		arg.Path,
		arg.SizeBytes,
		arg.MimeType,
		arg.StorageURL,
		arg.StorageFileID,
		arg.ThumbnailURL,
		arg.IsFolder,
		now,
		now,
	)

	node, err := scanNode(row)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23503" {
			return nil, ErrParentNotFound
		}
		return nil, err
	}

	return node, nil
}

func (q *Queries) NodeExists(ctx context.Context, id string) (bool, error) {
	var exists bool
	query := "SELECT EXISTS(SELECT 1 FROM nodes WHERE id = $1)"
	err := q.db.QueryRow(ctx, query, id).Scan(&exists)
	if err != nil {
		return false, err
	}
	return exists, nil
}

func (q *Queries) GetNodeByID(ctx context.Context, id string, userID string) (*models.Node, error) {
	query := `SELECT ` + nodeColumns + ` FROM nodes WHERE id = $1 AND user_id = $2`

	node, err := scanNode(q.db.QueryRow(ctx, query, id, userID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}

	return node, nil
}

// GetFolder resolves id to a folder owned by userID. Files and foreign nodes
// come back nil, so callers cannot tell a foreign folder from a missing one.
func (q *Queries) GetFolder(ctx context.Context, id string, userID string) (*models.Node, error) {
	query := `SELECT ` + nodeColumns + ` FROM nodes
		WHERE id = $1 AND user_id = $2 AND is_folder = TRUE`

	node, err := scanNode(q.db.QueryRow(ctx, query, id, userID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}

	return node, nil
}

type ListNodesParams struct {
	UserID      string
	ParentID    *string
	StarredOnly bool
	TrashOnly   bool
}

// ListNodes returns every node owned by UserID under ParentID. A nil ParentID
// is the root level and must compare with IS NULL; an equality check against
// NULL would silently match nothing.
func (q *Queries) ListNodes(ctx context.Context, arg ListNodesParams) ([]models.Node, error) {
	query := `SELECT ` + nodeColumns + ` FROM nodes WHERE user_id = $1`
	args := []interface{}{arg.UserID}

	if arg.ParentID == nil {
		query += ` AND parent_id IS NULL`
	} else {
		query += ` AND parent_id = $2`
		args = append(args, *arg.ParentID)
	}

	if arg.StarredOnly {
		query += ` AND is_starred = TRUE`
	}
	if arg.TrashOnly {
		query += ` AND is_trash = TRUE`
	}

	query += ` ORDER BY is_folder DESC, name`

	rows, err := q.db.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var nodes []models.Node
	for rows.Next() {
		node, err := scanNode(rows)
		if err != nil {
			return nil, err
		}
		nodes = append(nodes, *node)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	if nodes == nil {
		return []models.Node{}, nil
	}

	return nodes, nil
}

// ToggleStar flips the starred flag and returns the updated node, or nil when
// no owned node matches.
func (q *Queries) ToggleStar(ctx context.Context, id string, userID string) (*models.Node, error) {
	query := `
		UPDATE nodes
		SET is_starred = NOT is_starred, updated_at = $3
		WHERE id = $1 AND user_id = $2
		RETURNING ` + nodeColumns

	node, err := scanNode(q.db.QueryRow(ctx, query, id, userID, time.Now()))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}

	return node, nil
}

// ToggleTrash flips the soft-delete flag: the first call moves a node to
// trash, the second restores it.
func (q *Queries) ToggleTrash(ctx context.Context, id string, userID string) (*models.Node, error) {
	query := `
		UPDATE nodes
		SET is_trash = NOT is_trash, updated_at = $3
		WHERE id = $1 AND user_id = $2
		RETURNING ` + nodeColumns

	node, err := scanNode(q.db.QueryRow(ctx, query, id, userID, time.Now()))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}

	return node, nil
}

// DeleteNode permanently removes a node and, for folders, its whole subtree.
// It returns the media-host file ids of every deleted file so the caller can
// purge the objects after the transaction commits.
func (q *Queries) DeleteNode(ctx context.Context, id string, userID string) ([]string, bool, error) {
	query := `
		WITH RECURSIVE subtree AS (
			SELECT n.id
			FROM nodes n
			WHERE n.id = $1 AND n.user_id = $2

			UNION ALL

			SELECT n.id
			FROM nodes n
			INNER JOIN subtree s ON n.parent_id = s.id
		)
		DELETE FROM nodes
		WHERE id IN (SELECT id FROM subtree)
		RETURNING id, is_folder, storage_file_id
	`

	rows, err := q.db.Query(ctx, query, id, userID)
	if err != nil {
		return nil, false, err
	}
	defer rows.Close()

	var storageFileIDs []string
	var found bool
	for rows.Next() {
		var nodeID string
		var isFolder bool
		var storageFileID *string
		if err := rows.Scan(&nodeID, &isFolder, &storageFileID); err != nil {
			return nil, false, err
		}
		if nodeID == id {
			found = true
		}
		if !isFolder && storageFileID != nil {
			storageFileIDs = append(storageFileIDs, *storageFileID)
		}
	}

	if err = rows.Err(); err != nil {
		return nil, false, err
	}

	return storageFileIDs, found, nil
}

// EmptyTrash permanently removes every trashed node the user owns, subtrees
// included, and returns the media-host file ids of the deleted files.
func (q *Queries) EmptyTrash(ctx context.Context, userID string) ([]string, error) {
	query := `
		WITH RECURSIVE subtree AS (
			SELECT n.id
			FROM nodes n
			WHERE n.user_id = $1 AND n.is_trash = TRUE

			UNION ALL

			SELECT n.id
			FROM nodes n
			INNER JOIN subtree s ON n.parent_id = s.id
		)
		DELETE FROM nodes
		WHERE id IN (SELECT DISTINCT id FROM subtree)
		RETURNING is_folder, storage_file_id
	`

	rows, err := q.db.Query(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var storageFileIDs []string
	for rows.Next() {
		var isFolder bool
		var storageFileID *string
		if err := rows.Scan(&isFolder, &storageFileID); err != nil {
			return nil, err
		}
		if !isFolder && storageFileID != nil {
			storageFileIDs = append(storageFileIDs, *storageFileID)
		}
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return storageFileIDs, nil
}
