package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"

	"github.com/kubev2v/clause-builder/internal/models"
	srvErrors "github.com/kubev2v/clause-builder/pkg/errors"
	"github.com/kubev2v/clause-builder/pkg/tabular"
)

const workspaceTable = "workspaces"

var workspaceColumns = []string{"id", "source", "name", "header_json", "rows_json", "created_at", "updated_at"}

// WorkspaceStore persists workspaces and their tables in DuckDB.
// The header and rows are stored as JSON documents.
type WorkspaceStore struct {
	db QueryInterceptor
}

func NewWorkspaceStore(db QueryInterceptor) *WorkspaceStore {
	return &WorkspaceStore{db: db}
}

func (s *WorkspaceStore) Get(ctx context.Context, id uuid.UUID) (*models.Workspace, error) {
	query, args, err := sq.Select(workspaceColumns...).
		From(workspaceTable).
		Where(sq.Eq{"id": id.String()}).
		ToSql()
	if err != nil {
		return nil, err
	}

	w, err := scanWorkspace(s.db.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, srvErrors.NewWorkspaceNotFoundError(id.String())
	}
	if err != nil {
		return nil, err
	}
	return w, nil
}

// List returns all workspaces, most recently updated first.
func (s *WorkspaceStore) List(ctx context.Context) ([]models.Workspace, error) {
	query, args, err := sq.Select(workspaceColumns...).
		From(workspaceTable).
		OrderBy("updated_at DESC").
		ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	workspaces := []models.Workspace{}
	for rows.Next() {
		w, err := scanWorkspace(rows)
		if err != nil {
			return nil, err
		}
		workspaces = append(workspaces, *w)
	}

	return workspaces, rows.Err()
}

// Save inserts the workspace or replaces the stored one with the same id.
func (s *WorkspaceStore) Save(ctx context.Context, w models.Workspace) error {
	if w.Table == nil {
		return srvErrors.NewNoTableLoadedError()
	}

	header, err := json.Marshal(w.Table.Header)
	if err != nil {
		return fmt.Errorf("failed to marshal header: %w", err)
	}
	rows, err := json.Marshal(w.Table.Rows)
	if err != nil {
		return fmt.Errorf("failed to marshal rows: %w", err)
	}

	query, args, err := sq.Insert(workspaceTable).
		Columns(workspaceColumns...).
		Values(w.ID.String(), string(w.Source), w.Name, string(header), string(rows), w.CreatedAt, w.UpdatedAt).
		Suffix(`ON CONFLICT (id) DO UPDATE SET
			source = EXCLUDED.source,
			name = EXCLUDED.name,
			header_json = EXCLUDED.header_json,
			rows_json = EXCLUDED.rows_json,
			updated_at = EXCLUDED.updated_at`).
		ToSql()
	if err != nil {
		return err
	}

	_, err = s.db.ExecContext(ctx, query, args...)
	return err
}

func (s *WorkspaceStore) Delete(ctx context.Context, id uuid.UUID) error {
	query, args, err := sq.Delete(workspaceTable).
		Where(sq.Eq{"id": id.String()}).
		ToSql()
	if err != nil {
		return err
	}

	res, err := s.db.ExecContext(ctx, query, args...)
	if err != nil {
		return err
	}

	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return srvErrors.NewWorkspaceNotFoundError(id.String())
	}
	return nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scanWorkspace(row scanner) (*models.Workspace, error) {
	var (
		w      models.Workspace
		id     string
		source string
		header string
		rows   string
	)

	if err := row.Scan(&id, &source, &w.Name, &header, &rows, &w.CreatedAt, &w.UpdatedAt); err != nil {
		return nil, err
	}

	var err error
	if w.ID, err = uuid.Parse(id); err != nil {
		return nil, fmt.Errorf("invalid workspace id %q: %w", id, err)
	}
	if w.Source, err = models.ParseSourceKind(source); err != nil {
		return nil, err
	}

	w.Table = &tabular.Table{}
	if err := json.Unmarshal([]byte(header), &w.Table.Header); err != nil {
		return nil, fmt.Errorf("failed to unmarshal header: %w", err)
	}
	if err := json.Unmarshal([]byte(rows), &w.Table.Rows); err != nil {
		return nil, fmt.Errorf("failed to unmarshal rows: %w", err)
	}

	return &w, nil
}
