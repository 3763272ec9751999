package store

import "database/sql"

// Store provides access to all storage repositories.
type Store struct {
	db        *sql.DB
	workspace *WorkspaceStore
}

func NewStore(db *sql.DB) *Store {
	return &Store{
		db:        db,
		workspace: NewWorkspaceStore(newQueryInterceptor(db, "store")),
	}
}

func (s *Store) Workspace() *WorkspaceStore {
	return s.workspace
}

func (s *Store) Close() error {
	return s.db.Close()
}
