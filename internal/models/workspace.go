package models

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/kubev2v/clause-builder/pkg/tabular"
)

// SourceKind tells where the table of a workspace came from.
type SourceKind string

const (
	SourceFile  SourceKind = "file"
	SourceQuery SourceKind = "query"
)

func ParseSourceKind(s string) (SourceKind, error) {
	switch s {
	case "file":
		return SourceFile, nil
	case "query":
		return SourceQuery, nil
	default:
		return "", fmt.Errorf("invalid source kind: %s", s)
	}
}

// Workspace owns the table a user is currently working on.
// Loading a new file or query replaces the table as a whole.
type Workspace struct {
	ID        uuid.UUID
	Source    SourceKind
	Name      string // file name or source query
	Table     *tabular.Table
	CreatedAt time.Time
	UpdatedAt time.Time
}

func NewWorkspace(source SourceKind, name string, t *tabular.Table) Workspace {
	now := time.Now().UTC()
	return Workspace{
		ID:        uuid.New(),
		Source:    source,
		Name:      name,
		Table:     t,
		CreatedAt: now,
		UpdatedAt: now,
	}
}
