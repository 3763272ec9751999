// Package v1 holds the request and response bodies of the /api/v1 endpoints.
package v1

import "time"

// WorkspaceSource tells where the table of a workspace came from.
type WorkspaceSource string

const (
	WorkspaceSourceFile  WorkspaceSource = "file"
	WorkspaceSourceQuery WorkspaceSource = "query"
)

// Workspace is the table of a workspace with a preview of its first rows.
type Workspace struct {
	Id        string          `json:"id"`
	Source    WorkspaceSource `json:"source"`
	Name      string          `json:"name"`
	Header    []string        `json:"header"`
	Columns   []string        `json:"columns"`
	Preview   [][]string      `json:"preview"`
	RowCount  int             `json:"rowCount"`
	CreatedAt time.Time       `json:"createdAt"`
	UpdatedAt time.Time       `json:"updatedAt"`
}

type WorkspaceSummary struct {
	Id          string          `json:"id"`
	Source      WorkspaceSource `json:"source"`
	Name        string          `json:"name"`
	ColumnCount int             `json:"columnCount"`
	RowCount    int             `json:"rowCount"`
	UpdatedAt   time.Time       `json:"updatedAt"`
}

type WorkspaceList struct {
	Workspaces []WorkspaceSummary `json:"workspaces"`
}

// WorkspaceQueryRequest loads a workspace from a warehouse query.
type WorkspaceQueryRequest struct {
	Query string `json:"query"`
}

// ClauseRequest selects the column and operator of the generated clause.
// An empty operator means IN.
type ClauseRequest struct {
	Column    string  `json:"column"`
	Operator  *string `json:"operator,omitempty"`
	BaseQuery *string `json:"baseQuery,omitempty"`
}

type ClauseResponse struct {
	Sql string `json:"sql"`
}
