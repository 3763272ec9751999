package v1

import (
	"github.com/kubev2v/clause-builder/internal/models"
	"github.com/kubev2v/clause-builder/pkg/tabular"
)

// NewWorkspace converts a models.Workspace to an API Workspace.
// Preview rows are padded or cut to the header width.
func NewWorkspace(ws models.Workspace, previewRows int) Workspace {
	w := Workspace{
		Id:        ws.ID.String(),
		Source:    WorkspaceSource(ws.Source),
		Name:      ws.Name,
		Header:    []string{},
		Columns:   []string{},
		Preview:   [][]string{},
		CreatedAt: ws.CreatedAt,
		UpdatedAt: ws.UpdatedAt,
	}

	if ws.Table == nil {
		return w
	}

	w.Header = append(w.Header, ws.Table.Header...)
	w.Columns = ws.Table.Columns()
	w.RowCount = len(ws.Table.Rows)

	for _, row := range ws.Table.Preview(previewRows).Rows {
		w.Preview = append(w.Preview, padRow(row, len(ws.Table.Header)))
	}

	return w
}

func NewWorkspaceSummary(ws models.Workspace) WorkspaceSummary {
	s := WorkspaceSummary{
		Id:        ws.ID.String(),
		Source:    WorkspaceSource(ws.Source),
		Name:      ws.Name,
		UpdatedAt: ws.UpdatedAt,
	}
	if ws.Table != nil {
		s.ColumnCount = len(ws.Table.Header)
		s.RowCount = len(ws.Table.Rows)
	}
	return s
}

func NewWorkspaceList(list []models.Workspace) WorkspaceList {
	l := WorkspaceList{Workspaces: make([]WorkspaceSummary, 0, len(list))}
	for _, ws := range list {
		l.Workspaces = append(l.Workspaces, NewWorkspaceSummary(ws))
	}
	return l
}

func padRow(row tabular.Row, width int) []string {
	out := make([]string, width)
	for i := range out {
		out[i], _ = row.Cell(i)
	}
	return out
}
