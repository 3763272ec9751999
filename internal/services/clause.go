package services

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/kubev2v/clause-builder/internal/metrics"
	"github.com/kubev2v/clause-builder/pkg/clause"
)

type ClauseParams struct {
	Column    string
	Operator  string
	BaseQuery string
}

type ClauseService struct {
	workspaces *WorkspaceService
}

func NewClauseService(workspaces *WorkspaceService) *ClauseService {
	return &ClauseService{workspaces: workspaces}
}

// Generate builds the filtered query for the column of workspace id.
// An empty operator defaults to IN.
func (s *ClauseService) Generate(ctx context.Context, id uuid.UUID, params ClauseParams) (string, error) {
	ws, err := s.workspaces.Get(ctx, id)
	if err != nil {
		return "", err
	}

	operator := params.Operator
	if strings.TrimSpace(operator) == "" {
		operator = string(clause.In)
	}

	sql, err := generate(ws.Table, params.Column, operator, params.BaseQuery)
	metrics.ClausesGenerated.WithLabelValues(operatorLabel(operator), metrics.Outcome(err)).Inc()
	if err != nil {
		return "", err
	}

	zap.S().Named("clause_service").Debugw("clause generated", "workspace", id, "column", params.Column, "operator", operator)
	return sql, nil
}

// operatorLabel keeps the metric label set fixed: client text that is not an
// operator is counted as "invalid".
func operatorLabel(operator string) string {
	op, err := clause.ParseOperator(operator)
	if err != nil {
		return metrics.InvalidOperator
	}
	return string(op)
}
