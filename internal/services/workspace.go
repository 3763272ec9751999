package services

import (
	"context"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/patrickmn/go-cache"
	"go.uber.org/zap"

	"github.com/kubev2v/clause-builder/internal/metrics"
	"github.com/kubev2v/clause-builder/internal/models"
	"github.com/kubev2v/clause-builder/internal/store"
	srvErrors "github.com/kubev2v/clause-builder/pkg/errors"
	"github.com/kubev2v/clause-builder/pkg/scheduler"
	"github.com/kubev2v/clause-builder/pkg/tabular"
)

// Warehouse runs a source query and returns the column names followed by the rows.
type Warehouse interface {
	Query(ctx context.Context, query string) ([][]string, error)
}

// WorkspaceService loads tables into workspaces. Every load creates a new
// workspace; a table is never merged into an existing one.
type WorkspaceService struct {
	store     *store.Store
	scheduler *scheduler.Scheduler
	warehouse Warehouse
	cache     *cache.Cache
	logger    *zap.SugaredLogger
}

func NewWorkspaceService(st *store.Store, s *scheduler.Scheduler, wh Warehouse, cacheTTL time.Duration) *WorkspaceService {
	return &WorkspaceService{
		store:     st,
		scheduler: s,
		warehouse: wh,
		cache:     cache.New(cacheTTL, 2*cacheTTL),
		logger:    zap.S().Named("workspace_service"),
	}
}

// LoadFile parses an uploaded CSV or Excel file into a new workspace.
func (w *WorkspaceService) LoadFile(ctx context.Context, name string, r io.Reader) (*models.Workspace, error) {
	t, err := tabular.ParseFile(name, r)
	if err != nil {
		metrics.TablesLoaded.WithLabelValues(string(models.SourceFile), metrics.Outcome(err)).Inc()
		return nil, err
	}
	return w.save(ctx, models.NewWorkspace(models.SourceFile, name, t))
}

// LoadQuery runs query on the warehouse and stores its result in a new workspace.
// The query runs once; a failure is returned as is.
func (w *WorkspaceService) LoadQuery(ctx context.Context, query string) (*models.Workspace, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return nil, srvErrors.NewParseError("source query is empty")
	}

	rows, err := w.runQuery(ctx, query)
	if err != nil {
		metrics.TablesLoaded.WithLabelValues(string(models.SourceQuery), metrics.Outcome(err)).Inc()
		return nil, err
	}

	if len(rows) < 2 {
		err := srvErrors.NewParseError("query returned no results")
		metrics.TablesLoaded.WithLabelValues(string(models.SourceQuery), metrics.Outcome(err)).Inc()
		return nil, err
	}

	t, err := tabular.FromRows(rows)
	if err != nil {
		metrics.TablesLoaded.WithLabelValues(string(models.SourceQuery), metrics.Outcome(err)).Inc()
		return nil, err
	}

	return w.save(ctx, models.NewWorkspace(models.SourceQuery, query, t))
}

func (w *WorkspaceService) Get(ctx context.Context, id uuid.UUID) (*models.Workspace, error) {
	if cached, found := w.cache.Get(id.String()); found {
		return cached.(*models.Workspace), nil
	}

	ws, err := w.store.Workspace().Get(ctx, id)
	if err != nil {
		return nil, err
	}

	w.cache.SetDefault(id.String(), ws)
	return ws, nil
}

func (w *WorkspaceService) List(ctx context.Context) ([]models.Workspace, error) {
	return w.store.Workspace().List(ctx)
}

func (w *WorkspaceService) Delete(ctx context.Context, id uuid.UUID) error {
	w.cache.Delete(id.String())
	return w.store.Workspace().Delete(ctx, id)
}

func (w *WorkspaceService) save(ctx context.Context, ws models.Workspace) (*models.Workspace, error) {
	if err := w.store.Workspace().Save(ctx, ws); err != nil {
		metrics.TablesLoaded.WithLabelValues(string(ws.Source), metrics.Outcome(err)).Inc()
		return nil, fmt.Errorf("failed to save workspace: %w", err)
	}

	metrics.TablesLoaded.WithLabelValues(string(ws.Source), metrics.Outcome(nil)).Inc()
	w.cache.SetDefault(ws.ID.String(), &ws)
	w.logger.Infow("table loaded", "id", ws.ID, "source", ws.Source, "columns", len(ws.Table.Header), "rows", len(ws.Table.Rows))

	return &ws, nil
}

func (w *WorkspaceService) runQuery(ctx context.Context, query string) ([][]string, error) {
	start := time.Now()
	defer func() {
		metrics.WarehouseQueryDuration.Observe(time.Since(start).Seconds())
	}()

	future := w.scheduler.AddWork(func(ctx context.Context) (any, error) {
		return w.warehouse.Query(ctx, query)
	})

	select {
	case result := <-future.C():
		if result.Err != nil {
			w.logger.Errorw("source query failed", "query", query, "error", result.Err)
			return nil, result.Err
		}
		return result.Data.([][]string), nil
	case <-ctx.Done():
		future.Stop()
		return nil, ctx.Err()
	}
}
