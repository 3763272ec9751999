package handlers

import (
	"context"
	"io"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/kubev2v/clause-builder/internal/models"
	"github.com/kubev2v/clause-builder/internal/services"
)

type WorkspaceService interface {
	LoadFile(ctx context.Context, name string, r io.Reader) (*models.Workspace, error)
	LoadQuery(ctx context.Context, query string) (*models.Workspace, error)
	Get(ctx context.Context, id uuid.UUID) (*models.Workspace, error)
	List(ctx context.Context) ([]models.Workspace, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type ClauseService interface {
	Generate(ctx context.Context, id uuid.UUID, params services.ClauseParams) (string, error)
}

type Handler struct {
	workspaceSrv  WorkspaceService
	clauseSrv     ClauseService
	previewRows   int
	maxUploadSize int64
}

func New(workspaceSrv WorkspaceService, clauseSrv ClauseService, previewRows int, maxUploadSize int64) *Handler {
	return &Handler{
		workspaceSrv:  workspaceSrv,
		clauseSrv:     clauseSrv,
		previewRows:   previewRows,
		maxUploadSize: maxUploadSize,
	}
}

// RegisterRoutes mounts the workspace endpoints on router.
func (h *Handler) RegisterRoutes(router *gin.RouterGroup) {
	router.GET("/workspaces", h.ListWorkspaces)
	router.POST("/workspaces", h.UploadWorkspace)
	router.POST("/workspaces/query", h.QueryWorkspace)
	router.GET("/workspaces/:id", h.GetWorkspace)
	router.DELETE("/workspaces/:id", h.DeleteWorkspace)
	router.POST("/workspaces/:id/clause", h.GenerateClause)
}
