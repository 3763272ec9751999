package handlers

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	v1 "github.com/kubev2v/clause-builder/api/v1"
)

// ListWorkspaces returns a summary of every workspace
// (GET /workspaces)
func (h *Handler) ListWorkspaces(c *gin.Context) {
	list, err := h.workspaceSrv.List(c.Request.Context())
	if err != nil {
		writeError(c, err, "list workspaces")
		return
	}
	c.JSON(http.StatusOK, v1.NewWorkspaceList(list))
}

// UploadWorkspace parses the multipart "file" field into a new workspace
// (POST /workspaces)
func (h *Handler) UploadWorkspace(c *gin.Context) {
	if c.Request.ContentLength > h.maxUploadSize {
		writeError(c, &http.MaxBytesError{Limit: h.maxUploadSize}, "upload file")
		return
	}
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, h.maxUploadSize)

	fh, err := c.FormFile("file")
	if err != nil {
		var maxBytesErr *http.MaxBytesError
		if errors.As(err, &maxBytesErr) {
			writeError(c, err, "upload file")
			return
		}
		c.JSON(http.StatusBadRequest, gin.H{"error": "file is required"})
		return
	}

	f, err := fh.Open()
	if err != nil {
		writeError(c, err, "open uploaded file")
		return
	}
	defer f.Close()

	ws, err := h.workspaceSrv.LoadFile(c.Request.Context(), fh.Filename, f)
	if err != nil {
		writeError(c, err, "load file")
		return
	}

	c.JSON(http.StatusCreated, v1.NewWorkspace(*ws, h.previewRows))
}

// QueryWorkspace runs the source query on the warehouse and loads the result
// (POST /workspaces/query)
func (h *Handler) QueryWorkspace(c *gin.Context) {
	var req v1.WorkspaceQueryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	if strings.TrimSpace(req.Query) == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "query is required"})
		return
	}

	ws, err := h.workspaceSrv.LoadQuery(c.Request.Context(), req.Query)
	if err != nil {
		writeError(c, err, "run source query")
		return
	}

	c.JSON(http.StatusCreated, v1.NewWorkspace(*ws, h.previewRows))
}

// GetWorkspace returns the header and a preview of the workspace table
// (GET /workspaces/{id})
func (h *Handler) GetWorkspace(c *gin.Context) {
	id, ok := workspaceID(c)
	if !ok {
		return
	}

	ws, err := h.workspaceSrv.Get(c.Request.Context(), id)
	if err != nil {
		writeError(c, err, "get workspace")
		return
	}

	c.JSON(http.StatusOK, v1.NewWorkspace(*ws, h.previewRows))
}

// (DELETE /workspaces/{id})
func (h *Handler) DeleteWorkspace(c *gin.Context) {
	id, ok := workspaceID(c)
	if !ok {
		return
	}

	if err := h.workspaceSrv.Delete(c.Request.Context(), id); err != nil {
		writeError(c, err, "delete workspace")
		return
	}

	c.Status(http.StatusNoContent)
}

func workspaceID(c *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid workspace id"})
		return uuid.Nil, false
	}
	return id, true
}
