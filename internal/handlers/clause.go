package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	v1 "github.com/kubev2v/clause-builder/api/v1"
	"github.com/kubev2v/clause-builder/internal/services"
)

// GenerateClause builds the filtered query for a column of the workspace
// (POST /workspaces/{id}/clause)
func (h *Handler) GenerateClause(c *gin.Context) {
	id, ok := workspaceID(c)
	if !ok {
		return
	}

	var req v1.ClauseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	params := services.ClauseParams{Column: req.Column}
	if req.Operator != nil {
		params.Operator = *req.Operator
	}
	if req.BaseQuery != nil {
		params.BaseQuery = *req.BaseQuery
	}

	sql, err := h.clauseSrv.Generate(c.Request.Context(), id, params)
	if err != nil {
		writeError(c, err, "generate clause")
		return
	}

	c.JSON(http.StatusOK, v1.ClauseResponse{Sql: sql})
}
