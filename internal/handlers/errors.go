package handlers

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	srvErrors "github.com/kubev2v/clause-builder/pkg/errors"
)

// writeError maps service errors to an HTTP status and writes { "error": ... }.
func writeError(c *gin.Context, err error, action string) {
	var maxBytesErr *http.MaxBytesError

	switch {
	case errors.As(err, &maxBytesErr):
		c.JSON(http.StatusRequestEntityTooLarge, gin.H{"error": fmt.Sprintf("file exceeds %d bytes", maxBytesErr.Limit)})
	case srvErrors.IsUserError(err):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case srvErrors.IsResourceNotFoundError(err):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case srvErrors.IsWarehouseError(err):
		c.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
	default:
		zap.S().Named("handlers").Errorw("failed to "+action, "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to " + action})
	}
}
