package httpserver

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"kaikari-xpress/internal/domain"
)

func respondError(c *gin.Context, status int, message string) {
	c.JSON(status, gin.H{"message": message})
}

// respondServiceErr maps domain errors onto status codes the way every
// read handler needs it.
func respondServiceErr(c *gin.Context, err error) {
	if errors.Is(err, domain.ErrNotFound) {
		respondError(c, http.StatusNotFound, "not found")
		return
	}
	respondError(c, http.StatusInternalServerError, "internal error")
}
