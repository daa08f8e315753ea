package api

import (
	"errors"
	"net/http"

	"github.com/Domenick1991/airinventory/internal/domain"
	"github.com/gin-gonic/gin"
)

// writeError maps domain failures onto HTTP status codes.
func writeError(c *gin.Context, err error) {
	status := http.StatusInternalServerError
	switch {
	case errors.Is(err, domain.ErrNotFound), errors.Is(err, domain.ErrSeatNotFound):
		status = http.StatusNotFound
	case errors.Is(err, domain.ErrValidation), errors.Is(err, domain.ErrInvalidClassMapping):
		status = http.StatusBadRequest
	case errors.Is(err, domain.ErrNoSeatAvailable),
		errors.Is(err, domain.ErrSeatAlreadyReserved),
		errors.Is(err, domain.ErrDuplicateIdentity),
		errors.Is(err, domain.ErrInvalidTransition):
		status = http.StatusConflict
	}
	c.JSON(status, gin.H{"error": err.Error()})
}
