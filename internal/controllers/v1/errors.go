package v1

import (
	"errors"
	"net/http"

	"github.com/PhilipTheBackendDeveloper/finance-backend/internal/models"
)

type httpError struct {
	Error string `json:"error" example:"there is no budget matching your query"`
}

// status returns the appropriate status for a database error
func status(err error) int {
	if errors.Is(err, models.ErrGeneral) {
		return http.StatusInternalServerError
	}

	if errors.Is(err, models.ErrResourceNotFound) {
		return http.StatusNotFound
	}

	return http.StatusBadRequest
}

var errMonthNotSetInQuery = errors.New("the month query parameter must be set")
