package v1

import (
	"errors"
	"net/http"

	"github.com/james997788/monyfun/internal/advice"
	"github.com/james997788/monyfun/internal/models"
)

type httpError struct {
	Error string `json:"error" example:"the amount must be larger than zero"`
}

// status returns the appropriate HTTP status for a domain error
func status(err error) int {
	if errors.Is(err, models.ErrGeneral) {
		return http.StatusInternalServerError
	}

	if errors.Is(err, models.ErrResourceNotFound) {
		return http.StatusNotFound
	}

	if errors.Is(err, advice.ErrUpstream) || errors.Is(err, advice.ErrEmptyResponse) {
		return http.StatusBadGateway
	}

	if errors.Is(err, advice.ErrNoAPIKey) {
		return http.StatusServiceUnavailable
	}

	return http.StatusBadRequest
}
