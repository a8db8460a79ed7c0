package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ferndale/nutritrack-backend/internal/logger"
	apperrors "github.com/ferndale/nutritrack-backend/internal/pkg/errors"
)

type APIError struct {
	Message string            `json:"message"`
	Code    string            `json:"code,omitempty"`
	Details map[string]string `json:"details,omitempty"`
}

type ErrorEnvelope struct {
	Error APIError `json:"error"`
}

func RespondError(c *gin.Context, status int, code string, err error) {
	msg := "unknown error"
	if err != nil {
		msg = err.Error()
	}
	c.JSON(status, ErrorEnvelope{
		Error: APIError{
			Message: msg,
			Code:    code,
		},
	})
}

func RespondOK(c *gin.Context, payload any) {
	c.JSON(http.StatusOK, payload)
}

func RespondCreated(c *gin.Context, payload any) {
	c.JSON(http.StatusCreated, payload)
}

func RespondNoContent(c *gin.Context) {
	c.Status(http.StatusNoContent)
}

// RespondServiceError maps service-layer errors onto the HTTP surface:
// validation and unresolvable names are 400, conflicts 409, missing
// resources 404, auth failures 401, everything else a logged 500.
func RespondServiceError(c *gin.Context, log *logger.Logger, err error) {
	if v, ok := apperrors.AsValidation(err); ok {
		c.JSON(http.StatusBadRequest, ErrorEnvelope{
			Error: APIError{
				Message: "validation failed",
				Code:    "invalid_input",
				Details: v.Fields,
			},
		})
		return
	}
	switch {
	case errors.Is(err, apperrors.ErrUnresolvableName):
		RespondError(c, http.StatusBadRequest, "unresolvable_name", err)
	case errors.Is(err, apperrors.ErrAlreadyExists):
		RespondError(c, http.StatusConflict, "already_exists", err)
	case errors.Is(err, apperrors.ErrNotFound):
		RespondError(c, http.StatusNotFound, "not_found", err)
	case errors.Is(err, apperrors.ErrUnauthorized):
		RespondError(c, http.StatusUnauthorized, "unauthorized", err)
	default:
		log.Error("Unhandled service error", "error", err)
		RespondError(c, http.StatusInternalServerError, "internal_error", err)
	}
}
