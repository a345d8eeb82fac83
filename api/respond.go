package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type messageResponse struct {
	Message string `json:"message"`
}

type errorResponse struct {
	Error string `json:"error"`
}

type validationResponse struct {
	Errors []FieldError `json:"errors"`
}

func validationFailed(c *gin.Context, errs []FieldError) {
	c.JSON(http.StatusBadRequest, validationResponse{Errors: errs})
}

func badRequest(c *gin.Context, msg string) {
	c.JSON(http.StatusBadRequest, errorResponse{Error: msg})
}

func notFound(c *gin.Context, msg string) {
	c.JSON(http.StatusNotFound, errorResponse{Error: msg})
}

// serverError logs the real failure and answers with a generic body.
// Internal detail never reaches the caller.
func (h *Handler) serverError(c *gin.Context, op string, err error) {
	h.logger.Error(op,
		zap.Error(err),
		zap.String("path", c.FullPath()),
		zap.String("request_id", c.GetString(requestIDKey)),
	)
	c.JSON(http.StatusInternalServerError, errorResponse{Error: "internal server error"})
}
