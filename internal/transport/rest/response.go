package rest

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/spigell/edumatch/internal/gateway"
)

// ErrorEnvelope is the body of every failed request.
type ErrorEnvelope struct {
	Error   string `json:"error"`
	Status  string `json:"status"`
	Message string `json:"message"`
}

func RespondError(c *gin.Context, err error) {
	failure := gateway.Describe(err)
	c.JSON(failure.HTTPStatus, ErrorEnvelope{
		Error:   failure.Error,
		Status:  gateway.StatusError,
		Message: failure.Message,
	})
}

func RespondOK(c *gin.Context, payload any) {
	c.JSON(http.StatusOK, payload)
}
