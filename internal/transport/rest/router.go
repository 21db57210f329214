// Package rest exposes the gateway over HTTP.
package rest

import (
	"net/http"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

const (
	RootPath    = "/"
	AnalyzePath = "/analyze-answer"
	HealthPath  = "/healthz"
)

// AllowedHeaders are the request headers browsers may send cross-origin.
var AllowedHeaders = []string{"authorization", "x-client-info", "apikey", "content-type"}

// NewRouter wires the handler into a gin engine.
func NewRouter(h *Handler, log *zap.Logger) *gin.Engine {
	router := gin.New()

	router.Use(
		RequestID(),
		RequestLogger(log),
		gin.Recovery(),
		cors.New(cors.Config{
			AllowAllOrigins:           true,
			AllowMethods:              []string{http.MethodGet, http.MethodPost, http.MethodOptions},
			AllowHeaders:              AllowedHeaders,
			OptionsResponseStatusCode: http.StatusOK,
		}),
	)

	for _, path := range []string{RootPath, AnalyzePath} {
		router.POST(path, h.Analyze)
		router.OPTIONS(path, h.Preflight)
	}
	router.GET(HealthPath, h.Health)

	return router
}
