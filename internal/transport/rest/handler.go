package rest

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/spigell/edumatch/internal/gateway"
	"github.com/spigell/edumatch/internal/logger"
)

// Processor runs a decoded gateway request.
type Processor interface {
	Handle(ctx context.Context, req *gateway.Request) (*gateway.Response, error)
}

type Handler struct {
	processor Processor
	logger    *zap.Logger
}

func NewHandler(processor Processor, log *zap.Logger) *Handler {
	return &Handler{
		processor: processor,
		logger:    logger.WithFields(log),
	}
}

// Analyze decodes the body, runs the requested operation and writes the
// success payload or the error envelope.
func (h *Handler) Analyze(c *gin.Context) {
	log := h.logger.With(zap.String(logger.FieldRequestID, GetRequestID(c)))

	var body map[string]any
	if err := c.ShouldBindJSON(&body); err != nil {
		log.Warn("decoding request body", zap.Error(err))
		RespondError(c, &gateway.ValidationError{Reason: "Invalid JSON body"})
		return
	}

	req, err := gateway.DecodeRequest(body)
	if err != nil {
		log.Warn("decoding request", zap.Error(err))
		RespondError(c, err)
		return
	}

	resp, err := h.processor.Handle(c.Request.Context(), req)
	if err != nil {
		log.Error("processing request", zap.String(logger.FieldOperation, req.Type), zap.Error(err))
		RespondError(c, err)
		return
	}

	RespondOK(c, resp)
}

// Preflight answers CORS preflight requests that reach the router.
func (h *Handler) Preflight(c *gin.Context) {
	c.Status(http.StatusOK)
}

func (h *Handler) Health(c *gin.Context) {
	c.String(http.StatusOK, "ok")
}
