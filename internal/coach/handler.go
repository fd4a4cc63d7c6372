package coach

import (
	"context"
	"errors"
	"net/http"

	"github.com/charmbracelet/log"
	"github.com/gin-gonic/gin"

	"PokerCoach/internal/game/table"
	"PokerCoach/internal/middleware"
)

type Handler struct {
	svc    *Service
	logger *log.Logger
}

func NewHandler(svc *Service, logger *log.Logger) *Handler {
	return &Handler{svc: svc, logger: logger}
}

func (h *Handler) Register(r gin.IRoutes) {
	r.POST("/gto_tip", h.GTOTip)
	r.POST("/analyze", h.Analyze)
}

// POST /gto_tip  body: GameStateInput
func (h *Handler) GTOTip(c *gin.Context) {
	logger := h.logger.With("request_id", middleware.RequestID(c))

	var in table.GameStateInput
	if err := c.ShouldBindJSON(&in); err != nil {
		logger.Error("Error generating GTO tip", "err", err)
		c.JSON(http.StatusInternalServerError, TipErrorResponse{Tip: tipErrorText})
		return
	}
	gs := in.Normalize()
	logger.Debug("received client data", "state", gs)

	// A client hanging up does not abort the backend call.
	tip, err := h.svc.GetTip(context.WithoutCancel(c.Request.Context()), gs)
	if err != nil {
		logger.Error("Error generating GTO tip", "err", err, "backend", errors.Is(err, ErrBackend))
		c.JSON(http.StatusInternalServerError, TipErrorResponse{Tip: tipErrorText})
		return
	}
	c.JSON(http.StatusOK, TipResponse{GTOTip: tip})
}

// POST /analyze  body: GameStateInput
func (h *Handler) Analyze(c *gin.Context) {
	var in table.GameStateInput
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, h.svc.Analyze(in.Normalize()))
}
