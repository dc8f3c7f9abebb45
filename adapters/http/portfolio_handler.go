package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	snapshotUC "github.com/Autum7899/My-Portfolio/internal/usecase/snapshot"
	"github.com/Autum7899/My-Portfolio/pkg/logger"
)

type PortfolioHandler struct {
	snapshotUseCase *snapshotUC.SnapshotUseCase
	logger          logger.Logger
}

func NewPortfolioHandler(snapshotUseCase *snapshotUC.SnapshotUseCase, log logger.Logger) *PortfolioHandler {
	return &PortfolioHandler{
		snapshotUseCase: snapshotUseCase,
		logger:          log,
	}
}

// GetPortfolio serves the full public snapshot. The payload is already
// encoded by the use case so cache hits skip marshalling entirely.
func (h *PortfolioHandler) GetPortfolio(c *gin.Context) {
	payload, err := h.snapshotUseCase.Execute(c.Request.Context())
	if err != nil {
		c.Error(err)
		return
	}
	c.Data(http.StatusOK, "application/json; charset=utf-8", payload)
}
