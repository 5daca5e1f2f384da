package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"workhub/services/stats"
	"workhub/utils"
)

// StatsHandler serves the aggregated dashboard metrics.
type StatsHandler struct {
	Aggregator *stats.Aggregator
}

func NewStatsHandler(agg *stats.Aggregator) *StatsHandler {
	return &StatsHandler{Aggregator: agg}
}

func (h *StatsHandler) Get(c *gin.Context) {
	summary, err := h.Aggregator.Summarize()
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, summary)
}
