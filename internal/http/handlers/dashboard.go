package handlers

import (
	"net/http"

	"tourdesk/internal/services"

	"github.com/gin-gonic/gin"
)

// DashboardHandler serves the overview header and filtered summaries.
type DashboardHandler struct {
	Svc services.DashboardService
}

func (h DashboardHandler) Stats(c *gin.Context) {
	overview, err := h.Svc.GetOverview(c.Request.Context())
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": overview})
}

// Summary recomputes the client-side roll-up for an arbitrary filter.
func (h DashboardHandler) Summary(c *gin.Context) {
	f, err := parseFilters(c)
	if err != nil {
		RespondDomainError(c, err)
		return
	}

	summary, err := h.Svc.FilteredSummary(c.Request.Context(), f)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": summary})
}
