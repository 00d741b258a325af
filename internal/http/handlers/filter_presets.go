package handlers

import (
	"net/http"
	"strconv"

	"tourdesk/internal/finance"
	"tourdesk/internal/http/middleware"
	"tourdesk/internal/repositories"

	"github.com/gin-gonic/gin"
)

// FilterPresetHandler stores named filter sets per operator so a saved view
// survives across devices.
type FilterPresetHandler struct {
	Repo repositories.PresetRepository
}

func (h FilterPresetHandler) List(c *gin.Context) {
	userID := middleware.GetRequestContext(c).UserID
	list, err := h.Repo.ListByUser(userID)
	if err != nil {
		RespondDomainError(c, err)
		return
	}

	type presetView struct {
		ID      int64           `json:"id"`
		Name    string          `json:"name"`
		Filters finance.Filters `json:"filters"`
	}
	out := make([]presetView, 0, len(list))
	for _, p := range list {
		f, err := repositories.DecodeFilters(p)
		if err != nil {
			// A corrupt payload hides one preset, not the whole list.
			continue
		}
		out = append(out, presetView{ID: p.ID, Name: p.Name, Filters: f})
	}
	c.JSON(http.StatusOK, gin.H{"data": out})
}

type savePresetRequest struct {
	Name    string          `json:"name"`
	Filters finance.Filters `json:"filters"`
}

func (h FilterPresetHandler) Save(c *gin.Context) {
	var req savePresetRequest
	if !BindJSONOrError(c, &req) {
		return
	}

	userID := middleware.GetRequestContext(c).UserID
	id, err := h.Repo.Save(userID, req.Name, req.Filters)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"data": gin.H{"id": id, "name": req.Name}})
}

func (h FilterPresetHandler) Delete(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		RespondError(c, http.StatusBadRequest, "invalid preset id", nil)
		return
	}

	userID := middleware.GetRequestContext(c).UserID
	if err := h.Repo.Delete(userID, id); err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "preset deleted"})
}
