package handlers

import (
	"net/http"
	"strconv"

	"tourdesk/internal/domain"
	"tourdesk/internal/domain/models"
	"tourdesk/internal/finance"
	"tourdesk/internal/repositories"
	"tourdesk/internal/utils"

	"github.com/gin-gonic/gin"
)

// SmsTemplateHandler manages reminder message templates. Built-in templates
// are read-only; operators add their own alongside them.
type SmsTemplateHandler struct {
	Repo repositories.TemplateRepository
}

func (h SmsTemplateHandler) List(c *gin.Context) {
	list, err := h.Repo.List()
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": list})
}

func templateID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		RespondError(c, http.StatusBadRequest, "invalid template id", nil)
		return 0, false
	}
	return id, true
}

func validateTemplateMessage(c *gin.Context, message string) bool {
	check := finance.ValidateMessage(message)
	if !check.Valid {
		RespondDomainError(c, domain.ValidationError{Field: "message", Msg: string(check.Faults[0])})
		return false
	}
	return true
}

func (h SmsTemplateHandler) Create(c *gin.Context) {
	var in models.SmsTemplate
	if !BindJSONOrError(c, &in) {
		return
	}
	if !validateTemplateMessage(c, in.Message) {
		return
	}
	in.Name = utils.NormalizeSpace(in.Name)
	in.BuiltIn = false

	id, err := h.Repo.Create(in)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	in.ID = id
	c.JSON(http.StatusCreated, gin.H{"data": in})
}

func (h SmsTemplateHandler) Update(c *gin.Context) {
	id, ok := templateID(c)
	if !ok {
		return
	}
	var in models.SmsTemplate
	if !BindJSONOrError(c, &in) {
		return
	}
	if !validateTemplateMessage(c, in.Message) {
		return
	}
	in.Name = utils.NormalizeSpace(in.Name)

	if err := h.Repo.Update(id, in); err != nil {
		RespondDomainError(c, err)
		return
	}
	in.ID = id
	c.JSON(http.StatusOK, gin.H{"data": in})
}

func (h SmsTemplateHandler) Delete(c *gin.Context) {
	id, ok := templateID(c)
	if !ok {
		return
	}
	if err := h.Repo.Delete(id); err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "template deleted"})
}
