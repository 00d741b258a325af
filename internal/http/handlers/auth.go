package handlers

import (
	"net/http"

	"tourdesk/internal/services"
	"tourdesk/internal/utils"

	"github.com/gin-gonic/gin"
)

// AuthHandler exposes operator login and registration.
type AuthHandler struct {
	Svc services.AuthService
}

type loginRequest struct {
	Login    string `json:"login"`
	Email    string `json:"email"`
	Username string `json:"username"`
	Password string `json:"password"`
}

func (r loginRequest) login() string {
	return utils.FirstNonEmpty(r.Login, r.Email, r.Username)
}

func (h AuthHandler) Login(c *gin.Context) {
	var req loginRequest
	if !BindJSONOrError(c, &req) {
		return
	}

	user, token, err := h.Svc.Login(req.login(), req.Password)
	if err != nil {
		RespondDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"data": gin.H{
			"token": token,
			"user":  user,
		},
	})
}

func (h AuthHandler) Register(c *gin.Context) {
	var req services.RegisterRequest
	if !BindJSONOrError(c, &req) {
		return
	}

	user, err := h.Svc.Register(req)
	if err != nil {
		RespondDomainError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"data": user})
}
