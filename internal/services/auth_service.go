package services

import (
	"strings"
	"time"

	"tourdesk/internal/domain"
	"tourdesk/internal/domain/models"
	"tourdesk/internal/repositories"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
)

// AuthService handles dashboard operator login and token verification.
type AuthService struct {
	Users    repositories.UserRepository
	Secret   []byte
	TokenTTL time.Duration
}

func (s AuthService) ttl() time.Duration {
	if s.TokenTTL > 0 {
		return s.TokenTTL
	}
	return 24 * time.Hour
}

// Login verifies credentials and issues a signed token.
func (s AuthService) Login(login, password string) (models.User, string, error) {
	user, hash, err := s.Users.GetByLogin(login)
	if err != nil {
		if domain.IsNotFound(err) {
			return models.User{}, "", domain.ValidationError{Msg: "invalid login or password"}
		}
		return models.User{}, "", err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)); err != nil {
		return models.User{}, "", domain.ValidationError{Msg: "invalid login or password"}
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"user_id": user.ID,
		"role":    user.Role,
		"exp":     time.Now().Add(s.ttl()).Unix(),
	})
	signed, err := token.SignedString(s.Secret)
	if err != nil {
		return models.User{}, "", domain.InternalError{Msg: "sign token", Err: err}
	}
	return user, signed, nil
}

// RegisterRequest carries a new operator account.
type RegisterRequest struct {
	Name     string `json:"name"`
	Username string `json:"username"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
	Password string `json:"password"`
}

func (s AuthService) Register(req RegisterRequest) (models.User, error) {
	if strings.TrimSpace(req.Email) == "" || strings.TrimSpace(req.Username) == "" {
		return models.User{}, domain.ValidationError{Msg: "email and username are required"}
	}
	if len(req.Password) < 8 {
		return models.User{}, domain.ValidationError{Field: "password", Msg: "must be at least 8 characters"}
	}

	taken, err := s.Users.Exists(req.Email, req.Username)
	if err != nil {
		return models.User{}, err
	}
	if taken {
		return models.User{}, domain.ConflictError{Resource: "user", Msg: "email or username already registered"}
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return models.User{}, domain.InternalError{Msg: "hash password", Err: err}
	}

	user := models.User{
		Name:     req.Name,
		Username: req.Username,
		Email:    req.Email,
		Phone:    req.Phone,
		Role:     "operator",
		Status:   "active",
	}
	id, err := s.Users.Create(user, string(hash))
	if err != nil {
		return models.User{}, err
	}
	user.ID = id
	return user, nil
}

// ParseToken validates a bearer token and extracts the request context.
func (s AuthService) ParseToken(tokenString string) (domain.RequestContext, error) {
	token, err := jwt.Parse(tokenString, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}
		return s.Secret, nil
	})
	if err != nil || !token.Valid {
		return domain.RequestContext{}, domain.ValidationError{Msg: "invalid or expired token", Err: err}
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return domain.RequestContext{}, domain.ValidationError{Msg: "invalid token claims"}
	}

	var rc domain.RequestContext
	if v, ok := claims["user_id"].(float64); ok {
		rc.UserID = int64(v)
	}
	if v, ok := claims["role"].(string); ok {
		rc.Role = v
	}
	return rc, nil
}
