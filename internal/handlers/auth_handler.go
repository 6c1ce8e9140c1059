package handlers

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/lacantina/turnos-api/internal/config"
	"github.com/lacantina/turnos-api/internal/httperr"
	"github.com/lacantina/turnos-api/internal/invites"
	"github.com/lacantina/turnos-api/internal/models"
	"github.com/lacantina/turnos-api/internal/timezone"
)

// TokenConsumer spends a single-use invitation token.
type TokenConsumer interface {
	Consume(ctx context.Context, token string) (string, error)
}

type AuthHandler struct {
	db     *gorm.DB
	config *config.Config
	tokens TokenConsumer
}

func NewAuthHandler(db *gorm.DB, cfg *config.Config, tokens TokenConsumer) *AuthHandler {
	return &AuthHandler{db: db, config: cfg, tokens: tokens}
}

// --------- Requests ---------

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type AcceptInviteRequest struct {
	Token    string `json:"token" binding:"required"`
	Password string `json:"password" binding:"required,min=6"`
}

// --------- Handlers ---------

func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid_request",
			"details": err.Error(),
		})
		return
	}

	email := strings.ToLower(strings.TrimSpace(req.Email))

	var profile models.Profile
	if err := h.db.Where("email = ?", email).First(&profile).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			httperr.Unauthorized(c, "invalid_credentials", "Email o contraseña incorrectos.")
			return
		}
		httperr.Internal(c, "internal_error", "Error interno.")
		return
	}

	if profile.PasswordHash == "" {
		httperr.Unauthorized(c, "invite_pending", "La invitación todavía no fue aceptada.")
		return
	}

	if err := bcrypt.CompareHashAndPassword([]byte(profile.PasswordHash), []byte(req.Password)); err != nil {
		httperr.Unauthorized(c, "invalid_credentials", "Email o contraseña incorrectos.")
		return
	}

	token, err := h.generateToken(&profile)
	if err != nil {
		httperr.Internal(c, "failed_to_generate_token", "Error al generar el token.")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"user":  profilePayload(&profile),
		"token": token,
	})
}

// AcceptInvite spends the invitation token and sets the first password.
func (h *AuthHandler) AcceptInvite(c *gin.Context) {
	var req AcceptInviteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid_request",
			"details": err.Error(),
		})
		return
	}

	profileID, err := h.tokens.Consume(c.Request.Context(), req.Token)
	if err != nil {
		if errors.Is(err, invites.ErrTokenNotFound) {
			httperr.BadRequest(c, "invalid_token", "La invitación no existe o venció.")
			return
		}
		httperr.Internal(c, "internal_error", "Error interno.")
		return
	}

	var profile models.Profile
	if err := h.db.First(&profile, "id = ?", profileID).Error; err != nil {
		httperr.Internal(c, "profile_not_found", "Perfil no encontrado.")
		return
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		httperr.Internal(c, "failed_to_hash_password", "Error al guardar la contraseña.")
		return
	}

	now := timezone.Now()
	profile.PasswordHash = string(hashed)
	profile.InviteAcceptedAt = &now

	if err := h.db.Save(&profile).Error; err != nil {
		httperr.Internal(c, "failed_to_save_profile", "Error al guardar el perfil.")
		return
	}

	token, err := h.generateToken(&profile)
	if err != nil {
		httperr.Internal(c, "failed_to_generate_token", "Error al generar el token.")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"user":  profilePayload(&profile),
		"token": token,
	})
}

// --------- JWT ---------

func (h *AuthHandler) generateToken(profile *models.Profile) (string, error) {
	claims := jwt.MapClaims{
		"sub":  profile.ID,
		"role": profile.Role,
		"exp":  time.Now().Add(24 * time.Hour).Unix(),
		"iat":  time.Now().Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(h.config.JWTSecret))
}

func profilePayload(p *models.Profile) gin.H {
	return gin.H{
		"id":        p.ID,
		"full_name": p.FullName,
		"email":     p.Email,
		"role":      p.Role,
		"job_role":  p.JobRole,
	}
}
