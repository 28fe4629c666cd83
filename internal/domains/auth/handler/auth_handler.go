package handler

import (
	"crypto/subtle"
	"net/http"

	"antiques-backend/internal/shared/response"
	"antiques-backend/pkg/jwt"

	"github.com/gin-gonic/gin"
)

// AuthHandler implements the demo admin login: a single shared password
// exchanged for a short-lived token. This is intentionally not a real user
// system; hardening is out of scope.
type AuthHandler struct {
	adminPassword string
	jwtManager    *jwt.Manager
}

func NewAuthHandler(adminPassword string, jwtManager *jwt.Manager) *AuthHandler {
	return &AuthHandler{adminPassword: adminPassword, jwtManager: jwtManager}
}

type loginRequest struct {
	Password string `json:"password"`
}

// Login handles POST /api/auth/login.
func (h *AuthHandler) Login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	if subtle.ConstantTimeCompare([]byte(req.Password), []byte(h.adminPassword)) != 1 {
		response.Unauthorized(c, "Invalid password")
		return
	}

	token, expiresAt, err := h.jwtManager.GenerateAdminToken()
	if err != nil {
		response.InternalServerError(c, "Failed to issue token")
		return
	}

	response.OK(c, http.StatusOK, gin.H{
		"token":     token,
		"expiresAt": expiresAt,
	})
}

// Verify handles GET /api/auth/verify, behind the auth middleware.
func (h *AuthHandler) Verify(c *gin.Context) {
	response.OK(c, http.StatusOK, gin.H{
		"role":  c.GetString("role"),
		"valid": true,
	})
}
