package transport

import (
	"net/http"

	"github.com/eventsphere/server/internal/service"
	"github.com/eventsphere/server/internal/session"
	"github.com/eventsphere/server/internal/transport/middleware"
	"github.com/gin-gonic/gin"
)

type AuthHandler struct {
	userService  service.UserService
	sessions     session.Store
	cookieMaxAge int
	cookieSecure bool
}

func NewAuthHandler(userService service.UserService, sessions session.Store, cookieMaxAge int, cookieSecure bool) *AuthHandler {
	return &AuthHandler{
		userService:  userService,
		sessions:     sessions,
		cookieMaxAge: cookieMaxAge,
		cookieSecure: cookieSecure,
	}
}

// LoginRequest представляет запрос на вход
type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondValidationError(c, err)
		return
	}

	user, err := h.userService.Authenticate(c.Request.Context(), req.Username, req.Password)
	if err != nil {
		respondError(c, err)
		return
	}

	sess, err := h.sessions.Create(c.Request.Context(), user.ID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.SetCookie(middleware.SessionCookie, sess.ID, h.cookieMaxAge, "/", "", h.cookieSecure, true)
	c.JSON(http.StatusOK, user)
}

func (h *AuthHandler) Logout(c *gin.Context) {
	if sessionID, err := c.Cookie(middleware.SessionCookie); err == nil && sessionID != "" {
		// Отсутствие сессии на этом этапе не ошибка
		_ = h.sessions.Delete(c.Request.Context(), sessionID)
	}

	c.SetCookie(middleware.SessionCookie, "", -1, "/", "", h.cookieSecure, true)
	c.JSON(http.StatusOK, gin.H{"message": "Logged out successfully"})
}

func (h *AuthHandler) Session(c *gin.Context) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Message: "Not authenticated", Code: "unauthorized"})
		return
	}
	c.JSON(http.StatusOK, user)
}
