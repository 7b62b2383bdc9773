package middleware

import (
	"net/http"

	"github.com/eventsphere/server/internal/entity"
	"github.com/eventsphere/server/internal/service"
	"github.com/eventsphere/server/internal/session"
	"github.com/gin-gonic/gin"
)

// SessionCookie — имя cookie с идентификатором сессии
const SessionCookie = "session_id"

const userContextKey = "currentUser"

// SessionAuth разрешает cookie в пользователя и кладет его в контекст
// запроса. Сам по себе запросы не отклоняет, это делают guard-функции.
func SessionAuth(sessions session.Store, users service.UserService) gin.HandlerFunc {
	return func(c *gin.Context) {
		sessionID, err := c.Cookie(SessionCookie)
		if err != nil || sessionID == "" {
			c.Next()
			return
		}

		sess, err := sessions.Get(c.Request.Context(), sessionID)
		if err != nil {
			c.Next()
			return
		}

		user, err := users.GetUserByID(c.Request.Context(), sess.UserID)
		if err != nil {
			c.Next()
			return
		}

		c.Set(userContextKey, user)
		c.Next()
	}
}

// CurrentUser возвращает аутентифицированного пользователя запроса
func CurrentUser(c *gin.Context) (*entity.User, bool) {
	value, ok := c.Get(userContextKey)
	if !ok {
		return nil, false
	}
	user, ok := value.(*entity.User)
	return user, ok
}

// RequireAuth отклоняет запросы без действующей сессии
func RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		if _, ok := CurrentUser(c); !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"message": "Unauthorized",
				"code":    "unauthorized",
			})
			return
		}
		c.Next()
	}
}

// RequireEventManager пропускает только менеджеров мероприятий.
// Для анонимных запросов тоже отвечает 403, как и для чужой роли.
func RequireEventManager() gin.HandlerFunc {
	return func(c *gin.Context) {
		user, ok := CurrentUser(c)
		if !ok || user.Role != entity.RoleEventManager {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{
				"message": "Forbidden: requires event manager role",
				"code":    "forbidden",
			})
			return
		}
		c.Next()
	}
}
