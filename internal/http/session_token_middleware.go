package http

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"dog-personality-quiz/internal/service"
)

// SessionTokenMiddleware exige un token de sesión emitido para el :slug de la
// ruta. Si el servicio no tiene secreto, deja pasar todo.
func SessionTokenMiddleware(tokens *service.SessionTokenService) gin.HandlerFunc {
	return func(c *gin.Context) {
		if !tokens.Enabled() {
			c.Next()
			return
		}

		header := strings.TrimSpace(c.GetHeader("Authorization"))
		if header == "" || !strings.HasPrefix(strings.ToLower(header), "bearer ") {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "missing token"})
			c.Abort()
			return
		}

		token := strings.TrimSpace(header[len("Bearer "):])
		if err := tokens.Verify(token, c.Param("slug")); err != nil {
			msg := "invalid token"
			if errors.Is(err, service.ErrSessionTokenExpired) {
				msg = "token expired"
			}
			c.JSON(http.StatusUnauthorized, gin.H{"error": msg})
			c.Abort()
			return
		}
		c.Next()
	}
}
