package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"tempmail-api/internal/service"
)

const authClaimsKey = "auth_claims"

// RequireSession protege rutas de UI: sin una cookie de acceso válida
// redirige a /login. El gate no intenta refresh silencioso; eso es
// responsabilidad del cliente contra /api/auth/refresh.
func RequireSession(tokens *service.TokenService, cookies *SessionCookies) gin.HandlerFunc {
	return func(c *gin.Context) {
		access, ok := cookies.ReadAccess(c)
		if !ok {
			c.Redirect(http.StatusTemporaryRedirect, "/login")
			c.Abort()
			return
		}

		claims, err := tokens.VerifyAccess(access)
		if err != nil {
			c.Redirect(http.StatusTemporaryRedirect, "/login")
			c.Abort()
			return
		}

		c.Set(authClaimsKey, claims)
		c.Next()
	}
}

// GetSessionClaims obtiene los claims validados desde el contexto.
func GetSessionClaims(c *gin.Context) (service.Claims, bool) {
	val, ok := c.Get(authClaimsKey)
	if !ok {
		return service.Claims{}, false
	}
	claims, ok := val.(service.Claims)
	return claims, ok
}
