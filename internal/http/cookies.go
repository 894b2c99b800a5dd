package http

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"tempmail-api/internal/service"
)

const (
	accessCookieName  = "access_token"
	refreshCookieName = "refresh_token"
)

// SessionCookies escribe y lee el par de cookies de sesión.
// Ambas cookies son http-only, SameSite=Lax y path "/"; Secure solo en
// producción. La rotación siempre reemite las dos juntas.
type SessionCookies struct {
	accessTTL  time.Duration
	refreshTTL time.Duration
	secure     bool
}

func NewSessionCookies(accessTTL, refreshTTL time.Duration, secure bool) *SessionCookies {
	return &SessionCookies{
		accessTTL:  accessTTL,
		refreshTTL: refreshTTL,
		secure:     secure,
	}
}

// Write setea access y refresh en la respuesta.
func (sc *SessionCookies) Write(c *gin.Context, pair service.TokenPair) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(accessCookieName, pair.AccessToken, int(sc.accessTTL.Seconds()), "/", "", sc.secure, true)
	c.SetCookie(refreshCookieName, pair.RefreshToken, int(sc.refreshTTL.Seconds()), "/", "", sc.secure, true)
}

// ReadAccess devuelve el access token de la request, si está presente.
func (sc *SessionCookies) ReadAccess(c *gin.Context) (string, bool) {
	return readCookie(c, accessCookieName)
}

// ReadRefresh devuelve el refresh token de la request, si está presente.
func (sc *SessionCookies) ReadRefresh(c *gin.Context) (string, bool) {
	return readCookie(c, refreshCookieName)
}

func readCookie(c *gin.Context, name string) (string, bool) {
	value, err := c.Cookie(name)
	if err != nil || value == "" {
		return "", false
	}
	return value, true
}
