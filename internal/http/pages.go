package http

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
)

// Las páginas del frontend real las renderiza la app de Next; estos handlers
// son placeholders mínimos para que el gate tenga rutas reales que proteger.
func pageHandler(title string) gin.HandlerFunc {
	body := fmt.Sprintf("<!doctype html><html><head><title>%s</title></head><body><h1>%s</h1></body></html>", title, title)
	return func(c *gin.Context) {
		c.Data(http.StatusOK, "text/html; charset=utf-8", []byte(body))
	}
}
