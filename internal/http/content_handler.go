package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"tempmail-api/internal/domain"
)

// ContentHandler sirve el contenido del dashboard.
type ContentHandler struct {
	logger *zap.Logger
}

func NewContentHandler(logger *zap.Logger) *ContentHandler {
	return &ContentHandler{logger: logger}
}

// Dashboard maneja GET /api/content/dashboard.
// Contenido de muestra para el inbox; reemplazar por la fuente real de mails.
func (h *ContentHandler) Dashboard(c *gin.Context) {
	payload := domain.DashboardContent{
		ActiveAddress: "welcome.wave@tempmail.dev",
		Domain:        "tempmail.dev",
		InboxCount:    6,
		Messages: []domain.MailMessage{
			{
				ID:        "1",
				FromName:  "Figma",
				FromEmail: "no-reply@figma.com",
				Subject:   "Your security code",
				Time:      "10:24 AM",
				Tag:       "Code",
				Body:      "Use the code 824193 to continue. If you didn't request this, please ignore this message.",
				Unread:    true,
			},
			{
				ID:        "2",
				FromName:  "GitService",
				FromEmail: "noreply@gitservice.dev",
				Subject:   "Verify your email address",
				Time:      "9:02 AM",
				Tag:       "Verify",
				Body:      "Click the link to verify your email address. If you didn't request this, ignore this email.",
				Unread:    true,
			},
		},
	}

	c.JSON(http.StatusOK, payload)
}
