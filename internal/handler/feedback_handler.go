package handler

import (
	"net/http"
	"strings"

	"gameface/web/internal/models"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

// AddFeedback appends a visitor message. Messages that are empty after
// trimming are rejected without writing a row.
func (h *Handler) AddFeedback(c *gin.Context) {
	message := strings.TrimSpace(c.PostForm("message"))
	if message == "" {
		h.addFlash(c, "error", "Feedback cannot be empty.")
		c.Redirect(http.StatusFound, "/")
		return
	}

	if err := h.feedback.Create(&models.Feedback{Message: message}); err != nil {
		logrus.WithError(err).Error("Failed to save feedback")
		h.addFlash(c, "error", "The feedback could not be saved.")
		c.Redirect(http.StatusFound, "/")
		return
	}

	h.addFlash(c, "success", "Thanks for the feedback!")
	c.Redirect(http.StatusFound, "/")
}
