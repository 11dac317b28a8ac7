package handler

import (
	"encoding/gob"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

const flashSessionName = "gameface_flash"

// Flash is a one-time status message rendered on the next page.
type Flash struct {
	Category string // "success" or "error"
	Message  string
}

func init() {
	gob.Register(Flash{})
}

func (h *Handler) addFlash(c *gin.Context, category, message string) {
	session, _ := h.sessions.Get(c.Request, flashSessionName)
	session.AddFlash(Flash{Category: category, Message: message})
	if err := session.Save(c.Request, c.Writer); err != nil {
		logrus.WithError(err).Warn("Failed to save flash session")
	}
}

// consumeFlashes returns the pending flashes and clears them from the session.
func (h *Handler) consumeFlashes(c *gin.Context) []Flash {
	session, _ := h.sessions.Get(c.Request, flashSessionName)
	raw := session.Flashes()
	if len(raw) > 0 {
		if err := session.Save(c.Request, c.Writer); err != nil {
			logrus.WithError(err).Warn("Failed to clear flash session")
		}
	}

	flashes := make([]Flash, 0, len(raw))
	for _, entry := range raw {
		if flash, ok := entry.(Flash); ok {
			flashes = append(flashes, flash)
		}
	}
	return flashes
}
