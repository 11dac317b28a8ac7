package handler

import (
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"gameface/web/internal/models"

	"github.com/gin-gonic/gin"
)

// ShowGift renders the donation page with the configured recipient and IBAN.
// With an id the page names the selected game; an unknown id shows the
// generic page.
func (h *Handler) ShowGift(c *gin.Context) {
	var game *models.Game
	if idStr := c.Param("id"); idStr != "" {
		if id, err := strconv.ParseUint(idStr, 10, 32); err == nil {
			if found, findErr := h.games.ByID(uint(id)); findErr == nil {
				game = found
			}
		}
	}

	c.HTML(http.StatusOK, "gift.html", gin.H{
		"Recipient": h.cfg.GiftRecipient,
		"IBAN":      h.cfg.GiftIBAN,
		"Game":      game,
		"Flashes":   h.consumeFlashes(c),
	})
}

// AcknowledgeGift accepts a posted IBAN for acknowledgement only. Nothing is
// persisted and no transfer takes place.
func (h *Handler) AcknowledgeGift(c *gin.Context) {
	iban := strings.TrimSpace(c.PostForm("iban"))
	if iban == "" {
		h.addFlash(c, "error", "An IBAN is required.")
	} else {
		h.addFlash(c, "success", "Thank you for your gift!")
	}
	c.Redirect(http.StatusFound, fmt.Sprintf("/gift/%s", c.Param("id")))
}
