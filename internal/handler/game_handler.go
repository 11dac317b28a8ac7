package handler

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"gameface/web/internal/models"
	"gameface/web/internal/store"
	"gameface/web/internal/upload"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

// Index renders the catalogue: all games matching the optional search text
// ordered by name, the optionally selected game, and all feedback newest-first.
func (h *Handler) Index(c *gin.Context) {
	search := c.Query("search")

	games, err := h.games.Search(search)
	if err != nil {
		logrus.WithError(err).Error("Failed to list games")
	}

	// An absent or invalid game_id simply yields no selection.
	var selected *models.Game
	if idStr := c.Query("game_id"); idStr != "" {
		if id, parseErr := strconv.ParseUint(idStr, 10, 32); parseErr == nil {
			if game, findErr := h.games.ByID(uint(id)); findErr == nil {
				selected = game
			}
		}
	}

	feedbacks, err := h.feedback.ListNewestFirst()
	if err != nil {
		logrus.WithError(err).Error("Failed to list feedback")
	}

	c.HTML(http.StatusOK, "index.html", gin.H{
		"Games":     games,
		"Selected":  selected,
		"Feedbacks": feedbacks,
		"Search":    search,
		"Flashes":   h.consumeFlashes(c),
	})
}

// AddGame creates a game from a multipart form with an optional cover image.
func (h *Handler) AddGame(c *gin.Context) {
	name := strings.TrimSpace(c.PostForm("name"))
	if name == "" {
		h.addFlash(c, "error", "A game name is required.")
		c.Redirect(http.StatusFound, "/")
		return
	}

	game := models.Game{
		Name:          name,
		Story:         strings.TrimSpace(c.PostForm("story")),
		BestPlayers:   strings.TrimSpace(c.PostForm("best_players")),
		Company:       strings.TrimSpace(c.PostForm("company")),
		ImageFilename: upload.PlaceholderFilename,
	}

	if file, err := c.FormFile("image_file"); err == nil {
		stored, saveErr := h.uploads.Save(file)
		if saveErr != nil {
			if errors.Is(saveErr, upload.ErrDisallowedExtension) {
				h.addFlash(c, "error", "Only png, jpg, jpeg and gif images are accepted.")
			} else {
				logrus.WithError(saveErr).Error("Failed to save uploaded image")
				h.addFlash(c, "error", "The image could not be saved.")
			}
			c.Redirect(http.StatusFound, "/")
			return
		}
		game.ImageFilename = stored
		game.OriginalFilename = upload.SanitizeFilename(file.Filename)
	}

	if err := h.games.Create(&game); err != nil {
		if removeErr := h.uploads.Remove(game.ImageFilename); removeErr != nil {
			logrus.WithError(removeErr).Warn("Failed to remove orphaned cover image")
		}
		if errors.Is(err, store.ErrDuplicateName) {
			h.addFlash(c, "error", "A game with this name already exists.")
		} else {
			logrus.WithError(err).Error("Failed to create game")
			h.addFlash(c, "error", "The game could not be saved.")
		}
		c.Redirect(http.StatusFound, "/")
		return
	}

	h.addFlash(c, "success", "Game added successfully!")
	c.Redirect(http.StatusFound, fmt.Sprintf("/?game_id=%d", game.ID))
}

// EditGameForm renders the edit form for the identified game.
func (h *Handler) EditGameForm(c *gin.Context) {
	game, ok := h.gameFromParam(c)
	if !ok {
		return
	}

	c.HTML(http.StatusOK, "edit_game.html", gin.H{
		"Game":    game,
		"Flashes": h.consumeFlashes(c),
	})
}

// EditGame overwrites the stored row with the submitted fields. Blank fields
// overwrite existing values, except the name which must stay non-empty; the
// stored cover is retained unless a valid new image is supplied. A file that
// fails the extension check does not reject the edit.
func (h *Handler) EditGame(c *gin.Context) {
	game, ok := h.gameFromParam(c)
	if !ok {
		return
	}

	name := strings.TrimSpace(c.PostForm("name"))
	if name == "" {
		h.addFlash(c, "error", "A game name is required.")
		c.Redirect(http.StatusFound, fmt.Sprintf("/edit_game/%d", game.ID))
		return
	}

	game.Name = name
	game.Story = strings.TrimSpace(c.PostForm("story"))
	game.BestPlayers = strings.TrimSpace(c.PostForm("best_players"))
	game.Company = strings.TrimSpace(c.PostForm("company"))

	oldCover := game.ImageFilename
	newCover := ""
	if file, err := c.FormFile("image_file"); err == nil {
		stored, saveErr := h.uploads.Save(file)
		switch {
		case saveErr == nil:
			newCover = stored
			game.ImageFilename = stored
			game.OriginalFilename = upload.SanitizeFilename(file.Filename)
		case errors.Is(saveErr, upload.ErrDisallowedExtension):
			h.addFlash(c, "error", "Only png, jpg, jpeg and gif images are accepted; the existing cover was kept.")
		default:
			logrus.WithError(saveErr).Error("Failed to save uploaded image")
			h.addFlash(c, "error", "The image could not be saved; the existing cover was kept.")
		}
	}

	if err := h.games.Update(game); err != nil {
		if removeErr := h.uploads.Remove(newCover); removeErr != nil {
			logrus.WithError(removeErr).Warn("Failed to remove orphaned cover image")
		}
		if errors.Is(err, store.ErrDuplicateName) {
			h.addFlash(c, "error", "A game with this name already exists.")
		} else {
			logrus.WithError(err).Error("Failed to update game")
			h.addFlash(c, "error", "The game could not be updated.")
		}
		c.Redirect(http.StatusFound, fmt.Sprintf("/edit_game/%d", game.ID))
		return
	}

	if newCover != "" && oldCover != newCover {
		if removeErr := h.uploads.Remove(oldCover); removeErr != nil {
			logrus.WithError(removeErr).Warn("Failed to remove replaced cover image")
		}
	}

	h.addFlash(c, "success", "Game updated successfully!")
	c.Redirect(http.StatusFound, fmt.Sprintf("/?game_id=%d", game.ID))
}

// DeleteGame removes a game permanently.
func (h *Handler) DeleteGame(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		h.addFlash(c, "error", "Game not found.")
		c.Redirect(http.StatusFound, "/")
		return
	}

	if err := h.games.Delete(uint(id)); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			h.addFlash(c, "error", "Game not found.")
		} else {
			logrus.WithError(err).Error("Failed to delete game")
			h.addFlash(c, "error", "The game could not be deleted.")
		}
		c.Redirect(http.StatusFound, "/")
		return
	}

	h.addFlash(c, "success", "Game deleted.")
	c.Redirect(http.StatusFound, "/")
}

// gameFromParam resolves the :id path parameter to a stored game. On failure
// it flashes, redirects to the index and reports false.
func (h *Handler) gameFromParam(c *gin.Context) (*models.Game, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		h.addFlash(c, "error", "Game not found.")
		c.Redirect(http.StatusFound, "/")
		return nil, false
	}

	game, err := h.games.ByID(uint(id))
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			h.addFlash(c, "error", "Game not found.")
		} else {
			logrus.WithError(err).Error("Failed to load game")
			h.addFlash(c, "error", "The game could not be loaded.")
		}
		c.Redirect(http.StatusFound, "/")
		return nil, false
	}

	return game, true
}
