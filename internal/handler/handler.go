package handler

import (
	"gameface/web/internal/config"
	"gameface/web/internal/store"
	"gameface/web/internal/upload"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/sessions"
)

// Handler carries the dependencies the route handlers share.
type Handler struct {
	games    store.GameStore
	feedback store.FeedbackStore
	uploads  *upload.Saver
	sessions sessions.Store
	cfg      *config.Config
}

// New wires a Handler from its dependencies. The session store backing the
// flash messages is keyed by the configured secret.
func New(games store.GameStore, feedback store.FeedbackStore, uploads *upload.Saver, cfg *config.Config) *Handler {
	return &Handler{
		games:    games,
		feedback: feedback,
		uploads:  uploads,
		sessions: sessions.NewCookieStore([]byte(cfg.SecretKey)),
		cfg:      cfg,
	}
}

// Routes registers every application route on the given engine.
func (h *Handler) Routes(router *gin.Engine) {
	router.GET("/", h.Index)
	router.POST("/add_game", h.AddGame)
	router.GET("/edit_game/:id", h.EditGameForm)
	router.POST("/edit_game/:id", h.EditGame)
	router.GET("/delete_game/:id", h.DeleteGame)
	router.POST("/delete_game/:id", h.DeleteGame)
	router.POST("/add_feedback", h.AddFeedback)
	router.GET("/gift", h.ShowGift)
	router.GET("/gift/:id", h.ShowGift)
	router.POST("/gift/:id", h.AcknowledgeGift)
}
