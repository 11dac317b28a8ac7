package main

import (
	"fmt"

	"gameface/web/internal/config"
	"gameface/web/internal/database"
	"gameface/web/internal/handler"
	"gameface/web/internal/store"
	"gameface/web/internal/upload"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		logrus.Fatalf("Unable to load configuration: %v", err)
	}

	db, err := database.Connect(cfg.DatabasePath)
	if err != nil {
		logrus.Fatalf("Failed to connect to database: %v", err)
	}

	uploads, err := upload.NewSaver(cfg.UploadDir)
	if err != nil {
		logrus.Fatalf("Failed to prepare upload directory: %v", err)
	}

	h := handler.New(store.NewGameStore(db), store.NewFeedbackStore(db), uploads, cfg)

	router := gin.Default()
	router.LoadHTMLGlob("web/templates/*.html")
	router.Static("/static/images", cfg.UploadDir)
	router.StaticFile("/static/style.css", "web/static/style.css")

	h.Routes(router)

	fmt.Printf("Server is running on :%s\n", cfg.Port)
	logrus.Fatal(router.Run("0.0.0.0:" + cfg.Port))
}
