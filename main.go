package main

import (
	"fmt"
	"log"
	"os"

	_ "github.com/Siddesh7/vibe-coding-series/docs"
	"github.com/Siddesh7/vibe-coding-series/internal/handlers"
	"github.com/Siddesh7/vibe-coding-series/internal/models"
	"github.com/Siddesh7/vibe-coding-series/internal/sheets"
	"github.com/Siddesh7/vibe-coding-series/internal/storage"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// @Title	vibe-coding-series API
func main() {
	key := os.Getenv("ENV_CHECK")
	if key == "" {
		fmt.Println("Loading .env")
		if err := godotenv.Load(); err != nil {
			log.Fatal("Error loading .env")
		}
	}

	storage.ConnectDatabase()

	if err := storage.DB.AutoMigrate(&models.Comment{}); err != nil {
		log.Fatal("Migration error... ", err.Error())
	}

	storage.InitRedis()

	sheetsClient, err := sheets.NewClientFromEnv()
	if err != nil {
		log.Println("Sheets source disabled:", err)
	} else {
		handlers.Sheets = sheetsClient
	}

	r := gin.Default()

	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
	}))

	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	api := r.Group("/api")
	{
		api.GET("/streams", handlers.GetStreamsHandler)
		api.GET("/streams/schedule", handlers.GetScheduleHandler)
		api.GET("/comments", handlers.GetCommentsHandler)
		api.POST("/comments", handlers.CreateCommentHandler)
		api.GET("/projects", handlers.GetProjectsHandler)
		api.GET("/projects/:id", handlers.GetProjectHandler)
		api.GET("/ideas", handlers.GetIdeasHandler)
	}

	addr := ":8080"
	if port := os.Getenv("PORT"); port != "" {
		addr = ":" + port
	}

	if err := r.Run(addr); err != nil {
		log.Fatal("Server start error...", err.Error())
	}
}
