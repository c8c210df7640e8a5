package handlers

import (
	"log"
	"net/http"

	"github.com/Siddesh7/vibe-coding-series/internal/models"
	"github.com/Siddesh7/vibe-coding-series/internal/response"
	"github.com/Siddesh7/vibe-coding-series/internal/storage"

	"github.com/gin-gonic/gin"
)

type CreateCommentRequest struct {
	Author  string `json:"author"`
	Message string `json:"message"`
}

// GetCommentsHandler lists every guestbook comment
// @Summary		List comments
// @Description	Returns all comments, newest first. No pagination.
// @Tags			comments
// @Produce		json
// @Success		200	{array}		models.Comment			"Comments, timestamp descending"
// @Failure		500	{object}	response.ErrorResponse	"Store failure"
// @Router			/api/comments [get]
func GetCommentsHandler(c *gin.Context) {
	comments := []models.Comment{}
	if err := storage.DB.Order("timestamp DESC").Find(&comments).Error; err != nil {
		log.Println("Error fetching comments:", err)
		c.JSON(http.StatusInternalServerError, response.ErrorResponse{Error: "Failed to fetch comments"})
		return
	}

	c.JSON(http.StatusOK, comments)
}

// CreateCommentHandler appends one guestbook comment
// @Summary		Create comment
// @Description	Persists a comment with a store-assigned timestamp. Any bind or persistence failure is a generic 500.
// @Tags			comments
// @Accept			json
// @Produce		json
// @Param			comment	body		CreateCommentRequest	true	"Comment body"
// @Success		200		{object}	models.Comment			"Created comment"
// @Failure		500		{object}	response.ErrorResponse	"Bind or store failure"
// @Router			/api/comments [post]
func CreateCommentHandler(c *gin.Context) {
	var req CreateCommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusInternalServerError, response.ErrorResponse{Error: "Failed to create comment"})
		return
	}

	comment := models.Comment{Author: req.Author, Message: req.Message}
	if err := storage.DB.Create(&comment).Error; err != nil {
		log.Println("Error creating comment:", err)
		c.JSON(http.StatusInternalServerError, response.ErrorResponse{Error: "Failed to create comment"})
		return
	}

	c.JSON(http.StatusOK, comment)
}
