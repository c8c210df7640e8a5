package handlers

import (
	"net/http"
	"os"
	"strconv"

	"github.com/Siddesh7/vibe-coding-series/internal/projects"
	"github.com/Siddesh7/vibe-coding-series/internal/response"

	"github.com/gin-gonic/gin"
)

// GetProjectsHandler lists the static project catalog
// @Summary		List projects
// @Tags			projects
// @Produce		json
// @Success		200	{array}	projects.Project	"Projects in id order"
// @Router			/api/projects [get]
func GetProjectsHandler(c *gin.Context) {
	c.JSON(http.StatusOK, projects.All())
}

// GetProjectHandler returns one project detail page
// @Summary		Project detail
// @Tags			projects
// @Produce		json
// @Param			id	path		int						true	"Project id"
// @Success		200	{object}	projects.Project		"Project detail"
// @Failure		404	{object}	response.ErrorResponse	"Unknown project"
// @Router			/api/projects/{id} [get]
func GetProjectHandler(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, response.ErrorResponse{Error: "Project not found"})
		return
	}

	project, ok := projects.ProjectByID(id)
	if !ok {
		c.JSON(http.StatusNotFound, response.ErrorResponse{Error: "Project not found"})
		return
	}

	c.JSON(http.StatusOK, project)
}

// GetIdeasHandler returns the configured series and its idea list
// @Summary		Series idea list
// @Description	The landing page variant is picked by the PROJECT_SERIES environment variable; unknown values fall back to the default series
// @Tags			projects
// @Produce		json
// @Success		200	{object}	projects.Series	"Configured series"
// @Router			/api/ideas [get]
func GetIdeasHandler(c *gin.Context) {
	if s, ok := projects.SeriesBySlug(os.Getenv("PROJECT_SERIES")); ok {
		c.JSON(http.StatusOK, s)
		return
	}
	c.JSON(http.StatusOK, projects.DefaultSeries())
}
