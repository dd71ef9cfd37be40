package controllers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/ChurchSite/models"
	"github.com/ChurchSite/repository"
)

// normalizeSlug is applied to every slug arriving over the wire so that
// "/pages/About " and "/pages/about" address the same record.
func normalizeSlug(raw string) string {
	return strings.ToLower(strings.TrimSpace(raw))
}

func GetPages(c *gin.Context) {
	pages, err := repository.Pages.List(c)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch pages", "details": err.Error()})
		return
	}

	if pages == nil {
		pages = []models.Page{}
	}
	c.JSON(http.StatusOK, pages)
}

func GetPageBySlug(c *gin.Context) {
	slug := normalizeSlug(c.Param("slug"))

	page, found, err := repository.Pages.GetBySlug(c, slug)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch page", "details": err.Error()})
		return
	}
	if !found {
		c.JSON(http.StatusNotFound, gin.H{"error": "Page not found"})
		return
	}

	c.JSON(http.StatusOK, page)
}

// UpsertPage creates the page when the slug is unseen (201) or replaces its
// content fields when it exists (200). Either way exactly one record per
// slug exists afterwards.
func UpsertPage(c *gin.Context) {
	user := c.MustGet("currentUser").(models.User)

	slug := normalizeSlug(c.Param("slug"))
	if slug == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid page slug"})
		return
	}

	var req models.PageWrite
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	if strings.TrimSpace(req.Title) == "" || strings.TrimSpace(req.Content) == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Please provide title and content"})
		return
	}

	created, err := repository.Pages.Upsert(c, slug, req.Title, req.Content, user.User_ID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save page", "details": err.Error()})
		return
	}

	page, _, err := repository.Pages.GetBySlug(c, slug)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load saved page", "details": err.Error()})
		return
	}

	status := http.StatusOK
	if created {
		status = http.StatusCreated
	}
	c.JSON(status, page)
}

func DeletePage(c *gin.Context) {
	slug := normalizeSlug(c.Param("slug"))

	found, err := repository.Pages.DeleteBySlug(c, slug)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete page", "details": err.Error()})
		return
	}
	if !found {
		c.JSON(http.StatusNotFound, gin.H{"error": "Page not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Page deleted successfully"})
}
