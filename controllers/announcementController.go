package controllers

import (
	"net/http"
	"strings"

	"github.com/doug-martin/goqu/v9"
	"github.com/gin-gonic/gin"

	"github.com/ChurchSite/models"
	"github.com/ChurchSite/policy"
	"github.com/ChurchSite/repository"
)

// GetAnnouncements lists announcements newest first. Anonymous visitors only
// see the public ones; any authenticated user sees member-only records too.
func GetAnnouncements(c *gin.Context) {
	filters := policy.AnnouncementFilter(viewerFrom(c))

	announcements, err := repository.Announcements.List(c, filters...)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch announcements", "details": err.Error()})
		return
	}

	if announcements == nil {
		announcements = []models.Announcement{}
	}
	c.JSON(http.StatusOK, announcements)
}

func CreateAnnouncement(c *gin.Context) {
	user := c.MustGet("currentUser").(models.User)

	var req models.AnnouncementCreate
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	if strings.TrimSpace(req.Title) == "" || strings.TrimSpace(req.Content) == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Please provide title and content"})
		return
	}

	memberOnly := false
	if req.Member_Only != nil {
		memberOnly = *req.Member_Only
	}

	id, err := repository.Announcements.Insert(c, goqu.Record{
		"title":       req.Title,
		"content":     req.Content,
		"member_only": memberOnly,
		"created_by":  user.User_ID,
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create announcement", "details": err.Error()})
		return
	}

	announcement, _, err := repository.Announcements.GetByID(c, id)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load created announcement", "details": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, announcement)
}

func UpdateAnnouncement(c *gin.Context) {
	id, err := idParam(c, "id")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid announcement ID"})
		return
	}

	var req models.AnnouncementUpdate
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	changes := goqu.Record{}
	if req.Title != nil {
		if strings.TrimSpace(*req.Title) == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Title cannot be empty"})
			return
		}
		changes["title"] = *req.Title
	}
	if req.Content != nil {
		if strings.TrimSpace(*req.Content) == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Content cannot be empty"})
			return
		}
		changes["content"] = *req.Content
	}
	if req.Member_Only != nil {
		changes["member_only"] = *req.Member_Only
	}

	if len(changes) > 0 {
		found, err := repository.Announcements.Update(c, id, changes)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update announcement", "details": err.Error()})
			return
		}
		if !found {
			c.JSON(http.StatusNotFound, gin.H{"error": "Announcement not found"})
			return
		}
	}

	announcement, found, err := repository.Announcements.GetByID(c, id)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load announcement", "details": err.Error()})
		return
	}
	if !found {
		c.JSON(http.StatusNotFound, gin.H{"error": "Announcement not found"})
		return
	}

	c.JSON(http.StatusOK, announcement)
}

func DeleteAnnouncement(c *gin.Context) {
	id, err := idParam(c, "id")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid announcement ID"})
		return
	}

	found, err := repository.Announcements.Delete(c, id)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete announcement", "details": err.Error()})
		return
	}
	if !found {
		c.JSON(http.StatusNotFound, gin.H{"error": "Announcement not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Announcement deleted successfully"})
}
