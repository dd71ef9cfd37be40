package controllers

import (
	"errors"
	"log"
	"net/http"
	"strings"

	"github.com/doug-martin/goqu/v9"
	"github.com/gin-gonic/gin"

	"github.com/ChurchSite/models"
	"github.com/ChurchSite/repository"
	"github.com/ChurchSite/services"
)

// GetSermons lists sermons by sermon date, newest first.
func GetSermons(c *gin.Context) {
	sermons, err := repository.Sermons.List(c)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch sermons", "details": err.Error()})
		return
	}

	if sermons == nil {
		sermons = []models.Sermon{}
	}
	c.JSON(http.StatusOK, sermons)
}

func GetSermon(c *gin.Context) {
	id, err := idParam(c, "id")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid sermon ID"})
		return
	}

	sermon, found, err := repository.Sermons.GetByID(c, id)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch sermon", "details": err.Error()})
		return
	}
	if !found {
		c.JSON(http.StatusNotFound, gin.H{"error": "Sermon not found"})
		return
	}

	c.JSON(http.StatusOK, sermon)
}

// CreateSermon is the one operation that couples a filesystem write to a
// database write. Field validation runs before the file leaves the request
// buffer, and once the file is staged every failure path discards it again;
// the database must never gain a record without a file or the disk a file
// without a record.
func CreateSermon(c *gin.Context) {
	user := c.MustGet("currentUser").(models.User)

	title := strings.TrimSpace(c.PostForm("title"))
	description := strings.TrimSpace(c.PostForm("description"))
	speaker := strings.TrimSpace(c.PostForm("speaker"))
	dateStr := strings.TrimSpace(c.PostForm("date"))
	fileType := strings.TrimSpace(c.PostForm("fileType"))

	if title == "" || speaker == "" || dateStr == "" || fileType == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Please provide title, speaker, date, and fileType"})
		return
	}

	date, err := parseDate(dateStr)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	// The declared kind is checked independently of the MIME allow-list; a
	// forged fileType field must fail before anything touches the disk.
	if !models.MediaKinds[fileType] {
		c.JSON(http.StatusBadRequest, gin.H{"error": "File type must be either 'audio' or 'video'"})
		return
	}

	file, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Please upload a sermon file"})
		return
	}

	staged, err := services.Uploads().Stage("file", file)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrPayloadTooLarge):
			c.JSON(http.StatusRequestEntityTooLarge, gin.H{"error": err.Error()})
		case errors.Is(err, services.ErrUnsupportedMediaType):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to store sermon file", "details": err.Error()})
		}
		return
	}
	defer staged.Discard()

	record := goqu.Record{
		"title":       title,
		"speaker":     speaker,
		"sermon_date": date,
		"file_url":    staged.Ref,
		"file_type":   fileType,
		"created_by":  user.User_ID,
	}
	if description != "" {
		record["description"] = description
	}

	id, err := repository.Sermons.Insert(c, record)
	if err != nil {
		// The deferred Discard removes the staged file before this error
		// reaches the caller.
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create sermon", "details": err.Error()})
		return
	}
	staged.Commit()

	sermon, _, err := repository.Sermons.GetByID(c, id)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load created sermon", "details": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, sermon)
}

// UpdateSermon mutates title, description, speaker and date only. The media
// reference is fixed at creation; replacing a recording is delete+recreate.
func UpdateSermon(c *gin.Context) {
	id, err := idParam(c, "id")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid sermon ID"})
		return
	}

	var req models.SermonUpdate
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	if req.File_Url != nil || req.File_Type != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "fileUrl and fileType cannot be changed after creation"})
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
	if req.Description != nil {
		changes["description"] = *req.Description
	}
	if req.Speaker != nil {
		if strings.TrimSpace(*req.Speaker) == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Speaker cannot be empty"})
			return
		}
		changes["speaker"] = *req.Speaker
	}
	if req.Date != nil {
		date, err := parseDate(*req.Date)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		changes["sermon_date"] = date
	}

	if len(changes) > 0 {
		found, err := repository.Sermons.Update(c, id, changes)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update sermon", "details": err.Error()})
			return
		}
		if !found {
			c.JSON(http.StatusNotFound, gin.H{"error": "Sermon not found"})
			return
		}
	}

	sermon, found, err := repository.Sermons.GetByID(c, id)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load sermon", "details": err.Error()})
		return
	}
	if !found {
		c.JSON(http.StatusNotFound, gin.H{"error": "Sermon not found"})
		return
	}

	c.JSON(http.StatusOK, sermon)
}

// DeleteSermon removes the record and then the media file. The record is
// the authority: a file that is already gone only costs a warning, while
// the record deletion's outcome is what the caller hears about.
func DeleteSermon(c *gin.Context) {
	id, err := idParam(c, "id")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid sermon ID"})
		return
	}

	sermon, found, err := repository.Sermons.GetByID(c, id)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch sermon", "details": err.Error()})
		return
	}
	if !found {
		c.JSON(http.StatusNotFound, gin.H{"error": "Sermon not found"})
		return
	}

	deleted, err := repository.Sermons.Delete(c, id)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete sermon", "details": err.Error()})
		return
	}
	if !deleted {
		c.JSON(http.StatusNotFound, gin.H{"error": "Sermon not found"})
		return
	}

	if err := services.Uploads().Delete(sermon.File_Url); err != nil {
		// Surfaced for operational follow-up; the large file is still on
		// disk but the caller's delete has succeeded.
		log.Printf("WARNING: sermon %d deleted but media file %s was not removed: %v", id, sermon.File_Url, err)
	}

	c.JSON(http.StatusOK, gin.H{"message": "Sermon deleted successfully"})
}
