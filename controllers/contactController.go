package controllers

import (
	"net/http"
	"strings"

	"github.com/doug-martin/goqu/v9"
	"github.com/gin-gonic/gin"

	"github.com/ChurchSite/models"
	"github.com/ChurchSite/repository"
	"github.com/ChurchSite/services"
)

// SubmitContact is the one public write in the system. It is rate limited at
// the route and notifies the church office by email when configured.
func SubmitContact(c *gin.Context) {
	var req models.ContactSubmit
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	if strings.TrimSpace(req.Name) == "" || strings.TrimSpace(req.Email) == "" || strings.TrimSpace(req.Message) == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Please provide name, email, and message"})
		return
	}

	if !models.ValidEmail(req.Email) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Please provide a valid email"})
		return
	}

	record := goqu.Record{
		"name":    req.Name,
		"email":   req.Email,
		"message": req.Message,
	}
	if req.Subject != nil {
		record["subject"] = *req.Subject
	}

	id, err := repository.Contacts.Insert(c, record)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to submit contact form", "details": err.Error()})
		return
	}

	contact, _, err := repository.Contacts.GetByID(c, id)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load contact submission", "details": err.Error()})
		return
	}

	if svc := services.GetEmailService(); svc != nil {
		subject := ""
		if req.Subject != nil {
			subject = *req.Subject
		}
		go svc.SendContactNotification(req.Name, req.Email, subject, req.Message)
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "Contact form submitted successfully",
		"contact": contact,
	})
}

func GetContacts(c *gin.Context) {
	contacts, err := repository.Contacts.List(c)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch contact submissions", "details": err.Error()})
		return
	}

	if contacts == nil {
		contacts = []models.Contact{}
	}
	c.JSON(http.StatusOK, contacts)
}

func GetContact(c *gin.Context) {
	id, err := idParam(c, "id")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid contact ID"})
		return
	}

	contact, found, err := repository.Contacts.GetByID(c, id)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch contact submission", "details": err.Error()})
		return
	}
	if !found {
		c.JSON(http.StatusNotFound, gin.H{"error": "Contact submission not found"})
		return
	}

	c.JSON(http.StatusOK, contact)
}

// ToggleContactRead flips the read flag, the only mutation a contact
// submission supports after creation.
func ToggleContactRead(c *gin.Context) {
	id, err := idParam(c, "id")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid contact ID"})
		return
	}

	contact, found, err := repository.Contacts.GetByID(c, id)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch contact submission", "details": err.Error()})
		return
	}
	if !found {
		c.JSON(http.StatusNotFound, gin.H{"error": "Contact submission not found"})
		return
	}

	if _, err := repository.Contacts.Update(c, id, goqu.Record{"is_read": !contact.Is_Read}); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update contact submission", "details": err.Error()})
		return
	}

	contact.Is_Read = !contact.Is_Read
	c.JSON(http.StatusOK, contact)
}

func DeleteContact(c *gin.Context) {
	id, err := idParam(c, "id")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid contact ID"})
		return
	}

	found, err := repository.Contacts.Delete(c, id)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete contact submission", "details": err.Error()})
		return
	}
	if !found {
		c.JSON(http.StatusNotFound, gin.H{"error": "Contact submission not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Contact submission deleted successfully"})
}
