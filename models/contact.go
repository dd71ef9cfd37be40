package models

import (
	"regexp"
	"time"
)

type Contact struct {
	Contact_ID      int       `json:"contactId" goqu:"skipinsert"`
	Name            string    `json:"name"`
	Email           string    `json:"email"`
	Subject         *string   `json:"subject"`
	Message         string    `json:"message"`
	Is_Read         bool      `json:"isRead"`
	Datetime_Create time.Time `json:"datetimeCreate" goqu:"skipinsert"`
	Datetime_Update time.Time `json:"datetimeUpdate" goqu:"skipinsert"`
}

type ContactSubmit struct {
	Name    string  `json:"name"`
	Email   string  `json:"email"`
	Subject *string `json:"subject"`
	Message string  `json:"message"`
}

var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// ValidEmail checks the rough shape of an address, not deliverability.
func ValidEmail(email string) bool {
	return emailPattern.MatchString(email)
}
