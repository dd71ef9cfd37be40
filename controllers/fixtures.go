package controllers

import (
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/ChurchSite/models"
)

// Test fixture data for use in tests

// MockUser creates a sample non-admin member for testing
func MockUser() models.User {
	return models.User{
		User_ID:         1,
		Name:            "Test Member",
		Email:           "member@example.com",
		Admin:           false,
		Datetime_Create: time.Now(),
		Datetime_Update: time.Now(),
	}
}

// MockUserWithPassword creates a sample user with a bcrypt hashed password
// Password is "password123" - use this in tests
func MockUserWithPassword() models.User {
	hashedPassword, _ := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.DefaultCost)
	user := MockUser()
	user.Password = string(hashedPassword)
	return user
}

// MockAdminUser creates a sample admin user for testing
func MockAdminUser() models.User {
	return models.User{
		User_ID:         2,
		Name:            "Admin User",
		Email:           "admin@example.com",
		Admin:           true,
		Datetime_Create: time.Now(),
		Datetime_Update: time.Now(),
	}
}
