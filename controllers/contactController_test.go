package controllers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func contactColumns() []string {
	return []string{
		"contact_id", "name", "email", "subject", "message", "is_read",
		"datetime_create", "datetime_update",
	}
}

// Test SubmitContact - the anonymous public write
func TestSubmitContact(t *testing.T) {
	tests := []struct {
		name           string
		body           map[string]interface{}
		expectedStatus int
	}{
		{
			name:           "successful submission",
			body:           map[string]interface{}{"name": "Jane", "email": "jane@example.com", "message": "Hello"},
			expectedStatus: http.StatusCreated,
		},
		{
			name:           "submission with subject",
			body:           map[string]interface{}{"name": "Jane", "email": "jane@example.com", "subject": "Visit", "message": "Hello"},
			expectedStatus: http.StatusCreated,
		},
		{
			name:           "missing message",
			body:           map[string]interface{}{"name": "Jane", "email": "jane@example.com"},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "malformed email",
			body:           map[string]interface{}{"name": "Jane", "email": "not-an-email", "message": "Hello"},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "email without domain dot",
			body:           map[string]interface{}{"name": "Jane", "email": "jane@example", "message": "Hello"},
			expectedStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, mock, cleanup := SetupTestDB(t)
			defer cleanup()

			if tt.expectedStatus == http.StatusCreated {
				now := time.Now()
				mock.ExpectQuery("INSERT").WillReturnRows(sqlmock.NewRows([]string{"contact_id"}).AddRow(1))
				mock.ExpectQuery("SELECT").WillReturnRows(sqlmock.NewRows(contactColumns()).
					AddRow(1, tt.body["name"], tt.body["email"], tt.body["subject"], tt.body["message"], false, now, now))
			}

			c, w := SetupTestContext()
			payload, _ := json.Marshal(tt.body)
			c.Request = httptest.NewRequest("POST", "/contacts", bytes.NewReader(payload))
			c.Request.Header.Set("Content-Type", "application/json")

			SubmitContact(c)

			assert.Equal(t, tt.expectedStatus, w.Code)

			if tt.expectedStatus == http.StatusCreated {
				var response map[string]interface{}
				assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
				contact, ok := response["contact"].(map[string]interface{})
				assert.True(t, ok)
				assert.Equal(t, false, contact["isRead"])
			}
		})
	}
}

// Test ToggleContactRead - the only mutation a submission supports
func TestToggleContactRead(t *testing.T) {
	tests := []struct {
		name           string
		contactID      string
		contactExists  bool
		initiallyRead  bool
		expectedStatus int
	}{
		{"mark unread submission read", "1", true, false, http.StatusOK},
		{"mark read submission unread", "1", true, true, http.StatusOK},
		{"not found", "999", false, false, http.StatusNotFound},
		{"invalid id", "abc", false, false, http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, mock, cleanup := SetupTestDB(t)
			defer cleanup()

			if tt.contactID != "abc" {
				rows := sqlmock.NewRows(contactColumns())
				if tt.contactExists {
					now := time.Now()
					rows.AddRow(1, "Jane", "jane@example.com", nil, "Hello", tt.initiallyRead, now, now)
				}
				mock.ExpectQuery("SELECT").WillReturnRows(rows)
				if tt.contactExists {
					mock.ExpectExec("UPDATE").WillReturnResult(sqlmock.NewResult(0, 1))
				}
			}

			c, w := SetupTestContext()
			SetAuthenticatedUser(c, MockAdminUser(), true)
			c.Params = []gin.Param{{Key: "id", Value: tt.contactID}}
			c.Request = httptest.NewRequest("PATCH", "/contacts/"+tt.contactID+"/read", nil)

			ToggleContactRead(c)

			assert.Equal(t, tt.expectedStatus, w.Code)

			if tt.expectedStatus == http.StatusOK {
				var contact map[string]interface{}
				assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &contact))
				assert.Equal(t, !tt.initiallyRead, contact["isRead"])
			}
		})
	}
}

// Test GetContacts - admin listing, newest first
func TestGetContacts(t *testing.T) {
	_, mock, cleanup := SetupTestDB(t)
	defer cleanup()

	now := time.Now()
	mock.ExpectQuery("SELECT").WillReturnRows(sqlmock.NewRows(contactColumns()).
		AddRow(2, "Newer", "newer@example.com", nil, "Hi", false, now, now).
		AddRow(1, "Older", "older@example.com", nil, "Hi", true, now.Add(-time.Hour), now.Add(-time.Hour)))

	c, w := SetupTestContext()
	SetAuthenticatedUser(c, MockAdminUser(), true)
	c.Request = httptest.NewRequest("GET", "/contacts", nil)

	GetContacts(c)

	assert.Equal(t, http.StatusOK, w.Code)

	var contacts []map[string]interface{}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &contacts))
	assert.Len(t, contacts, 2)
}

// Test DeleteContact
func TestDeleteContact(t *testing.T) {
	tests := []struct {
		name           string
		rowsAffected   int64
		expectedStatus int
	}{
		{"successful deletion", 1, http.StatusOK},
		{"not found", 0, http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, mock, cleanup := SetupTestDB(t)
			defer cleanup()

			mock.ExpectExec("DELETE").WillReturnResult(sqlmock.NewResult(0, tt.rowsAffected))

			c, w := SetupTestContext()
			SetAuthenticatedUser(c, MockAdminUser(), true)
			c.Params = []gin.Param{{Key: "id", Value: "1"}}
			c.Request = httptest.NewRequest("DELETE", "/contacts/1", nil)

			DeleteContact(c)

			assert.Equal(t, tt.expectedStatus, w.Code)
		})
	}
}
