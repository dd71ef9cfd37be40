package controllers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func pageColumns() []string {
	return []string{
		"page_id", "slug", "title", "content", "updated_by",
		"datetime_create", "datetime_update",
		"editor.user_id", "editor.name", "editor.email",
	}
}

// Test UpsertPage - created vs replaced, single record per slug
func TestUpsertPage(t *testing.T) {
	tests := []struct {
		name           string
		slug           string
		body           map[string]interface{}
		slugExists     bool
		expectedStatus int
	}{
		{
			name:           "unseen slug creates the page",
			slug:           "about",
			body:           map[string]interface{}{"title": "About Us", "content": "Our story"},
			slugExists:     false,
			expectedStatus: http.StatusCreated,
		},
		{
			name:           "existing slug replaces content in place",
			slug:           "about",
			body:           map[string]interface{}{"title": "About Our Church", "content": "Updated story"},
			slugExists:     true,
			expectedStatus: http.StatusOK,
		},
		{
			name:           "slug is case-normalized",
			slug:           "About ",
			body:           map[string]interface{}{"title": "About Us", "content": "Our story"},
			slugExists:     true,
			expectedStatus: http.StatusOK,
		},
		{
			name:           "missing content",
			slug:           "about",
			body:           map[string]interface{}{"title": "About Us"},
			expectedStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, mock, cleanup := SetupTestDB(t)
			defer cleanup()

			now := time.Now()
			if tt.expectedStatus != http.StatusBadRequest {
				if tt.slugExists {
					// ON CONFLICT DO NOTHING inserts no row, then the
					// update-in-place path runs.
					mock.ExpectQuery("INSERT").WillReturnRows(sqlmock.NewRows([]string{"page_id"}))
					mock.ExpectExec("UPDATE").WillReturnResult(sqlmock.NewResult(0, 1))
				} else {
					mock.ExpectQuery("INSERT").WillReturnRows(sqlmock.NewRows([]string{"page_id"}).AddRow(1))
				}
				mock.ExpectQuery("SELECT").WillReturnRows(sqlmock.NewRows(pageColumns()).
					AddRow(1, "about", tt.body["title"], tt.body["content"], 2, now, now, 2, "Admin User", "admin@example.com"))
			}

			c, w := SetupTestContext()
			SetAuthenticatedUser(c, MockAdminUser(), true)
			c.Params = []gin.Param{{Key: "slug", Value: tt.slug}}

			payload, _ := json.Marshal(tt.body)
			c.Request = httptest.NewRequest("PUT", "/pages/"+url.PathEscape(tt.slug), bytes.NewReader(payload))
			c.Request.Header.Set("Content-Type", "application/json")

			UpsertPage(c)

			assert.Equal(t, tt.expectedStatus, w.Code)

			if tt.expectedStatus == http.StatusOK || tt.expectedStatus == http.StatusCreated {
				var page map[string]interface{}
				assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &page))
				assert.Equal(t, tt.body["title"], page["title"])
				assert.Equal(t, "about", page["slug"])
				assert.NoError(t, mock.ExpectationsWereMet())
			}
		})
	}
}

// Test GetPageBySlug
func TestGetPageBySlug(t *testing.T) {
	tests := []struct {
		name           string
		slug           string
		pageExists     bool
		expectedStatus int
	}{
		{"existing page", "about", true, http.StatusOK},
		{"unknown slug", "nope", false, http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, mock, cleanup := SetupTestDB(t)
			defer cleanup()

			rows := sqlmock.NewRows(pageColumns())
			if tt.pageExists {
				now := time.Now()
				rows.AddRow(1, tt.slug, "About Us", "Our story", 2, now, now, 2, "Admin User", "admin@example.com")
			}
			mock.ExpectQuery("SELECT").WillReturnRows(rows)

			c, w := SetupTestContext()
			c.Params = []gin.Param{{Key: "slug", Value: tt.slug}}
			c.Request = httptest.NewRequest("GET", "/pages/"+tt.slug, nil)

			GetPageBySlug(c)

			assert.Equal(t, tt.expectedStatus, w.Code)
		})
	}
}

// Test DeletePage
func TestDeletePage(t *testing.T) {
	tests := []struct {
		name           string
		rowsAffected   int64
		expectedStatus int
	}{
		{"successful deletion", 1, http.StatusOK},
		{"unknown slug", 0, http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, mock, cleanup := SetupTestDB(t)
			defer cleanup()

			mock.ExpectExec("DELETE").WillReturnResult(sqlmock.NewResult(0, tt.rowsAffected))

			c, w := SetupTestContext()
			SetAuthenticatedUser(c, MockAdminUser(), true)
			c.Params = []gin.Param{{Key: "slug", Value: "about"}}
			c.Request = httptest.NewRequest("DELETE", "/pages/about", nil)

			DeletePage(c)

			assert.Equal(t, tt.expectedStatus, w.Code)
		})
	}
}
