package controllers

import (
	"bytes"
	"database/sql"
	"mime/multipart"
	"net/http/httptest"
	"net/textproto"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/doug-martin/goqu/v9"
	"github.com/gin-gonic/gin"

	"github.com/ChurchSite/initializers"
	"github.com/ChurchSite/models"
)

// SetupTestDB creates a mock database and sets it as the global DB for testing
func SetupTestDB(t *testing.T) (*sql.DB, sqlmock.Sqlmock, func()) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("Failed to create sqlmock: %v", err)
	}

	goquDB := goqu.New("postgres", db)

	// Store original DB to restore after test
	originalDB := initializers.DB
	initializers.DB = goquDB

	cleanup := func() {
		// Small delay to allow goroutines (like email notifications) to complete
		time.Sleep(10 * time.Millisecond)
		db.Close()
		initializers.DB = originalDB
	}

	return db, mock, cleanup
}

// SetupTestContext creates a test Gin context with a response recorder
func SetupTestContext() (*gin.Context, *httptest.ResponseRecorder) {
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	return c, w
}

// SetAuthenticatedUser sets the identity values the auth middleware would
// have resolved for the request.
func SetAuthenticatedUser(c *gin.Context, user models.User, isAdmin bool) {
	c.Set("currentUser", user)
	c.Set("authenticated", true)
	c.Set("admin", isAdmin)
}

// SetAnonymous marks the request as carrying no usable credentials, the way
// OptionalAuth does for public listings.
func SetAnonymous(c *gin.Context) {
	c.Set("authenticated", false)
	c.Set("admin", false)
}

// BuildMultipartForm assembles a multipart body with the given text fields
// and, when fileName is non-empty, a "file" part with the declared content
// type. Returns the encoded body and the Content-Type header value.
func BuildMultipartForm(t *testing.T, fields map[string]string, fileName, contentType string, fileBody []byte) (*bytes.Buffer, string) {
	t.Helper()

	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)

	for key, value := range fields {
		if err := writer.WriteField(key, value); err != nil {
			t.Fatalf("Failed to write form field %s: %v", key, err)
		}
	}

	if fileName != "" {
		header := make(textproto.MIMEHeader)
		header.Set("Content-Disposition", `form-data; name="file"; filename="`+fileName+`"`)
		header.Set("Content-Type", contentType)

		part, err := writer.CreatePart(header)
		if err != nil {
			t.Fatalf("Failed to create file part: %v", err)
		}
		if _, err := part.Write(fileBody); err != nil {
			t.Fatalf("Failed to write file body: %v", err)
		}
	}

	if err := writer.Close(); err != nil {
		t.Fatalf("Failed to close multipart writer: %v", err)
	}

	return body, writer.FormDataContentType()
}
