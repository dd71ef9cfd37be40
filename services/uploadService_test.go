package services

import (
	"bytes"
	"mime/multipart"
	"net/http/httptest"
	"net/textproto"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func stageTestFile(t *testing.T, store *UploadStore, fileName, contentType string, body []byte) (*StagedUpload, error) {
	t.Helper()

	buf := &bytes.Buffer{}
	writer := multipart.NewWriter(buf)

	header := make(textproto.MIMEHeader)
	header.Set("Content-Disposition", `form-data; name="file"; filename="`+fileName+`"`)
	header.Set("Content-Type", contentType)

	part, err := writer.CreatePart(header)
	if err != nil {
		t.Fatalf("Failed to create part: %v", err)
	}
	if _, err := part.Write(body); err != nil {
		t.Fatalf("Failed to write part: %v", err)
	}
	writer.Close()

	req := httptest.NewRequest("POST", "/", buf)
	req.Header.Set("Content-Type", writer.FormDataContentType())
	if err := req.ParseMultipartForm(1 << 20); err != nil {
		t.Fatalf("Failed to parse form: %v", err)
	}

	fh := req.MultipartForm.File["file"][0]
	return store.Stage("file", fh)
}

func newTestStore(t *testing.T, maxBytes int64) (*UploadStore, string) {
	t.Helper()
	dir := t.TempDir()
	return &UploadStore{dir: dir, validator: NewMediaValidator(maxBytes)}, dir
}

func TestStageAcceptsAllowedMedia(t *testing.T) {
	store, dir := newTestStore(t, 1<<20)

	staged, err := stageTestFile(t, store, "sermon.mp3", "audio/mpeg", []byte("mp3 bytes"))
	assert.NoError(t, err)
	assert.True(t, strings.HasPrefix(staged.Ref, "/uploads/file-"))
	assert.True(t, strings.HasSuffix(staged.Ref, ".mp3"))

	entries, _ := os.ReadDir(dir)
	assert.Len(t, entries, 1)
}

func TestStageRejectsUnsupportedType(t *testing.T) {
	store, dir := newTestStore(t, 1<<20)

	_, err := stageTestFile(t, store, "notes.pdf", "application/pdf", []byte("%PDF"))
	assert.ErrorIs(t, err, ErrUnsupportedMediaType)

	// Rejection must leave no staged artifact behind.
	entries, _ := os.ReadDir(dir)
	assert.Empty(t, entries)
}

func TestStageRejectsOversizedUpload(t *testing.T) {
	store, dir := newTestStore(t, 4)

	_, err := stageTestFile(t, store, "sermon.mp3", "audio/mpeg", []byte("more than four bytes"))
	assert.ErrorIs(t, err, ErrPayloadTooLarge)

	entries, _ := os.ReadDir(dir)
	assert.Empty(t, entries)
}

func TestStagedNamesDoNotCollide(t *testing.T) {
	store, dir := newTestStore(t, 1<<20)

	first, err := stageTestFile(t, store, "same.mp3", "audio/mpeg", []byte("a"))
	assert.NoError(t, err)
	second, err := stageTestFile(t, store, "same.mp3", "audio/mpeg", []byte("b"))
	assert.NoError(t, err)

	assert.NotEqual(t, first.Ref, second.Ref)

	entries, _ := os.ReadDir(dir)
	assert.Len(t, entries, 2)
}

func TestDiscardRemovesUncommittedFile(t *testing.T) {
	store, dir := newTestStore(t, 1<<20)

	staged, err := stageTestFile(t, store, "sermon.mp3", "audio/mpeg", []byte("bytes"))
	assert.NoError(t, err)

	staged.Discard()

	entries, _ := os.ReadDir(dir)
	assert.Empty(t, entries)
}

func TestDiscardAfterCommitKeepsFile(t *testing.T) {
	store, dir := newTestStore(t, 1<<20)

	staged, err := stageTestFile(t, store, "sermon.mp3", "audio/mpeg", []byte("bytes"))
	assert.NoError(t, err)

	staged.Commit()
	staged.Discard()

	entries, _ := os.ReadDir(dir)
	assert.Len(t, entries, 1)
}

func TestDeleteIsIdempotent(t *testing.T) {
	store, _ := newTestStore(t, 1<<20)

	staged, err := stageTestFile(t, store, "sermon.mp3", "audio/mpeg", []byte("bytes"))
	assert.NoError(t, err)

	assert.NoError(t, store.Delete(staged.Ref))
	// Deleting an already-absent reference is a no-op success.
	assert.NoError(t, store.Delete(staged.Ref))
	assert.NoError(t, store.Delete("/uploads/never-existed.mp3"))
}

func TestDeleteIgnoresTraversalAttempts(t *testing.T) {
	store, dir := newTestStore(t, 1<<20)

	outside := filepath.Join(filepath.Dir(dir), "outside.txt")
	assert.NoError(t, os.WriteFile(outside, []byte("keep me"), 0o644))
	defer os.Remove(outside)

	assert.NoError(t, store.Delete("/uploads/../outside.txt"))

	_, err := os.Stat(outside)
	assert.NoError(t, err, "file outside the upload dir must survive")
}
