package services

import (
	"fmt"
	"io"
	"log"
	"mime/multipart"
	"os"
	"path"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
)

// UploadStore persists validated uploads under the configured directory and
// hands back references of the form "/uploads/<name>" that are usable both
// for public serving and for later deletion.
type UploadStore struct {
	dir       string
	validator MediaValidator
}

var uploadStore *UploadStore

// InitUploadStore wires the store to an explicit directory and size ceiling.
// The directory is created if missing so a fresh deployment can start clean.
func InitUploadStore(dir string, maxBytes int64) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		log.Fatalf("Failed to create upload directory %s: %v", dir, err)
	}

	uploadStore = &UploadStore{
		dir:       dir,
		validator: NewMediaValidator(maxBytes),
	}

	log.Printf("Upload store initialized at %s", dir)
}

// Uploads returns the singleton upload store instance.
func Uploads() *UploadStore {
	return uploadStore
}

// StagedUpload is a file written to the store before its owning record is
// confirmed to exist. Callers defer Discard and call Commit only once the
// record is persisted; every other exit path removes the file again.
type StagedUpload struct {
	store     *UploadStore
	Ref       string
	committed bool
}

func (u *StagedUpload) Commit() {
	u.committed = true
}

// Discard removes the staged file unless it was committed. Safe to defer
// unconditionally.
func (u *StagedUpload) Discard() {
	if u == nil || u.committed {
		return
	}
	if err := u.store.Delete(u.Ref); err != nil {
		log.Printf("WARNING: failed to remove staged upload %s: %v", u.Ref, err)
	}
}

// Stage validates the upload and writes it under a collision-resistant name:
// fieldname-<unix millis>-<random suffix><original extension>. The name is
// never derived from client input beyond the extension, and the file is
// opened O_EXCL so an existing entry can never be overwritten.
func (s *UploadStore) Stage(fieldName string, file *multipart.FileHeader) (*StagedUpload, error) {
	if err := s.validator.Validate(file); err != nil {
		return nil, err
	}

	ext := strings.ToLower(filepath.Ext(filepath.Base(file.Filename)))
	name := fmt.Sprintf("%s-%d-%s%s", fieldName, time.Now().UnixMilli(), uuid.NewString(), ext)

	src, err := file.Open()
	if err != nil {
		return nil, err
	}
	defer src.Close()

	dst, err := os.OpenFile(filepath.Join(s.dir, name), os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
	if err != nil {
		return nil, err
	}

	if _, err := io.Copy(dst, src); err != nil {
		dst.Close()
		os.Remove(dst.Name())
		return nil, err
	}
	if err := dst.Close(); err != nil {
		os.Remove(dst.Name())
		return nil, err
	}

	return &StagedUpload{store: s, Ref: "/uploads/" + name}, nil
}

// Delete removes the file behind a reference. A missing file is a no-op
// success; cleanup paths may race or repeat and must stay idempotent.
func (s *UploadStore) Delete(ref string) error {
	// path.Base strips any directory components a tampered reference could
	// carry, so deletion can never escape the upload directory.
	name := path.Base(ref)
	if name == "." || name == "/" {
		return nil
	}

	err := os.Remove(filepath.Join(s.dir, name))
	if err != nil && !os.IsNotExist(err) {
		return err
	}
	return nil
}
