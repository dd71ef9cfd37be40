package services

import (
	"errors"
	"mime"
	"mime/multipart"
)

var (
	ErrUnsupportedMediaType = errors.New("invalid file type, only audio and video files are allowed")
	ErrPayloadTooLarge      = errors.New("file exceeds the maximum allowed size")
)

// allowedMediaTypes is the allow-list of accepted upload MIME types.
// Extending support to a new container format is a one-line addition here.
var allowedMediaTypes = map[string]bool{
	"audio/mpeg":      true,
	"audio/mp3":       true,
	"audio/wav":       true,
	"audio/ogg":       true,
	"audio/aac":       true,
	"audio/m4a":       true,
	"video/mp4":       true,
	"video/mpeg":      true,
	"video/quicktime": true,
	"video/x-msvideo": true,
	"video/webm":      true,
}

// MediaValidator inspects an upload's declared content type and size before
// any byte reaches durable storage.
type MediaValidator struct {
	maxBytes int64
}

func NewMediaValidator(maxBytes int64) MediaValidator {
	return MediaValidator{maxBytes: maxBytes}
}

// Validate rejects uploads whose declared MIME type is outside the
// allow-list or whose size exceeds the configured ceiling.
func (v MediaValidator) Validate(file *multipart.FileHeader) error {
	if file.Size > v.maxBytes {
		return ErrPayloadTooLarge
	}

	declared := file.Header.Get("Content-Type")
	mediaType, _, err := mime.ParseMediaType(declared)
	if err != nil || !allowedMediaTypes[mediaType] {
		return ErrUnsupportedMediaType
	}

	return nil
}
