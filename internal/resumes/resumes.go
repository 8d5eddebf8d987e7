// Package resumes stores CVs uploaded with job applications.
package resumes

import (
	"context"
	"errors"
	"io"
	"mime/multipart"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

// MaxSize: ограничение на размер резюме (5 MiB).
const MaxSize = 5 << 20

var (
	ErrUnsupportedType = errors.New("file type not supported, upload a PDF or Word document")
	ErrTooLarge        = errors.New("resume exceeds 5MB")
)

var allowed = map[string]string{
	".pdf":  "application/pdf",
	".doc":  "application/msword",
	".docx": "application/vnd.openxmlformats-officedocument.wordprocessingml.document",
}

// Store saves a resume and returns the URL it can be fetched from.
type Store interface {
	Save(ctx context.Context, key string, r io.Reader, size int64, contentType string) (string, error)
}

// Validate checks size and type of an uploaded resume and returns the
// canonical content type for it.
func Validate(fh *multipart.FileHeader) (string, error) {
	if fh.Size > MaxSize {
		return "", ErrTooLarge
	}

	ext := strings.ToLower(filepath.Ext(fh.Filename))
	want, ok := allowed[ext]
	if !ok {
		return "", ErrUnsupportedType
	}

	if got := fh.Header.Get("Content-Type"); got != "" && got != want && got != "application/octet-stream" {
		return "", ErrUnsupportedType
	}
	return want, nil
}

// NewKey builds a unique object name that keeps the original extension.
func NewKey(filename string) string {
	return "resume-" + uuid.NewString() + strings.ToLower(filepath.Ext(filename))
}
