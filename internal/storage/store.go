// Package storage keeps uploaded listing images on local disk or in an S3 bucket.
package storage

import (
	"context"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

const (
	MaxFileSize = 5 * 1024 * 1024 // 5 MB per image
	MaxBatch    = 4               // secondary images per request
)

var (
	ErrFileTooLarge    = errors.New("image exceeds the 5 MB limit")
	ErrInvalidMimeType = errors.New("only jpeg and png images are allowed")
	ErrEmptyFile       = errors.New("image file is empty")
)

// AllowedMimeTypes are detected from content, never taken from the client.
var AllowedMimeTypes = map[string]string{
	"image/jpeg": ".jpg",
	"image/png":  ".png",
}

// Store persists image bytes under a generated name.
type Store interface {
	Put(ctx context.Context, name string, r io.Reader, contentType string) error
	Delete(ctx context.Context, name string) error
}

// IsUploadError reports whether err is a client-side problem with a file.
func IsUploadError(err error) bool {
	return errors.Is(err, ErrFileTooLarge) || errors.Is(err, ErrInvalidMimeType) || errors.Is(err, ErrEmptyFile)
}

// Check opens fh, enforces size and type, and returns the detected MIME type.
func Check(fh *multipart.FileHeader) (string, error) {
	if fh.Size == 0 {
		return "", fmt.Errorf("%s: %w", fh.Filename, ErrEmptyFile)
	}
	if fh.Size > MaxFileSize {
		return "", fmt.Errorf("%s: %w", fh.Filename, ErrFileTooLarge)
	}

	f, err := fh.Open()
	if err != nil {
		return "", fmt.Errorf("open %s: %w", fh.Filename, err)
	}
	defer f.Close()

	buf := make([]byte, 512)
	n, err := io.ReadFull(f, buf)
	if err != nil && !errors.Is(err, io.ErrUnexpectedEOF) && !errors.Is(err, io.EOF) {
		return "", fmt.Errorf("read %s: %w", fh.Filename, err)
	}
	mimeType := strings.Split(http.DetectContentType(buf[:n]), ";")[0]
	if _, ok := AllowedMimeTypes[mimeType]; !ok {
		return "", fmt.Errorf("%s: %w", fh.Filename, ErrInvalidMimeType)
	}
	return mimeType, nil
}

// Save checks and writes one file, returning its stored name.
func Save(ctx context.Context, s Store, fh *multipart.FileHeader) (string, error) {
	mimeType, err := Check(fh)
	if err != nil {
		return "", err
	}

	name := uuid.New().String() + AllowedMimeTypes[mimeType]

	f, err := fh.Open()
	if err != nil {
		return "", fmt.Errorf("open %s: %w", fh.Filename, err)
	}
	defer f.Close()

	if err := s.Put(ctx, name, f, mimeType); err != nil {
		return "", err
	}
	return name, nil
}

// WithFiles stores every file, then calls fn with the stored names in input
// order. If any save or fn fails, all files stored by this call are deleted
// and the error is returned.
func WithFiles(ctx context.Context, s Store, files []*multipart.FileHeader, fn func(names []string) error) ([]string, error) {
	// reject the batch before writing anything
	for _, fh := range files {
		if _, err := Check(fh); err != nil {
			return nil, err
		}
	}

	names := make([]string, 0, len(files))
	fail := func(err error) ([]string, error) {
		// the request context may already be done; cleanup must still run
		cleanupCtx := context.WithoutCancel(ctx)
		for _, n := range names {
			_ = s.Delete(cleanupCtx, n)
		}
		return nil, err
	}

	for _, fh := range files {
		name, err := Save(ctx, s, fh)
		if err != nil {
			return fail(err)
		}
		names = append(names, name)
	}
	if err := fn(names); err != nil {
		return fail(err)
	}
	return names, nil
}

// cleanName rejects names that could escape the store root.
func cleanName(name string) (string, error) {
	if name == "" || name != filepath.Base(name) || strings.HasPrefix(name, ".") {
		return "", fmt.Errorf("invalid object name %q", name)
	}
	return name, nil
}
