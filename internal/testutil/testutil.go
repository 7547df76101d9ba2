// Package testutil provides shared fixtures and doubles for package tests.
package testutil

import (
	"bytes"
	"context"
	"fmt"
	"image"
	"image/color"
	"image/jpeg"
	"image/png"
	"io"
	"mime/multipart"
	"net/textproto"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"boolbnb/internal/database"
	"boolbnb/internal/domain"
)

// NewDB opens a private in-memory SQLite database with every table migrated.
func NewDB(t *testing.T) *gorm.DB {
	t.Helper()
	name := strings.NewReplacer("/", "_", " ", "_", "#", "_").Replace(t.Name())
	db, err := database.Connect(fmt.Sprintf("file:%s?mode=memory&cache=shared", name), database.Options{MaxOpenConns: 1})
	require.NoError(t, err, "open sqlite")
	require.NoError(t, database.Migrate(db), "migrate")

	sqlDB, err := db.DB()
	require.NoError(t, err)
	// keep one connection alive so the shared in-memory database survives
	sqlDB.SetMaxIdleConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })
	return db
}

// SeedType inserts a property type and returns it.
func SeedType(t *testing.T, db *gorm.DB, name string) domain.PropertyType {
	t.Helper()
	pt := domain.PropertyType{Name: name}
	require.NoError(t, db.Create(&pt).Error)
	return pt
}

// SeedProperty inserts a property with sensible defaults; mutate overrides fields.
func SeedProperty(t *testing.T, db *gorm.DB, slugValue string, mutate func(p *domain.Property)) domain.Property {
	t.Helper()
	p := domain.Property{
		Slug:         slugValue,
		Title:        strings.ReplaceAll(slugValue, "-", " "),
		NumRooms:     2,
		NumBeds:      2,
		NumBathrooms: 1,
		SquareMeters: 60,
		Address:      "Via Roma 1",
		City:         "Milano",
		UserName:     "Owner",
		UserEmail:    "owner@example.com",
	}
	if mutate != nil {
		mutate(&p)
	}
	require.NoError(t, db.Create(&p).Error)
	return p
}

// SeedReview inserts a review with the given rating for propertyID.
func SeedReview(t *testing.T, db *gorm.DB, propertyID int64, rating int) domain.Review {
	t.Helper()
	r := domain.Review{
		PropertyID: propertyID,
		Rating:     rating,
		ReviewText: "Nice stay",
		UserName:   "Guest",
		UserEmail:  "guest@example.com",
	}
	require.NoError(t, db.Create(&r).Error)
	return r
}

func PNG(t *testing.T) []byte {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, tinyImage()))
	return buf.Bytes()
}

func JPEG(t *testing.T) []byte {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, jpeg.Encode(&buf, tinyImage(), nil))
	return buf.Bytes()
}

func tinyImage() image.Image {
	img := image.NewRGBA(image.Rect(0, 0, 2, 2))
	img.Set(0, 0, color.RGBA{R: 255, A: 255})
	return img
}

// File is one part of a multipart body.
type File struct {
	Field    string
	Filename string
	Content  []byte
}

// MultipartBody encodes fields and files, returning the body and its Content-Type.
func MultipartBody(t *testing.T, fields map[string]string, files ...File) (*bytes.Buffer, string) {
	t.Helper()
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	for k, v := range fields {
		require.NoError(t, w.WriteField(k, v))
	}
	for _, f := range files {
		h := make(textproto.MIMEHeader)
		h.Set("Content-Disposition", fmt.Sprintf(`form-data; name=%q; filename=%q`, f.Field, f.Filename))
		h.Set("Content-Type", "application/octet-stream")
		part, err := w.CreatePart(h)
		require.NoError(t, err)
		_, err = part.Write(f.Content)
		require.NoError(t, err)
	}
	require.NoError(t, w.Close())
	return &buf, w.FormDataContentType()
}

// FileHeaders parses files into multipart headers as a server would see them.
func FileHeaders(t *testing.T, files ...File) []*multipart.FileHeader {
	t.Helper()
	body, ct := MultipartBody(t, nil, files...)
	boundary := strings.TrimPrefix(ct, "multipart/form-data; boundary=")
	form, err := multipart.NewReader(body, boundary).ReadForm(32 << 20)
	require.NoError(t, err)
	t.Cleanup(func() { _ = form.RemoveAll() })

	var out []*multipart.FileHeader
	seen := map[string]bool{}
	for _, f := range files {
		if seen[f.Field] {
			continue
		}
		seen[f.Field] = true
		out = append(out, form.File[f.Field]...)
	}
	return out
}

// MemoryStore is an in-memory storage.Store.
type MemoryStore struct {
	mu      sync.Mutex
	Objects map[string][]byte
	// FailPutAfter makes the n-th Put (1-based) fail when > 0.
	FailPutAfter int
	puts         int
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{Objects: map[string][]byte{}}
}

func (m *MemoryStore) Put(_ context.Context, name string, r io.Reader, _ string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.puts++
	if m.FailPutAfter > 0 && m.puts >= m.FailPutAfter {
		return fmt.Errorf("put %s: store unavailable", name)
	}
	b, err := io.ReadAll(r)
	if err != nil {
		return err
	}
	m.Objects[name] = b
	return nil
}

func (m *MemoryStore) Delete(_ context.Context, name string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.Objects, name)
	return nil
}

func (m *MemoryStore) Len() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.Objects)
}
