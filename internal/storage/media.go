package storage

import (
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

const (
	// MaxImageSize caps uploaded images at 1 MiB.
	MaxImageSize = 1 << 20
	// MaxVideoSize caps uploaded videos at 10 MiB.
	MaxVideoSize = 10 << 20
)

var (
	// ErrUnsupportedMedia is returned for files that are neither image nor video.
	ErrUnsupportedMedia = errors.New("only image and video files are allowed")
	// ErrFileTooLarge is returned when an upload exceeds the cap for its kind.
	ErrFileTooLarge = errors.New("file size exceeds the limit")
)

// MediaKind distinguishes which article slot an upload populates.
type MediaKind int

const (
	// MediaImage populates the article's image slot.
	MediaImage MediaKind = iota
	// MediaVideo populates the article's video slot.
	MediaVideo
)

// SavedMedia describes a stored upload.
type SavedMedia struct {
	URL  string
	Kind MediaKind
}

// MediaStore persists uploaded article media.
type MediaStore interface {
	Save(file *multipart.FileHeader) (*SavedMedia, error)
	Remove(url string) error
}

// DiskStore writes uploads to a local directory served under /uploads.
type DiskStore struct {
	dir string
}

// Ensure DiskStore implements MediaStore
var _ MediaStore = (*DiskStore)(nil)

// NewDiskStore creates the upload directory if needed and returns a store.
func NewDiskStore(dir string) (*DiskStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create upload dir: %w", err)
	}
	return &DiskStore{dir: dir}, nil
}

// Save validates the upload's MIME type and size, then writes it under a
// generated filename. The MIME type decides the media kind: image/* goes to the
// image slot, video/* to the video slot, anything else is rejected.
func (s *DiskStore) Save(file *multipart.FileHeader) (*SavedMedia, error) {
	contentType := file.Header.Get("Content-Type")

	var kind MediaKind
	var maxSize int64
	switch {
	case strings.HasPrefix(contentType, "image/"):
		kind, maxSize = MediaImage, MaxImageSize
	case strings.HasPrefix(contentType, "video/"):
		kind, maxSize = MediaVideo, MaxVideoSize
	default:
		return nil, ErrUnsupportedMedia
	}

	if file.Size > maxSize {
		return nil, fmt.Errorf("%w: maximum size is %d MB", ErrFileTooLarge, maxSize>>20)
	}

	src, err := file.Open()
	if err != nil {
		return nil, fmt.Errorf("open upload: %w", err)
	}
	defer src.Close()

	name := uuid.New().String() + filepath.Ext(file.Filename)
	dst, err := os.Create(filepath.Join(s.dir, name))
	if err != nil {
		return nil, fmt.Errorf("create media file: %w", err)
	}
	defer dst.Close()

	if _, err := io.Copy(dst, src); err != nil {
		return nil, fmt.Errorf("write media file: %w", err)
	}

	return &SavedMedia{URL: "/uploads/" + name, Kind: kind}, nil
}

// Remove deletes a stored file by its public URL. A file that is already gone
// is not an error; article deletion stays best-effort.
func (s *DiskStore) Remove(url string) error {
	name := filepath.Base(strings.TrimPrefix(url, "/uploads/"))
	if name == "" || name == "." || name == "/" {
		return nil
	}
	if err := os.Remove(filepath.Join(s.dir, name)); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("remove media file: %w", err)
	}
	return nil
}
