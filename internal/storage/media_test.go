package storage

import (
	"bytes"
	"mime/multipart"
	"net/http"
	"net/textproto"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func uploadHeader(t *testing.T, filename, contentType string, content []byte) *multipart.FileHeader {
	t.Helper()

	var body bytes.Buffer
	writer := multipart.NewWriter(&body)

	header := make(textproto.MIMEHeader)
	header.Set("Content-Disposition", `form-data; name="media"; filename="`+filename+`"`)
	header.Set("Content-Type", contentType)
	part, err := writer.CreatePart(header)
	assert.NoError(t, err)
	_, err = part.Write(content)
	assert.NoError(t, err)
	assert.NoError(t, writer.Close())

	req, err := http.NewRequest(http.MethodPost, "/", &body)
	assert.NoError(t, err)
	req.Header.Set("Content-Type", writer.FormDataContentType())

	_, fileHeader, err := req.FormFile("media")
	assert.NoError(t, err)
	return fileHeader
}

func TestDiskStore_Save(t *testing.T) {
	dir := t.TempDir()
	store, err := NewDiskStore(dir)
	assert.NoError(t, err)

	t.Run("image goes to the image slot", func(t *testing.T) {
		saved, err := store.Save(uploadHeader(t, "photo.png", "image/png", []byte("png-bytes")))
		assert.NoError(t, err)
		assert.Equal(t, MediaImage, saved.Kind)
		assert.True(t, strings.HasPrefix(saved.URL, "/uploads/"))
		assert.Equal(t, ".png", filepath.Ext(saved.URL))

		data, err := os.ReadFile(filepath.Join(dir, filepath.Base(saved.URL)))
		assert.NoError(t, err)
		assert.Equal(t, []byte("png-bytes"), data)
	})

	t.Run("video goes to the video slot", func(t *testing.T) {
		saved, err := store.Save(uploadHeader(t, "clip.mp4", "video/mp4", []byte("mp4-bytes")))
		assert.NoError(t, err)
		assert.Equal(t, MediaVideo, saved.Kind)
	})

	t.Run("unsupported type is rejected", func(t *testing.T) {
		_, err := store.Save(uploadHeader(t, "doc.pdf", "application/pdf", []byte("pdf")))
		assert.ErrorIs(t, err, ErrUnsupportedMedia)
	})

	t.Run("oversized image is rejected", func(t *testing.T) {
		_, err := store.Save(uploadHeader(t, "big.png", "image/png", make([]byte, MaxImageSize+1)))
		assert.ErrorIs(t, err, ErrFileTooLarge)
	})
}

func TestDiskStore_Remove(t *testing.T) {
	dir := t.TempDir()
	store, err := NewDiskStore(dir)
	assert.NoError(t, err)

	saved, err := store.Save(uploadHeader(t, "photo.jpg", "image/jpeg", []byte("jpg")))
	assert.NoError(t, err)

	assert.NoError(t, store.Remove(saved.URL))
	_, err = os.Stat(filepath.Join(dir, filepath.Base(saved.URL)))
	assert.True(t, os.IsNotExist(err))

	// Removing an already-deleted file is not an error.
	assert.NoError(t, store.Remove(saved.URL))
	assert.NoError(t, store.Remove("/uploads/never-existed.png"))
}
