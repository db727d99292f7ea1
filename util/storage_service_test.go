// util/storage_service_test.go
package util_test

import (
	"bytes"
	"mime/multipart"
	"net/http"
	"net/textproto"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	om_errors "github.com/openmusic-api/openmusic/errors"
	"github.com/openmusic-api/openmusic/util"
)

func coverFileHeader(t *testing.T, contentType string, content []byte) *multipart.FileHeader {
	t.Helper()

	var body bytes.Buffer
	writer := multipart.NewWriter(&body)

	header := make(textproto.MIMEHeader)
	header.Set("Content-Disposition", `form-data; name="cover"; filename="cover.bin"`)
	header.Set("Content-Type", contentType)
	part, err := writer.CreatePart(header)
	require.NoError(t, err)
	_, err = part.Write(content)
	require.NoError(t, err)
	require.NoError(t, writer.Close())

	req, err := http.NewRequest(http.MethodPost, "/", &body)
	require.NoError(t, err)
	req.Header.Set("Content-Type", writer.FormDataContentType())
	require.NoError(t, req.ParseMultipartForm(1<<20))

	return req.MultipartForm.File["cover"][0]
}

func TestWriteCoverStoresFile(t *testing.T) {
	storage, err := util.NewStorageService(t.TempDir(), 512000)
	require.NoError(t, err)

	file := coverFileHeader(t, "image/png", []byte("png-bytes"))
	filename, err := storage.WriteCover(file)
	require.NoError(t, err)
	assert.Contains(t, filename, ".png")

	path, err := storage.CoverPath(filename)
	require.NoError(t, err)

	stored, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, []byte("png-bytes"), stored)
}

func TestWriteCoverRejectsOversizeBeforeWriting(t *testing.T) {
	dir := t.TempDir()
	storage, err := util.NewStorageService(dir, 4)
	require.NoError(t, err)

	file := coverFileHeader(t, "image/png", []byte("more than four bytes"))
	_, err = storage.WriteCover(file)
	assert.ErrorIs(t, err, om_errors.ErrCoverTooLarge)

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestWriteCoverRejectsNonImage(t *testing.T) {
	dir := t.TempDir()
	storage, err := util.NewStorageService(dir, 512000)
	require.NoError(t, err)

	file := coverFileHeader(t, "text/plain", []byte("not an image"))
	_, err = storage.WriteCover(file)
	assert.ErrorIs(t, err, om_errors.ErrInvalidCoverType)

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestCoverPathUnknownFile(t *testing.T) {
	storage, err := util.NewStorageService(t.TempDir(), 512000)
	require.NoError(t, err)

	_, err = storage.CoverPath("missing.png")
	assert.ErrorIs(t, err, om_errors.ErrAlbumNotFound)
}

func TestCoverPathStripsDirectoryTraversal(t *testing.T) {
	storage, err := util.NewStorageService(t.TempDir(), 512000)
	require.NoError(t, err)

	_, err = storage.CoverPath("../../etc/passwd")
	assert.ErrorIs(t, err, om_errors.ErrAlbumNotFound)
}
