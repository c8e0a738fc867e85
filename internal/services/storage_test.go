package services

import (
	"bytes"
	"context"
	"crypto/sha256"
	"encoding/hex"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func makeFileHeader(t *testing.T, filename string, content []byte) *multipart.FileHeader {
	t.Helper()

	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	fw, err := w.CreateFormFile("cv", filename)
	require.NoError(t, err)
	_, err = fw.Write(content)
	require.NoError(t, err)
	require.NoError(t, w.Close())

	form, err := multipart.NewReader(&buf, w.Boundary()).ReadForm(int64(len(content)) + 1024)
	require.NoError(t, err)
	t.Cleanup(func() { form.RemoveAll() })
	return form.File["cv"][0]
}

func TestSaveFileChecksum(t *testing.T) {
	storage := NewStorageService(t.TempDir())
	require.NoError(t, storage.EnsureUploadDir())

	content := []byte("fake pdf bytes")
	filename, filePath, checksum, err := storage.SaveFile(makeFileHeader(t, "resume.pdf", content), "cv")
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(filename, "cv_"))

	saved, err := os.ReadFile(filePath)
	require.NoError(t, err)
	assert.Equal(t, content, saved)

	sum := sha256.Sum256(content)
	assert.Equal(t, hex.EncodeToString(sum[:]), checksum)
}

func TestSaveFileSameContentSameChecksum(t *testing.T) {
	storage := NewStorageService(t.TempDir())
	require.NoError(t, storage.EnsureUploadDir())

	content := []byte("identical bytes")
	first, _, firstSum, err := storage.SaveFile(makeFileHeader(t, "a.pdf", content), "cv")
	require.NoError(t, err)
	second, _, secondSum, err := storage.SaveFile(makeFileHeader(t, "b.pdf", content), "cv")
	require.NoError(t, err)

	assert.Equal(t, firstSum, secondSum)
	assert.NotEqual(t, first, second)
}

func TestSaveFileRejectsNonPDF(t *testing.T) {
	storage := NewStorageService(t.TempDir())
	require.NoError(t, storage.EnsureUploadDir())

	_, _, _, err := storage.SaveFile(makeFileHeader(t, "resume.docx", []byte("x")), "cv")
	assert.Error(t, err)
}

func TestFetchToTempFile(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("remote document"))
	}))
	defer server.Close()

	storage := NewStorageService(t.TempDir())

	path, cleanup, err := storage.FetchToTempFile(context.Background(), server.URL)
	require.NoError(t, err)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "remote document", string(data))

	cleanup()
	_, err = os.Stat(path)
	assert.True(t, os.IsNotExist(err))
}

func TestFetchToTempFileNon200(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.NotFound(w, r)
	}))
	defer server.Close()

	storage := NewStorageService(t.TempDir())

	_, _, err := storage.FetchToTempFile(context.Background(), server.URL)
	assert.Error(t, err)
}
