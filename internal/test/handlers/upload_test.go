package handlers_test

import (
	"bytes"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/juraijvu/furn-newyear/internal/handlers"
	"github.com/juraijvu/furn-newyear/internal/logger"
	"github.com/juraijvu/furn-newyear/internal/storage"
)

func newUploadRouter(t *testing.T) (*gin.Engine, string) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	dir := t.TempDir()
	store, err := storage.NewDiskStore(dir, "http://localhost:8080", 10<<20)
	require.NoError(t, err)

	router := gin.New()
	handler := handlers.NewUploadHandler(store, logger.NewNop())
	router.POST("/api/upload", handler.Upload)
	return router, dir
}

func multipartImage(t *testing.T, field, filename string, data []byte) (*bytes.Buffer, string) {
	t.Helper()
	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)
	part, err := writer.CreateFormFile(field, filename)
	require.NoError(t, err)
	_, err = part.Write(data)
	require.NoError(t, err)
	require.NoError(t, writer.Close())
	return body, writer.FormDataContentType()
}

func TestUpload_Success(t *testing.T) {
	router, _ := newUploadRouter(t)

	body, contentType := multipartImage(t, "image", "sofa.png", []byte("png-bytes"))
	req, _ := http.NewRequest("POST", "/api/upload", body)
	req.Header.Set("Content-Type", contentType)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var resp struct {
		Path     string `json:"path"`
		FullURL  string `json:"fullUrl"`
		Filename string `json:"filename"`
		Size     int64  `json:"size"`
		Mimetype string `json:"mimetype"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Contains(t, resp.Path, "/uploads/")
	assert.Equal(t, "http://localhost:8080"+resp.Path, resp.FullURL)
	assert.Equal(t, int64(len("png-bytes")), resp.Size)
	assert.Equal(t, "image/png", resp.Mimetype)
}

func TestUpload_MissingFile(t *testing.T) {
	router, _ := newUploadRouter(t)

	body, contentType := multipartImage(t, "document", "sofa.png", []byte("png-bytes"))
	req, _ := http.NewRequest("POST", "/api/upload", body)
	req.Header.Set("Content-Type", contentType)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "no file uploaded")
}

func TestUpload_UnsupportedMediaType(t *testing.T) {
	router, _ := newUploadRouter(t)

	body, contentType := multipartImage(t, "image", "doc.pdf", []byte("%PDF-1.4"))
	req, _ := http.NewRequest("POST", "/api/upload", body)
	req.Header.Set("Content-Type", contentType)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnsupportedMediaType, w.Code)
}
