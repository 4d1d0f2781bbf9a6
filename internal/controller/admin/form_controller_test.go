package admin

import (
	"bytes"
	"context"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubUploadService struct {
	url   string
	err   error
	calls int
}

func (s *stubUploadService) UploadImage(ctx context.Context, file io.Reader, filename string) (string, error) {
	s.calls++
	if s.err != nil {
		return "", s.err
	}
	return s.url, nil
}

func newUploadRouter(uploads *stubUploadService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	ctrl := NewFormController(nil, nil, uploads)
	r.POST("/api/upload-image", ctrl.UploadImage)
	return r
}

func multipartFile(t *testing.T, field, filename string) (*bytes.Buffer, string) {
	t.Helper()
	body := &bytes.Buffer{}
	w := multipart.NewWriter(body)
	part, err := w.CreateFormFile(field, filename)
	require.NoError(t, err)
	_, err = part.Write([]byte("not really pixels"))
	require.NoError(t, err)
	require.NoError(t, w.Close())
	return body, w.FormDataContentType()
}

func TestUploadImageNoFile(t *testing.T) {
	uploads := &stubUploadService{}
	r := newUploadRouter(uploads)

	// multipart body present, but the expected "file" field is not.
	body, contentType := multipartFile(t, "attachment", "header.png")
	req := httptest.NewRequest(http.MethodPost, "/api/upload-image", body)
	req.Header.Set("Content-Type", contentType)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.JSONEq(t, `{"error":"No file uploaded"}`, rec.Body.String())
	assert.Zero(t, uploads.calls)
}

func TestUploadImageEmptyBody(t *testing.T) {
	uploads := &stubUploadService{}
	r := newUploadRouter(uploads)

	req := httptest.NewRequest(http.MethodPost, "/api/upload-image", nil)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.JSONEq(t, `{"error":"No file uploaded"}`, rec.Body.String())
	assert.Zero(t, uploads.calls)
}

func TestUploadImageUnsupportedFormat(t *testing.T) {
	uploads := &stubUploadService{}
	r := newUploadRouter(uploads)

	body, contentType := multipartFile(t, "file", "notes.txt")
	req := httptest.NewRequest(http.MethodPost, "/api/upload-image", body)
	req.Header.Set("Content-Type", contentType)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.JSONEq(t, `{"error":"Unsupported image format"}`, rec.Body.String())
	assert.Zero(t, uploads.calls)
}

func TestUploadImageReturnsURL(t *testing.T) {
	uploads := &stubUploadService{url: "https://res.example.com/form-builder/header.png"}
	r := newUploadRouter(uploads)

	// extension check is case-insensitive
	body, contentType := multipartFile(t, "file", "header.PNG")
	req := httptest.NewRequest(http.MethodPost, "/api/upload-image", body)
	req.Header.Set("Content-Type", contentType)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"url":"https://res.example.com/form-builder/header.png"}`, rec.Body.String())
	assert.Equal(t, 1, uploads.calls)
}
