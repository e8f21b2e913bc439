package handlers

import (
	"bytes"
	"context"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"notary-api/internal/api/middleware"
	"notary-api/internal/api/v1/dto"
)

// stubTranscriptionService records the agent ID the handler resolved.
type stubTranscriptionService struct {
	resp    *dto.TranscriptionResponse
	err     error
	agentID *uuid.UUID
}

func (s *stubTranscriptionService) Transcribe(ctx context.Context, file multipart.File, header *multipart.FileHeader, userID uuid.UUID, agentID *uuid.UUID) (*dto.TranscriptionResponse, error) {
	s.agentID = agentID
	return s.resp, s.err
}

func (s *stubTranscriptionService) ListTranscriptions(ctx context.Context) ([]dto.TranscriptionResponse, error) {
	return nil, s.err
}

func (s *stubTranscriptionService) GetTranscription(ctx context.Context, id uuid.UUID) (*dto.TranscriptionResponse, error) {
	return s.resp, s.err
}

func (s *stubTranscriptionService) UpdateTranscription(ctx context.Context, id uuid.UUID, req *dto.UpdateTranscriptionRequest) (*dto.TranscriptionResponse, error) {
	return s.resp, s.err
}

func (s *stubTranscriptionService) DeleteTranscription(ctx context.Context, id uuid.UUID) error {
	return s.err
}

func setupTranscriptionRouter(svc *stubTranscriptionService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(func(c *gin.Context) {
		c.Set(middleware.ContextUserID, uuid.New().String())
	})

	h := NewTranscriptionHandler(svc)
	group := router.Group("/api/v1/transcriptions")
	group.POST("", h.Create)
	return router
}

func transcribeBody(t *testing.T, fields map[string]string, withFile bool) (*bytes.Buffer, string) {
	t.Helper()
	body := &bytes.Buffer{}
	w := multipart.NewWriter(body)
	for k, v := range fields {
		require.NoError(t, w.WriteField(k, v))
	}
	if withFile {
		part, err := w.CreateFormFile("file", "dictation.mp3")
		require.NoError(t, err)
		_, err = part.Write([]byte("riff"))
		require.NoError(t, err)
	}
	require.NoError(t, w.Close())
	return body, w.FormDataContentType()
}

func TestTranscriptionHandler_Create(t *testing.T) {
	agentID := uuid.New()
	svc := &stubTranscriptionService{resp: &dto.TranscriptionResponse{
		TranscriptionID: uuid.New().String(),
		Status:          "completed",
	}}
	router := setupTranscriptionRouter(svc)

	body, contentType := transcribeBody(t, map[string]string{"agent_id": agentID.String()}, true)
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/transcriptions", body)
	req.Header.Set("Content-Type", contentType)
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusCreated, w.Code)
	require.NotNil(t, svc.agentID)
	assert.Equal(t, agentID, *svc.agentID)
}

func TestTranscriptionHandler_Create_InvalidAgentID(t *testing.T) {
	svc := &stubTranscriptionService{}
	router := setupTranscriptionRouter(svc)

	body, contentType := transcribeBody(t, map[string]string{"agent_id": "not-a-uuid"}, true)
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/transcriptions", body)
	req.Header.Set("Content-Type", contentType)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Nil(t, svc.agentID, "the service must not be reached with a malformed agent_id")
}

func TestTranscriptionHandler_Create_MissingFile(t *testing.T) {
	router := setupTranscriptionRouter(&stubTranscriptionService{})

	body, contentType := transcribeBody(t, nil, false)
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/transcriptions", body)
	req.Header.Set("Content-Type", contentType)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}
