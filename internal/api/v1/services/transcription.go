package services

import (
	"context"
	"fmt"
	"io"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	"github.com/samber/lo"
	"go.uber.org/zap"
	"notary-api/internal/api/errors"
	"notary-api/internal/api/v1/dto"
	"notary-api/internal/app/audio"
	"notary-api/internal/app/cache"
	"notary-api/internal/app/metrics"
	"notary-api/internal/app/model"
	"notary-api/internal/app/repository"
	"notary-api/internal/app/storage"
	"notary-api/internal/app/transcriber"
)

// TranscriberFactory builds a transcriber for the given API base URL. The
// empty string means the provider's standard endpoint.
type TranscriberFactory func(baseURL string) transcriber.Transcriber

// TranscriptionServiceImpl implements TranscriptionService. Uploads are
// stored in object storage, segmented with ffmpeg and transcribed chunk by
// chunk; the joined text is persisted with the result.
type TranscriptionServiceImpl struct {
	transcriptions    repository.TranscriptionDAO
	agents            repository.AgentDAO
	agentCache        cache.AgentCache
	blobs             storage.BlobStore
	newTranscriber    TranscriberFactory
	segmentDurationMS int
	uploadDir         string
	logger            *zap.Logger
}

// NewTranscriptionService creates a new transcription service
func NewTranscriptionService(
	transcriptions repository.TranscriptionDAO,
	agents repository.AgentDAO,
	agentCache cache.AgentCache,
	blobs storage.BlobStore,
	factory TranscriberFactory,
	segmentDurationMS int,
	uploadDir string,
	logger *zap.Logger,
) TranscriptionService {
	return &TranscriptionServiceImpl{
		transcriptions:    transcriptions,
		agents:            agents,
		agentCache:        agentCache,
		blobs:             blobs,
		newTranscriber:    factory,
		segmentDurationMS: segmentDurationMS,
		uploadDir:         uploadDir,
		logger:            logger,
	}
}

// Transcribe runs the full pipeline synchronously and returns the completed
// transcription. The HTTP server's write timeout bounds the total run time.
func (s *TranscriptionServiceImpl) Transcribe(ctx context.Context, file multipart.File, header *multipart.FileHeader, userID uuid.UUID, agentID *uuid.UUID) (*dto.TranscriptionResponse, error) {
	agentCfg, err := s.resolveAgent(ctx, agentID)
	if err != nil {
		metrics.TranscriptionRequests.WithLabelValues("rejected").Inc()
		return nil, err
	}

	localPath, err := s.saveUpload(file, header)
	if err != nil {
		metrics.TranscriptionRequests.WithLabelValues("failed").Inc()
		return nil, err
	}
	defer os.Remove(localPath)

	key := storage.AudioKey(userID, header.Filename)
	local, err := os.Open(localPath)
	if err != nil {
		metrics.TranscriptionRequests.WithLabelValues("failed").Inc()
		return nil, errors.NewInternalError("Failed to read upload")
	}
	audioURL, err := s.blobs.Upload(ctx, local, header.Size, key, header.Header.Get("Content-Type"))
	local.Close()
	if err != nil {
		s.logger.Error("blob upload failed", zap.String("key", key), zap.Error(err))
		metrics.TranscriptionRequests.WithLabelValues("failed").Inc()
		return nil, errors.NewInternalError("Failed to store audio")
	}

	record := &model.Transcription{
		AudioURL:  audioURL,
		Status:    model.StatusPending,
		AgentID:   &agentCfg.AgentID,
		CreatedBy: &userID,
	}
	if err := s.transcriptions.Create(ctx, record); err != nil {
		metrics.TranscriptionRequests.WithLabelValues("failed").Inc()
		return nil, errors.NewInternalError("Failed to create transcription record")
	}

	text, duration, err := s.run(ctx, localPath, agentCfg)
	if err != nil {
		s.logger.Error("transcription failed",
			zap.String("transcription_id", record.TranscriptionID.String()),
			zap.Error(err))
		s.markFailed(ctx, record.TranscriptionID, duration)
		metrics.TranscriptionRequests.WithLabelValues("failed").Inc()
		return nil, errors.NewInternalError("Transcription failed")
	}

	status := model.StatusCompleted
	updated, err := s.transcriptions.Update(ctx, record.TranscriptionID, repository.TranscriptionUpdate{
		TextContent:     &text,
		DurationSeconds: &duration,
		Status:          &status,
	})
	if err != nil || updated == nil {
		metrics.TranscriptionRequests.WithLabelValues("failed").Inc()
		return nil, errors.NewInternalError("Failed to persist transcription result")
	}

	metrics.TranscriptionRequests.WithLabelValues("completed").Inc()
	s.logger.Info("transcription completed",
		zap.String("transcription_id", updated.TranscriptionID.String()),
		zap.Int("duration_seconds", duration))

	resp := dto.ToTranscriptionResponse(updated)
	return &resp, nil
}

// resolveAgent returns the explicit agent when given, otherwise the default
// agent, which must exist. Transcription runs on Whisper, so the resolved
// agent must be an OPENAI whisper-1 configuration.
func (s *TranscriptionServiceImpl) resolveAgent(ctx context.Context, agentID *uuid.UUID) (*model.AgentConfiguration, error) {
	if agentID != nil {
		a, err := s.agents.GetByID(ctx, *agentID)
		if err != nil {
			return nil, errors.NewInternalError("Failed to get agent")
		}
		if a == nil {
			return nil, errors.NewValidationError("Invalid transcription request", map[string]string{
				"agent_id": "agent does not exist",
			})
		}
		if !a.IsActive {
			return nil, errors.NewValidationError("Invalid transcription request", map[string]string{
				"agent_id": "agent is not active",
			})
		}
		if err := checkWhisperAgent(a); err != nil {
			return nil, err
		}
		return a, nil
	}

	if a, ok := s.agentCache.GetDefaultAgent(ctx); ok {
		if err := checkWhisperAgent(a); err != nil {
			return nil, err
		}
		return a, nil
	}
	a, err := s.agents.GetDefault(ctx)
	if err != nil {
		return nil, errors.NewInternalError("Failed to resolve default agent")
	}
	if a == nil {
		return nil, errors.NewBadRequestError("No active default agent is configured")
	}
	if err := checkWhisperAgent(a); err != nil {
		return nil, err
	}
	s.agentCache.SetDefaultAgent(ctx, a)
	return a, nil
}

// checkWhisperAgent rejects agents the Whisper client cannot serve.
func checkWhisperAgent(a *model.AgentConfiguration) error {
	if a.Provider != model.ProviderOpenAI || a.ModelName != model.WhisperModel {
		return errors.NewBadRequestError(fmt.Sprintf(
			"Agent %q (%s/%s) cannot transcribe audio; only %s %s agents are supported",
			a.AgentName, a.Provider, a.ModelName, model.ProviderOpenAI, model.WhisperModel))
	}
	return nil
}

func (s *TranscriptionServiceImpl) saveUpload(file multipart.File, header *multipart.FileHeader) (string, error) {
	tmp, err := os.CreateTemp(s.uploadDir, "upload-*"+filepath.Ext(header.Filename))
	if err != nil {
		return "", errors.NewInternalError("Failed to store upload")
	}
	defer tmp.Close()

	if _, err := io.Copy(tmp, file); err != nil {
		os.Remove(tmp.Name())
		return "", errors.NewInternalError("Failed to store upload")
	}
	return tmp.Name(), nil
}

// run segments the audio and transcribes every chunk in order.
func (s *TranscriptionServiceImpl) run(ctx context.Context, localPath string, agentCfg *model.AgentConfiguration) (string, int, error) {
	duration, err := audio.GetDuration(ctx, localPath)
	if err != nil {
		return "", 0, fmt.Errorf("duration probe failed: %v", err)
	}

	segmentMS := s.segmentDurationMS
	if override := agentCfg.SegmentDurationMS(); override > 0 {
		segmentMS = override
	}
	baseURL := agentCfg.APIBaseURL

	chunks, dir, err := audio.Segment(ctx, localPath, segmentMS)
	if err != nil {
		return "", duration, err
	}
	defer os.RemoveAll(dir)

	t := s.newTranscriber(baseURL)
	texts := make([]string, 0, len(chunks))
	for _, chunk := range chunks {
		text, err := t.Transcript(ctx, chunk)
		if err != nil {
			return "", duration, fmt.Errorf("chunk %s failed: %v", filepath.Base(chunk), err)
		}
		texts = append(texts, text)
		metrics.TranscriptionSegments.Inc()
	}

	texts = lo.Filter(texts, func(t string, _ int) bool {
		return strings.TrimSpace(t) != ""
	})
	return strings.Join(texts, " "), duration, nil
}

func (s *TranscriptionServiceImpl) markFailed(ctx context.Context, id uuid.UUID, duration int) {
	status := model.StatusFailed
	if _, err := s.transcriptions.Update(ctx, id, repository.TranscriptionUpdate{
		Status:          &status,
		DurationSeconds: &duration,
	}); err != nil {
		s.logger.Error("failed to mark transcription failed",
			zap.String("transcription_id", id.String()), zap.Error(err))
	}
}

func (s *TranscriptionServiceImpl) ListTranscriptions(ctx context.Context) ([]dto.TranscriptionResponse, error) {
	transcriptions, err := s.transcriptions.GetAll(ctx)
	if err != nil {
		return nil, errors.NewInternalError("Failed to list transcriptions")
	}
	return dto.ToTranscriptionResponses(transcriptions), nil
}

func (s *TranscriptionServiceImpl) GetTranscription(ctx context.Context, id uuid.UUID) (*dto.TranscriptionResponse, error) {
	t, err := s.transcriptions.GetByID(ctx, id)
	if err != nil {
		return nil, errors.NewInternalError("Failed to get transcription")
	}
	if t == nil {
		return nil, errors.NewNotFoundError("Transcription")
	}
	resp := dto.ToTranscriptionResponse(t)
	return &resp, nil
}

func (s *TranscriptionServiceImpl) UpdateTranscription(ctx context.Context, id uuid.UUID, req *dto.UpdateTranscriptionRequest) (*dto.TranscriptionResponse, error) {
	var t *model.Transcription
	var err error

	// Text-only updates are manual corrections and skip the generic path.
	if req.TextOnly() {
		t, err = s.transcriptions.UpdateTextContent(ctx, id, *req.TextContent)
	} else {
		t, err = s.transcriptions.Update(ctx, id, repository.TranscriptionUpdate{
			AudioURL:        req.AudioURL,
			TextContent:     req.TextContent,
			DurationSeconds: req.DurationSeconds,
			Status:          req.Status,
		})
	}
	if err != nil {
		return nil, errors.NewInternalError("Failed to update transcription")
	}
	if t == nil {
		return nil, errors.NewNotFoundError("Transcription")
	}

	resp := dto.ToTranscriptionResponse(t)
	return &resp, nil
}

func (s *TranscriptionServiceImpl) DeleteTranscription(ctx context.Context, id uuid.UUID) error {
	deleted, err := s.transcriptions.Delete(ctx, id)
	if err != nil {
		return errors.NewInternalError("Failed to delete transcription")
	}
	if !deleted {
		return errors.NewNotFoundError("Transcription")
	}
	return nil
}
