// Package batch transcribes a local directory of audio files, recording
// results in a local SQLite database. It exists for offline dictation runs
// that should not go through the HTTP API.
package batch

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/samber/lo"
	"github.com/vbauerster/mpb/v8"
	"github.com/vbauerster/mpb/v8/decor"
	"go.uber.org/zap"
	"notary-api/internal/app/audio"
	"notary-api/internal/app/model"
	"notary-api/internal/app/repository/sqlite"
	"notary-api/internal/app/transcriber"
)

var audioExtensions = []string{".mp3", ".m4a", ".wav", ".mp4", ".ogg", ".flac"}

// Processor walks a directory and transcribes every audio file in it.
type Processor struct {
	db                *sqlite.BatchDB
	transcriber       transcriber.Transcriber
	segmentDurationMS int
	logger            *zap.Logger
}

// NewProcessor creates a batch processor.
func NewProcessor(db *sqlite.BatchDB, t transcriber.Transcriber, segmentDurationMS int, logger *zap.Logger) *Processor {
	return &Processor{
		db:                db,
		transcriber:       t,
		segmentDurationMS: segmentDurationMS,
		logger:            logger,
	}
}

// Run processes up to limit unprocessed audio files under inputDir.
// limit <= 0 means no limit.
func (p *Processor) Run(ctx context.Context, inputDir string, limit int) error {
	files, err := p.pendingFiles(inputDir, limit)
	if err != nil {
		return err
	}
	if len(files) == 0 {
		p.logger.Info("no unprocessed audio files found", zap.String("dir", inputDir))
		return nil
	}

	progress := mpb.New(
		mpb.WithOutput(os.Stderr),
		mpb.WithRefreshRate(120*time.Millisecond),
		mpb.WithWaitGroup(&sync.WaitGroup{}),
	)
	bar := progress.AddBar(int64(len(files)),
		mpb.PrependDecorators(
			decor.Name("transcribing ", decor.WC{W: len("transcribing ")}),
			decor.CountersNoUnit("(%d/%d)", decor.WCSyncWidth),
		),
		mpb.AppendDecorators(
			decor.NewPercentage("%.1f", decor.WCSyncSpace),
		),
	)

	for _, file := range files {
		if err := ctx.Err(); err != nil {
			return err
		}
		p.processFile(ctx, file)
		bar.Increment()
	}
	progress.Wait()
	return nil
}

func (p *Processor) pendingFiles(inputDir string, limit int) ([]string, error) {
	entries, err := os.ReadDir(inputDir)
	if err != nil {
		return nil, fmt.Errorf("failed to read input dir: %v", err)
	}

	candidates := lo.FilterMap(entries, func(e os.DirEntry, _ int) (string, bool) {
		if e.IsDir() {
			return "", false
		}
		ext := strings.ToLower(filepath.Ext(e.Name()))
		if !lo.Contains(audioExtensions, ext) {
			return "", false
		}
		return filepath.Join(inputDir, e.Name()), true
	})

	var pending []string
	for _, path := range candidates {
		processed, err := p.db.IsProcessed(filepath.Base(path))
		if err != nil {
			return nil, err
		}
		if processed {
			continue
		}
		pending = append(pending, path)
		if limit > 0 && len(pending) >= limit {
			break
		}
	}
	return pending, nil
}

func (p *Processor) processFile(ctx context.Context, path string) {
	rec := &model.BatchRecord{FileName: filepath.Base(path)}

	text, duration, err := p.transcribe(ctx, path)
	rec.DurationSeconds = duration
	if err != nil {
		p.logger.Error("batch transcription failed", zap.String("file", path), zap.Error(err))
		rec.HasError = true
		rec.ErrorMessage = err.Error()
	} else {
		rec.TextContent = text
	}

	if err := p.db.Record(rec); err != nil {
		p.logger.Error("failed to record batch result", zap.String("file", path), zap.Error(err))
	}
}

func (p *Processor) transcribe(ctx context.Context, path string) (string, int, error) {
	duration, err := audio.GetDuration(ctx, path)
	if err != nil {
		return "", 0, err
	}

	chunks, dir, err := audio.Segment(ctx, path, p.segmentDurationMS)
	if err != nil {
		return "", duration, err
	}
	defer os.RemoveAll(dir)

	texts := make([]string, 0, len(chunks))
	for _, chunk := range chunks {
		text, err := p.transcriber.Transcript(ctx, chunk)
		if err != nil {
			return "", duration, err
		}
		texts = append(texts, text)
	}

	texts = lo.Filter(texts, func(t string, _ int) bool {
		return strings.TrimSpace(t) != ""
	})
	return strings.Join(texts, " "), duration, nil
}
