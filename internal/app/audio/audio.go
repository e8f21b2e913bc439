// Package audio shells out to ffmpeg/ffprobe for probing, conversion and
// segmentation. Both binaries must be on PATH.
package audio

import (
	"bytes"
	"context"
	"fmt"
	"math"
	"os"
	"os/exec"
	"path/filepath"
	"strconv"
	"strings"
)

// GetDuration returns the audio duration in whole seconds via ffprobe.
func GetDuration(ctx context.Context, filePath string) (int, error) {
	cmd := exec.CommandContext(ctx, "ffprobe",
		"-v", "error",
		"-show_entries", "format=duration",
		"-of", "default=noprint_wrappers=1:nokey=1",
		filePath)
	output, err := cmd.Output()
	if err != nil {
		return 0, fmt.Errorf("ffprobe error: %v", err)
	}
	durationFloat, err := strconv.ParseFloat(strings.TrimSpace(string(output)), 64)
	if err != nil {
		return 0, fmt.Errorf("unexpected ffprobe output %q: %v", strings.TrimSpace(string(output)), err)
	}
	return int(math.Round(durationFloat)), nil
}

// ConvertToMP3 transcodes any ffmpeg-readable input to MP3 at outputPath.
// An existing output file is reused.
func ConvertToMP3(ctx context.Context, inputPath, outputPath string) error {
	if _, err := os.Stat(outputPath); err == nil {
		return nil
	}

	cmd := exec.CommandContext(ctx, "ffmpeg", "-i", inputPath, "-vn", "-acodec", "libmp3lame", outputPath)
	var stderr bytes.Buffer
	cmd.Stderr = &stderr
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("FFmpeg error: %v, stderr: %s", err, stderr.String())
	}
	return nil
}

// Segment splits the input into MP3 chunks of at most segmentDurationMS
// milliseconds each, written to a fresh temp directory. It returns the chunk
// paths in playback order. Inputs no longer than one segment are transcoded
// to a single chunk so every chunk handed to the transcriber is MP3.
//
// The caller owns the returned directory and should remove it when done.
func Segment(ctx context.Context, inputPath string, segmentDurationMS int) (chunks []string, dir string, err error) {
	if segmentDurationMS <= 0 {
		return nil, "", fmt.Errorf("segment duration must be positive, got %d", segmentDurationMS)
	}

	dir, err = os.MkdirTemp("", "audio-segments-")
	if err != nil {
		return nil, "", fmt.Errorf("failed to create segment dir: %v", err)
	}
	defer func() {
		if err != nil {
			os.RemoveAll(dir)
		}
	}()

	segSeconds := float64(segmentDurationMS) / 1000.0
	pattern := filepath.Join(dir, "chunk_%03d.mp3")

	cmd := exec.CommandContext(ctx, "ffmpeg",
		"-i", inputPath,
		"-vn",
		"-acodec", "libmp3lame",
		"-f", "segment",
		"-segment_time", strconv.FormatFloat(segSeconds, 'f', 3, 64),
		"-reset_timestamps", "1",
		pattern)
	var stderr bytes.Buffer
	cmd.Stderr = &stderr
	if err = cmd.Run(); err != nil {
		return nil, "", fmt.Errorf("FFmpeg error: %v, stderr: %s", err, stderr.String())
	}

	chunks, err = filepath.Glob(filepath.Join(dir, "chunk_*.mp3"))
	if err != nil {
		return nil, "", err
	}
	if len(chunks) == 0 {
		return nil, "", fmt.Errorf("segmentation produced no chunks for %s", inputPath)
	}
	// Glob returns lexical order, which matches the %03d numbering.
	return chunks, dir, nil
}
