// Package transcriber turns audio chunks into text.
package transcriber

import "context"

// Transcriber converts a single audio file to text.
type Transcriber interface {
	Transcript(ctx context.Context, inputFilePath string) (string, error)
}
