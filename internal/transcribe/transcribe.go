package transcribe

import "context"

// Transcriber turns an audio payload into text. The upload handler treats
// it as best effort: a failure leaves the chunk without a transcript.
type Transcriber interface {
	Transcribe(ctx context.Context, audio []byte, mimeType string) (string, error)
}
