package transcribe

import "context"

// Mock is a canned Transcriber for tests and offline development.
type Mock struct {
	Text string
	Err  error
}

func (m *Mock) Transcribe(ctx context.Context, audio []byte, mimeType string) (string, error) {
	if m.Err != nil {
		return "", m.Err
	}
	if m.Text != "" {
		return m.Text, nil
	}
	return "mock transcript", nil
}
