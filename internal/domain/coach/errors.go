package coach

import (
	"errors"
	"strings"

	"google.golang.org/genai"
)

var (
	ErrDisabled     = errors.New("ai coach is not configured")
	ErrRateLimited  = errors.New("ai coach rate limited")
	ErrUnavailable  = errors.New("ai coach request failed")
	ErrEmptyMessage = errors.New("chat message is empty")
)

const (
	fallbackReply      = "Maaf, saya tidak dapat merespon saat ini."
	rateLimitedMessage = "Maaf, layanan AI sedang mencapai batas penggunaan. Mohon coba lagi dalam beberapa saat."
	failureMessage     = "Maaf, terjadi kesalahan saat menghubungi AI. Silakan coba lagi."
	disabledMessage    = "Maaf, fitur AI coach belum diaktifkan untuk layanan ini."
)

// Bare "rate" would match "generateContent" in request URLs.
var rateLimitMarkers = []string{"rate limit", "rate-limit", "ratelimit", "quota", "429", "RESOURCE_EXHAUSTED"}

// classify wraps a completer error in ErrRateLimited or ErrUnavailable.
func classify(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, ErrRateLimited) || errors.Is(err, ErrUnavailable) || errors.Is(err, ErrDisabled) {
		return err
	}
	var apiErr genai.APIError
	if errors.As(err, &apiErr) {
		if apiErr.Code == 429 || strings.Contains(apiErr.Status, "RESOURCE_EXHAUSTED") {
			return errors.Join(ErrRateLimited, err)
		}
	}
	msg := strings.ToLower(err.Error())
	for _, marker := range rateLimitMarkers {
		if strings.Contains(msg, strings.ToLower(marker)) {
			return errors.Join(ErrRateLimited, err)
		}
	}
	return errors.Join(ErrUnavailable, err)
}

// UserMessage is the Indonesian text shown to the employee for a chat
// failure. It never exposes the underlying error.
func UserMessage(err error) string {
	switch {
	case errors.Is(err, ErrRateLimited):
		return rateLimitedMessage
	case errors.Is(err, ErrDisabled):
		return disabledMessage
	default:
		return failureMessage
	}
}
