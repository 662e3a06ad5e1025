package model

import (
	"errors"
	"fmt"
	"testing"
)

func TestStageErrorsKeepMessageVerbatim(t *testing.T) {
	underlying := errors.New("connection reset by peer")

	tests := []struct {
		name string
		err  error
	}{
		{"resolution", &ResolutionError{Err: underlying}},
		{"download", &DownloadError{Err: underlying}},
		{"tag write", &TagWriteError{Err: underlying}},
		{"filesystem", &FilesystemError{Err: underlying}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.err.Error() != underlying.Error() {
				t.Errorf("Expected message %q, got %q", underlying.Error(), tt.err.Error())
			}

			if !errors.Is(tt.err, underlying) {
				t.Error("Expected wrapper to unwrap to the underlying error")
			}
		})
	}
}

func TestNoStreamAvailableErrorMessage(t *testing.T) {
	err := &NoStreamAvailableError{Mode: ModeAudio}
	expected := "no audio stream available"
	if err.Error() != expected {
		t.Errorf("Expected %q, got %q", expected, err.Error())
	}
}

func TestErrorsAsFindsStageType(t *testing.T) {
	wrapped := fmt.Errorf("fetching metadata: %w", &ResolutionError{Err: errors.New("video not found")})

	var resErr *ResolutionError
	if !errors.As(wrapped, &resErr) {
		t.Fatal("Expected errors.As to find ResolutionError")
	}

	if resErr.Error() != "video not found" {
		t.Errorf("Unexpected message: %q", resErr.Error())
	}
}
