package download

import (
	"bytes"
	"context"
	"errors"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"

	"github.com/ytget/yt2music/internal/model"
)

func TestDownload(t *testing.T) {
	payload := bytes.Repeat([]byte("abc123"), 50_000) // ~300KB, several chunks
	dest := filepath.Join(t.TempDir(), "out.mp4")

	var fractions []float64
	service := NewService(zerolog.Nop())

	err := service.Download(context.Background(), bytes.NewReader(payload), int64(len(payload)), dest, func(f float64) {
		fractions = append(fractions, f)
	})
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	written, err := os.ReadFile(dest)
	if err != nil {
		t.Fatalf("Expected output file: %v", err)
	}
	if !bytes.Equal(written, payload) {
		t.Errorf("Written bytes differ from source: %d vs %d", len(written), len(payload))
	}

	if len(fractions) == 0 {
		t.Fatal("Expected progress callbacks")
	}
	for i, f := range fractions {
		if f < 0 || f > 1 {
			t.Errorf("Fraction %d out of range: %f", i, f)
		}
		if i > 0 && f < fractions[i-1] {
			t.Errorf("Progress went backwards at %d: %f < %f", i, f, fractions[i-1])
		}
	}
	if last := fractions[len(fractions)-1]; last != 1.0 {
		t.Errorf("Expected final fraction 1.0, got %f", last)
	}
}

func TestDownloadUnknownSizeSkipsProgress(t *testing.T) {
	dest := filepath.Join(t.TempDir(), "out.mp4")

	called := false
	service := NewService(zerolog.Nop())

	err := service.Download(context.Background(), bytes.NewReader([]byte("data")), 0, dest, func(float64) {
		called = true
	})
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if called {
		t.Error("Expected no progress callbacks for unknown total size")
	}
}

func TestDownloadOversizedSourceClampsToOne(t *testing.T) {
	payload := bytes.Repeat([]byte("x"), 3*ChunkSize)
	dest := filepath.Join(t.TempDir(), "out.mp4")

	service := NewService(zerolog.Nop())

	// Announced size is smaller than what the source delivers
	err := service.Download(context.Background(), bytes.NewReader(payload), int64(len(payload)/2), dest, func(f float64) {
		if f > 1 {
			t.Errorf("Fraction exceeded 1.0: %f", f)
		}
	})
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
}

func TestDownloadCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	dest := filepath.Join(t.TempDir(), "out.mp4")
	service := NewService(zerolog.Nop())

	err := service.Download(ctx, bytes.NewReader([]byte("data")), 4, dest, nil)
	if err == nil {
		t.Fatal("Expected an error for a cancelled context")
	}

	var dlErr *model.DownloadError
	if !errors.As(err, &dlErr) {
		t.Errorf("Expected a DownloadError, got %T", err)
	}
	if !errors.Is(err, context.Canceled) {
		t.Errorf("Expected context.Canceled in the chain, got %v", err)
	}
}

type failingReader struct{}

func (failingReader) Read([]byte) (int, error) { return 0, io.ErrUnexpectedEOF }

func TestDownloadReadFailure(t *testing.T) {
	dest := filepath.Join(t.TempDir(), "out.mp4")
	service := NewService(zerolog.Nop())

	err := service.Download(context.Background(), failingReader{}, 100, dest, nil)
	if err == nil {
		t.Fatal("Expected an error for a failing source")
	}

	var dlErr *model.DownloadError
	if !errors.As(err, &dlErr) {
		t.Errorf("Expected a DownloadError, got %T", err)
	}
}

func TestDownloadBadDestination(t *testing.T) {
	service := NewService(zerolog.Nop())

	err := service.Download(context.Background(), bytes.NewReader([]byte("data")), 4, filepath.Join(t.TempDir(), "missing", "out.mp4"), nil)
	if err == nil {
		t.Fatal("Expected an error for an uncreatable destination")
	}

	var fsErr *model.FilesystemError
	if !errors.As(err, &fsErr) {
		t.Errorf("Expected a FilesystemError, got %T", err)
	}
}
