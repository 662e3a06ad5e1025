package platform

import (
	"bytes"
	"context"
	"errors"
	"image"
	"image/color"
	"image/jpeg"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"github.com/rs/zerolog"

	"github.com/ytget/yt2music/internal/model"
)

// testJPEG encodes a solid-color JPEG of the given dimensions
func testJPEG(t *testing.T, width, height int) []byte {
	t.Helper()

	img := image.NewRGBA(image.Rect(0, 0, width, height))
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			img.Set(x, y, color.RGBA{R: 200, G: 50, B: 50, A: 255})
		}
	}

	var buf bytes.Buffer
	if err := jpeg.Encode(&buf, img, nil); err != nil {
		t.Fatalf("Failed to encode test JPEG: %v", err)
	}
	return buf.Bytes()
}

func TestFetchThumbnail(t *testing.T) {
	data := testJPEG(t, 400, 300)

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "image/jpeg")
		w.Write(data)
	}))
	defer server.Close()

	client := NewClient(zerolog.Nop())

	path, preview, err := client.fetchThumbnail(context.Background(), server.URL)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	defer os.Remove(path)

	info, err := os.Stat(path)
	if err != nil {
		t.Fatalf("Expected temp thumbnail file to exist: %v", err)
	}
	if info.Size() != int64(len(data)) {
		t.Errorf("Expected raw bytes persisted, got %d of %d", info.Size(), len(data))
	}

	bounds := preview.Bounds()
	if bounds.Dx() != ThumbnailWidth {
		t.Errorf("Expected preview width %d, got %d", ThumbnailWidth, bounds.Dx())
	}
	// 400x300 scaled to width 100 keeps the 4:3 aspect ratio
	if bounds.Dy() != 75 {
		t.Errorf("Expected preview height 75, got %d", bounds.Dy())
	}
}

func TestFetchThumbnailHTTPError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer server.Close()

	client := NewClient(zerolog.Nop())

	_, _, err := client.fetchThumbnail(context.Background(), server.URL)
	if err == nil {
		t.Fatal("Expected an error for a 404 response")
	}

	var resErr *model.ResolutionError
	if !errors.As(err, &resErr) {
		t.Errorf("Expected a ResolutionError, got %T", err)
	}
}

func TestFetchThumbnailBadImage(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("this is not an image"))
	}))
	defer server.Close()

	client := NewClient(zerolog.Nop())

	path, _, err := client.fetchThumbnail(context.Background(), server.URL)
	if err == nil {
		t.Fatal("Expected an error for undecodable bytes")
	}

	// The temp file written before decoding must not be left behind
	if path != "" {
		if _, statErr := os.Stat(path); !os.IsNotExist(statErr) {
			t.Errorf("Expected temp file cleanup on decode failure")
		}
	}
}
