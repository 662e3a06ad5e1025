package platform

import (
	"bytes"
	"context"
	"fmt"
	"image"
	_ "image/jpeg" // thumbnail decoding
	_ "image/png"
	"io"
	"net/http"
	"os"

	"github.com/nfnt/resize"

	"github.com/ytget/yt2music/internal/model"
)

// Preview sizing
const (
	ThumbnailWidth = 100
)

// fetchThumbnail downloads the thumbnail, persists the raw bytes to a
// temporary .jpg for cover-art embedding and returns a downscaled preview
// (fixed width, aspect ratio preserved, Lanczos resampling).
func (c *Client) fetchThumbnail(ctx context.Context, url string) (string, image.Image, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return "", nil, &model.ResolutionError{Err: err}
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return "", nil, &model.ResolutionError{Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", nil, &model.ResolutionError{Err: fmt.Errorf("unexpected response %d fetching thumbnail", resp.StatusCode)}
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", nil, &model.ResolutionError{Err: err}
	}

	path, err := writeTempThumbnail(data)
	if err != nil {
		return "", nil, &model.FilesystemError{Err: err}
	}

	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		os.Remove(path)
		return "", nil, &model.ResolutionError{Err: fmt.Errorf("decoding thumbnail: %w", err)}
	}

	preview := resize.Resize(ThumbnailWidth, 0, img, resize.Lanczos3)
	return path, preview, nil
}

// writeTempThumbnail persists thumbnail bytes to a temporary file
func writeTempThumbnail(data []byte) (string, error) {
	tmp, err := os.CreateTemp("", "yt2music-thumb-*.jpg")
	if err != nil {
		return "", fmt.Errorf("creating thumbnail temp file: %w", err)
	}

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return "", fmt.Errorf("writing thumbnail temp file: %w", err)
	}

	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return "", fmt.Errorf("closing thumbnail temp file: %w", err)
	}

	return tmp.Name(), nil
}
