package download

import (
	"context"
	"io"
	"os"

	"github.com/rs/zerolog"

	"github.com/ytget/yt2music/internal/model"
)

// Transfer constants
const (
	ChunkSize = 64 * 1024
)

// Service copies stream bytes to disk with chunked progress reporting
type Service struct {
	log zerolog.Logger
}

// NewService creates a download service
func NewService(logger zerolog.Logger) *Service {
	return &Service{
		log: logger.With().Str("component", "download").Logger(),
	}
}

// Download copies src into the file at dest in fixed-size chunks. After each
// chunk the fraction downloaded/totalSize is reported through onProgress,
// clamped to 1.0 when the source delivers more bytes than announced. When
// totalSize is unknown (zero or negative) no progress is reported. The
// transfer stops between chunks if ctx is cancelled.
func (s *Service) Download(ctx context.Context, src io.Reader, totalSize int64, dest string, onProgress func(float64)) error {
	out, err := os.Create(dest)
	if err != nil {
		return &model.FilesystemError{Err: err}
	}
	defer out.Close()

	buf := make([]byte, ChunkSize)
	var downloaded int64

	for {
		if err := ctx.Err(); err != nil {
			return &model.DownloadError{Err: err}
		}

		n, readErr := src.Read(buf)
		if n > 0 {
			if _, writeErr := out.Write(buf[:n]); writeErr != nil {
				return &model.FilesystemError{Err: writeErr}
			}
			downloaded += int64(n)
			s.report(onProgress, downloaded, totalSize)
		}
		if readErr == io.EOF {
			break
		}
		if readErr != nil {
			return &model.DownloadError{Err: readErr}
		}
	}

	if err := out.Sync(); err != nil {
		return &model.FilesystemError{Err: err}
	}

	s.log.Debug().Int64("bytes", downloaded).Str("dest", dest).Msg("Transfer finished")
	return nil
}

func (s *Service) report(onProgress func(float64), downloaded, totalSize int64) {
	if onProgress == nil || totalSize <= 0 {
		return
	}
	fraction := float64(downloaded) / float64(totalSize)
	if fraction > 1 {
		fraction = 1
	}
	onProgress(fraction)
}
