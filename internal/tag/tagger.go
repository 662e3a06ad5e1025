package tag

import (
	"fmt"
	"io"
	"os"

	"github.com/rs/zerolog"
	mp4tag "github.com/zhaarey/go-mp4tag"

	"github.com/ytget/yt2music/internal/model"
)

// Service embeds metadata into MP4 audio containers
type Service struct {
	log zerolog.Logger
}

// NewService creates a tagging service
func NewService(logger zerolog.Logger) *Service {
	return &Service{
		log: logger.With().Str("component", "tag").Logger(),
	}
}

// EmbedAudioTags writes title, artist, album and optional cover art into the
// container at inputPath, then copies the tagged file to outputPath. Tagging
// happens before anything touches the destination, so a failed write places
// no file there. The input is a temp file the caller removes afterwards.
func (s *Service) EmbedAudioTags(inputPath, outputPath, title, artist, album, coverArtPath string) error {
	var cover []byte
	if coverArtPath != "" {
		data, err := os.ReadFile(coverArtPath)
		if err != nil {
			return &model.FilesystemError{Err: fmt.Errorf("reading cover art: %w", err)}
		}
		cover = data
	}

	if err := writeTags(inputPath, buildTags(title, artist, album, cover)); err != nil {
		return &model.TagWriteError{Err: err}
	}

	if err := copyFile(inputPath, outputPath); err != nil {
		return &model.FilesystemError{Err: err}
	}

	s.log.Debug().Str("title", title).Str("artist", artist).Str("dest", outputPath).Msg("Tags written")
	return nil
}

// writeTags saves the tag atoms into the container in place
func writeTags(path string, tags *mp4tag.MP4Tags) error {
	mp4, err := mp4tag.Open(path)
	if err != nil {
		return fmt.Errorf("opening container: %w", err)
	}
	defer mp4.Close()

	return mp4.Write(tags, nil)
}

// buildTags maps the pipeline's metadata onto MP4 atom fields
func buildTags(title, artist, album string, cover []byte) *mp4tag.MP4Tags {
	tags := &mp4tag.MP4Tags{
		Title:  title,
		Artist: artist,
		Album:  album,
	}
	if len(cover) > 0 {
		tags.Pictures = []*mp4tag.MP4Picture{
			{Format: mp4tag.ImageTypeJPEG, Data: cover},
		}
	}
	return tags
}

// copyFile copies src to dst, truncating dst if it exists
func copyFile(src, dst string) error {
	in, err := os.Open(src)
	if err != nil {
		return fmt.Errorf("opening source: %w", err)
	}
	defer in.Close()

	out, err := os.Create(dst)
	if err != nil {
		return fmt.Errorf("creating destination: %w", err)
	}

	if _, err := io.Copy(out, in); err != nil {
		out.Close()
		os.Remove(dst)
		return fmt.Errorf("copying bytes: %w", err)
	}

	if err := out.Close(); err != nil {
		os.Remove(dst)
		return fmt.Errorf("closing destination: %w", err)
	}
	return nil
}
