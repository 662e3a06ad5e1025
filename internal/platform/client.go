package platform

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/kkdai/youtube/v2"
	"github.com/rs/zerolog"

	"github.com/ytget/yt2music/internal/model"
)

// Timeout constants
const (
	DefaultRequestTimeout = 60 * time.Second
)

// URL parameters and templates
const (
	PlaylistURLParam = "list="
	WatchURLTemplate = "https://www.youtube.com/watch?v=%s"
)

// Client resolves URLs, metadata and streams against YouTube. Resolved videos
// are kept for the duration of an item's run so preview, tagging and stream
// selection share one platform lookup; the pipeline releases the entry when
// the item finishes.
type Client struct {
	yt   *youtube.Client
	http *http.Client
	log  zerolog.Logger

	mu     sync.Mutex
	videos map[string]*youtube.Video
}

// NewClient creates a platform client. The request timeout applies to
// metadata and thumbnail fetches only; stream transfers run on an untimed
// client because a whole-request timeout would cut off long downloads.
func NewClient(logger zerolog.Logger) *Client {
	return &Client{
		yt:     &youtube.Client{HTTPClient: &http.Client{}},
		http:   &http.Client{Timeout: DefaultRequestTimeout},
		log:    logger.With().Str("component", "platform").Logger(),
		videos: make(map[string]*youtube.Video),
	}
}

// Classify expands the input into an ordered collection of items. Inputs
// containing the playlist marker are resolved eagerly against the platform in
// listing order; anything else is treated as a single item, taken verbatim.
// Malformed single URLs surface later as resolution failures.
func (c *Client) Classify(ctx context.Context, input string) (*model.Collection, error) {
	if !strings.Contains(input, PlaylistURLParam) {
		return &model.Collection{Items: []model.Item{{URL: input}}}, nil
	}

	playlist, err := c.yt.GetPlaylistContext(ctx, input)
	if err != nil {
		c.log.Error().Err(err).Str("url", input).Msg("Playlist resolution failed")
		return nil, &model.ResolutionError{Err: err}
	}

	collection := collectionFromPlaylist(playlist)
	c.log.Info().Str("title", collection.Title).Int("items", len(collection.Items)).Msg("Playlist expanded")
	return collection, nil
}

// FetchMetadata resolves title, uploader and thumbnail for one item. The
// thumbnail bytes are persisted to a temporary .jpg for cover embedding and
// decoded into a small preview image for the UI.
func (c *Client) FetchMetadata(ctx context.Context, item model.Item) (*model.VideoMetadata, error) {
	video, err := c.video(ctx, item.URL)
	if err != nil {
		return nil, &model.ResolutionError{Err: err}
	}

	meta := &model.VideoMetadata{
		Title:        video.Title,
		Uploader:     video.Author,
		ThumbnailURL: bestThumbnailURL(video.Thumbnails),
	}

	if meta.ThumbnailURL != "" {
		path, preview, err := c.fetchThumbnail(ctx, meta.ThumbnailURL)
		if err != nil {
			return nil, err
		}
		meta.ThumbnailPath = path
		meta.Preview = preview
	}

	c.log.Debug().Str("title", meta.Title).Str("uploader", meta.Uploader).Msg("Metadata fetched")
	return meta, nil
}

// SelectStream picks one concrete stream for the item according to the
// mode's deterministic preference rule.
func (c *Client) SelectStream(ctx context.Context, item model.Item, mode model.Mode) (*model.StreamDescriptor, error) {
	video, err := c.video(ctx, item.URL)
	if err != nil {
		return nil, &model.ResolutionError{Err: err}
	}

	var format *youtube.Format
	switch mode {
	case model.ModeAudio:
		format = firstAudioOnlyFormat(video.Formats)
	default:
		format = bestProgressiveFormat(video.Formats)
	}
	if format == nil {
		return nil, &model.NoStreamAvailableError{Mode: mode}
	}

	c.log.Debug().Int("itag", format.ItagNo).Str("mime", format.MimeType).Msg("Stream selected")
	return &model.StreamDescriptor{
		SourceURL:   item.URL,
		Kind:        mode,
		MimeType:    format.MimeType,
		QualityRank: format.Height,
		Itag:        format.ItagNo,
	}, nil
}

// OpenStream opens the byte stream for a previously selected descriptor and
// returns the reader together with the platform-reported total size.
func (c *Client) OpenStream(ctx context.Context, desc *model.StreamDescriptor) (io.ReadCloser, int64, error) {
	video, err := c.video(ctx, desc.SourceURL)
	if err != nil {
		return nil, 0, &model.ResolutionError{Err: err}
	}

	format := formatByItag(video.Formats, desc.Itag)
	if format == nil {
		return nil, 0, &model.NoStreamAvailableError{Mode: desc.Kind}
	}

	stream, size, err := c.yt.GetStreamContext(ctx, video, format)
	if err != nil {
		return nil, 0, &model.DownloadError{Err: err}
	}
	return stream, size, nil
}

// Release drops the resolved video for an item so nothing outlives its run
func (c *Client) Release(item model.Item) {
	c.mu.Lock()
	delete(c.videos, item.URL)
	c.mu.Unlock()
}

// video resolves a video by URL, reusing a previous resolution for the same URL
func (c *Client) video(ctx context.Context, url string) (*youtube.Video, error) {
	c.mu.Lock()
	cached, ok := c.videos[url]
	c.mu.Unlock()
	if ok {
		return cached, nil
	}

	video, err := c.yt.GetVideoContext(ctx, url)
	if err != nil {
		return nil, err
	}

	c.mu.Lock()
	c.videos[url] = video
	c.mu.Unlock()
	return video, nil
}

// collectionFromPlaylist converts platform playlist entries into items,
// preserving listing order and duplicates. Entries without an ID are skipped.
func collectionFromPlaylist(playlist *youtube.Playlist) *model.Collection {
	items := make([]model.Item, 0, len(playlist.Videos))
	for _, entry := range playlist.Videos {
		if entry == nil || entry.ID == "" {
			continue
		}
		items = append(items, model.Item{URL: fmt.Sprintf(WatchURLTemplate, entry.ID)})
	}
	return &model.Collection{Title: playlist.Title, Items: items}
}

// bestThumbnailURL returns the URL of the largest available thumbnail
func bestThumbnailURL(thumbnails youtube.Thumbnails) string {
	best := ""
	bestWidth := uint(0)
	for _, t := range thumbnails {
		if t.URL == "" {
			continue
		}
		if best == "" || t.Width > bestWidth {
			best = t.URL
			bestWidth = t.Width
		}
	}
	return best
}
