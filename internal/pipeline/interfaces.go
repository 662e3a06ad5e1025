package pipeline

import (
	"context"
	"io"

	"github.com/ytget/yt2music/internal/model"
)

// PlatformClient resolves inputs against the media platform
type PlatformClient interface {
	// Classify expands the input into an ordered collection of items
	Classify(ctx context.Context, input string) (*model.Collection, error)

	// FetchMetadata resolves title, uploader and thumbnail for one item
	FetchMetadata(ctx context.Context, item model.Item) (*model.VideoMetadata, error)

	// SelectStream picks one concrete stream for the item and mode
	SelectStream(ctx context.Context, item model.Item, mode model.Mode) (*model.StreamDescriptor, error)

	// OpenStream opens the byte stream for a selected descriptor
	OpenStream(ctx context.Context, desc *model.StreamDescriptor) (io.ReadCloser, int64, error)

	// Release drops per-item platform state once the item's run finished
	Release(item model.Item)
}

// Downloader transfers stream bytes to a local file with progress reporting
type Downloader interface {
	Download(ctx context.Context, src io.Reader, totalSize int64, dest string, onProgress func(float64)) error
}

// Tagger embeds metadata into a downloaded audio container
type Tagger interface {
	EmbedAudioTags(inputPath, outputPath, title, artist, album, coverArtPath string) error
}

// Callbacks delivers run progress to the UI layer. All callbacks are invoked
// from the run's goroutine; the UI side is responsible for marshalling onto
// its render thread. Any callback may be nil.
type Callbacks struct {
	// OnState fires on every job state transition
	OnState func(job *model.DownloadJob)

	// OnPreview fires once per item when metadata is ready for display
	OnPreview func(job *model.DownloadJob, meta *model.VideoMetadata)

	// OnProgress fires with the job's monotonic completion fraction
	OnProgress func(job *model.DownloadJob, fraction float64)

	// OnItemDone fires when an item finished successfully
	OnItemDone func(job *model.DownloadJob)

	// OnItemError fires with a user-facing message when an item failed
	OnItemError func(job *model.DownloadJob, message string)

	// OnSummary fires once at the end of the run
	OnSummary func(summary Summary)
}

// Summary is the per-run outcome tally
type Summary struct {
	Total     int
	Succeeded int
	Failed    int
}
