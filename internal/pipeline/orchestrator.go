package pipeline

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"sync/atomic"

	"github.com/rs/zerolog"

	"github.com/ytget/yt2music/internal/model"
	"github.com/ytget/yt2music/internal/platform"
)

// Tag and message constants
const (
	// DefaultAlbum is the album atom written into every tagged file
	DefaultAlbum = "YouTube"

	// InvalidLinkMessage is the user-facing text for unresolvable URLs
	InvalidLinkMessage = "Invalid link"

	// invalidLinkSignature marks platform errors caused by a bad video URL
	invalidLinkSignature = "extractVideoID"

	// FinalFileExtension is the container extension of every placed artifact
	FinalFileExtension = ".mp4"
)

// ErrRunInProgress is returned when Run is called while another run is active
var ErrRunInProgress = errors.New("a download is already in progress")

// Service orchestrates download runs. At most one run is active at a time;
// a second Run call while busy fails fast with ErrRunInProgress.
type Service struct {
	client     PlatformClient
	downloader Downloader
	tagger     Tagger
	log        zerolog.Logger
	cb         Callbacks

	running atomic.Bool

	mu   sync.Mutex
	dest platform.Destinations
}

// NewService creates a pipeline service with its collaborators injected
func NewService(client PlatformClient, downloader Downloader, tagger Tagger, dest platform.Destinations, logger zerolog.Logger) *Service {
	return &Service{
		client:     client,
		downloader: downloader,
		tagger:     tagger,
		dest:       dest,
		log:        logger.With().Str("component", "pipeline").Logger(),
	}
}

// SetCallbacks installs the UI delivery callbacks. Must be called before Run.
func (s *Service) SetCallbacks(cb Callbacks) {
	s.cb = cb
}

// SetDownloadFolder changes the user-chosen destination folder. Safe to call
// concurrently with a run; the new folder applies from the next item placed.
func (s *Service) SetDownloadFolder(dir string) {
	s.mu.Lock()
	s.dest.ChosenDir = dir
	s.mu.Unlock()
}

// destinations returns a snapshot of the current destination set
func (s *Service) destinations() platform.Destinations {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.dest
}

// Run executes one full download run for the given input and mode. Playlist
// items are processed sequentially in listing order; a failing item is
// reported and skipped, never aborting the rest of the run. The returned
// summary tallies the outcome per item.
func (s *Service) Run(ctx context.Context, input string, mode model.Mode) (Summary, error) {
	if !s.running.CompareAndSwap(false, true) {
		return Summary{}, ErrRunInProgress
	}
	defer s.running.Store(false)

	collection, err := s.client.Classify(ctx, input)
	if err != nil {
		return Summary{}, err
	}

	summary := Summary{Total: len(collection.Items)}
	for _, item := range collection.Items {
		job := model.NewDownloadJob(item, mode)

		if err := s.runItem(ctx, job, item); err != nil {
			summary.Failed++
			message := friendlyMessage(err)
			job.LastError = message
			job.Finish(model.JobStateFailed)
			s.notifyState(job)
			if s.cb.OnItemError != nil {
				s.cb.OnItemError(job, message)
			}
			s.log.Error().Err(err).Str("url", item.URL).Msg("Item failed")

			// A cancelled context fails every remaining item the same
			// way, so stop the run instead
			if ctx.Err() != nil {
				break
			}
			continue
		}

		summary.Succeeded++
		job.Finish(model.JobStateDone)
		s.notifyState(job)
		if s.cb.OnItemDone != nil {
			s.cb.OnItemDone(job)
		}
		s.log.Info().Str("path", job.FinalPath).Msg("Item finished")
	}

	if s.cb.OnSummary != nil {
		s.cb.OnSummary(summary)
	}
	return summary, nil
}

// runItem moves one job through the pipeline stages up to placement. Temp
// files and per-item platform state are released on every exit path.
func (s *Service) runItem(ctx context.Context, job *model.DownloadJob, item model.Item) error {
	defer s.cleanup(job, item)

	s.transition(job, model.JobStateFetchingMetadata)
	meta, err := s.client.FetchMetadata(ctx, item)
	if err != nil {
		return err
	}
	job.TempThumbPath = meta.ThumbnailPath

	s.transition(job, model.JobStateDisplayingPreview)
	if s.cb.OnPreview != nil {
		s.cb.OnPreview(job, meta)
	}

	s.transition(job, model.JobStateSelectingStream)
	desc, err := s.client.SelectStream(ctx, item, job.Mode)
	if err != nil {
		return err
	}

	s.transition(job, model.JobStateDownloading)
	stream, size, err := s.client.OpenStream(ctx, desc)
	if err != nil {
		return err
	}
	defer stream.Close()

	tmpMedia, err := tempMediaFile()
	if err != nil {
		return &model.FilesystemError{Err: err}
	}
	job.TempMediaPath = tmpMedia

	err = s.downloader.Download(ctx, stream, size, tmpMedia, func(fraction float64) {
		job.SetProgress(fraction)
		if s.cb.OnProgress != nil {
			s.cb.OnProgress(job, job.Progress)
		}
	})
	if err != nil {
		return err
	}

	return s.place(job, meta, tmpMedia)
}

// place moves the downloaded bytes to their destination, tagging audio on
// the way. The temp download itself is never moved, only copied, so cleanup
// stays uniform across modes and outcomes.
func (s *Service) place(job *model.DownloadJob, meta *model.VideoMetadata, tmpMedia string) error {
	dest := s.destinations()
	fileName := platform.MakeSafeFilename(meta.Title) + FinalFileExtension

	if job.Mode == model.ModeAudio {
		s.transition(job, model.JobStateTagging)

		dir := dest.AudioDir()
		if err := platform.CreateDirectoryIfNotExists(dir); err != nil {
			return &model.FilesystemError{Err: err}
		}

		finalPath := filepath.Join(dir, fileName)
		if err := s.tagger.EmbedAudioTags(tmpMedia, finalPath, meta.Title, meta.Uploader, DefaultAlbum, meta.ThumbnailPath); err != nil {
			return err
		}
		job.FinalPath = finalPath
		s.transition(job, model.JobStateFinalizing)
		return nil
	}

	s.transition(job, model.JobStateFinalizing)

	dir := dest.VideoDir()
	if err := platform.CreateDirectoryIfNotExists(dir); err != nil {
		return &model.FilesystemError{Err: err}
	}

	finalPath := filepath.Join(dir, fileName)
	if err := copyFile(tmpMedia, finalPath); err != nil {
		return &model.FilesystemError{Err: err}
	}
	job.FinalPath = finalPath
	return nil
}

// cleanup removes the job's temp files and releases platform state
func (s *Service) cleanup(job *model.DownloadJob, item model.Item) {
	if job.TempMediaPath != "" {
		if err := os.Remove(job.TempMediaPath); err != nil && !os.IsNotExist(err) {
			s.log.Warn().Err(err).Str("path", job.TempMediaPath).Msg("Temp media cleanup failed")
		}
	}
	if job.TempThumbPath != "" {
		if err := os.Remove(job.TempThumbPath); err != nil && !os.IsNotExist(err) {
			s.log.Warn().Err(err).Str("path", job.TempThumbPath).Msg("Temp thumbnail cleanup failed")
		}
	}
	s.client.Release(item)
}

// transition records a state change and notifies the UI
func (s *Service) transition(job *model.DownloadJob, state model.JobState) {
	job.State = state
	s.notifyState(job)
}

func (s *Service) notifyState(job *model.DownloadJob) {
	if s.cb.OnState != nil {
		s.cb.OnState(job)
	}
}

// friendlyMessage translates pipeline errors into user-facing text. Platform
// resolution failures caused by an unparseable URL collapse into a fixed
// message; everything else surfaces verbatim.
func friendlyMessage(err error) string {
	var resErr *model.ResolutionError
	if errors.As(err, &resErr) && strings.HasPrefix(resErr.Err.Error(), invalidLinkSignature) {
		return InvalidLinkMessage
	}
	return err.Error()
}

// tempMediaFile reserves a temporary file for the raw download
func tempMediaFile() (string, error) {
	tmp, err := os.CreateTemp("", "yt2music-*.mp4")
	if err != nil {
		return "", fmt.Errorf("creating media temp file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return "", fmt.Errorf("closing media temp file: %w", err)
	}
	return tmp.Name(), nil
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
