package ui

import (
	"context"
	"fmt"
	"strings"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"
	"github.com/rs/zerolog"

	"github.com/ytget/yt2music/internal/config"
	"github.com/ytget/yt2music/internal/model"
	"github.com/ytget/yt2music/internal/pipeline"
)

// RootUI is the main application window content
type RootUI struct {
	window   fyne.Window
	pipeline *pipeline.Service
	settings *config.Settings
	log      zerolog.Logger

	urlEntry      *widget.Entry
	folderButton  *widget.Button
	folderLabel   *widget.Label
	audioButton   *widget.Button
	videoButton   *widget.Button
	previewImage  *canvas.Image
	titleLabel    *widget.Label
	uploaderLabel *widget.Label
	formatLabel   *widget.Label
	progressBar   *widget.ProgressBar
	percentLabel  *widget.Label
	progressRow   *fyne.Container
	statusLabel   *widget.Label

	// busy mirrors whether a run owns the widgets; read and written on the
	// render thread only
	busy bool
}

// NewRootUI creates and wires the main UI
func NewRootUI(window fyne.Window, svc *pipeline.Service, settings *config.Settings, logger zerolog.Logger) *RootUI {
	ui := &RootUI{
		window:   window,
		pipeline: svc,
		settings: settings,
		log:      logger.With().Str("component", "ui").Logger(),
	}

	svc.SetCallbacks(pipeline.Callbacks{
		OnPreview:   ui.onPreview,
		OnProgress:  ui.onProgress,
		OnItemDone:  ui.onItemDone,
		OnItemError: ui.onItemError,
		OnSummary:   ui.onSummary,
	})

	ui.setupUI()
	return ui
}

// setupUI creates and arranges all UI components
func (ui *RootUI) setupUI() {
	ui.urlEntry = widget.NewEntry()
	ui.urlEntry.SetPlaceHolder(URLPlaceholder)
	ui.urlEntry.OnSubmitted = func(string) {
		ui.startRun(ui.settings.GetLastMode())
	}

	ui.folderButton = widget.NewButton(FolderButtonLabel, ui.onChooseFolder)
	ui.folderLabel = widget.NewLabel(folderIndicator(ui.settings.GetDownloadFolder()))
	ui.folderLabel.Truncation = fyne.TextTruncateEllipsis

	ui.audioButton = widget.NewButton(AudioButtonLabel, func() { ui.startRun(model.ModeAudio) })
	ui.videoButton = widget.NewButton(VideoButtonLabel, func() { ui.startRun(model.ModeVideo) })

	ui.previewImage = &canvas.Image{FillMode: canvas.ImageFillContain}
	ui.previewImage.SetMinSize(fyne.NewSize(PreviewImageSize, PreviewImageSize))
	ui.titleLabel = widget.NewLabel("")
	ui.titleLabel.TextStyle = fyne.TextStyle{Bold: true}
	ui.titleLabel.Truncation = fyne.TextTruncateEllipsis
	ui.uploaderLabel = widget.NewLabel("")
	ui.uploaderLabel.Truncation = fyne.TextTruncateEllipsis
	ui.formatLabel = widget.NewLabel("")

	ui.progressBar = widget.NewProgressBar()
	ui.percentLabel = widget.NewLabel(fmt.Sprintf(ProgressPercentFormat, 0))
	ui.statusLabel = widget.NewLabel(StatusReady)
	ui.statusLabel.Wrapping = fyne.TextWrapWord

	previewRow := container.NewBorder(nil, nil, ui.previewImage, nil,
		container.NewVBox(ui.titleLabel, ui.uploaderLabel, ui.formatLabel),
	)
	ui.progressRow = container.NewBorder(nil, nil, nil, ui.percentLabel, ui.progressBar)
	ui.progressRow.Hide()
	folderRow := container.NewBorder(nil, nil, ui.folderButton, nil, ui.folderLabel)
	buttonRow := container.NewGridWithColumns(2, ui.audioButton, ui.videoButton)

	content := container.NewVBox(
		ui.urlEntry,
		folderRow,
		buttonRow,
		previewRow,
		ui.progressRow,
		ui.statusLabel,
	)

	ui.window.SetContent(content)
	ui.window.Resize(fyne.NewSize(WindowWidth, WindowHeight))
}

// startRun kicks off a download run on a background goroutine. While a run
// owns the widgets (Enter in the URL field can re-enter here), nothing is
// touched beyond the status line.
func (ui *RootUI) startRun(mode model.Mode) {
	if ui.busy {
		ui.statusLabel.SetText(StatusAlreadyRunning)
		return
	}

	input := strings.TrimSpace(ui.urlEntry.Text)
	if input == "" {
		ui.statusLabel.SetText(StatusEmptyInput)
		return
	}

	ui.settings.SetLastMode(mode)
	ui.busy = true
	ui.setBusy(true)
	ui.resetPreview()
	ui.progressRow.Show()
	ui.statusLabel.SetText("")

	go func() {
		_, err := ui.pipeline.Run(context.Background(), input, mode)
		if err != nil {
			fyne.Do(func() {
				if err == pipeline.ErrRunInProgress {
					// another run still owns the widgets; leave them alone
					ui.statusLabel.SetText(StatusAlreadyRunning)
					return
				}
				ui.busy = false
				ui.setBusy(false)
				ui.progressRow.Hide()
				ui.statusLabel.SetText(fmt.Sprintf(StatusErrorFormat, err.Error()))
			})
		}
	}()
}

// onChooseFolder opens the destination folder picker
func (ui *RootUI) onChooseFolder() {
	dialog.ShowFolderOpen(func(uri fyne.ListableURI, err error) {
		if err != nil || uri == nil {
			return
		}
		dir := uri.Path()
		ui.settings.SetDownloadFolder(dir)
		ui.pipeline.SetDownloadFolder(dir)
		ui.folderLabel.SetText(folderIndicator(dir))
		ui.log.Info().Str("dir", dir).Msg("Download folder changed")
	}, ui.window)
}

func (ui *RootUI) onPreview(job *model.DownloadJob, meta *model.VideoMetadata) {
	fyne.Do(func() {
		if meta.Preview != nil {
			ui.previewImage.Image = meta.Preview
			ui.previewImage.Refresh()
		}
		ui.titleLabel.SetText(meta.Title)
		ui.uploaderLabel.SetText(meta.Uploader)
		ui.formatLabel.SetText(job.Mode.String())
		ui.progressBar.SetValue(0)
		ui.percentLabel.SetText(fmt.Sprintf(ProgressPercentFormat, 0))
	})
}

func (ui *RootUI) onProgress(job *model.DownloadJob, fraction float64) {
	fyne.Do(func() {
		ui.progressBar.SetValue(fraction)
		ui.percentLabel.SetText(fmt.Sprintf(ProgressPercentFormat, job.Percent()))
	})
}

func (ui *RootUI) onItemDone(job *model.DownloadJob) {
	fyne.Do(func() {
		ui.statusLabel.SetText(StatusComplete)
		ui.urlEntry.SetText("")
	})
}

func (ui *RootUI) onItemError(job *model.DownloadJob, message string) {
	fyne.Do(func() {
		ui.statusLabel.SetText(fmt.Sprintf(StatusErrorFormat, message))
	})
}

func (ui *RootUI) onSummary(summary pipeline.Summary) {
	fyne.Do(func() {
		ui.busy = false
		ui.setBusy(false)
		ui.progressRow.Hide()
		if summary.Total > 1 {
			ui.statusLabel.SetText(fmt.Sprintf(StatusSummaryFormat, summary.Succeeded, summary.Total))
		}
	})
}

// setBusy toggles the action buttons for the duration of a run
func (ui *RootUI) setBusy(busy bool) {
	if busy {
		ui.audioButton.Disable()
		ui.videoButton.Disable()
		return
	}
	ui.audioButton.Enable()
	ui.videoButton.Enable()
}

func (ui *RootUI) resetPreview() {
	ui.previewImage.Image = nil
	ui.previewImage.Refresh()
	ui.titleLabel.SetText("")
	ui.uploaderLabel.SetText("")
	ui.formatLabel.SetText("")
	ui.progressBar.SetValue(0)
	ui.percentLabel.SetText(fmt.Sprintf(ProgressPercentFormat, 0))
}

// folderIndicator renders the chosen folder, or the defaults marker
func folderIndicator(dir string) string {
	if dir == "" {
		return DefaultFolderIndicator
	}
	return dir
}
