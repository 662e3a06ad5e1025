package config

import (
	"fyne.io/fyne/v2"

	"github.com/ytget/yt2music/internal/model"
)

// Settings keys for Fyne preferences
const (
	KeyDownloadDir = "download_directory"
	KeyLastMode    = "last_download_mode"
)

// Settings manages persisted application configuration
type Settings struct {
	app fyne.App
}

// NewSettings creates a new settings manager
func NewSettings(app fyne.App) *Settings {
	return &Settings{app: app}
}

// GetDownloadFolder returns the user-chosen download folder. Empty means the
// per-mode defaults apply (auto-import folder for audio, working directory
// for video).
func (s *Settings) GetDownloadFolder() string {
	return s.app.Preferences().String(KeyDownloadDir)
}

// SetDownloadFolder persists the user-chosen download folder
func (s *Settings) SetDownloadFolder(dir string) {
	s.app.Preferences().SetString(KeyDownloadDir, dir)
}

// GetLastMode returns the mode used for the previous download
func (s *Settings) GetLastMode() model.Mode {
	mode := s.app.Preferences().String(KeyLastMode)
	if mode == string(model.ModeVideo) {
		return model.ModeVideo
	}
	return model.ModeAudio
}

// SetLastMode persists the mode of the most recent download
func (s *Settings) SetLastMode(mode model.Mode) {
	s.app.Preferences().SetString(KeyLastMode, string(mode))
}
