package platform

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"
)

// Operating system constants
const (
	OSDarwin  = "darwin"
	OSWindows = "windows"
	OSLinux   = "linux"
)

// File permissions
const (
	DefaultDirPermissions = 0755
)

// appleMusicAutoImportPath is the folder the Music app watches and ingests
// from, relative to the user home directory.
const appleMusicAutoImportPath = "Music/Music/Media.localized/Automatically Add to Music.localized"

// CreateDirectoryIfNotExists creates directory if it doesn't exist
func CreateDirectoryIfNotExists(dirPath string) error {
	if _, err := os.Stat(dirPath); os.IsNotExist(err) {
		return os.MkdirAll(dirPath, DefaultDirPermissions)
	}
	return nil
}

// GetHomeDownloadsDir returns the standard Downloads directory for the user
func GetHomeDownloadsDir() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get user home directory: %w", err)
	}
	return filepath.Join(homeDir, "Downloads"), nil
}

// MusicAutoImportDir returns the default drop folder for tagged audio files.
// On macOS this is the Apple Music auto-import folder; Windows and Linux have
// no equivalent watched folder, so the user Downloads directory is the
// documented default there.
func MusicAutoImportDir() (string, error) {
	if runtime.GOOS == OSDarwin {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("failed to get user home directory: %w", err)
		}
		return filepath.Join(homeDir, filepath.FromSlash(appleMusicAutoImportPath)), nil
	}
	return GetHomeDownloadsDir()
}

// Destinations resolves where finished artifacts are placed. A user-chosen
// folder differing from the working directory wins for both modes; otherwise
// audio goes to the auto-import folder and video to the working directory.
type Destinations struct {
	ChosenDir      string // user-picked download folder, empty means defaults
	WorkDir        string
	AudioImportDir string
}

// NewDestinations builds the default destination set for this process
func NewDestinations(chosenDir string) (Destinations, error) {
	workDir, err := os.Getwd()
	if err != nil {
		return Destinations{}, fmt.Errorf("failed to get working directory: %w", err)
	}

	audioDir, err := MusicAutoImportDir()
	if err != nil {
		return Destinations{}, err
	}

	return Destinations{
		ChosenDir:      chosenDir,
		WorkDir:        workDir,
		AudioImportDir: audioDir,
	}, nil
}

// AudioDir returns the destination folder for tagged audio files
func (d Destinations) AudioDir() string {
	if d.userChosen() {
		return d.ChosenDir
	}
	return d.AudioImportDir
}

// VideoDir returns the destination folder for video files
func (d Destinations) VideoDir() string {
	if d.userChosen() {
		return d.ChosenDir
	}
	return d.WorkDir
}

func (d Destinations) userChosen() bool {
	return d.ChosenDir != "" && d.ChosenDir != d.WorkDir
}
