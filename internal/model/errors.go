package model

import "fmt"

// The pipeline converts every failure into exactly one of the error types
// below at the stage where it occurs. Each wrapper keeps the underlying
// error's text intact so the UI can show it verbatim.

// ResolutionError means the platform lookup for a URL or ID failed: invalid
// ID, removed content, or a network failure at metadata time.
type ResolutionError struct {
	Err error
}

func (e *ResolutionError) Error() string { return e.Err.Error() }

func (e *ResolutionError) Unwrap() error { return e.Err }

// NoStreamAvailableError means no stream matched the requested mode's
// selection rule.
type NoStreamAvailableError struct {
	Mode Mode
}

func (e *NoStreamAvailableError) Error() string {
	return fmt.Sprintf("no %s stream available", e.Mode)
}

// DownloadError means the byte transfer failed partway through.
type DownloadError struct {
	Err error
}

func (e *DownloadError) Error() string { return e.Err.Error() }

func (e *DownloadError) Unwrap() error { return e.Err }

// TagWriteError means tag embedding failed: malformed container or an I/O
// failure while persisting the tags.
type TagWriteError struct {
	Err error
}

func (e *TagWriteError) Error() string { return e.Err.Error() }

func (e *TagWriteError) Unwrap() error { return e.Err }

// FilesystemError means creating or deleting temporary files, or copying to
// the final destination, failed.
type FilesystemError struct {
	Err error
}

func (e *FilesystemError) Error() string { return e.Err.Error() }

func (e *FilesystemError) Unwrap() error { return e.Err }
