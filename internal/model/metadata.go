package model

import "image"

// VideoMetadata holds descriptive fields fetched for one item. It is created
// by the metadata fetcher and reused for both the UI preview and tag
// embedding, then discarded when the item's run finishes.
type VideoMetadata struct {
	Title        string
	Uploader     string
	ThumbnailURL string

	// ThumbnailPath is a temporary .jpg file holding the raw thumbnail
	// bytes for cover-art embedding. Removed at the end of the item's run.
	ThumbnailPath string

	// Preview is the thumbnail decoded and downscaled for display
	Preview image.Image
}

// StreamDescriptor identifies one concrete downloadable stream of an item
type StreamDescriptor struct {
	SourceURL string
	Kind      Mode
	MimeType  string

	// QualityRank is the resolution height for video streams, 0 for audio
	QualityRank int

	// Itag references the format in the platform's stream listing
	Itag int
}
