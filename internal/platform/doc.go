package platform

// Package platform contains the glue to the outside world: the YouTube client
// used to classify URLs, fetch metadata and open streams, thumbnail retrieval
// and resizing, filename sanitization, and per-OS destination folder
// resolution (including the Apple Music auto-import folder on macOS).
