package pipeline

// Package pipeline drives one download run end to end: classify the input,
// then for each item fetch metadata, surface a preview, select a stream,
// transfer it with progress, tag audio, and place the artifact at its
// destination. Items fail independently; a run always ends with a summary.
