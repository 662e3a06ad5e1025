package model

// Package model defines domain data structures used across the app: items and
// collections resolved from input URLs, fetched video metadata, selected
// stream descriptors, download jobs with explicit state transitions, and the
// error taxonomy reported by the pipeline.
