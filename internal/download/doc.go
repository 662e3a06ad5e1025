package download

// Package download transfers an opened media stream to a local file in
// fixed-size chunks, reporting fractional progress after every chunk and
// honoring context cancellation between chunks.
