package tag

// Package tag writes MP4 metadata atoms (title, artist, album, cover art)
// into downloaded audio files. The temp download is tagged in place and only
// then copied to its destination, so a failed write places nothing there.
