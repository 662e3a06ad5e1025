package model

// Mode selects what gets downloaded for an item
type Mode string

const (
	// ModeAudio downloads the audio track only and tags the result
	ModeAudio Mode = "audio"

	// ModeVideo downloads a progressive audio+video stream without tagging
	ModeVideo Mode = "video"
)

// String returns the string representation of Mode
func (m Mode) String() string {
	return string(m)
}

// Item is an opaque reference to a single downloadable video. The URL is
// taken verbatim from user input or playlist expansion; validity is only
// confirmed when the metadata fetcher resolves it.
type Item struct {
	URL string
}

// Collection is an ordered set of items expanded from a playlist URL.
// Order matches the platform's listing order and duplicates are preserved.
// A single non-playlist input is represented as a collection of one item.
type Collection struct {
	Title string
	Items []Item
}

// IsSingle returns true if the collection holds exactly one item
func (c *Collection) IsSingle() bool {
	return len(c.Items) == 1
}
