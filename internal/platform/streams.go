package platform

import (
	"strings"

	"github.com/kkdai/youtube/v2"
)

// Container constants
const (
	MP4VideoMimePrefix = "video/mp4"
)

// firstAudioOnlyFormat returns the first audio-only format in listing order,
// or nil if none exists. No quality preference is applied.
func firstAudioOnlyFormat(formats []youtube.Format) *youtube.Format {
	for i := range formats {
		f := &formats[i]
		if f.AudioChannels > 0 && f.Width == 0 && f.Height == 0 {
			return f
		}
	}
	return nil
}

// bestProgressiveFormat returns the MP4 format carrying both audio and video
// with the greatest resolution height, or nil if none exists. Ties keep the
// earlier listing entry, so selection is deterministic for a fixed listing.
func bestProgressiveFormat(formats []youtube.Format) *youtube.Format {
	var best *youtube.Format
	for i := range formats {
		f := &formats[i]
		if f.AudioChannels == 0 || f.Width == 0 || f.Height == 0 {
			continue
		}
		if !strings.HasPrefix(f.MimeType, MP4VideoMimePrefix) {
			continue
		}
		if best == nil || f.Height > best.Height {
			best = f
		}
	}
	return best
}

// formatByItag finds a format by its itag number
func formatByItag(formats []youtube.Format, itag int) *youtube.Format {
	for i := range formats {
		if formats[i].ItagNo == itag {
			return &formats[i]
		}
	}
	return nil
}
