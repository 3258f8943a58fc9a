package directory

import "github.com/jfmyers9/radionet/pkg/radionet"

// SelectStream picks the URL to play from a station's streams.
//
// The first stream with a reported bitrate of at least minBitrate and status
// VALID wins. Streams without a bitrate never qualify. When nothing
// qualifies the first stream is returned anyway; an empty list yields "".
func SelectStream(streams []radionet.Stream, minBitrate int) string {
	for _, stream := range streams {
		if stream.BitRate != nil && *stream.BitRate >= minBitrate && stream.Status == radionet.StreamStatusValid {
			return stream.URL
		}
	}

	if len(streams) > 0 {
		return streams[0].URL
	}

	return ""
}
