package batch

import "strings"

const youTubeEmbedPrefix = "https://www.youtube.com/embed/"

// IsYouTubeURL reports whether url points to youtube.com or youtu.be.
func IsYouTubeURL(url string) bool {
	return strings.Contains(url, "youtube.com") || strings.Contains(url, "youtu.be")
}

// YouTubeVideoID extracts the video ID from the watch, short and embed URL forms,
// tried in that order. The url is returned as-is when no form matches.
func YouTubeVideoID(url string) string {
	switch {
	case strings.Contains(url, "youtube.com/watch?v="):
		return strings.Split(strings.Split(url, "v=")[1], "&")[0]
	case strings.Contains(url, "youtu.be/"):
		return strings.Split(strings.Split(url, "youtu.be/")[1], "?")[0]
	case strings.Contains(url, "youtube.com/embed/"):
		return strings.Split(strings.Split(url, "embed/")[1], "?")[0]
	}
	return url
}

// LectureLink returns the value stored in lectureLink for url and whether it is a YouTube video.
func LectureLink(url string) (string, bool) {
	if !IsYouTubeURL(url) {
		return url, false
	}
	return YouTubeVideoID(url), true
}

// EmbedURL returns the embeddable player URL of a YouTube video ID.
func EmbedURL(videoID string) string {
	return youTubeEmbedPrefix + videoID
}
