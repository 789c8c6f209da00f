package batch

import "testing"

func TestYouTubeVideoID(t *testing.T) {
	tests := []struct {
		url  string
		want string
	}{
		{url: "https://www.youtube.com/watch?v=abc123", want: "abc123"},
		{url: "https://www.youtube.com/watch?v=abc123&t=5", want: "abc123"},
		{url: "https://youtu.be/abc123", want: "abc123"},
		{url: "https://youtu.be/abc123?si=xyz", want: "abc123"},
		{url: "https://www.youtube.com/embed/abc123", want: "abc123"},
		{url: "https://www.youtube.com/embed/abc123?start=10", want: "abc123"},
		{url: "https://www.youtube.com/playlist?list=PL1", want: "https://www.youtube.com/playlist?list=PL1"},
	}
	for _, tt := range tests {
		t.Run(tt.url, func(t *testing.T) {
			if got := YouTubeVideoID(tt.url); got != tt.want {
				t.Errorf("YouTubeVideoID() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestYouTubeVideoID_embedRoundTrip(t *testing.T) {
	for _, url := range []string{
		"https://www.youtube.com/watch?v=dQw4w9WgXcQ&list=x",
		"https://youtu.be/dQw4w9WgXcQ",
		"https://www.youtube.com/embed/dQw4w9WgXcQ",
	} {
		id := YouTubeVideoID(url)
		if again := YouTubeVideoID(EmbedURL(id)); again != id {
			t.Errorf("YouTubeVideoID(EmbedURL(%q)) = %q, want %q", id, again, id)
		}
	}
}

func TestLectureLink(t *testing.T) {
	tests := []struct {
		name     string
		url      string
		wantLink string
		wantYT   bool
	}{
		{name: "watch", url: "https://www.youtube.com/watch?v=abc123&t=5", wantLink: "abc123", wantYT: true},
		{name: "short", url: "https://youtu.be/abc123", wantLink: "abc123", wantYT: true},
		{name: "unmatched youtube form", url: "https://m.youtube.com/shorts/abc", wantLink: "https://m.youtube.com/shorts/abc", wantYT: true},
		{name: "not youtube", url: "https://vimeo.com/123", wantLink: "https://vimeo.com/123"},
		{name: "empty", url: ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			link, yt := LectureLink(tt.url)
			if link != tt.wantLink || yt != tt.wantYT {
				t.Errorf("LectureLink() = (%v, %v), want (%v, %v)", link, yt, tt.wantLink, tt.wantYT)
			}
		})
	}
}
