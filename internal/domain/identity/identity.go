// Package identity maps YouTube channel and video URLs to their canonical
// identifiers. Resolution is a pure string match and never touches the network.
package identity

import (
	"regexp"
	"strings"

	pkgerrors "github.com/Conte777/tubedigest/pkg/errors"
)

var (
	ErrInvalidChannelURL = pkgerrors.NewNotFoundError("invalid YouTube channel URL")
	ErrInvalidVideoURL   = pkgerrors.NewNotFoundError("invalid YouTube video URL")
)

// Form tells which URL shape a channel identifier came from
type Form string

const (
	FormChannel Form = "channel"
	FormHandle  Form = "handle"
	FormCustom  Form = "custom"
)

// ChannelRef is a resolved channel identifier
type ChannelRef struct {
	ID   string
	Form Form
}

// CanonicalURL rebuilds the channel URL from the identifier
func (r ChannelRef) CanonicalURL() string {
	switch r.Form {
	case FormHandle:
		return "https://www.youtube.com/@" + r.ID
	case FormCustom:
		return "https://www.youtube.com/c/" + r.ID
	default:
		return "https://www.youtube.com/channel/" + r.ID
	}
}

type channelMatcher struct {
	form Form
	re   *regexp.Regexp
}

// Order matters: the full /channel/ path is tried before the looser forms.
var channelMatchers = []channelMatcher{
	{form: FormChannel, re: regexp.MustCompile(`youtube\.com/channel/([\w-]+)`)},
	{form: FormHandle, re: regexp.MustCompile(`youtube\.com/@([\w-]+)`)},
	{form: FormCustom, re: regexp.MustCompile(`youtube\.com/c/([\w-]+)`)},
}

var videoMatchers = []*regexp.Regexp{
	regexp.MustCompile(`youtube\.com/watch\?(?:[^#]*&)?v=([\w-]+)`),
	regexp.MustCompile(`youtu\.be/([\w-]+)`),
	regexp.MustCompile(`youtube\.com/embed/([\w-]+)`),
	regexp.MustCompile(`youtube\.com/shorts/([\w-]+)`),
}

// ResolveChannel returns the identifier of the first matching channel URL form.
func ResolveChannel(rawURL string) (ChannelRef, error) {
	rawURL = strings.TrimSpace(rawURL)
	for _, m := range channelMatchers {
		if sub := m.re.FindStringSubmatch(rawURL); sub != nil {
			return ChannelRef{ID: sub[1], Form: m.form}, nil
		}
	}
	return ChannelRef{}, ErrInvalidChannelURL
}

// ResolveVideo returns the video id of a watch, short, embed or shorts URL.
func ResolveVideo(rawURL string) (string, error) {
	rawURL = strings.TrimSpace(rawURL)
	for _, re := range videoMatchers {
		if sub := re.FindStringSubmatch(rawURL); sub != nil {
			return sub[1], nil
		}
	}
	return "", ErrInvalidVideoURL
}

// VideoURL is the canonical watch URL of a video
func VideoURL(videoID string) string {
	return "https://www.youtube.com/watch?v=" + videoID
}

// ThumbnailURL is the default high resolution thumbnail of a video
func ThumbnailURL(videoID string) string {
	return "https://img.youtube.com/vi/" + videoID + "/maxresdefault.jpg"
}
