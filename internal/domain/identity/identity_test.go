package identity

import (
	"errors"
	"testing"

	pkgerrors "github.com/Conte777/tubedigest/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolveChannel(t *testing.T) {
	tests := []struct {
		url  string
		want ChannelRef
	}{
		{"https://youtube.com/@Fireship", ChannelRef{ID: "Fireship", Form: FormHandle}},
		{"https://www.youtube.com/@Linus-Tech_Tips/videos", ChannelRef{ID: "Linus-Tech_Tips", Form: FormHandle}},
		{"https://www.youtube.com/channel/UCsBjURrPoezykLs9EqgamOA", ChannelRef{ID: "UCsBjURrPoezykLs9EqgamOA", Form: FormChannel}},
		{"  https://m.youtube.com/channel/UC-lHJZR3Gqxm24_Vd_AJ5Yw?view=0 ", ChannelRef{ID: "UC-lHJZR3Gqxm24_Vd_AJ5Yw", Form: FormChannel}},
		{"https://youtube.com/c/mkbhd", ChannelRef{ID: "mkbhd", Form: FormCustom}},
	}

	for _, tt := range tests {
		t.Run(tt.url, func(t *testing.T) {
			got, err := ResolveChannel(tt.url)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestResolveChannel_PrefersChannelPath(t *testing.T) {
	got, err := ResolveChannel("https://www.youtube.com/channel/UC123/@handle")
	require.NoError(t, err)
	assert.Equal(t, ChannelRef{ID: "UC123", Form: FormChannel}, got)
}

func TestResolveChannel_Invalid(t *testing.T) {
	for _, url := range []string{
		"https://youtube.com/notachannel",
		"https://vimeo.com/channel/abc",
		"",
		"youtube.com/@",
		"https://www.youtube.com/watch?v=dQw4w9WgXcQ",
	} {
		t.Run(url, func(t *testing.T) {
			_, err := ResolveChannel(url)
			assert.True(t, errors.Is(err, ErrInvalidChannelURL))
			assert.True(t, pkgerrors.IsNotFoundError(err))
			assert.Equal(t, "invalid YouTube channel URL", err.Error())
		})
	}
}

func TestResolveVideo(t *testing.T) {
	tests := map[string]string{
		"https://www.youtube.com/watch?v=dQw4w9WgXcQ":              "dQw4w9WgXcQ",
		"https://www.youtube.com/watch?list=PL1&v=dQw4w9WgXcQ&t=4": "dQw4w9WgXcQ",
		"https://youtu.be/dQw4w9WgXcQ?si=abc":                      "dQw4w9WgXcQ",
		"https://www.youtube.com/embed/dQw4w9WgXcQ":                "dQw4w9WgXcQ",
		"https://youtube.com/shorts/a1B2c3-_d4":                    "a1B2c3-_d4",
	}

	for url, want := range tests {
		t.Run(url, func(t *testing.T) {
			got, err := ResolveVideo(url)
			require.NoError(t, err)
			assert.Equal(t, want, got)
		})
	}
}

func TestResolveVideo_Invalid(t *testing.T) {
	for _, url := range []string{
		"https://youtube.com/@Fireship",
		"https://www.youtube.com/watch?list=PL1",
		"not a url",
	} {
		t.Run(url, func(t *testing.T) {
			_, err := ResolveVideo(url)
			assert.ErrorIs(t, err, ErrInvalidVideoURL)
		})
	}
}

func TestCanonicalURL(t *testing.T) {
	assert.Equal(t, "https://www.youtube.com/@Fireship", ChannelRef{ID: "Fireship", Form: FormHandle}.CanonicalURL())
	assert.Equal(t, "https://www.youtube.com/channel/UC1", ChannelRef{ID: "UC1", Form: FormChannel}.CanonicalURL())
	assert.Equal(t, "https://www.youtube.com/c/mkbhd", ChannelRef{ID: "mkbhd", Form: FormCustom}.CanonicalURL())
}

func TestThumbnailURL(t *testing.T) {
	assert.Equal(t, "https://img.youtube.com/vi/abc/maxresdefault.jpg", ThumbnailURL("abc"))
	assert.Equal(t, "https://www.youtube.com/watch?v=abc", VideoURL("abc"))
}
