package api

import (
	"context"
	"errors"
	"io"
	"strings"
	"sync"

	"github.com/kkdai/youtube/v2"
)

// fakeResolver serves canned videos keyed by URL so handlers can be
// exercised without network access.
type fakeResolver struct {
	mu           sync.Mutex
	videos       map[string]*youtube.Video
	resolveErr   map[string]error
	resolveCalls int
}

func newFakeResolver() *fakeResolver {
	return &fakeResolver{
		videos:     make(map[string]*youtube.Video),
		resolveErr: make(map[string]error),
	}
}

func (r *fakeResolver) addVideo(url, title string, formats ...youtube.Format) {
	r.videos[url] = &youtube.Video{
		ID:      url,
		Title:   title,
		Author:  "Test Channel",
		Formats: formats,
	}
}

func (r *fakeResolver) GetVideoContext(_ context.Context, url string) (*youtube.Video, error) {
	r.mu.Lock()
	r.resolveCalls++
	r.mu.Unlock()

	if err, ok := r.resolveErr[url]; ok {
		return nil, err
	}
	video, ok := r.videos[url]
	if !ok {
		return nil, errors.New("video not found")
	}
	return video, nil
}

func (r *fakeResolver) GetStreamContext(_ context.Context, video *youtube.Video, _ *youtube.Format) (io.ReadCloser, int64, error) {
	payload := "stream data for " + video.Title
	return io.NopCloser(strings.NewReader(payload)), int64(len(payload)), nil
}

func progressiveFormat(label string, height int) youtube.Format {
	return youtube.Format{
		MimeType:      `video/mp4; codecs="avc1.4d401f, mp4a.40.2"`,
		QualityLabel:  label,
		Height:        height,
		AudioChannels: 2,
		Bitrate:       height * 1000,
	}
}
