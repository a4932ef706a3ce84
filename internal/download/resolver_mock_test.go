package download

import (
	"context"
	"errors"
	"io"
	"strings"

	"github.com/kkdai/youtube/v2"
)

// fakeResolver serves canned videos keyed by URL and streams a fixed
// payload, without touching the network.
type fakeResolver struct {
	videos      map[string]*youtube.Video
	resolveErr  map[string]error
	streamErr   error
	streamCalls int
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
		Formats: formats,
	}
}

func (r *fakeResolver) GetVideoContext(_ context.Context, url string) (*youtube.Video, error) {
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
	r.streamCalls++
	if r.streamErr != nil {
		return nil, 0, r.streamErr
	}
	payload := "stream data for " + video.Title
	return io.NopCloser(strings.NewReader(payload)), int64(len(payload)), nil
}
