package download

import (
	"context"
	"io"

	"github.com/kkdai/youtube/v2"

	"github.com/ytget/yt-batch-downloader/internal/model"
)

// Resolver fetches remote video metadata and opens download streams.
// *youtube.Client satisfies it; tests substitute a fake.
type Resolver interface {
	GetVideoContext(ctx context.Context, url string) (*youtube.Video, error)
	GetStreamContext(ctx context.Context, video *youtube.Video, format *youtube.Format) (io.ReadCloser, int64, error)
}

// Orchestrator defines the download service surface consumed by the
// CLI and HTTP adapters.
type Orchestrator interface {
	SetItemStartCallback(func(index, total int, req model.VideoRequest))
	SetItemDoneCallback(func(index, total int, outcome model.DownloadOutcome))
	RunBatch(ctx context.Context, requests []model.VideoRequest) (*model.BatchSummary, error)
	DownloadOne(ctx context.Context, req model.VideoRequest) model.DownloadOutcome
}
