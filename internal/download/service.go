package download

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/kkdai/youtube/v2"
	"github.com/sirupsen/logrus"

	"github.com/ytget/yt-batch-downloader/internal/model"
	"github.com/ytget/yt-batch-downloader/internal/platform"
)

// Service runs sequential batch downloads against a Resolver.
type Service struct {
	resolver       Resolver
	downloadDir    string
	allowVideoOnly bool
	log            *logrus.Logger
	onItemStart    func(index, total int, req model.VideoRequest)
	onItemDone     func(index, total int, outcome model.DownloadOutcome)
}

// NewService creates a new download service writing into downloadDir.
// allowVideoOnly enables the adaptive video-only fallback tier used by
// the batch CLI.
func NewService(resolver Resolver, downloadDir string, allowVideoOnly bool, logger *logrus.Logger) *Service {
	return &Service{
		resolver:       resolver,
		downloadDir:    downloadDir,
		allowVideoOnly: allowVideoOnly,
		log:            logger,
	}
}

// SetItemStartCallback sets the callback invoked before each item.
func (s *Service) SetItemStartCallback(callback func(index, total int, req model.VideoRequest)) {
	s.onItemStart = callback
}

// SetItemDoneCallback sets the callback invoked after each item.
func (s *Service) SetItemDoneCallback(callback func(index, total int, outcome model.DownloadOutcome)) {
	s.onItemDone = callback
}

// DownloadDir returns the directory downloads are written to.
func (s *Service) DownloadDir() string {
	return s.downloadDir
}

// RunBatch downloads every request strictly in input order. Per-item
// failures are folded into the summary and never halt the batch; only
// output-directory creation is fatal, in which case no partial summary
// is produced.
func (s *Service) RunBatch(ctx context.Context, requests []model.VideoRequest) (*model.BatchSummary, error) {
	if err := platform.CreateDirectoryIfNotExists(s.downloadDir); err != nil {
		return nil, fmt.Errorf("creating download directory %s: %w", s.downloadDir, err)
	}

	summary := &model.BatchSummary{}
	total := len(requests)
	for i, req := range requests {
		if s.onItemStart != nil {
			s.onItemStart(i+1, total, req)
		}

		outcome := s.downloadOne(ctx, req, s.allowVideoOnly)
		summary.Add(outcome)

		if s.onItemDone != nil {
			s.onItemDone(i+1, total, outcome)
		}
	}

	return summary, nil
}

// DownloadOne handles the single-URL form path. The adaptive
// video-only tier stays off here regardless of service configuration.
func (s *Service) DownloadOne(ctx context.Context, req model.VideoRequest) model.DownloadOutcome {
	if err := platform.CreateDirectoryIfNotExists(s.downloadDir); err != nil {
		return model.DownloadOutcome{
			Identifier:   req.Identifier,
			ErrorMessage: fmt.Sprintf("creating download directory: %v", err),
		}
	}
	return s.downloadOne(ctx, req, false)
}

func (s *Service) downloadOne(ctx context.Context, req model.VideoRequest, allowVideoOnly bool) model.DownloadOutcome {
	outcome := model.DownloadOutcome{Identifier: req.Identifier}

	video, err := s.resolver.GetVideoContext(ctx, req.SourceURL)
	if err != nil {
		outcome.ErrorMessage = fmt.Sprintf("resolving video: %v", err)
		s.log.WithField("url", req.SourceURL).WithError(err).Warn("Failed to resolve video")
		return outcome
	}
	outcome.Title = video.Title

	format, err := SelectFormat(video.Formats, req.Quality, allowVideoOnly)
	if err != nil {
		outcome.ErrorMessage = err.Error()
		s.log.WithField("url", req.SourceURL).Warn("No suitable stream found")
		return outcome
	}

	outcome.ResolvedQuality = format.QualityLabel
	outcome.HasAudio = format.AudioChannels > 0
	if !outcome.HasAudio {
		s.log.WithFields(logrus.Fields{
			"url":     req.SourceURL,
			"quality": format.QualityLabel,
		}).Warn("Using adaptive video-only stream, output has no audio")
	}
	if !req.Quality.IsHighest() && format.QualityLabel != req.Quality.String() {
		s.log.WithFields(logrus.Fields{
			"requested": req.Quality.String(),
			"resolved":  format.QualityLabel,
		}).Info("Requested quality not available, downloading best available")
	}

	filename := platform.SanitizeFilename(video.Title, req.Identifier)
	outputPath := filepath.Join(s.downloadDir, filename)

	if err := s.saveStream(ctx, video, format, outputPath); err != nil {
		outcome.ErrorMessage = fmt.Sprintf("downloading %s: %v", req.SourceURL, err)
		s.log.WithField("url", req.SourceURL).WithError(err).Warn("Download failed")
		return outcome
	}

	outcome.Success = true
	outcome.OutputPath = outputPath
	s.log.WithFields(logrus.Fields{
		"title":   video.Title,
		"quality": format.QualityLabel,
		"output":  outputPath,
	}).Info("Successfully downloaded")
	return outcome
}

func (s *Service) saveStream(ctx context.Context, video *youtube.Video, format *youtube.Format, outputPath string) error {
	stream, _, err := s.resolver.GetStreamContext(ctx, video, format)
	if err != nil {
		return fmt.Errorf("starting stream: %w", err)
	}
	defer stream.Close()

	file, err := os.Create(outputPath)
	if err != nil {
		return fmt.Errorf("creating output file: %w", err)
	}
	defer file.Close()

	if _, err := io.Copy(file, stream); err != nil {
		// Remove the partial file so OutputPaths only lists complete downloads
		os.Remove(outputPath)
		return fmt.Errorf("writing output file: %w", err)
	}
	return nil
}
