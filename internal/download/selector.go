package download

import (
	"errors"
	"sort"
	"strings"

	"github.com/kkdai/youtube/v2"

	"github.com/ytget/yt-batch-downloader/internal/model"
)

const mp4MimePrefix = "video/mp4"

// ErrNoStream is returned when no fallback tier yields a candidate.
var ErrNoStream = errors.New("no suitable stream found")

// SelectFormat resolves the requested quality to a concrete format:
//
//  1. "highest" picks the maximum-resolution progressive mp4.
//  2. Otherwise an exact QualityLabel match among progressive mp4
//     streams wins.
//  3. With no exact match, tier 1 applies regardless of the requested
//     label — a silent downgrade/upgrade, not an error.
//  4. When allowVideoOnly is set (batch CLI only), videos without any
//     progressive encoding fall back to the best adaptive video-only
//     mp4. Shorts commonly have no progressive streams; the output
//     then carries no audio.
//
// Selection is deterministic for a fixed format set; ties on height
// break by bitrate.
func SelectFormat(formats []youtube.Format, quality model.Quality, allowVideoOnly bool) (*youtube.Format, error) {
	if !quality.IsHighest() {
		for i := range formats {
			f := &formats[i]
			if isProgressiveMP4(f) && f.QualityLabel == quality.String() {
				return f, nil
			}
		}
	}

	if best := bestByHeight(formats, isProgressiveMP4); best != nil {
		return best, nil
	}

	if allowVideoOnly {
		if best := bestByHeight(formats, isAdaptiveVideoMP4); best != nil {
			return best, nil
		}
	}

	return nil, ErrNoStream
}

// isProgressiveMP4 reports whether the format is a single mp4 file
// carrying both audio and video.
func isProgressiveMP4(f *youtube.Format) bool {
	return strings.HasPrefix(f.MimeType, mp4MimePrefix) && f.AudioChannels > 0 && f.Height > 0
}

// isAdaptiveVideoMP4 reports whether the format is a video-only mp4
// track from an adaptive set.
func isAdaptiveVideoMP4(f *youtube.Format) bool {
	return strings.HasPrefix(f.MimeType, mp4MimePrefix) && f.AudioChannels == 0 && f.Height > 0
}

func bestByHeight(formats []youtube.Format, keep func(*youtube.Format) bool) *youtube.Format {
	var best *youtube.Format
	for i := range formats {
		f := &formats[i]
		if !keep(f) {
			continue
		}
		if best == nil || f.Height > best.Height ||
			(f.Height == best.Height && bitrateFor(f) > bitrateFor(best)) {
			best = f
		}
	}
	return best
}

// ProgressiveQualities lists the distinct progressive mp4 quality
// labels in a format set, highest resolution first.
func ProgressiveQualities(formats []youtube.Format) []string {
	seen := make(map[string]bool)
	var candidates []*youtube.Format
	for i := range formats {
		f := &formats[i]
		if !isProgressiveMP4(f) || seen[f.QualityLabel] {
			continue
		}
		seen[f.QualityLabel] = true
		candidates = append(candidates, f)
	}
	sort.Slice(candidates, func(i, j int) bool {
		return candidates[i].Height > candidates[j].Height
	})

	labels := make([]string, 0, len(candidates))
	for _, f := range candidates {
		labels = append(labels, f.QualityLabel)
	}
	return labels
}

func bitrateFor(f *youtube.Format) int {
	if f.Bitrate > 0 {
		return f.Bitrate
	}
	return f.AverageBitrate
}
