package model

import (
	"fmt"
	"strconv"
	"strings"
)

// Quality represents a requested video quality.
type Quality string

const (
	// QualityHighest selects the best available progressive stream
	QualityHighest Quality = "highest"

	Quality720p Quality = "720p"
	Quality480p Quality = "480p"
	Quality360p Quality = "360p"
	Quality240p Quality = "240p"
	Quality144p Quality = "144p"
)

// QualityOptions returns the accepted quality values in display order.
func QualityOptions() []Quality {
	return []Quality{QualityHighest, Quality720p, Quality480p, Quality360p, Quality240p, Quality144p}
}

// String returns the string representation of Quality.
func (q Quality) String() string {
	return string(q)
}

// IsHighest returns true when no exact resolution was requested.
func (q Quality) IsHighest() bool {
	return q == QualityHighest
}

// ParseQuality validates raw user input against the quality surface.
// "best" is accepted as an alias for "highest". Anything else is
// rejected at the boundary.
func ParseQuality(raw string) (Quality, error) {
	value := strings.ToLower(strings.TrimSpace(raw))
	if value == "best" {
		value = string(QualityHighest)
	}
	for _, option := range QualityOptions() {
		if value == string(option) {
			return option, nil
		}
	}
	return "", fmt.Errorf("invalid quality %q (expected 720p, 480p, 360p, 240p, 144p, or highest)", raw)
}

// ParseCount validates the "how many videos" input. The literal "all"
// selects every available row; otherwise the value must be an integer
// between 1 and max.
func ParseCount(raw string, max int) (int, error) {
	value := strings.ToLower(strings.TrimSpace(raw))
	if value == "all" {
		return max, nil
	}
	count, err := strconv.Atoi(value)
	if err != nil {
		return 0, fmt.Errorf("invalid count %q (expected a number or 'all')", raw)
	}
	if count < 1 || count > max {
		return 0, fmt.Errorf("count must be between 1 and %d", max)
	}
	return count, nil
}

// VideoRequest represents a single download request taken from a form
// field or a parsed CSV row.
type VideoRequest struct {
	Identifier string
	SourceURL  string
	Quality    Quality
}

// DefaultIdentifier returns the ordinal placeholder used when the
// input carries no Video_id column.
func DefaultIdentifier(n int) string {
	return fmt.Sprintf("video_%d", n)
}

// WithQuality returns a copy of requests with the quality applied to
// every item. The inputs are left untouched.
func WithQuality(requests []VideoRequest, quality Quality) []VideoRequest {
	result := make([]VideoRequest, len(requests))
	for i, req := range requests {
		req.Quality = quality
		result[i] = req
	}
	return result
}
