package platform

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/ytget/yt-batch-downloader/internal/model"
)

// CSV column names
const (
	URLColumn     = "url"
	VideoIDColumn = "Video_id"
)

var (
	ErrMissingURLColumn = errors.New("input must contain a 'url' column")
	ErrNoRequests       = errors.New("no valid URLs found in the input")
)

// ParseRequests reads a delimited input table with a header row and
// returns one VideoRequest per row carrying a non-blank url value.
// Blank or missing URLs are filtered out before counting valid rows.
// The optional Video_id column becomes the filename prefix; rows
// without one get an ordinal video_<n> placeholder. Quality is left
// unset; callers apply it via model.WithQuality once known.
func ParseRequests(r io.Reader) ([]model.VideoRequest, error) {
	reader := csv.NewReader(r)
	reader.TrimLeadingSpace = true
	reader.FieldsPerRecord = -1

	header, err := reader.Read()
	if err == io.EOF {
		return nil, ErrMissingURLColumn
	}
	if err != nil {
		return nil, fmt.Errorf("reading header row: %w", err)
	}

	urlIdx := -1
	idIdx := -1
	for i, column := range header {
		switch strings.TrimSpace(column) {
		case URLColumn:
			urlIdx = i
		case VideoIDColumn:
			idIdx = i
		}
	}
	if urlIdx == -1 {
		return nil, ErrMissingURLColumn
	}

	var requests []model.VideoRequest
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("reading input row: %w", err)
		}
		if urlIdx >= len(record) {
			continue
		}
		url := strings.TrimSpace(record[urlIdx])
		if url == "" {
			continue
		}

		identifier := ""
		if idIdx != -1 && idIdx < len(record) {
			identifier = strings.TrimSpace(record[idIdx])
		}
		if identifier == "" {
			identifier = model.DefaultIdentifier(len(requests) + 1)
		}

		requests = append(requests, model.VideoRequest{
			Identifier: identifier,
			SourceURL:  url,
		})
	}

	if len(requests) == 0 {
		return nil, ErrNoRequests
	}
	return requests, nil
}
