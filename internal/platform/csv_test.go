package platform

import (
	"errors"
	"strings"
	"testing"
)

func TestParseRequests(t *testing.T) {
	input := `Video_id,url,tag
v1,https://www.youtube.com/watch?v=aaa,music
v2,https://www.youtube.com/watch?v=bbb,comedy
`
	requests, err := ParseRequests(strings.NewReader(input))
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if len(requests) != 2 {
		t.Fatalf("Expected 2 requests, got %d", len(requests))
	}
	if requests[0].Identifier != "v1" || requests[0].SourceURL != "https://www.youtube.com/watch?v=aaa" {
		t.Errorf("Unexpected first request: %+v", requests[0])
	}
	if requests[1].Identifier != "v2" {
		t.Errorf("Expected identifier 'v2', got %q", requests[1].Identifier)
	}
}

func TestParseRequestsSkipsBlankURLs(t *testing.T) {
	input := `Video_id,url
v1,https://www.youtube.com/watch?v=aaa
v2,
v3,https://www.youtube.com/watch?v=ccc
`
	requests, err := ParseRequests(strings.NewReader(input))
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if len(requests) != 2 {
		t.Fatalf("Expected blank row to be excluded, got %d requests", len(requests))
	}
	if requests[1].Identifier != "v3" {
		t.Errorf("Expected identifier 'v3', got %q", requests[1].Identifier)
	}
}

func TestParseRequestsOrdinalPlaceholders(t *testing.T) {
	input := `url
https://www.youtube.com/watch?v=aaa
https://www.youtube.com/watch?v=bbb
`
	requests, err := ParseRequests(strings.NewReader(input))
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if requests[0].Identifier != "video_1" {
		t.Errorf("Expected 'video_1', got %q", requests[0].Identifier)
	}
	if requests[1].Identifier != "video_2" {
		t.Errorf("Expected 'video_2', got %q", requests[1].Identifier)
	}
}

func TestParseRequestsMissingURLColumn(t *testing.T) {
	input := `Video_id,link
v1,https://www.youtube.com/watch?v=aaa
`
	_, err := ParseRequests(strings.NewReader(input))
	if !errors.Is(err, ErrMissingURLColumn) {
		t.Errorf("Expected ErrMissingURLColumn, got %v", err)
	}
}

func TestParseRequestsEmptyInput(t *testing.T) {
	_, err := ParseRequests(strings.NewReader(""))
	if !errors.Is(err, ErrMissingURLColumn) {
		t.Errorf("Expected ErrMissingURLColumn for empty input, got %v", err)
	}
}

func TestParseRequestsNoValidRows(t *testing.T) {
	input := `Video_id,url
v1,
v2,
`
	_, err := ParseRequests(strings.NewReader(input))
	if !errors.Is(err, ErrNoRequests) {
		t.Errorf("Expected ErrNoRequests, got %v", err)
	}
}

func TestParseRequestsBlankIdentifierFallsBack(t *testing.T) {
	input := `Video_id,url
,https://www.youtube.com/watch?v=aaa
`
	requests, err := ParseRequests(strings.NewReader(input))
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if requests[0].Identifier != "video_1" {
		t.Errorf("Expected ordinal fallback, got %q", requests[0].Identifier)
	}
}
