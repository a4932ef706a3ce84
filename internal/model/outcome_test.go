package model

import "testing"

func TestBatchSummaryAdd(t *testing.T) {
	summary := &BatchSummary{}

	summary.Add(DownloadOutcome{Identifier: "v1", Success: true, OutputPath: "/tmp/v1_a.mp4"})
	summary.Add(DownloadOutcome{Identifier: "v2", Success: false, ErrorMessage: "no suitable stream found"})
	summary.Add(DownloadOutcome{Identifier: "v3", Success: true, OutputPath: "/tmp/v3_b.mp4"})

	if summary.TotalRequested != 3 {
		t.Errorf("Expected TotalRequested 3, got %d", summary.TotalRequested)
	}
	if summary.SuccessCount != 2 {
		t.Errorf("Expected SuccessCount 2, got %d", summary.SuccessCount)
	}
	if summary.FailureCount != 1 {
		t.Errorf("Expected FailureCount 1, got %d", summary.FailureCount)
	}
	if len(summary.OutputPaths) != 2 {
		t.Errorf("Expected 2 output paths, got %d", len(summary.OutputPaths))
	}
	if summary.OutputPaths[0] != "/tmp/v1_a.mp4" || summary.OutputPaths[1] != "/tmp/v3_b.mp4" {
		t.Errorf("Output paths out of order: %v", summary.OutputPaths)
	}
	if !summary.Consistent() {
		t.Error("Expected summary to be consistent")
	}
}

func TestBatchSummaryConsistent(t *testing.T) {
	summary := &BatchSummary{}
	if !summary.Consistent() {
		t.Error("Empty summary should be consistent")
	}

	broken := &BatchSummary{TotalRequested: 2, SuccessCount: 1, FailureCount: 0}
	if broken.Consistent() {
		t.Error("Expected inconsistent summary to be detected")
	}

	missingPath := &BatchSummary{TotalRequested: 1, SuccessCount: 1}
	if missingPath.Consistent() {
		t.Error("Expected missing output path to break consistency")
	}
}
