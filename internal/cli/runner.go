package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/ytget/yt-batch-downloader/internal/download"
	"github.com/ytget/yt-batch-downloader/internal/model"
	"github.com/ytget/yt-batch-downloader/internal/platform"
)

// Prompt and report strings
const (
	Banner          = "=== YouTube Video Downloader from CSV ==="
	PromptCSVPath   = "Enter the path to your CSV file: "
	PromptQuality   = "Enter preferred video quality (e.g., 720p, 480p, 360p, or 'highest'): "
	SummaryHeading  = "DOWNLOAD SUMMARY"
	separatorLength = 50
)

// Runner wires interactive prompts to the download orchestrator.
type Runner struct {
	orchestrator download.Orchestrator
	downloadDir  string
	in           *bufio.Reader
	out          io.Writer
}

// NewRunner creates a runner reading prompts from in and writing
// reports to out.
func NewRunner(orchestrator download.Orchestrator, downloadDir string, in io.Reader, out io.Writer) *Runner {
	return &Runner{
		orchestrator: orchestrator,
		downloadDir:  downloadDir,
		in:           bufio.NewReader(in),
		out:          out,
	}
}

// Run executes the interactive batch flow and returns a process exit
// code. A batch that ran to completion exits 0 even when individual
// downloads failed; only setup errors exit non-zero.
func (r *Runner) Run(ctx context.Context) int {
	fmt.Fprintln(r.out, Banner)
	fmt.Fprintln(r.out)

	requests, err := r.promptRequests()
	if err != nil {
		fmt.Fprintf(r.out, "Error: %v\n", err)
		return 1
	}
	fmt.Fprintf(r.out, "Found %d video URLs in the CSV file.\n", len(requests))

	count := r.promptCount(len(requests))
	quality := r.promptQuality()
	requests = model.WithQuality(requests[:count], quality)

	if _, err := os.Stat(r.downloadDir); os.IsNotExist(err) {
		if err := platform.CreateDirectoryIfNotExists(r.downloadDir); err == nil {
			fmt.Fprintf(r.out, "Created download directory: %s\n", r.downloadDir)
		}
	}

	fmt.Fprintf(r.out, "\nStarting download of %d videos...\n", count)
	fmt.Fprintln(r.out, separator())

	r.orchestrator.SetItemStartCallback(func(index, total int, req model.VideoRequest) {
		fmt.Fprintf(r.out, "\nProgress: %d/%d\n", index, total)
	})
	r.orchestrator.SetItemDoneCallback(func(index, total int, outcome model.DownloadOutcome) {
		r.reportOutcome(outcome)
	})

	summary, err := r.orchestrator.RunBatch(ctx, requests)
	if err != nil {
		fmt.Fprintf(r.out, "Error: %v\n", err)
		return 1
	}

	r.printSummary(summary)
	return 0
}

// promptRequests asks for a CSV path until a readable file with at
// least one URL is supplied.
func (r *Runner) promptRequests() ([]model.VideoRequest, error) {
	for {
		fmt.Fprint(r.out, PromptCSVPath)
		path, err := r.readLine()
		if err != nil {
			return nil, err
		}

		file, err := os.Open(path)
		if err != nil {
			fmt.Fprintln(r.out, "Error: CSV file not found!")
			continue
		}

		requests, err := platform.ParseRequests(file)
		file.Close()
		if err != nil {
			fmt.Fprintf(r.out, "Error reading CSV file: %v\n", err)
			continue
		}
		return requests, nil
	}
}

func (r *Runner) promptCount(max int) int {
	for {
		fmt.Fprintf(r.out, "How many videos do you want to download? (1-%d, or 'all'): ", max)
		raw, err := r.readLine()
		if err != nil {
			return max
		}
		count, err := model.ParseCount(raw, max)
		if err != nil {
			fmt.Fprintf(r.out, "Please enter a number between 1 and %d, or 'all'\n", max)
			continue
		}
		return count
	}
}

func (r *Runner) promptQuality() model.Quality {
	fmt.Fprintf(r.out, "Available quality options: %s\n", qualityNames())
	for {
		fmt.Fprint(r.out, PromptQuality)
		raw, err := r.readLine()
		if err != nil {
			return model.QualityHighest
		}
		quality, err := model.ParseQuality(raw)
		if err != nil {
			fmt.Fprintf(r.out, "Please enter a valid quality (%s)\n", qualityNames())
			continue
		}
		return quality
	}
}

func qualityNames() string {
	options := model.QualityOptions()
	names := make([]string, len(options))
	for i, option := range options {
		names[i] = option.String()
	}
	return strings.Join(names, ", ")
}

func (r *Runner) reportOutcome(outcome model.DownloadOutcome) {
	if outcome.Success {
		note := ""
		if !outcome.HasAudio {
			note = " (no audio)"
		}
		fmt.Fprintf(r.out, "✓ Successfully downloaded: %s%s\n", filepath.Base(outcome.OutputPath), note)
		return
	}
	fmt.Fprintf(r.out, "✗ Error downloading %s: %s\n", outcome.Identifier, outcome.ErrorMessage)
}

func (r *Runner) printSummary(summary *model.BatchSummary) {
	fmt.Fprintln(r.out)
	fmt.Fprintln(r.out, separator())
	fmt.Fprintln(r.out, SummaryHeading)
	fmt.Fprintln(r.out, separator())
	fmt.Fprintf(r.out, "Total videos processed: %d\n", summary.TotalRequested)
	fmt.Fprintf(r.out, "Successful downloads: %d\n", summary.SuccessCount)
	fmt.Fprintf(r.out, "Failed downloads: %d\n", summary.FailureCount)

	absDir, err := filepath.Abs(r.downloadDir)
	if err != nil {
		absDir = r.downloadDir
	}
	fmt.Fprintf(r.out, "Videos saved to: %s\n", absDir)
}

func (r *Runner) readLine() (string, error) {
	line, err := r.in.ReadString('\n')
	if err != nil && line == "" {
		return "", err
	}
	return strings.TrimSpace(line), nil
}

func separator() string {
	return strings.Repeat("=", separatorLength)
}
