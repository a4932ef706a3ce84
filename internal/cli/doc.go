package cli

// Package cli implements the interactive batch front end: it prompts
// for a CSV file, a video count, and a preferred quality, then drives
// the download orchestrator and prints a per-item progress report and
// final summary.
