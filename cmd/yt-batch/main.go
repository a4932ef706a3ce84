package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/kkdai/youtube/v2"

	"github.com/ytget/yt-batch-downloader/internal/api"
	"github.com/ytget/yt-batch-downloader/internal/archive"
	"github.com/ytget/yt-batch-downloader/internal/cli"
	"github.com/ytget/yt-batch-downloader/internal/config"
	"github.com/ytget/yt-batch-downloader/internal/download"
	"github.com/ytget/yt-batch-downloader/internal/logging"
)

// Version is set during build via -ldflags "-X main.version=X.Y.Z"
var version = "dev"

const usage = `Usage: yt-batch <command>

Commands:
  batch     Download videos listed in a CSV file (interactive)
  serve     Start the HTTP form front end
  version   Print the version
  help      Show this message
`

func main() {
	command := "batch"
	if len(os.Args) > 1 {
		command = os.Args[1]
	}

	switch command {
	case "batch":
		os.Exit(runBatch())
	case "serve":
		if err := runServe(); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	case "version":
		fmt.Printf("yt-batch v%s\n", version)
	case "help", "-h", "--help":
		fmt.Print(usage)
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n\n%s", command, usage)
		os.Exit(2)
	}
}

func runBatch() int {
	settings, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: failed to load configuration: %v\n", err)
		return 1
	}

	logger := logging.NewLogger(settings.LogLevel)
	service := download.NewService(&youtube.Client{}, settings.DownloadDir, settings.AllowVideoOnly, logger)
	runner := cli.NewRunner(service, settings.DownloadDir, os.Stdin, os.Stdout)

	return runner.Run(context.Background())
}

func runServe() error {
	settings, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	logger := logging.NewLogger(settings.LogLevel)
	server := api.NewServer(settings, &youtube.Client{}, archive.NewService(), logger)

	if err := server.Start(); err != nil {
		return fmt.Errorf("failed to start server: %w", err)
	}
	logger.WithField("addr", server.ActualAddr()).Info("Server started")

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	<-stop

	logger.Info("Shutting down")
	if err := server.Stop(); err != nil {
		return fmt.Errorf("failed to stop server: %w", err)
	}
	return nil
}
