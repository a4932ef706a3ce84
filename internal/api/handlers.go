package api

import (
	"encoding/json"
	"fmt"
	"html/template"
	"net/http"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	gocache "github.com/patrickmn/go-cache"

	"github.com/ytget/yt-batch-downloader/internal/download"
	"github.com/ytget/yt-batch-downloader/internal/model"
	"github.com/ytget/yt-batch-downloader/internal/platform"
)

// Form field and limit constants
const (
	FieldURL     = "url"
	FieldQuality = "quality"
	FieldCount   = "count"
	FieldCSV     = "csv"

	BatchDirPrefix   = "batch-"
	MaxCSVUploadSize = 4 << 20
)

type downloadResponse struct {
	Status string `json:"status"`
	File   string `json:"file,omitempty"`
	Info   string `json:"info,omitempty"`
}

type batchResponse struct {
	Status         string   `json:"status"`
	TotalRequested int      `json:"total_requested"`
	SuccessCount   int      `json:"success_count"`
	FailureCount   int      `json:"failure_count"`
	File           string   `json:"file,omitempty"`
	Failures       []string `json:"failures,omitempty"`
}

type infoResponse struct {
	Title     string   `json:"title"`
	Author    string   `json:"author"`
	Duration  string   `json:"duration"`
	Qualities []string `json:"qualities"`
}

// handleHealth handles the health check endpoint
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// handleIndex serves the download form
func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := indexTemplate.Execute(w, map[string]interface{}{
		"Qualities": model.QualityOptions(),
	}); err != nil {
		s.log.WithError(err).Error("Failed to render index page")
	}
}

// handleInfo resolves video metadata for the form preview. Responses
// are cached because every lookup is a network round trip.
func (s *Server) handleInfo(w http.ResponseWriter, r *http.Request) {
	videoURL := r.URL.Query().Get(FieldURL)
	if videoURL == "" {
		http.Error(w, "No URL provided", http.StatusBadRequest)
		return
	}

	if cached, found := s.infoCache.Get(videoURL); found {
		writeJSON(w, http.StatusOK, cached)
		return
	}

	video, err := s.resolver.GetVideoContext(r.Context(), videoURL)
	if err != nil {
		http.Error(w, fmt.Sprintf("Failed to resolve video: %v", err), http.StatusBadGateway)
		return
	}

	info := infoResponse{
		Title:     video.Title,
		Author:    video.Author,
		Duration:  video.Duration.String(),
		Qualities: download.ProgressiveQualities(video.Formats),
	}
	s.infoCache.Set(videoURL, info, gocache.DefaultExpiration)

	writeJSON(w, http.StatusOK, info)
}

// handleDownload downloads a single video and returns a link to the
// saved file. The adaptive video-only tier stays off on this path.
func (s *Server) handleDownload(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "Invalid form data", http.StatusBadRequest)
		return
	}

	videoURL := r.FormValue(FieldURL)
	if videoURL == "" {
		http.Error(w, "No URL provided", http.StatusBadRequest)
		return
	}

	quality, err := parseQualityField(r.FormValue(FieldQuality))
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	batchDir := filepath.Join(s.settings.DownloadDir, newBatchDirName())
	service := download.NewService(s.resolver, batchDir, false, s.log)

	outcome := service.DownloadOne(r.Context(), model.VideoRequest{
		Identifier: model.DefaultIdentifier(1),
		SourceURL:  videoURL,
		Quality:    quality,
	})

	if !outcome.Success {
		writeJSON(w, http.StatusBadGateway, downloadResponse{
			Status: fmt.Sprintf("Download failed: %s", outcome.ErrorMessage),
		})
		return
	}

	writeJSON(w, http.StatusOK, downloadResponse{
		Status: fmt.Sprintf("Successfully downloaded: %s", outcome.Title),
		File:   s.fileURL(outcome.OutputPath),
		Info:   fallbackNote(quality, outcome),
	})
}

// handleBatch downloads every entry of an uploaded CSV. Multiple
// successes come back as one zip archive, a single success as the file
// itself.
func (s *Server) handleBatch(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(MaxCSVUploadSize); err != nil {
		http.Error(w, "Invalid multipart form", http.StatusBadRequest)
		return
	}

	file, _, err := r.FormFile(FieldCSV)
	if err != nil {
		http.Error(w, "No CSV file provided", http.StatusBadRequest)
		return
	}
	defer file.Close()

	requests, err := platform.ParseRequests(file)
	if err != nil {
		http.Error(w, fmt.Sprintf("Error reading CSV file: %v", err), http.StatusBadRequest)
		return
	}

	count := len(requests)
	if raw := r.FormValue(FieldCount); raw != "" {
		count, err = model.ParseCount(raw, len(requests))
		if err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
	}

	quality, err := parseQualityField(r.FormValue(FieldQuality))
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	requests = model.WithQuality(requests[:count], quality)

	batchDir := filepath.Join(s.settings.DownloadDir, newBatchDirName())
	service := download.NewService(s.resolver, batchDir, false, s.log)

	summary, err := service.RunBatch(r.Context(), requests)
	if err != nil {
		http.Error(w, fmt.Sprintf("Batch failed: %v", err), http.StatusInternalServerError)
		return
	}

	response := batchResponse{
		TotalRequested: summary.TotalRequested,
		SuccessCount:   summary.SuccessCount,
		FailureCount:   summary.FailureCount,
	}
	for _, outcome := range summary.Outcomes {
		if !outcome.Success {
			response.Failures = append(response.Failures, fmt.Sprintf("%s: %s", outcome.Identifier, outcome.ErrorMessage))
		}
	}

	switch summary.SuccessCount {
	case 0:
		response.Status = "All downloads failed"
		writeJSON(w, http.StatusBadGateway, response)
		return
	case 1:
		response.Status = fmt.Sprintf("Downloaded %d of %d videos", summary.SuccessCount, summary.TotalRequested)
		response.File = s.fileURL(summary.OutputPaths[0])
	default:
		archivePath := s.archiver.NewArchivePath(batchDir)
		if err := s.archiver.CreateArchive(summary.OutputPaths, archivePath); err != nil {
			http.Error(w, fmt.Sprintf("Failed to create archive: %v", err), http.StatusInternalServerError)
			return
		}
		response.Status = fmt.Sprintf("Downloaded %d of %d videos", summary.SuccessCount, summary.TotalRequested)
		response.File = s.fileURL(archivePath)
	}

	writeJSON(w, http.StatusOK, response)
}

// fileURL converts an absolute output path into a /files/ URL.
func (s *Server) fileURL(outputPath string) string {
	rel, err := filepath.Rel(s.settings.DownloadDir, outputPath)
	if err != nil {
		rel = filepath.Base(outputPath)
	}
	return "/files/" + filepath.ToSlash(rel)
}

func parseQualityField(raw string) (model.Quality, error) {
	if strings.TrimSpace(raw) == "" {
		return model.QualityHighest, nil
	}
	return model.ParseQuality(raw)
}

// fallbackNote reports a silent quality downgrade to the caller.
func fallbackNote(requested model.Quality, outcome model.DownloadOutcome) string {
	if requested.IsHighest() || outcome.ResolvedQuality == requested.String() {
		return ""
	}
	return fmt.Sprintf("Requested quality %s not available. Downloaded in %s", requested, outcome.ResolvedQuality)
}

func newBatchDirName() string {
	id, err := uuid.NewV7()
	if err != nil {
		return fmt.Sprintf(BatchDirPrefix+"%d", time.Now().UnixNano())
	}
	return BatchDirPrefix + id.String()
}

func writeJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(payload)
}

var indexTemplate = template.Must(template.New("index").Parse(`<!DOCTYPE html>
<html>
<head>
	<title>YouTube Video Downloader</title>
</head>
<body>
	<h1>YouTube Video Downloader</h1>

	<h2>Single Video</h2>
	<form method="post" action="/api/download">
		<label>Video URL: <input type="text" name="url" size="60"></label><br>
		<label>Quality:
			<select name="quality">
				{{range .Qualities}}<option value="{{.}}">{{.}}</option>{{end}}
			</select>
		</label><br>
		<button type="submit">Download</button>
	</form>

	<h2>Batch from CSV</h2>
	<form method="post" action="/api/batch" enctype="multipart/form-data">
		<label>CSV file (url column required): <input type="file" name="csv" accept=".csv"></label><br>
		<label>Number of videos (or "all"): <input type="text" name="count" value="all" size="6"></label><br>
		<label>Quality:
			<select name="quality">
				{{range .Qualities}}<option value="{{.}}">{{.}}</option>{{end}}
			</select>
		</label><br>
		<button type="submit">Download Batch</button>
	</form>
</body>
</html>
`))
