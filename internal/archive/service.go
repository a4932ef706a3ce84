package archive

import (
	"archive/zip"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
)

// Archive naming constants
const (
	ArchivePrefix      = "videos-"
	OutputExtensionZip = ".zip"
)

// Service bundles files into zip archives.
type Service struct{}

// NewService creates a new archive service.
func NewService() *Service {
	return &Service{}
}

// CreateArchive writes every input file into a zip at outputPath. Each
// entry is stored under its base name. A partially written archive is
// removed on failure.
func (s *Service) CreateArchive(inputPaths []string, outputPath string) error {
	if len(inputPaths) == 0 {
		return fmt.Errorf("no files to archive")
	}

	out, err := os.Create(outputPath)
	if err != nil {
		return fmt.Errorf("creating archive file: %w", err)
	}

	writer := zip.NewWriter(out)
	for _, inputPath := range inputPaths {
		if err := addFile(writer, inputPath); err != nil {
			writer.Close()
			out.Close()
			os.Remove(outputPath)
			return fmt.Errorf("adding %s to archive: %w", inputPath, err)
		}
	}

	if err := writer.Close(); err != nil {
		out.Close()
		os.Remove(outputPath)
		return fmt.Errorf("finalizing archive: %w", err)
	}
	if err := out.Close(); err != nil {
		os.Remove(outputPath)
		return fmt.Errorf("closing archive file: %w", err)
	}
	return nil
}

// NewArchivePath generates a unique archive path inside dir using UUID
// v7 for time-ordered names.
func (s *Service) NewArchivePath(dir string) string {
	return filepath.Join(dir, generateArchiveName())
}

func addFile(writer *zip.Writer, inputPath string) error {
	file, err := os.Open(inputPath)
	if err != nil {
		return err
	}
	defer file.Close()

	info, err := file.Stat()
	if err != nil {
		return err
	}

	header, err := zip.FileInfoHeader(info)
	if err != nil {
		return err
	}
	header.Name = filepath.Base(inputPath)
	header.Method = zip.Deflate

	entry, err := writer.CreateHeader(header)
	if err != nil {
		return err
	}
	_, err = io.Copy(entry, file)
	return err
}

func generateArchiveName() string {
	id, err := uuid.NewV7()
	if err != nil {
		// Fallback to timestamp if UUID generation fails
		return fmt.Sprintf(ArchivePrefix+"%d"+OutputExtensionZip, time.Now().UnixNano())
	}
	return ArchivePrefix + id.String() + OutputExtensionZip
}
