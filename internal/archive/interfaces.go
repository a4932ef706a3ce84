package archive

// Archiver defines the interface for bundling files into an archive.
type Archiver interface {
	CreateArchive(inputPaths []string, outputPath string) error
	NewArchivePath(dir string) string
}
