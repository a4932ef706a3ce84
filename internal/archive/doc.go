package archive

// Package archive bundles completed downloads into a single zip file
// so the HTTP batch endpoint can return one response body. Archive
// names carry a UUID v7 so concurrent batches never collide.
