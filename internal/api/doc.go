package api

// Package api exposes the download pipeline over HTTP: an HTML form
// front end, JSON endpoints for single and batch downloads, a cached
// video-info endpoint, and static serving of completed files. Batch
// responses bundle multiple outputs into a zip archive.
