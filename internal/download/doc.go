package download

// Package download implements the core pipeline: stream selection with
// quality fallback on top of github.com/kkdai/youtube/v2, and the
// sequential batch orchestrator with per-item success/failure
// accounting. One video is downloaded fully before the next begins.
