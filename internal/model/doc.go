package model

// Package model defines domain data structures shared by the adapters:
// quality values, download requests, per-item outcomes, and batch
// summaries. Requests and outcomes are plain values and are not
// modified after construction.
