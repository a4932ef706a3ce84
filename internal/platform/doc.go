package platform

// Package platform contains filesystem helpers and input-format glue:
// output filename sanitizing, CSV request parsing, and directory
// handling shared by the CLI and HTTP adapters.
