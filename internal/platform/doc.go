package platform

// Package platform contains OS/platform integration:
// the per-user config directory, directory creation and log file rotation.
