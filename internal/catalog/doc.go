package catalog

// Package catalog performs the single outbound read of the storefront: an
// HTTP GET against the configured endpoint returning `{ "items": [...] }`.
// Failures are classified as network or parse errors so the UI can surface
// one alert while logs keep the distinction.
