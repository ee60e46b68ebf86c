package model

// Package model defines domain data structures used across the app: catalog
// items and the load state enum. Items are immutable once fetched and are
// replaced wholesale on every load.
