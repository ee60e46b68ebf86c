package ui

// Package ui contains the Fyne-based user interface for the storefront.
// It renders the screen's view state as a product grid or skeleton grid,
// forwards card interactions to the screen and owns its mount/unmount.
// All UI strings are localized via Localization.
