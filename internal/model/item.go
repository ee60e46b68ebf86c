package model

import (
	"strconv"
	"strings"
)

// Default image hosting values used by the storefront
const (
	DefaultImageBaseURL     = "https://api.timbu.cloud/images/"
	DefaultFallbackImageURL = "https://i.ibb.co/sQmZc0x/watch-5.webp"
)

// Item represents a single product of the catalog
type Item struct {
	ID        string
	Name      string
	PhotoPath string  // relative path on the image host, may be empty
	PriceUSD  float64 // current price in US dollars
}

// HasPhoto reports whether the item carries a usable photo path
func (i Item) HasPhoto() bool {
	return strings.TrimSpace(i.PhotoPath) != ""
}

// ImageURL returns the image URL templated from the photo path, or fallback
// when the item has no photo
func (i Item) ImageURL(baseURL, fallbackURL string) string {
	if !i.HasPhoto() {
		return fallbackURL
	}
	return baseURL + strings.TrimSpace(i.PhotoPath)
}

// PriceLabel returns the price in its shortest decimal form ("49", "49.5")
func (i Item) PriceLabel() string {
	return FormatPrice(i.PriceUSD)
}

// GetDisplayName returns the name, or the ID when the name is blank
func (i Item) GetDisplayName() string {
	name := strings.TrimSpace(i.Name)
	if name == "" {
		return i.ID
	}
	return name
}

// FormatPrice formats a price without trailing zeros
func FormatPrice(price float64) string {
	return strconv.FormatFloat(price, 'f', -1, 64)
}
