package model

import "testing"

func TestItem_ImageURL(t *testing.T) {
	tests := []struct {
		photo    string
		expected string
	}{
		{"x.jpg", DefaultImageBaseURL + "x.jpg"},
		{"  watch/1.webp ", DefaultImageBaseURL + "watch/1.webp"},
		{"", DefaultFallbackImageURL},
		{"   ", DefaultFallbackImageURL},
	}

	for _, test := range tests {
		item := Item{ID: "a1", PhotoPath: test.photo}
		result := item.ImageURL(DefaultImageBaseURL, DefaultFallbackImageURL)
		if result != test.expected {
			t.Errorf("ImageURL() with photo=%q = %s, expected %s", test.photo, result, test.expected)
		}
	}
}

func TestFormatPrice(t *testing.T) {
	tests := []struct {
		price    float64
		expected string
	}{
		{49, "49"},
		{49.5, "49.5"},
		{0, "0"},
		{1234.25, "1234.25"},
	}

	for _, test := range tests {
		result := FormatPrice(test.price)
		if result != test.expected {
			t.Errorf("FormatPrice(%v) = %s, expected %s", test.price, result, test.expected)
		}
	}
}

func TestItem_GetDisplayName(t *testing.T) {
	tests := []struct {
		name     string
		expected string
	}{
		{"Watch", "Watch"},
		{"  Watch  ", "Watch"},
		{"", "a1"},
	}

	for _, test := range tests {
		item := Item{ID: "a1", Name: test.name}
		result := item.GetDisplayName()
		if result != test.expected {
			t.Errorf("GetDisplayName() with name=%q = %q, expected %q", test.name, result, test.expected)
		}
	}
}
