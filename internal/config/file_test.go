package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/ytget/storefront/internal/model"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	if cfg.APIURL != "" {
		t.Errorf("Default APIURL = %q, expected empty", cfg.APIURL)
	}
	if cfg.ImageBaseURL != model.DefaultImageBaseURL {
		t.Errorf("Default ImageBaseURL = %q, expected %q", cfg.ImageBaseURL, model.DefaultImageBaseURL)
	}
	if cfg.FallbackImageURL != model.DefaultFallbackImageURL {
		t.Errorf("Default FallbackImageURL = %q, expected %q", cfg.FallbackImageURL, model.DefaultFallbackImageURL)
	}
	if cfg.CardWidth != DefaultCardWidth || cfg.TerminalCardWidth != DefaultTerminalCardWidth {
		t.Errorf("Default widths = %v/%d", cfg.CardWidth, cfg.TerminalCardWidth)
	}
}

func TestParse(t *testing.T) {
	tests := []struct {
		name     string
		content  string
		expected Config
		wantErr  bool
	}{
		{
			name:     "empty keeps defaults",
			content:  "  \n",
			expected: Default(),
		},
		{
			name:    "partial overlay",
			content: "api_url = \"https://shop.example/api/products\"\ncard_width = 200\n",
			expected: Config{
				APIURL:            "https://shop.example/api/products",
				ImageBaseURL:      model.DefaultImageBaseURL,
				FallbackImageURL:  model.DefaultFallbackImageURL,
				CardWidth:         200,
				TerminalCardWidth: DefaultTerminalCardWidth,
			},
		},
		{
			name:    "widths are clamped",
			content: "card_width = 20\nterminal_card_width = 500\n",
			expected: Config{
				ImageBaseURL:      model.DefaultImageBaseURL,
				FallbackImageURL:  model.DefaultFallbackImageURL,
				CardWidth:         MinCardWidth,
				TerminalCardWidth: MaxTerminalCardWidth,
			},
		},
		{
			name:    "blank urls restored",
			content: "image_base_url = \" \"\nfallback_image_url = \"\"\n",
			expected: Default(),
		},
		{
			name:     "invalid toml",
			content:  "card_width = [",
			expected: Default(),
			wantErr:  true,
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			got, err := Parse(test.content, Default())
			if (err != nil) != test.wantErr {
				t.Fatalf("Parse() error = %v, wantErr %v", err, test.wantErr)
			}
			if got != test.expected {
				t.Errorf("Parse() = %+v, expected %+v", got, test.expected)
			}
		})
	}
}

func TestLoadFile(t *testing.T) {
	dir := t.TempDir()

	// Missing file is not an error
	cfg, err := LoadFile(filepath.Join(dir, "missing.toml"))
	if err != nil {
		t.Fatalf("LoadFile() on missing file: %v", err)
	}
	if cfg != Default() {
		t.Errorf("LoadFile() on missing file = %+v, expected defaults", cfg)
	}

	path := filepath.Join(dir, "storefront.toml")
	content := "api_url = \"http://localhost:8080/products\"\nterminal_card_width = 30\n"
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err = LoadFile(path)
	if err != nil {
		t.Fatalf("LoadFile() error: %v", err)
	}
	if cfg.APIURL != "http://localhost:8080/products" || cfg.TerminalCardWidth != 30 {
		t.Errorf("LoadFile() = %+v", cfg)
	}
}

func TestResolve(t *testing.T) {
	tests := []struct {
		name     string
		file     string
		build    string
		env      string
		expected string
	}{
		{"nothing set", "", "", "", ""},
		{"file only", "http://file", "", "", "http://file"},
		{"build beats file", "http://file", "http://build", "", "http://build"},
		{"env beats build", "http://file", "http://build", "http://env", "http://env"},
		{"blank env ignored", "http://file", "", "   ", "http://file"},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			t.Setenv(EnvAPIURL, test.env)

			cfg := Default()
			cfg.APIURL = test.file

			if got := cfg.Resolve(test.build).APIURL; got != test.expected {
				t.Errorf("Resolve() APIURL = %q, expected %q", got, test.expected)
			}
		})
	}
}
