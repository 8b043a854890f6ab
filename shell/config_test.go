package shell

import (
	"os"
	"path/filepath"
	"testing"
)

func TestFallbackSize(t *testing.T) {
	cfg := DefaultConfig()

	tests := []struct {
		name         string
		w, h         int32
		wantW, wantH int32
	}{
		{"both zero", 0, 0, 256, 256},
		{"width zero", 0, 480, 256, 480},
		{"height zero", 640, 0, 640, 256},
		{"both set", 800, 600, 800, 600},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			w, h := cfg.FallbackSize(test.w, test.h)
			if w != test.wantW || h != test.wantH {
				t.Errorf("FallbackSize(%v, %v) = %vx%v, want %vx%v",
					test.w, test.h, w, h, test.wantW, test.wantH)
			}
		})
	}
}

func TestLoadConfigMissingFile(t *testing.T) {
	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "does-not-exist.yaml"))
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	if cfg != DefaultConfig() {
		t.Errorf("config = %+v, want defaults", cfg)
	}
}

func TestLoadConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "phrame.yaml")
	data := "title: testing\nfallback_width: 512\n"
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}

	if cfg.Title != "testing" {
		t.Errorf("title = %q, want %q", cfg.Title, "testing")
	}
	if cfg.FallbackWidth != 512 {
		t.Errorf("fallback width = %v, want 512", cfg.FallbackWidth)
	}

	// Unset fields keep their defaults.
	if cfg.AppID != DefaultConfig().AppID {
		t.Errorf("app id = %q, want default", cfg.AppID)
	}
	if cfg.FallbackHeight != 256 {
		t.Errorf("fallback height = %v, want 256", cfg.FallbackHeight)
	}
}

func TestLoadConfigInvalid(t *testing.T) {
	path := filepath.Join(t.TempDir(), "phrame.yaml")
	if err := os.WriteFile(path, []byte("title: [unclosed"), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	if _, err := LoadConfig(path); err == nil {
		t.Errorf("LoadConfig accepted invalid YAML")
	}
}
