package config

import (
	"testing"
)

func TestNormalizeDirArg(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"no trailing slash", "/src/checkout", "/src/checkout"},
		{"single trailing slash", "/src/checkout/", "/src/checkout"},
		{"multiple trailing slashes", "/src/checkout///", "/src/checkout"},
		{"root path", "/", "/"},
		{"relative path", "platform", "platform"},
		{"relative with slash", "platform/", "platform"},
		{"empty string", "", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := NormalizeDirArg(tt.in)
			if got != tt.want {
				t.Errorf("NormalizeDirArg(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	if !cfg.Download {
		t.Error("Download should default to true")
	}
	if cfg.Branch != "aosp-master" {
		t.Errorf("Branch = %q, want aosp-master", cfg.Branch)
	}
	if cfg.MetadataPath != "ndk/meta/platforms.json" {
		t.Errorf("MetadataPath = %q", cfg.MetadataPath)
	}
	if cfg.InstallDir != "platform" {
		t.Errorf("InstallDir = %q", cfg.InstallDir)
	}
	if cfg.Bug != "None" {
		t.Errorf("Bug = %q, want None", cfg.Bug)
	}
	if cfg.ColorMode != ColorAuto {
		t.Errorf("ColorMode = %q, want auto", cfg.ColorMode)
	}
}

func TestValidate_ColorMode(t *testing.T) {
	tests := []struct {
		name    string
		mode    ColorMode
		wantErr bool
	}{
		{"auto is valid", ColorAuto, false},
		{"always is valid", ColorAlways, false},
		{"never is valid", ColorNever, false},
		{"empty is invalid", "", true},
		{"unknown is invalid", "sometimes", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			cfg.CheckOnly = true // skip build-arg requirement
			cfg.ColorMode = tt.mode
			err := cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestValidate_RequiresBuild(t *testing.T) {
	cfg := DefaultConfig()
	if err := cfg.Validate(); err == nil {
		t.Error("Validate() should fail without a build argument")
	}

	cfg.Build = "1234567"
	if err := cfg.Validate(); err != nil {
		t.Errorf("Validate() = %v, want nil", err)
	}
}

func TestValidate_RequiresPaths(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Build = "1234567"
	cfg.MetadataPath = ""
	if err := cfg.Validate(); err == nil {
		t.Error("Validate() should fail with empty metadata path")
	}
}

func TestValidate_CheckOnlySkipsBuild(t *testing.T) {
	cfg := DefaultConfig()
	cfg.CheckOnly = true
	if err := cfg.Validate(); err != nil {
		t.Errorf("Validate() = %v, want nil in check mode", err)
	}
}
