package workflow

import (
	"testing"

	"github.com/mirrorsmith/platup/internal/config"
)

func TestBranchName(t *testing.T) {
	tests := []struct {
		name     string
		build    string
		download bool
		want     string
	}{
		{"server build", "1234567", true, "update-platform-1234567"},
		{"local artifact", "/tmp/pkg.tar.bz2", false, "update-platform-local"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := config.DefaultConfig()
			cfg.Build = tt.build
			cfg.Download = tt.download
			if got := BranchName(&cfg); got != tt.want {
				t.Errorf("BranchName() = %q, want %q", got, tt.want)
			}
		})
	}
}
