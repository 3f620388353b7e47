package session

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestDir(t *testing.T) {
	home, _ := os.UserHomeDir()
	got := Dir("main")
	want := filepath.Join(home, ".chatvault", "sessions", "main")
	if got != want {
		t.Errorf("Dir(main) = %q, want %q", got, want)
	}
}

func TestSessionPaths(t *testing.T) {
	tests := []struct {
		name   string
		got    string
		suffix string
	}{
		{"socket", SocketPath("test"), filepath.Join("sessions", "test", "daemon.sock")},
		{"lock", LockPath("test"), filepath.Join("sessions", "test", "LOCK")},
		{"archive db", ArchiveDBPath("test"), filepath.Join("sessions", "test", "archive.db")},
		{"exports", ExportDir("test"), filepath.Join("sessions", "test", "exports")},
		{"daemon log", LogPath("test"), filepath.Join("sessions", "test", "logs", "cvd.log")},
		{"capture log", CaptureLogPath("test"), filepath.Join("sessions", "test", "logs", "cvcap.log")},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if !strings.HasSuffix(tt.got, tt.suffix) {
				t.Errorf("path = %q, want suffix %q", tt.got, tt.suffix)
			}
		})
	}
}

func TestConfigPath(t *testing.T) {
	got := ConfigPath()
	if !strings.HasSuffix(got, filepath.Join(".chatvault", "config.toml")) {
		t.Errorf("ConfigPath() = %q", got)
	}
}

func TestResolvePrecedence(t *testing.T) {
	if got := Resolve("override"); got != "override" {
		t.Errorf("Resolve(override) = %q, want override", got)
	}
	// Without a flag the result is the configured default, falling back to
	// "main" where no config file exists.
	got := Resolve("")
	if got == "" {
		t.Error("Resolve(\"\") returned empty name")
	}
	if err := ValidateName(got); err != nil {
		t.Errorf("Resolve(\"\") = %q, not a valid session name: %v", got, err)
	}
}
