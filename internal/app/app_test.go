package app

import (
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/charmbracelet/log"
)

func quietLogger() *log.Logger {
	return log.NewWithOptions(io.Discard, log.Options{})
}

func writeLevel(t *testing.T, dir, name, body string) {
	t.Helper()
	if err := os.WriteFile(filepath.Join(dir, name), []byte(body), 0o600); err != nil {
		t.Fatal(err)
	}
}

func TestOpenWithPackAndStore(t *testing.T) {
	levels := t.TempDir()
	writeLevel(t, levels, "01.yaml", "number: 1\nname: Test Yard\nwidth: 1200\n")

	a, err := Open(Options{
		DBPath:    filepath.Join(t.TempDir(), "scores.db"),
		LevelsDir: levels,
		Watch:     true,
	}, quietLogger())
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer a.Close()

	if a.Store == nil {
		t.Fatal("store not opened")
	}
	if a.Sink != nil {
		t.Error("audio opened without being asked for")
	}
	spec, err := a.Pack.Level(1)
	if err != nil || spec.Name != "Test Yard" {
		t.Errorf("pack level 1 = %q, %v", spec.Name, err)
	}
}

func TestOpenErrors(t *testing.T) {
	badLevels := t.TempDir()
	writeLevel(t, badLevels, "01.yaml", "number: 1\nwidth: 1000\nenemies:\n  - {x: 1, y: 1, kind: bowser}\n")

	tests := []struct {
		name string
		opts Options
		want string
	}{
		{"missing config", Options{ConfigPath: filepath.Join(t.TempDir(), "nope.yaml")}, "failed to read config"},
		{"bad pack", Options{LevelsDir: badLevels}, "bowser"},
		{"missing pack", Options{LevelsDir: filepath.Join(t.TempDir(), "missing")}, "level pack"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			a, err := Open(tc.opts, quietLogger())
			if err == nil {
				a.Close()
				t.Fatal("expected an error")
			}
			if !strings.Contains(err.Error(), tc.want) {
				t.Errorf("error %q does not mention %q", err, tc.want)
			}
		})
	}
}

func TestOpenMinimal(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	a, err := Open(Options{}, nil)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	if a.Store != nil || a.Pack != nil || a.Sink != nil {
		t.Errorf("unexpected collaborators: %+v", a)
	}
	a.Close()
}
