package content

import (
	"context"
	"errors"
	"io"
	"math/rand"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"
	"time"

	"github.com/charmbracelet/log"
)

func TestParseKinds(t *testing.T) {
	tests := []struct {
		input string
		want  string
		fails bool
	}{
		{"goomba", "goomba", false},
		{"Koopa", "koopa", false},
		{" paratroopa ", "paratroopa", false},
		{"bowser", "", true},
	}
	for _, tc := range tests {
		t.Run(tc.input, func(t *testing.T) {
			k, err := ParseEnemyKind(tc.input)
			if tc.fails {
				var ke KindError
				if !errors.As(err, &ke) || ke.Category != "enemy" {
					t.Fatalf("expected enemy KindError, got %v", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if k.String() != tc.want {
				t.Errorf("String() = %q, expected %q", k.String(), tc.want)
			}
		})
	}

	if k, err := ParseCollectibleKind("1up"); err != nil || k != CollectibleOneUp {
		t.Errorf("ParseCollectibleKind(1up) = %v, %v", k, err)
	}
	if _, err := ParseCollectibleKind("banana"); err == nil {
		t.Error("expected error for unknown collectible")
	}
	if k, err := ParsePlatformKind("pipe"); err != nil || k != PlatformPipe {
		t.Errorf("ParsePlatformKind(pipe) = %v, %v", k, err)
	}
	if th, err := ParseTheme("ice"); err != nil || th != ThemeIce {
		t.Errorf("ParseTheme(ice) = %v, %v", th, err)
	}
	if !EnemyParatroopa.Traits().Flying || EnemyGoomba.Traits().Flying {
		t.Error("only paratroopas should fly")
	}
}

func TestThemeForLevel(t *testing.T) {
	tests := []struct {
		level int
		want  Theme
	}{
		{1, ThemeGrassland},
		{4, ThemeSky},
		{6, ThemeIce},
		{8, ThemeSpace},
		{9, ThemeGrassland},
		{12, ThemeSky},
	}
	for _, tc := range tests {
		if got := ThemeForLevel(tc.level); got != tc.want {
			t.Errorf("ThemeForLevel(%d) = %v, expected %v", tc.level, got, tc.want)
		}
	}
	if ThemeSky.Modifiers().Wind != 0.2 {
		t.Error("sky should carry wind")
	}
	if ThemeIce.Modifiers().Friction != 0.95 {
		t.Error("ice should carry slippery friction")
	}
}

func TestBuiltinLevelOne(t *testing.T) {
	spec, err := NewBuiltin(1).Level(1)
	if err != nil {
		t.Fatal(err)
	}
	if spec.Width != 3600 || spec.Height != 576 {
		t.Errorf("size = %vx%v, expected 3600x576", spec.Width, spec.Height)
	}
	if spec.GoalX != 3400 {
		t.Errorf("GoalX = %v, expected 3400", spec.GoalX)
	}
	if spec.SpawnX != 100 || spec.SpawnY != 400 {
		t.Errorf("spawn = (%v, %v), expected (100, 400)", spec.SpawnX, spec.SpawnY)
	}
	// 57 ground tiles plus 12 authored platforms, no challenges yet
	if len(spec.Platforms) != 69 {
		t.Errorf("platform count = %d, expected 69", len(spec.Platforms))
	}
	if len(spec.Enemies) != 10 {
		t.Errorf("enemy count = %d, expected 10", len(spec.Enemies))
	}
	if len(spec.Collectibles) != 31+2 {
		t.Errorf("collectible count = %d, expected 33", len(spec.Collectibles))
	}
	for _, e := range spec.Enemies {
		if e.Kind != EnemyGoomba {
			t.Errorf("level 1 should only have goombas, got %v", e.Kind)
		}
	}
}

func TestBuiltinMovingPlatformsFromLevelFive(t *testing.T) {
	b := NewBuiltin(7)
	for _, tc := range []struct {
		level  int
		moving int
	}{
		{4, 0},
		{5, 2},
		{6, 3},
	} {
		spec, err := b.Level(tc.level)
		if err != nil {
			t.Fatal(err)
		}
		moving := 0
		for _, p := range spec.Platforms {
			if p.Motion != nil {
				moving++
			}
		}
		if moving != tc.moving {
			t.Errorf("level %d: %d moving platforms, expected %d", tc.level, moving, tc.moving)
		}
	}
}

func TestBuiltinDeterministic(t *testing.T) {
	for _, n := range []int{1, 5, 9, 15} {
		a, err := NewBuiltin(42).Level(n)
		if err != nil {
			t.Fatal(err)
		}
		b, err := NewBuiltin(42).Level(n)
		if err != nil {
			t.Fatal(err)
		}
		if !reflect.DeepEqual(a, b) {
			t.Errorf("level %d differs between runs with the same seed", n)
		}
	}

	a, _ := NewBuiltin(1).Level(12)
	b, _ := NewBuiltin(2).Level(12)
	if reflect.DeepEqual(a.Platforms, b.Platforms) {
		t.Error("different seeds should give different random layouts")
	}
}

func TestGeneratedLevelsValidate(t *testing.T) {
	rng := rand.New(rand.NewSource(3))
	for stage := 1; stage <= 30; stage++ {
		spec := Generate(stage, rng)
		if err := spec.Validate(); err != nil {
			t.Errorf("stage %d: %v", stage, err)
		}
	}
}

func TestLateStagesStayInsideLevel(t *testing.T) {
	rng := rand.New(rand.NewSource(11))
	for stage := 70; stage <= 90; stage++ {
		spec := Generate(stage, rng)
		if err := spec.Validate(); err != nil {
			t.Errorf("stage %d: %v", stage, err)
		}
		for i, p := range spec.Platforms {
			if p.Kind != PlatformGround && p.X+p.W > spec.Width {
				t.Errorf("stage %d platform %d ends at %v past width %v", stage, i, p.X+p.W, spec.Width)
			}
		}
	}
}

func TestEndlessStartsPastTables(t *testing.T) {
	spec, err := NewEndless(5).Level(1)
	if err != nil {
		t.Fatal(err)
	}
	if spec.Number != 1 {
		t.Errorf("Number = %d, expected 1", spec.Number)
	}
	if spec.Width != 3200+9*400 {
		t.Errorf("Width = %v, expected stage 9 width", spec.Width)
	}
	if _, err := NewEndless(5).Level(0); err == nil {
		t.Error("expected error for level 0")
	}
}

const sampleLevel = `
number: 1
name: Test Run
theme: sky
width: 1600
platforms:
  - {x: 300, y: 400, w: 128, h: 32, kind: brick}
  - {x: 600, y: 300, w: 96, h: 32, kind: cloud, moving: {range: 100, speed: 1}, disappearing: true}
enemies:
  - {x: 500, y: 456, kind: koopa}
collectibles:
  - {x: 350, y: 350, kind: star}
`

func TestParseLevel(t *testing.T) {
	spec, err := ParseLevel([]byte(sampleLevel))
	if err != nil {
		t.Fatalf("ParseLevel() failed: %v", err)
	}
	if spec.Theme != ThemeSky || spec.Modifiers.Wind != 0.2 {
		t.Errorf("theme = %v wind = %v, expected sky with wind", spec.Theme, spec.Modifiers.Wind)
	}
	if spec.GoalX != 1400 {
		t.Errorf("GoalX = %v, expected width - 200", spec.GoalX)
	}
	ground := len(GroundRow(1600, 576))
	if len(spec.Platforms) != ground+2 {
		t.Fatalf("platforms = %d, expected %d", len(spec.Platforms), ground+2)
	}
	moving := spec.Platforms[ground+1]
	if moving.Motion == nil || moving.Motion.Range != 100 || !moving.Disappearing {
		t.Errorf("moving platform not parsed: %+v", moving)
	}
	if spec.Enemies[0].Kind != EnemyKoopa || spec.Collectibles[0].Kind != CollectibleStar {
		t.Error("entity kinds not parsed")
	}
}

func TestParseLevelErrors(t *testing.T) {
	tests := []struct {
		name    string
		content string
		wantErr string
	}{
		{"unknown enemy", "number: 1\nwidth: 1000\nenemies:\n  - {x: 1, y: 1, kind: bowser}\n", `enemies[0]: unknown enemy kind "bowser"`},
		{"unknown collectible", "number: 1\nwidth: 1000\ncollectibles:\n  - {x: 1, y: 1, kind: gem}\n", "unknown collectible kind"},
		{"unknown platform", "number: 1\nwidth: 1000\nplatforms:\n  - {x: 1, y: 1, w: 5, h: 5, kind: lava}\n", "unknown platform kind"},
		{"unknown theme", "number: 1\nwidth: 1000\ntheme: jungle\n", "unknown theme kind"},
		{"zero width", "number: 1\n", "INVALID_SIZE"},
		{"flat platform", "number: 1\nwidth: 1000\nplatforms:\n  - {x: 1, y: 1, w: 5, h: 0, kind: brick}\n", "INVALID_PLATFORM"},
		{"goal outside", "number: 1\nwidth: 1000\ngoal_x: 2000\n", "INVALID_GOAL"},
		{"platform past width", "number: 1\nwidth: 1000\nplatforms:\n  - {x: 1200, y: 1, w: 64, h: 32, kind: brick}\n", "PLATFORM_OUT_OF_BOUNDS"},
		{"bad motion", "number: 1\nwidth: 1000\nplatforms:\n  - {x: 1, y: 1, w: 5, h: 5, kind: brick, moving: {range: 0, speed: 1}}\n", "INVALID_MOTION"},
		{"malformed", "number: [", "yaml unmarshal"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := ParseLevel([]byte(tc.content))
			if err == nil {
				t.Fatal("expected error, got nil")
			}
			if !strings.Contains(err.Error(), tc.wantErr) {
				t.Errorf("error %q does not mention %q", err, tc.wantErr)
			}
		})
	}
}

func writeLevel(t *testing.T, dir, name, content string) {
	t.Helper()
	if err := os.WriteFile(filepath.Join(dir, name), []byte(content), 0o600); err != nil {
		t.Fatal(err)
	}
}

func TestPackAndChain(t *testing.T) {
	dir := t.TempDir()
	writeLevel(t, dir, "01.yaml", sampleLevel)
	writeLevel(t, dir, "notes.txt", "ignored")

	pack, err := OpenPack(dir)
	if err != nil {
		t.Fatalf("OpenPack() failed: %v", err)
	}
	if got := pack.Numbers(); !reflect.DeepEqual(got, []int{1}) {
		t.Errorf("Numbers() = %v, expected [1]", got)
	}

	if _, err := pack.Level(2); !errors.Is(err, ErrLevelNotFound) {
		t.Errorf("missing level should wrap ErrLevelNotFound, got %v", err)
	}

	provider := Chain(pack, NewBuiltin(1))
	first, err := provider.Level(1)
	if err != nil || first.Name != "Test Run" {
		t.Errorf("Level(1) = %q, %v; expected pack level", first.Name, err)
	}
	second, err := provider.Level(2)
	if err != nil || second.Width != 4000 {
		t.Errorf("Level(2) should fall back to built-in, got width %v, %v", second.Width, err)
	}

	if _, err := Chain(pack).Level(3); !errors.Is(err, ErrLevelNotFound) {
		t.Errorf("exhausted chain should report ErrLevelNotFound, got %v", err)
	}
}

func TestPackReloadKeepsLevelsOnError(t *testing.T) {
	dir := t.TempDir()
	writeLevel(t, dir, "01.yaml", sampleLevel)

	pack, err := OpenPack(dir)
	if err != nil {
		t.Fatal(err)
	}

	writeLevel(t, dir, "02.yaml", "number: 2\nwidth: 1000\nenemies:\n  - {x: 1, y: 1, kind: bowser}\n")
	err = pack.Reload()
	if _, ok := AsKindError(err); !ok {
		t.Fatalf("Reload() error = %v, expected a KindError", err)
	}
	if _, err := pack.Level(1); err != nil {
		t.Errorf("failed reload should keep previous levels: %v", err)
	}

	writeLevel(t, dir, "02.yaml", "number: 2\nwidth: 1000\n")
	if err := pack.Reload(); err != nil {
		t.Fatalf("Reload() failed: %v", err)
	}
	if got := pack.Numbers(); !reflect.DeepEqual(got, []int{1, 2}) {
		t.Errorf("Numbers() = %v, expected [1 2]", got)
	}
}

func TestLoadDirDuplicateNumber(t *testing.T) {
	dir := t.TempDir()
	writeLevel(t, dir, "a.yaml", "number: 1\nwidth: 1000\n")
	writeLevel(t, dir, "b.yml", "number: 1\nwidth: 1200\n")

	if _, err := LoadDir(dir); err == nil || !strings.Contains(err.Error(), "defined twice") {
		t.Errorf("expected duplicate level error, got %v", err)
	}
}

func TestWatcherReportsLevelFiles(t *testing.T) {
	dir := t.TempDir()
	w, err := NewWatcher(dir)
	if err != nil {
		t.Fatalf("NewWatcher() failed: %v", err)
	}
	defer w.Close()

	writeLevel(t, dir, "skip.txt", "x")
	writeLevel(t, dir, "03.yaml", "number: 3\nwidth: 1000\n")

	select {
	case name := <-w.Events:
		if filepath.Base(name) != "03.yaml" {
			t.Errorf("event for %q, expected 03.yaml", name)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("no event for level file")
	}
}

func waitEvent(t *testing.T, w *Watcher, base string) {
	t.Helper()
	deadline := time.After(2 * time.Second)
	for {
		select {
		case name := <-w.Events:
			if filepath.Base(name) == base {
				return
			}
		case <-deadline:
			t.Fatalf("no event for %s", base)
		}
	}
}

func TestWatcherNestedDirectories(t *testing.T) {
	dir := t.TempDir()
	world1 := filepath.Join(dir, "world1")
	if err := os.Mkdir(world1, 0o755); err != nil {
		t.Fatal(err)
	}

	w, err := NewWatcher(dir)
	if err != nil {
		t.Fatalf("NewWatcher() failed: %v", err)
	}
	defer w.Close()

	writeLevel(t, world1, "02.yaml", "number: 2\nwidth: 1000\n")
	waitEvent(t, w, "02.yaml")

	// A directory created later is reported and then watched
	world2 := filepath.Join(dir, "world2")
	if err := os.Mkdir(world2, 0o755); err != nil {
		t.Fatal(err)
	}
	waitEvent(t, w, "world2")

	writeLevel(t, world2, "03.yaml", "number: 3\nwidth: 1000\n")
	waitEvent(t, w, "03.yaml")
}

func TestWatchPackReloadsNestedLevels(t *testing.T) {
	dir := t.TempDir()
	world1 := filepath.Join(dir, "world1")
	if err := os.Mkdir(world1, 0o755); err != nil {
		t.Fatal(err)
	}
	writeLevel(t, world1, "01.yaml", sampleLevel)

	pack, err := OpenPack(dir)
	if err != nil {
		t.Fatalf("OpenPack() failed: %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- WatchPack(ctx, pack, log.New(io.Discard)) }()
	defer func() {
		cancel()
		<-done
	}()

	// Rewrite until the watcher, started concurrently, has seen it
	deadline := time.Now().Add(3 * time.Second)
	for !reflect.DeepEqual(pack.Numbers(), []int{1, 2}) {
		if time.Now().After(deadline) {
			t.Fatalf("Numbers() = %v, expected [1 2]", pack.Numbers())
		}
		writeLevel(t, world1, "02.yaml", "number: 2\nwidth: 1000\n")
		time.Sleep(200 * time.Millisecond)
	}
}
