package facespec

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/milk9111/roundface/face"
)

func writeTempSpec(t *testing.T, dir, name string, data []byte) {
	t.Helper()
	specDir := filepath.Join(dir, "facespec")
	if err := os.MkdirAll(specDir, 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(specDir, name), data, 0o644); err != nil {
		t.Fatal(err)
	}
}

func TestParseColor(t *testing.T) {
	cases := []struct {
		in      string
		want    uint32
		wantErr bool
	}{
		{"cyan", face.ColorCyan, false},
		{" Pink ", face.ColorPink, false},
		{"#38bdf8", 0x38BDF8, false},
		{"#FFFFFF", 0xFFFFFF, false},
		{"#xyz", 0, true},
		{"#12345", 0, true},
		{"mauve", 0, true},
	}
	for _, c := range cases {
		got, err := ParseColor(c.in)
		if c.wantErr != (err != nil) {
			t.Fatalf("ParseColor(%q) err = %v, wantErr %v", c.in, err, c.wantErr)
		}
		if err == nil && got != c.want {
			t.Fatalf("ParseColor(%q) = %06x, want %06x", c.in, got, c.want)
		}
	}
}

func TestParseEyeStyle(t *testing.T) {
	for name, want := range map[string]face.EyeStyle{
		"squared":  face.EyeSquared,
		"":         face.EyeSquared,
		"Heart":    face.EyeHeart,
		"crescent": face.EyeCrescent,
		"closed":   face.EyeClosed,
		"worried":  face.EyeWorried,
		"police":   face.EyePolice,
	} {
		got, err := ParseEyeStyle(name)
		if err != nil || got != want {
			t.Fatalf("ParseEyeStyle(%q) = %v, %v; want %v", name, got, err, want)
		}
	}
	if _, err := ParseEyeStyle("spiral"); err == nil {
		t.Fatalf("unknown style should be rejected")
	}
}

func TestEmbeddedPresetsMatchBuiltins(t *testing.T) {
	table, err := LoadTable("presets.yaml")
	if err != nil {
		t.Fatalf("loading embedded presets: %v", err)
	}
	for s := face.State(0); s < face.StateCount; s++ {
		t.Run(s.String(), func(t *testing.T) {
			if !table.Overridden(s) {
				t.Fatalf("embedded document should author every state")
			}
			got, gotD, ok := table.Lookup(s)
			want, wantD, _ := face.Preset(s)
			if !ok {
				t.Fatalf("lookup failed")
			}
			if gotD != wantD {
				t.Fatalf("duration %v, want %v", gotD, wantD)
			}
			if got != want {
				t.Fatalf("authored preset diverges from built-in\ngot  %+v\nwant %+v", got, want)
			}
		})
	}
}

func TestTableFallsBackToBuiltins(t *testing.T) {
	var empty *Table
	got, d, ok := empty.Lookup(face.StateHappy)
	want, wantD, _ := face.Preset(face.StateHappy)
	if !ok || got != want || d != wantD {
		t.Fatalf("nil table should pass through to built-ins")
	}
	if _, _, ok := empty.Lookup(face.StateCount); ok {
		t.Fatalf("out-of-range state should stay rejected")
	}
}

func TestLoadTableSkipsBadEntries(t *testing.T) {
	// Write a document with one valid and two degenerate entries to disk in
	// a temp spec dir; LoadTable must keep the good one and skip the rest.
	doc := []byte(`
presets:
  - state: Happy
    transition_ms: 350
    eye_openness: 0.3
    eye_size: 1.3
    eye_style: crescent
    brightness: 1.0
    primary_color: cyan
    secondary_color: pink
  - state: Daydream
    eye_style: squared
    primary_color: cyan
    secondary_color: pink
  - state: Idle
    eye_style: squared
    primary_color: octarine
    secondary_color: pink
`)
	dir := t.TempDir()
	writeTempSpec(t, dir, "bad.yaml", doc)
	t.Chdir(dir)

	table, err := LoadTable("bad.yaml")
	if err != nil {
		t.Fatalf("LoadTable: %v", err)
	}
	if !table.Overridden(face.StateHappy) {
		t.Fatalf("valid entry should be kept")
	}
	if table.Overridden(face.StateIdle) {
		t.Fatalf("entry with a bad colour should fall back to built-in")
	}
	p, d, ok := table.Lookup(face.StateHappy)
	if !ok || p.EyeStyle != face.EyeCrescent || d != 350*time.Millisecond {
		t.Fatalf("authored happy entry mangled: %+v %v", p, d)
	}
	// The skipped idle entry resolves through the built-in table.
	p, _, ok = table.Lookup(face.StateIdle)
	want, _, _ := face.Preset(face.StateIdle)
	if !ok || p != want {
		t.Fatalf("idle should resolve to built-in preset")
	}
}
