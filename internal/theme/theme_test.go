package theme

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/gdamore/tcell/v2"
)

func TestParseColorString(t *testing.T) {
	tests := []struct {
		input   string
		want    tcell.Color
		wantErr bool
	}{
		{"#ff0000", tcell.NewHexColor(0xff0000), false},
		{"#61AFEF", tcell.NewHexColor(0x61afef), false},
		{" #000000 ", tcell.NewHexColor(0x000000), false},
		{"reset", tcell.ColorReset, false},
		{"default", tcell.ColorDefault, false},
		{"#fff", 0, true},
		{"#zzzzzz", 0, true},
		{"magenta-ish", 0, true},
	}
	for _, tt := range tests {
		got, err := parseColorString(tt.input)
		if tt.wantErr {
			if err == nil {
				t.Errorf("parseColorString(%q) = %v, want error", tt.input, got)
			}
			continue
		}
		if err != nil {
			t.Errorf("parseColorString(%q): %v", tt.input, err)
			continue
		}
		if got != tt.want {
			t.Errorf("parseColorString(%q) = %v, want %v", tt.input, got, tt.want)
		}
	}
}

func TestGetStyleFallbacks(t *testing.T) {
	th := &Theme{
		Name: "test",
		Styles: map[string]tcell.Style{
			"Default":    tcell.StyleDefault.Foreground(tcell.ColorWhite),
			"LineNumber": tcell.StyleDefault.Foreground(tcell.ColorGray),
		},
	}

	if got := th.GetStyle("LineNumber"); got != th.Styles["LineNumber"] {
		t.Error("exact style name not resolved")
	}
	// Dotted names fall back to the base name
	if got := th.GetStyle("LineNumber.active"); got != th.Styles["LineNumber"] {
		t.Error("dotted style name did not fall back to base name")
	}
	// Unknown names fall back to Default
	if got := th.GetStyle("NoSuchStyle"); got != th.Styles["Default"] {
		t.Error("unknown style name did not fall back to Default")
	}
}

func TestLoadThemeFromFile(t *testing.T) {
	content := `
name = "dusk"
is_dark = true

[styles.Default]
fg = "#c5cdd9"
bg = "#2a2f38"

[styles.keyword]
fg = "#61afef"
bold = true

[styles.comment]
fg = "#98c379"
italic = true
`
	path := filepath.Join(t.TempDir(), "dusk.toml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("writing theme file: %v", err)
	}

	th, err := LoadThemeFromFile(path)
	if err != nil {
		t.Fatalf("LoadThemeFromFile: %v", err)
	}

	if th.Name != "dusk" || !th.IsDark {
		t.Errorf("theme meta = %q/%v, want dusk/true", th.Name, th.IsDark)
	}

	kw, ok := th.Styles["keyword"]
	if !ok {
		t.Fatal("keyword style missing")
	}
	fg, bg, attrs := kw.Decompose()
	if fg != tcell.NewHexColor(0x61afef) {
		t.Errorf("keyword fg = %v, want #61afef", fg)
	}
	// Unset bg inherits from Default
	if bg != tcell.NewHexColor(0x2a2f38) {
		t.Errorf("keyword bg = %v, want inherited #2a2f38", bg)
	}
	if attrs&tcell.AttrBold == 0 {
		t.Error("keyword style not bold")
	}
}

func TestLoadThemeFromFileNameFallsBackToFilename(t *testing.T) {
	content := `
[styles.Default]
fg = "default"
`
	path := filepath.Join(t.TempDir(), "plain.toml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("writing theme file: %v", err)
	}

	th, err := LoadThemeFromFile(path)
	if err != nil {
		t.Fatalf("LoadThemeFromFile: %v", err)
	}
	if th.Name != "plain" {
		t.Errorf("theme name = %q, want %q", th.Name, "plain")
	}
}

func TestLoadThemeFromFileMissing(t *testing.T) {
	if _, err := LoadThemeFromFile(filepath.Join(t.TempDir(), "nope.toml")); err == nil {
		t.Fatal("loading a missing theme file succeeded, want error")
	}
}

func TestLoadThemeBadStyleIsSkipped(t *testing.T) {
	content := `
name = "broken"

[styles.Default]
fg = "#ffffff"

[styles.bad]
fg = "not-a-color"
`
	path := filepath.Join(t.TempDir(), "broken.toml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("writing theme file: %v", err)
	}

	th, err := LoadThemeFromFile(path)
	if err != nil {
		t.Fatalf("LoadThemeFromFile: %v", err)
	}
	if _, ok := th.Styles["bad"]; ok {
		t.Error("unparseable style was kept")
	}
	if _, ok := th.Styles["Default"]; !ok {
		t.Error("Default style missing")
	}
}
