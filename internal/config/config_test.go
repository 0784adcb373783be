package config

import (
	"reflect"
	"testing"
)

func TestNewDefaultConfig(t *testing.T) {
	cfg := NewDefaultConfig()

	if cfg.Editor.TabWidth != DefaultTabWidth {
		t.Errorf("TabWidth = %d, want %d", cfg.Editor.TabWidth, DefaultTabWidth)
	}
	if cfg.Editor.ScrollOff != DefaultScrollOff {
		t.Errorf("ScrollOff = %d, want %d", cfg.Editor.ScrollOff, DefaultScrollOff)
	}
	if cfg.Runner.Interpreter != DefaultInterpreter {
		t.Errorf("Interpreter = %q, want %q", cfg.Runner.Interpreter, DefaultInterpreter)
	}
	if !reflect.DeepEqual(cfg.Runner.Args, DefaultInterpreterArgs) {
		t.Errorf("Args = %v, want %v", cfg.Runner.Args, DefaultInterpreterArgs)
	}
	if cfg.Logger.LogLevel != "info" {
		t.Errorf("LogLevel = %q, want %q", cfg.Logger.LogLevel, "info")
	}
}

func TestValidateResetsInvalidValues(t *testing.T) {
	cfg := &Config{}
	cfg.Editor.TabWidth = -1
	cfg.Editor.ScrollOff = -5
	cfg.Runner.Interpreter = ""

	cfg.validate()

	defaults := NewDefaultConfig()
	if cfg.Editor.TabWidth != defaults.Editor.TabWidth {
		t.Errorf("TabWidth = %d, want default %d", cfg.Editor.TabWidth, defaults.Editor.TabWidth)
	}
	if cfg.Editor.ScrollOff != defaults.Editor.ScrollOff {
		t.Errorf("ScrollOff = %d, want default %d", cfg.Editor.ScrollOff, defaults.Editor.ScrollOff)
	}
	if cfg.Runner.Interpreter != defaults.Runner.Interpreter {
		t.Errorf("Interpreter = %q, want default %q", cfg.Runner.Interpreter, defaults.Runner.Interpreter)
	}
	if !reflect.DeepEqual(cfg.Runner.Args, defaults.Runner.Args) {
		t.Errorf("Args = %v, want default %v", cfg.Runner.Args, defaults.Runner.Args)
	}
}

func TestValidateKeepsExplicitValues(t *testing.T) {
	cfg := NewDefaultConfig()
	cfg.Editor.TabWidth = 8
	cfg.Editor.ScrollOff = 0 // 0 is a valid scrolloff
	cfg.Runner.Interpreter = "python2"
	cfg.Runner.Args = nil

	cfg.validate()

	if cfg.Editor.TabWidth != 8 {
		t.Errorf("TabWidth = %d, want 8", cfg.Editor.TabWidth)
	}
	if cfg.Editor.ScrollOff != 0 {
		t.Errorf("ScrollOff = %d, want 0", cfg.Editor.ScrollOff)
	}
	if cfg.Runner.Interpreter != "python2" {
		t.Errorf("Interpreter = %q, want %q", cfg.Runner.Interpreter, "python2")
	}
}

func TestSplitCommaList(t *testing.T) {
	tests := []struct {
		input string
		want  []string
	}{
		{"", nil},
		{"one", []string{"one"}},
		{"a,b,c", []string{"a", "b", "c"}},
		{" a , b ", []string{"a", "b"}},
		{"a,,b,", []string{"a", "b"}},
	}
	for _, tt := range tests {
		got := splitCommaList(tt.input)
		if !reflect.DeepEqual(got, tt.want) {
			t.Errorf("splitCommaList(%q) = %v, want %v", tt.input, got, tt.want)
		}
	}
}
