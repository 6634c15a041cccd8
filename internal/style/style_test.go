package style

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/gogpu/ribbon"
)

func TestDefaultIsValid(t *testing.T) {
	s := Default()
	if err := s.Validate(); err != nil {
		t.Fatalf("Default().Validate() = %v", err)
	}
	if s.Sheet.Arrow <= 1 {
		t.Errorf("default arrow factor = %v, want > 1", s.Sheet.Arrow)
	}
}

func TestFor(t *testing.T) {
	s := Default()
	tests := []struct {
		ss   ribbon.SecondaryStructure
		want Part
	}{
		{ribbon.Helix, s.Helix},
		{ribbon.Sheet, s.Sheet},
		{ribbon.Undefined, s.Turn},
	}
	for _, tt := range tests {
		if diff := cmp.Diff(tt.want, s.For(tt.ss)); diff != "" {
			t.Errorf("For(%v) mismatch (-want +got):\n%s", tt.ss, diff)
		}
	}
}

func TestLoadOverlaysDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "style.yaml")
	data := "helix:\n  width: 3.5\n  thickness: 0.4\n  color: [0, 0, 1]\n"
	if err := os.WriteFile(path, []byte(data), 0o600); err != nil {
		t.Fatal(err)
	}

	s, err := Load(path)
	if err != nil {
		t.Fatalf("Load() = %v", err)
	}
	want := Default()
	want.Helix = Part{Width: 3.5, Thickness: 0.4, Color: RGB{0, 0, 1}}
	if diff := cmp.Diff(want, s); diff != "" {
		t.Errorf("Load() mismatch (-want +got):\n%s", diff)
	}
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	if !errors.Is(err, os.ErrNotExist) {
		t.Errorf("Load() = %v, want os.ErrNotExist", err)
	}
}

func TestParseInvalid(t *testing.T) {
	tests := []struct {
		name string
		data string
		want string
	}{
		{"syntax", "helix: [", "yaml"},
		{"zero width", "helix: {width: 0, thickness: 1, color: [0,0,0]}\nsheet: {width: 1, thickness: 1, color: [0,0,0], arrow: 1.5}\nturn: {width: 1, thickness: 1, color: [0,0,0]}\n", "helix"},
		{"color range", "background: [2, 0, 0]\nhelix: {width: 1, thickness: 1, color: [0,0,0]}\nsheet: {width: 1, thickness: 1, color: [0,0,0], arrow: 1.5}\nturn: {width: 1, thickness: 1, color: [0,0,0]}\n", "background"},
		{"arrow", "helix: {width: 1, thickness: 1, color: [0,0,0]}\nsheet: {width: 1, thickness: 1, color: [0,0,0], arrow: 0.5}\nturn: {width: 1, thickness: 1, color: [0,0,0]}\n", "arrow"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.data))
			if err == nil {
				t.Fatal("Parse() = nil error")
			}
			if !strings.Contains(err.Error(), tt.want) {
				t.Errorf("Parse() = %v, want mention of %q", err, tt.want)
			}
		})
	}
}
