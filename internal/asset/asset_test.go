package asset

import (
	"errors"
	"testing"
	"testing/fstest"
)

func TestLoadDefaultHasRequiredSprites(t *testing.T) {
	sheet, err := LoadDefault()
	if err != nil {
		t.Fatalf("LoadDefault: %v", err)
	}
	for _, name := range append(Required, "boss_asteroid") {
		if _, ok := sheet.Sprite(name); !ok {
			t.Errorf("sprite %q missing", name)
		}
	}
}

func TestLoadMissingSprite(t *testing.T) {
	fsys := fstest.MapFS{
		"asteroid.txt": {Data: []byte("##\n##\n")},
	}

	_, err := Load(fsys, "asteroid", "spaceship")
	if !errors.Is(err, ErrResourceMissing) {
		t.Fatalf("Load error = %v, want ErrResourceMissing", err)
	}
}

func TestParseEmptySprite(t *testing.T) {
	_, err := Parse("blank", []byte("# color=r\n\n"))
	if !errors.Is(err, ErrResourceMissing) {
		t.Errorf("Parse error = %v, want ErrResourceMissing", err)
	}
}

func TestSpriteAt(t *testing.T) {
	s, err := Parse("test", []byte("# color=r\n#.\n.y\n"))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if s.W != 2 || s.H != 2 {
		t.Fatalf("size = %dx%d, want 2x2", s.W, s.H)
	}

	tests := []struct {
		u, v float64
		want byte
	}{
		{0.1, 0.1, 'r'},
		{0.9, 0.1, 0},
		{0.1, 0.9, 0},
		{0.9, 0.9, 'y'},
		{1.0, 0.5, 0},
		{-0.1, 0.5, 0},
	}
	for _, tt := range tests {
		if got := s.At(tt.u, tt.v); got != tt.want {
			t.Errorf("At(%v,%v) = %q, want %q", tt.u, tt.v, got, tt.want)
		}
	}
}

func TestSpriteDefaultColor(t *testing.T) {
	s, err := Parse("plain", []byte("#\n"))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if got := s.At(0.5, 0.5); got != 'w' {
		t.Errorf("default color = %q, want 'w'", got)
	}
}
