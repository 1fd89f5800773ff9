package fonts

import (
	"testing"

	"golang.org/x/image/font/gofont/goregular"
)

func TestLoadDefaults(t *testing.T) {
	if err := LoadDefaults(16, 12); err != nil {
		t.Fatalf("LoadDefaults: %v", err)
	}
	for _, name := range []FontName{HUD, Debug} {
		if name.Get() == nil {
			t.Errorf("face %s not registered", name)
		}
	}
}

func TestLoadFontWithSizeRejectsGarbage(t *testing.T) {
	if err := LoadFontWithSize("broken", []byte("not a font"), 10); err == nil {
		t.Fatal("expected parse error")
	}
	if err := LoadFontWithSize("ok", goregular.TTF, 10); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestGetUnknownPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("expected panic for unknown font")
		}
	}()
	FontName("missing").Get()
}
