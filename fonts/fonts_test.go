package fonts

import "testing"

func TestLoadDefaults(t *testing.T) {
	if err := LoadDefaults(); err != nil {
		t.Fatalf("LoadDefaults: %v", err)
	}
	for _, name := range []FontName{Regular, Small} {
		if !Loaded(name) || name.Get() == nil {
			t.Errorf("font %s not loaded", name)
		}
	}
}

func TestLoadFontRejectsGarbage(t *testing.T) {
	if err := LoadFont("broken", []byte("not a font")); err == nil {
		t.Error("LoadFont accepted garbage")
	}
	if Loaded("broken") {
		t.Error("broken font registered")
	}
}
