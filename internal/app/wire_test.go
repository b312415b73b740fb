package app_test

import (
	"os"
	"path/filepath"
	"testing"

	"stegamoji/internal/app"
	"stegamoji/internal/domain"
)

func TestNewWire(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte(`default_scheme = "binary"`), 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}

	w, err := app.NewWire(app.Config{ConfigPath: path})
	if err != nil {
		t.Fatalf("NewWire: %v", err)
	}

	if w.Defaults.Scheme() != domain.SchemeBinary {
		t.Fatalf("default scheme = %s, want binary", w.Defaults.Scheme())
	}
	for _, s := range []domain.Scheme{domain.SchemeTag, domain.SchemeBinary} {
		c, ok := w.Codec(s)
		if !ok || c.Scheme() != s {
			t.Fatalf("Codec(%s) = (%v, %v)", s, c, ok)
		}
	}
	if _, ok := w.Codec(domain.SchemeAuto); ok {
		t.Fatal("Codec(auto) should not resolve to a codec")
	}
	if w.Detector == nil || w.Clipboard == nil {
		t.Fatal("detector and clipboard must be wired")
	}
}
