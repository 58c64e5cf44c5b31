package narrative

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
)

func TestNewFromEnv_WhenKeyUnset_ShouldDisableFeature(t *testing.T) {
	t.Setenv("OPENAI_API_KEY", "")

	if g := NewFromEnv(t.TempDir(), zerolog.Nop()); g != nil {
		t.Error("expected nil generator without api key")
	}
}

func TestNewFromEnv_WhenKeySet_ShouldLoadExistingCache(t *testing.T) {
	t.Setenv("OPENAI_API_KEY", "test-key")
	dir := t.TempDir()
	cached := `{"wrapped_reflection": "a year of long talks", "style_profile": "direct and warm"}`
	if err := os.WriteFile(filepath.Join(dir, "narratives.json"), []byte(cached), 0o644); err != nil {
		t.Fatalf("seed cache: %v", err)
	}

	g := NewFromEnv(dir, zerolog.Nop())
	if g == nil {
		t.Fatal("expected generator with api key set")
	}

	// Cached sections short-circuit before any API call is made.
	out := g.Generate(context.Background(), "unused context")
	if out.Reflection != "a year of long talks" {
		t.Errorf("expected cached reflection, got %q", out.Reflection)
	}
	if out.StyleProfile != "direct and warm" {
		t.Errorf("expected cached style profile, got %q", out.StyleProfile)
	}
}

func TestClearCache_ShouldForgetCachedSections(t *testing.T) {
	t.Setenv("OPENAI_API_KEY", "test-key")
	dir := t.TempDir()
	cached := `{"wrapped_reflection": "stale"}`
	if err := os.WriteFile(filepath.Join(dir, "narratives.json"), []byte(cached), 0o644); err != nil {
		t.Fatalf("seed cache: %v", err)
	}

	g := NewFromEnv(dir, zerolog.Nop())
	if g == nil {
		t.Fatal("expected generator")
	}
	if err := g.ClearCache(); err != nil {
		t.Fatalf("clear cache: %v", err)
	}

	if _, err := os.Stat(filepath.Join(dir, "narratives.json")); !os.IsNotExist(err) {
		t.Error("expected cache file removed")
	}
	if len(g.cache) != 0 {
		t.Errorf("expected in-memory cache emptied, got %v", g.cache)
	}
}

func TestNewFromEnv_WhenCacheCorrupt_ShouldStartEmpty(t *testing.T) {
	t.Setenv("OPENAI_API_KEY", "test-key")
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "narratives.json"), []byte("not json"), 0o644); err != nil {
		t.Fatalf("seed cache: %v", err)
	}

	g := NewFromEnv(dir, zerolog.Nop())
	if g == nil {
		t.Fatal("expected generator")
	}
	if len(g.cache) != 0 {
		t.Errorf("expected empty cache, got %v", g.cache)
	}
}
