package region

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestRegion_URL(t *testing.T) {
	r := &Region{Key: "seattle", Name: "Seattle", Filename: "eventlisting_Seattle.php"}
	want := "https://19hz.info/eventlisting_Seattle.php"
	if got := r.URL(); got != want {
		t.Errorf("URL() = %s, expected %s", got, want)
	}
}

func TestRegistry_Lookup(t *testing.T) {
	g := DefaultRegistry()

	tests := []struct {
		name    string
		key     string
		wantKey string
		wantErr bool
	}{
		{name: "exact key", key: "bayarea", wantKey: "bayarea"},
		{name: "case-insensitive", key: "BayArea", wantKey: "bayarea"},
		{name: "surrounding whitespace", key: "  seattle ", wantKey: "seattle"},
		{name: "unknown key", key: "mars", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, err := g.Lookup(tt.key)
			if tt.wantErr {
				if err == nil {
					t.Fatal("expected an error for unknown key")
				}
				var unknown *UnknownKeyError
				if !errors.As(err, &unknown) {
					t.Fatalf("expected *UnknownKeyError, got %T", err)
				}
				// The message enumerates every valid key.
				if !strings.Contains(err.Error(), "bayarea") || !strings.Contains(err.Error(), "bc") {
					t.Errorf("expected error to list valid keys, got %q", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("Lookup(%q) failed: %v", tt.key, err)
			}
			if r.Key != tt.wantKey {
				t.Errorf("Lookup(%q).Key = %s, expected %s", tt.key, r.Key, tt.wantKey)
			}
		})
	}
}

func TestDefaultRegistry(t *testing.T) {
	g := DefaultRegistry()

	if g.Len() != 18 {
		t.Errorf("expected 18 built-in regions, got %d", g.Len())
	}

	filenames := g.Filenames()
	if !filenames["eventlisting_BayArea.php"] {
		t.Error("expected filename set to contain eventlisting_BayArea.php")
	}
	if len(filenames) != g.Len() {
		t.Errorf("expected %d unique filenames, got %d", g.Len(), len(filenames))
	}

	keys := g.Keys()
	if len(keys) != g.Len() || keys[0] != "bayarea" {
		t.Errorf("expected keys in load order starting with bayarea, got %v", keys[:1])
	}
}

func TestNewRegistry(t *testing.T) {
	tests := []struct {
		name    string
		regions []Region
		wantErr bool
	}{
		{
			name:    "empty list",
			regions: nil,
			wantErr: true,
		},
		{
			name:    "missing filename",
			regions: []Region{{Key: "x", Name: "X"}},
			wantErr: true,
		},
		{
			name: "valid",
			regions: []Region{
				{Key: "x", Name: "X", Filename: "eventlisting_X.php"},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewRegistry(tt.regions)
			if (err != nil) != tt.wantErr {
				t.Errorf("NewRegistry() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestNewRegistry_DuplicateKeyLastWins(t *testing.T) {
	g, err := NewRegistry([]Region{
		{Key: "x", Name: "First", Filename: "eventlisting_First.php"},
		{Key: "y", Name: "Other", Filename: "eventlisting_Other.php"},
		{Key: "X", Name: "Second", Filename: "eventlisting_Second.php"},
	})
	if err != nil {
		t.Fatalf("NewRegistry failed: %v", err)
	}

	if g.Len() != 2 {
		t.Fatalf("expected duplicate key to collapse, got %d regions", g.Len())
	}

	r, err := g.Lookup("x")
	if err != nil {
		t.Fatalf("Lookup failed: %v", err)
	}
	if r.Name != "Second" {
		t.Errorf("expected later entry to win, got %s", r.Name)
	}

	// The duplicate keeps its original position.
	if g.All()[0].Name != "Second" {
		t.Errorf("expected replaced entry to keep first position, got %s", g.All()[0].Name)
	}
}

func TestLoadFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "regions.yaml")

	content := `regions:
  - key: bayarea
    name: San Francisco Bay Area
    filename: eventlisting_BayArea.php
  - key: berlin
    name: Berlin
    filename: eventlisting_Berlin.php
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	g, err := LoadFile(path)
	if err != nil {
		t.Fatalf("LoadFile failed: %v", err)
	}

	if g.Len() != 2 {
		t.Errorf("expected 2 regions, got %d", g.Len())
	}

	r, err := g.Lookup("berlin")
	if err != nil {
		t.Fatalf("Lookup failed: %v", err)
	}
	if r.URL() != "https://19hz.info/eventlisting_Berlin.php" {
		t.Errorf("unexpected URL: %s", r.URL())
	}
}

func TestLoadFile_Errors(t *testing.T) {
	dir := t.TempDir()

	t.Run("missing file", func(t *testing.T) {
		if _, err := LoadFile(filepath.Join(dir, "nope.yaml")); err == nil {
			t.Error("expected an error for a missing file")
		}
	})

	t.Run("invalid yaml", func(t *testing.T) {
		path := filepath.Join(dir, "bad.yaml")
		if err := os.WriteFile(path, []byte("regions: [\n"), 0o644); err != nil {
			t.Fatal(err)
		}
		if _, err := LoadFile(path); err == nil {
			t.Error("expected an error for invalid yaml")
		}
	})

	t.Run("no regions", func(t *testing.T) {
		path := filepath.Join(dir, "empty.yaml")
		if err := os.WriteFile(path, []byte("regions: []\n"), 0o644); err != nil {
			t.Fatal(err)
		}
		if _, err := LoadFile(path); err == nil {
			t.Error("expected an error for an empty regions list")
		}
	})
}
