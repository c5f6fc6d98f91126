package dataset

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/japaniel/glazekb/pkg/glaze"
	"github.com/spf13/afero"
)

func TestBundledDatasetsDecode(t *testing.T) {
	b := Bundled()
	check := func(kind Kind, n int, err error) {
		t.Helper()
		if err != nil {
			t.Fatalf("load %s: %v", kind, err)
		}
		if n == 0 {
			t.Errorf("bundled %s is empty", kind)
		}
	}
	m, err := Load[glaze.Material](b, Materials)
	check(Materials, len(m), err)
	c, err := Load[glaze.Colorant](b, Colorants)
	check(Colorants, len(c), err)
	g, err := Load[glaze.GlazeType](b, GlazeTypes)
	check(GlazeTypes, len(g), err)
	f, err := Load[glaze.FiringType](b, FiringTypes)
	check(FiringTypes, len(f), err)
	s, err := Load[glaze.SurfaceEffect](b, SurfaceEffects)
	check(SurfaceEffects, len(s), err)
	si, err := Load[glaze.SafetyInfo](b, SafetyInfo)
	check(SafetyInfo, len(si), err)
	gt, err := Load[glaze.GlossaryTerm](b, GlossaryTerms)
	check(GlossaryTerms, len(gt), err)
	r, err := Load[glaze.Recipe](b, Recipes)
	check(Recipes, len(r), err)
}

func TestReadMissingFile(t *testing.T) {
	b := NewBundle(afero.NewMemMapFs())
	_, err := b.Read(Materials)
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestDirBundle(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "recipes.json"), []byte(`[]`), 0644); err != nil {
		t.Fatalf("write: %v", err)
	}
	b := DirBundle(dir)
	r, err := Load[glaze.Recipe](b, Recipes)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if len(r) != 0 {
		t.Fatalf("expected empty collection, got %d", len(r))
	}
	if _, err := b.Read(Colorants); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound for absent colorants, got %v", err)
	}
}

func TestDecodeFailsWholeFile(t *testing.T) {
	data := []byte(`[
	  {"id": 1, "name": "a", "cone": "6", "atmosphere": "Ox", "ingredients": [], "image_name": "a"},
	  {"id": 2, "name": "b", "cone": "6", "atmosphere": "Ox", "ingredients": []}
	]`)
	got, err := Decode[glaze.Recipe](Recipes, data)
	if got != nil {
		t.Fatalf("expected no partial collection, got %d records", len(got))
	}
	var de *DecodeError
	if !errors.As(err, &de) {
		t.Fatalf("expected DecodeError, got %v", err)
	}
	if de.Kind != Recipes || de.Index != 1 {
		t.Errorf("unexpected error location: %+v", de)
	}
	if !errors.Is(err, glaze.ErrMissingField) {
		t.Errorf("expected missing field cause, got %v", err)
	}
}

func TestDecodeMalformed(t *testing.T) {
	tests := map[string]string{
		"truncated":  `[{"id": 1`,
		"object":     `{"words": []}`,
		"null":       `null`,
		"bad record": `["not an object"]`,
	}
	for name, data := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := Decode[glaze.Recipe](Recipes, []byte(data))
			var de *DecodeError
			if !errors.As(err, &de) {
				t.Fatalf("expected DecodeError, got %v", err)
			}
		})
	}
}

func TestParseKind(t *testing.T) {
	for _, k := range Kinds() {
		if got, err := ParseKind(string(k)); err != nil || got != k {
			t.Errorf("ParseKind(%q) = %q, %v", k, got, err)
		}
		if got, err := ParseKind(k.Dashed()); err != nil || got != k {
			t.Errorf("ParseKind(%q) = %q, %v", k.Dashed(), got, err)
		}
	}
	if _, err := ParseKind("kilns"); err == nil {
		t.Errorf("expected error for unknown kind")
	}
}

func TestInvalidUTF8FailsWholeFile(t *testing.T) {
	data, err := Bundled().Read(Materials)
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	bad := bytes.Replace(data, []byte(`"Kaolin"`), []byte("\"Kaolin\xff\""), 1)
	if bytes.Equal(bad, data) {
		t.Fatalf("fixture does not contain the Kaolin record")
	}

	items, err := Decode[glaze.Material](Materials, bad)
	var de *DecodeError
	if !errors.As(err, &de) || de.Index != -1 {
		t.Fatalf("expected file-level DecodeError, got %v", err)
	}
	if !errors.Is(err, ErrInvalidUTF8) {
		t.Errorf("expected ErrInvalidUTF8, got %v", err)
	}
	if items != nil {
		t.Errorf("expected no records, got %d", len(items))
	}
}
