// Package dataset locates and decodes the bundled JSON reference files.
package dataset

import (
	"embed"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"strings"
	"unicode/utf8"

	"github.com/spf13/afero"
)

// Kind names one of the eight datasets. The value is the backing file's
// base name.
type Kind string

const (
	Materials      Kind = "materials"
	Colorants      Kind = "colorants"
	GlazeTypes     Kind = "glaze_types"
	FiringTypes    Kind = "firing_types"
	SurfaceEffects Kind = "surface_effects"
	SafetyInfo     Kind = "safety_info"
	GlossaryTerms  Kind = "glossary_terms"
	Recipes        Kind = "recipes"
)

// Kinds returns every dataset kind in load order.
func Kinds() []Kind {
	return []Kind{Materials, Colorants, GlazeTypes, FiringTypes, SurfaceEffects, SafetyInfo, GlossaryTerms, Recipes}
}

// ParseKind accepts a kind's file name ("glaze_types") or its dashed form ("glaze-types").
func ParseKind(s string) (Kind, error) {
	for _, k := range Kinds() {
		if string(k) == s || k.Dashed() == s {
			return k, nil
		}
	}
	return "", fmt.Errorf("unknown dataset %q", s)
}

// Dashed returns the kind with underscores replaced by dashes.
func (k Kind) Dashed() string { return strings.ReplaceAll(string(k), "_", "-") }

// FileName is the backing file for k.
func (k Kind) FileName() string { return string(k) + ".json" }

// ErrNotFound is returned when a dataset's backing file does not exist.
var ErrNotFound = errors.New("dataset not found")

// ErrInvalidUTF8 is wrapped by a DecodeError when a dataset file is not valid
// UTF-8.
var ErrInvalidUTF8 = errors.New("invalid UTF-8")

// DecodeError reports a malformed dataset file. Index is the offending record,
// or -1 when the file itself could not be parsed as an array.
type DecodeError struct {
	Kind  Kind
	Index int
	Err   error
}

func (e *DecodeError) Error() string {
	if e.Index < 0 {
		return fmt.Sprintf("decode %s: %v", e.Kind.FileName(), e.Err)
	}
	return fmt.Sprintf("decode %s record %d: %v", e.Kind.FileName(), e.Index, e.Err)
}

func (e *DecodeError) Unwrap() error { return e.Err }

//go:embed data/*.json
var bundled embed.FS

// Bundle maps dataset kinds to file content on a filesystem.
type Bundle struct {
	fs afero.Fs
}

// NewBundle reads datasets from the root of fsys.
func NewBundle(fsys afero.Fs) *Bundle {
	return &Bundle{fs: fsys}
}

// DirBundle reads datasets from a directory on disk.
func DirBundle(dir string) *Bundle {
	return NewBundle(afero.NewReadOnlyFs(afero.NewBasePathFs(afero.NewOsFs(), dir)))
}

// Bundled returns the datasets compiled into the binary.
func Bundled() *Bundle {
	sub, err := fs.Sub(bundled, "data")
	if err != nil {
		// fs.Sub only fails on an invalid path literal.
		panic(err)
	}
	return NewBundle(afero.FromIOFS{FS: sub})
}

// Read returns the raw content of kind's file.
func (b *Bundle) Read(kind Kind) ([]byte, error) {
	data, err := afero.ReadFile(b.fs, kind.FileName())
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrNotFound, kind.FileName())
		}
		return nil, fmt.Errorf("read %s: %w", kind.FileName(), err)
	}
	return data, nil
}

// Decode parses a top-level JSON array of records. Any bad record fails the
// whole file; no partial collection is returned.
func Decode[T any](kind Kind, data []byte) ([]T, error) {
	if !utf8.Valid(data) {
		return nil, &DecodeError{Kind: kind, Index: -1, Err: ErrInvalidUTF8}
	}
	var raws []json.RawMessage
	if err := json.Unmarshal(data, &raws); err != nil {
		return nil, &DecodeError{Kind: kind, Index: -1, Err: err}
	}
	if raws == nil {
		return nil, &DecodeError{Kind: kind, Index: -1, Err: errors.New("expected a JSON array, got null")}
	}
	out := make([]T, 0, len(raws))
	for i, raw := range raws {
		var v T
		if err := json.Unmarshal(raw, &v); err != nil {
			return nil, &DecodeError{Kind: kind, Index: i, Err: err}
		}
		out = append(out, v)
	}
	return out, nil
}

// Load reads and decodes kind from b.
func Load[T any](b *Bundle, kind Kind) ([]T, error) {
	data, err := b.Read(kind)
	if err != nil {
		return nil, err
	}
	return Decode[T](kind, data)
}
