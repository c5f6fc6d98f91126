// Package catalog holds the eight glaze reference collections in memory and
// answers search and lookup queries over them.
//
// Collections are replaced only by LoadAll; every query is a pure read under a
// shared lock and returns a fresh slice.
package catalog

import (
	"errors"
	"slices"
	"sync"
	"sync/atomic"
	"time"

	"github.com/japaniel/glazekb/pkg/dataset"
	"github.com/japaniel/glazekb/pkg/glaze"
	"github.com/japaniel/glazekb/pkg/logger"
)

// ErrLoadInProgress is returned by LoadAll when another load has not finished.
var ErrLoadInProgress = errors.New("catalog load already in progress")

// Observer receives load lifecycle events. metrics.Recorder implements it.
type Observer interface {
	LoadStarted()
	LoadFinished(elapsed time.Duration)
	DatasetLoaded(kind, result string, count int)
}

// Catalog is the dataset store.
type Catalog struct {
	Bundle *dataset.Bundle
	// Logger receives load diagnostics. nil means no logging.
	Logger *logger.Logger
	// Observer is notified of load progress. nil means none.
	Observer Observer
	// Workers bounds how many datasets decode at once.
	Workers int

	loading atomic.Bool

	mu             sync.RWMutex
	materials      []glaze.Material
	colorants      []glaze.Colorant
	glazeTypes     []glaze.GlazeType
	firingTypes    []glaze.FiringType
	surfaceEffects []glaze.SurfaceEffect
	safetyInfo     []glaze.SafetyInfo
	glossaryTerms  []glaze.GlossaryTerm
	recipes        []glaze.Recipe
}

// New creates an empty catalog backed by b. Call LoadAll to populate it.
func New(b *dataset.Bundle) *Catalog {
	return &Catalog{
		Bundle:  b,
		Workers: 4,
	}
}

// Loading reports whether a LoadAll call is running.
func (c *Catalog) Loading() bool {
	return c.loading.Load()
}

func (c *Catalog) log() *logger.Logger {
	if c.Logger == nil {
		return logger.Nop()
	}
	return c.Logger
}

// Count returns the number of records currently held for kind.
func (c *Catalog) Count(kind dataset.Kind) int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	switch kind {
	case dataset.Materials:
		return len(c.materials)
	case dataset.Colorants:
		return len(c.colorants)
	case dataset.GlazeTypes:
		return len(c.glazeTypes)
	case dataset.FiringTypes:
		return len(c.firingTypes)
	case dataset.SurfaceEffects:
		return len(c.surfaceEffects)
	case dataset.SafetyInfo:
		return len(c.safetyInfo)
	case dataset.GlossaryTerms:
		return len(c.glossaryTerms)
	case dataset.Recipes:
		return len(c.recipes)
	}
	return 0
}

// Materials returns a copy of the loaded materials.
func (c *Catalog) Materials() []glaze.Material {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return slices.Clone(c.materials)
}

// Colorants returns a copy of the loaded colorants.
func (c *Catalog) Colorants() []glaze.Colorant {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return slices.Clone(c.colorants)
}

// GlazeTypes returns a copy of the loaded glaze types.
func (c *Catalog) GlazeTypes() []glaze.GlazeType {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return slices.Clone(c.glazeTypes)
}

// FiringTypes returns a copy of the loaded firing types.
func (c *Catalog) FiringTypes() []glaze.FiringType {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return slices.Clone(c.firingTypes)
}

// SurfaceEffects returns a copy of the loaded surface effects.
func (c *Catalog) SurfaceEffects() []glaze.SurfaceEffect {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return slices.Clone(c.surfaceEffects)
}

// SafetyInfo returns a copy of the loaded safety articles.
func (c *Catalog) SafetyInfo() []glaze.SafetyInfo {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return slices.Clone(c.safetyInfo)
}

// GlossaryTerms returns a copy of the loaded glossary terms.
func (c *Catalog) GlossaryTerms() []glaze.GlossaryTerm {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return slices.Clone(c.glossaryTerms)
}

// Recipes returns a copy of the loaded recipes.
func (c *Catalog) Recipes() []glaze.Recipe {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return slices.Clone(c.recipes)
}
