// Package glaze holds the ceramic glaze reference records and their JSON
// decoding contract. Records are immutable values once decoded.
package glaze

import "fmt"

// Attribution is optional provenance for a record.
type Attribution struct {
	Title   string
	URL     string
	Sources []string
}

// IsZero reports whether no provenance was recorded.
func (a Attribution) IsZero() bool {
	return a.Title == "" && a.URL == "" && len(a.Sources) == 0
}

// Sourced carries the flat attribution fields shared by every record.
type Sourced struct {
	WikipediaTitle    string   `json:"wikipediaTitle,omitempty"`
	WikipediaURL      string   `json:"wikipediaUrl,omitempty"`
	AdditionalSources []string `json:"additionalSources,omitempty"`
}

func (s Sourced) Attribution() Attribution {
	return Attribution{Title: s.WikipediaTitle, URL: s.WikipediaURL, Sources: s.AdditionalSources}
}

// Material is a raw glaze ingredient.
type Material struct {
	ID                  string           `json:"id"`
	Name                string           `json:"name"`
	AlternativeNames    []string         `json:"alternativeNames"`
	Category            MaterialCategory `json:"category"`
	Description         string           `json:"description"`
	Characteristics     []string         `json:"characteristics"`
	CommonUses          []string         `json:"commonUses"`
	SafetyLevel         SafetyLevel      `json:"safetyLevel"`
	SafetyNotes         string           `json:"safetyNotes"`
	TemperatureRange    string           `json:"temperatureRange"`
	RelatedMaterialIDs  []string         `json:"relatedMaterialIds"`
	RelatedColorantIDs  []string         `json:"relatedColorantIds"`
	RelatedGlazeTypeIDs []string         `json:"relatedGlazeTypeIds"`
	Sourced
}

func (m *Material) UnmarshalJSON(data []byte) error {
	type plain Material
	var p plain
	if err := decodeRecord(data, &p); err != nil {
		return fmt.Errorf("material: %w", err)
	}
	*m = Material(p)
	return nil
}

func (m Material) Key() string   { return m.ID }
func (m Material) Label() string { return m.Name }

// Colorant is a metal oxide or stain that colours a glaze.
type Colorant struct {
	ID                      string      `json:"id"`
	Name                    string      `json:"name"`
	ChemicalName            string      `json:"chemicalName"`
	ColorFamily             ColorFamily `json:"colorFamily"`
	Description             string      `json:"description"`
	ColorCharacteristics    []string    `json:"colorCharacteristics"`
	OxidationEffect         string      `json:"oxidationEffect"`
	ReductionEffect         string      `json:"reductionEffect"`
	TemperatureSensitivity  string      `json:"temperatureSensitivity"`
	SafetyLevel             SafetyLevel `json:"safetyLevel"`
	SafetyNotes             string      `json:"safetyNotes"`
	HistoricalBackground    string      `json:"historicalBackground"`
	RelatedColorantIDs      []string    `json:"relatedColorantIds"`
	RelatedMaterialIDs      []string    `json:"relatedMaterialIds"`
	RelatedSurfaceEffectIDs []string    `json:"relatedSurfaceEffectIds"`
	Sourced
}

func (c *Colorant) UnmarshalJSON(data []byte) error {
	type plain Colorant
	var p plain
	if err := decodeRecord(data, &p); err != nil {
		return fmt.Errorf("colorant: %w", err)
	}
	*c = Colorant(p)
	return nil
}

func (c Colorant) Key() string   { return c.ID }
func (c Colorant) Label() string { return c.Name }

// AtmosphereEffects pairs how a colorant behaves in each kiln atmosphere.
type AtmosphereEffects struct {
	Oxidation string
	Reduction string
}

func (c Colorant) AtmosphereEffects() AtmosphereEffects {
	return AtmosphereEffects{Oxidation: c.OxidationEffect, Reduction: c.ReductionEffect}
}

// GlazeType describes a family of finished glaze surfaces.
type GlazeType struct {
	ID                      string        `json:"id"`
	Name                    string        `json:"name"`
	Category                GlazeCategory `json:"category"`
	Description             string        `json:"description"`
	VisualCharacteristics   []string      `json:"visualCharacteristics"`
	SurfaceQuality          string        `json:"surfaceQuality"`
	LightInteraction        string        `json:"lightInteraction"`
	TypicalTemperatureRange string        `json:"typicalTemperatureRange"`
	HistoricalContext       string        `json:"historicalContext"`
	CommonApplications      []string      `json:"commonApplications"`
	RelatedGlazeTypeIDs     []string      `json:"relatedGlazeTypeIds"`
	RelatedSurfaceEffectIDs []string      `json:"relatedSurfaceEffectIds"`
	RelatedFiringTypeIDs    []string      `json:"relatedFiringTypeIds"`
	Sourced
}

func (g *GlazeType) UnmarshalJSON(data []byte) error {
	type plain GlazeType
	var p plain
	if err := decodeRecord(data, &p); err != nil {
		return fmt.Errorf("glaze type: %w", err)
	}
	*g = GlazeType(p)
	return nil
}

func (g GlazeType) Key() string   { return g.ID }
func (g GlazeType) Label() string { return g.Name }

// FiringType describes a kiln firing schedule family.
type FiringType struct {
	ID                         string         `json:"id"`
	Name                       string         `json:"name"`
	FiringCategory             FiringCategory `json:"firingCategory"`
	Description                string         `json:"description"`
	TemperatureRangeCelsius    string         `json:"temperatureRangeCelsius"`
	TemperatureRangeFahrenheit string         `json:"temperatureRangeFahrenheit"`
	ConeRange                  string         `json:"coneRange"`
	Atmosphere                 Atmosphere     `json:"atmosphere"`
	Characteristics            []string       `json:"characteristics"`
	HistoricalBackground       string         `json:"historicalBackground"`
	CommonCeramicTypes         []string       `json:"commonCeramicTypes"`
	RelatedGlazeTypeIDs        []string       `json:"relatedGlazeTypeIds"`
	RelatedFiringTypeIDs       []string       `json:"relatedFiringTypeIds"`
	Sourced
}

func (f *FiringType) UnmarshalJSON(data []byte) error {
	type plain FiringType
	var p plain
	if err := decodeRecord(data, &p); err != nil {
		return fmt.Errorf("firing type: %w", err)
	}
	*f = FiringType(p)
	return nil
}

func (f FiringType) Key() string   { return f.ID }
func (f FiringType) Label() string { return f.Name }

// SurfaceEffect is a visual or textural phenomenon on a fired surface.
type SurfaceEffect struct {
	ID                  string     `json:"id"`
	Name                string     `json:"name"`
	EffectType          EffectType `json:"effectType"`
	Description         string     `json:"description"`
	VisualAppearance    string     `json:"visualAppearance"`
	Causes              []string   `json:"causes"`
	AssociatedFactors   []string   `json:"associatedFactors"`
	HistoricalContext   string     `json:"historicalContext"`
	NotableExamples     []string   `json:"notableExamples"`
	RelatedEffectIDs    []string   `json:"relatedEffectIds"`
	RelatedGlazeTypeIDs []string   `json:"relatedGlazeTypeIds"`
	RelatedColorantIDs  []string   `json:"relatedColorantIds"`
	Sourced
}

func (s *SurfaceEffect) UnmarshalJSON(data []byte) error {
	type plain SurfaceEffect
	var p plain
	if err := decodeRecord(data, &p); err != nil {
		return fmt.Errorf("surface effect: %w", err)
	}
	*s = SurfaceEffect(p)
	return nil
}

func (s SurfaceEffect) Key() string   { return s.ID }
func (s SurfaceEffect) Label() string { return s.Name }

// SafetyInfo is a studio safety article.
type SafetyInfo struct {
	ID                 string         `json:"id"`
	Title              string         `json:"title"`
	Category           SafetyCategory `json:"category"`
	Description        string         `json:"description"`
	HazardTypes        []HazardType   `json:"hazardTypes"`
	ProtectiveMeasures []string       `json:"protectiveMeasures"`
	Symptoms           []string       `json:"symptoms"`
	FirstAidInfo       string         `json:"firstAidInfo"`
	StorageGuidelines  string         `json:"storageGuidelines"`
	DisposalGuidelines string         `json:"disposalGuidelines"`
	RegulatoryInfo     string         `json:"regulatoryInfo"`
	RelatedMaterialIDs []string       `json:"relatedMaterialIds"`
	RelatedColorantIDs []string       `json:"relatedColorantIds"`
	Sourced
}

func (s *SafetyInfo) UnmarshalJSON(data []byte) error {
	type plain SafetyInfo
	var p plain
	if err := decodeRecord(data, &p); err != nil {
		return fmt.Errorf("safety info: %w", err)
	}
	*s = SafetyInfo(p)
	return nil
}

func (s SafetyInfo) Key() string   { return s.ID }
func (s SafetyInfo) Label() string { return s.Title }

// GlossaryTerm is a dictionary entry for ceramics vocabulary.
type GlossaryTerm struct {
	ID                  string           `json:"id"`
	Term                string           `json:"term"`
	AlternativeTerms    []string         `json:"alternativeTerms"`
	Definition          string           `json:"definition"`
	ExtendedDescription string           `json:"extendedDescription"`
	Category            GlossaryCategory `json:"category"`
	RelatedTermIDs      []string         `json:"relatedTermIds"`
	RelatedMaterialIDs  []string         `json:"relatedMaterialIds"`
	RelatedColorantIDs  []string         `json:"relatedColorantIds"`
	RelatedGlazeTypeIDs []string         `json:"relatedGlazeTypeIds"`
	Sourced
}

func (g *GlossaryTerm) UnmarshalJSON(data []byte) error {
	type plain GlossaryTerm
	var p plain
	if err := decodeRecord(data, &p); err != nil {
		return fmt.Errorf("glossary term: %w", err)
	}
	*g = GlossaryTerm(p)
	return nil
}

func (g GlossaryTerm) Key() string   { return g.ID }
func (g GlossaryTerm) Label() string { return g.Term }
