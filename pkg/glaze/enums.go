package glaze

import (
	"errors"
	"fmt"
)

// ErrUnknownEnum is returned when a stored enum string matches no known variant.
var ErrUnknownEnum = errors.New("unknown enum value")

// parseEnum matches raw against the known wire values exactly (case-sensitive).
func parseEnum[E ~string](raw string, known []E) (E, error) {
	for _, k := range known {
		if string(k) == raw {
			return k, nil
		}
	}
	var zero E
	return zero, fmt.Errorf("%w for %T: %q", ErrUnknownEnum, zero, raw)
}

// SafetyLevel grades how hazardous a material or colorant is.
type SafetyLevel string

const (
	SafetySafe     SafetyLevel = "SAFE"
	SafetyCaution  SafetyLevel = "CAUTION"
	SafetyIrritant SafetyLevel = "IRRITANT"
	SafetyToxic    SafetyLevel = "TOXIC"
)

func AllSafetyLevels() []SafetyLevel {
	return []SafetyLevel{SafetySafe, SafetyCaution, SafetyIrritant, SafetyToxic}
}

func (s *SafetyLevel) UnmarshalText(b []byte) error {
	v, err := parseEnum(string(b), AllSafetyLevels())
	if err != nil {
		return err
	}
	*s = v
	return nil
}

func (s SafetyLevel) DisplayName() string {
	switch s {
	case SafetySafe:
		return "Güvenli"
	case SafetyCaution:
		return "Dikkat"
	case SafetyIrritant:
		return "Tahriş Edici"
	case SafetyToxic:
		return "Toksik"
	}
	return string(s)
}

// MaterialCategory is the role a raw material plays in a glaze.
type MaterialCategory string

const (
	MaterialFlux        MaterialCategory = "FLUX"
	MaterialGlassFormer MaterialCategory = "GLASS_FORMER"
	MaterialStabilizer  MaterialCategory = "STABILIZER"
	MaterialClayBody    MaterialCategory = "CLAY_BODY"
	MaterialOpacifier   MaterialCategory = "OPACIFIER"
)

func AllMaterialCategories() []MaterialCategory {
	return []MaterialCategory{MaterialFlux, MaterialGlassFormer, MaterialStabilizer, MaterialClayBody, MaterialOpacifier}
}

func (c *MaterialCategory) UnmarshalText(b []byte) error {
	v, err := parseEnum(string(b), AllMaterialCategories())
	if err != nil {
		return err
	}
	*c = v
	return nil
}

func (c MaterialCategory) DisplayName() string {
	switch c {
	case MaterialFlux:
		return "Eritici"
	case MaterialGlassFormer:
		return "Cam Oluşturucu"
	case MaterialStabilizer:
		return "Dengeleyici"
	case MaterialClayBody:
		return "Kil Bünyesi"
	case MaterialOpacifier:
		return "Opaklaştırıcı"
	}
	return string(c)
}

// ColorFamily groups colorants by the hue they produce.
type ColorFamily string

const (
	ColorBlue       ColorFamily = "BLUE"
	ColorGreen      ColorFamily = "GREEN"
	ColorRed        ColorFamily = "RED"
	ColorYellow     ColorFamily = "YELLOW"
	ColorBrown      ColorFamily = "BROWN"
	ColorBlack      ColorFamily = "BLACK"
	ColorWhite      ColorFamily = "WHITE"
	ColorMulticolor ColorFamily = "MULTICOLOR"
)

func AllColorFamilies() []ColorFamily {
	return []ColorFamily{ColorBlue, ColorGreen, ColorRed, ColorYellow, ColorBrown, ColorBlack, ColorWhite, ColorMulticolor}
}

func (c *ColorFamily) UnmarshalText(b []byte) error {
	v, err := parseEnum(string(b), AllColorFamilies())
	if err != nil {
		return err
	}
	*c = v
	return nil
}

func (c ColorFamily) DisplayName() string {
	switch c {
	case ColorBlue:
		return "Mavi"
	case ColorGreen:
		return "Yeşil"
	case ColorRed:
		return "Kırmızı"
	case ColorYellow:
		return "Sarı"
	case ColorBrown:
		return "Kahverengi"
	case ColorBlack:
		return "Siyah"
	case ColorWhite:
		return "Beyaz"
	case ColorMulticolor:
		return "Çok Renkli"
	}
	return string(c)
}

// GlazeCategory classifies finished glaze surfaces.
type GlazeCategory string

const (
	GlazeMatte       GlazeCategory = "MATTE"
	GlazeGlossy      GlazeCategory = "GLOSSY"
	GlazeSatin       GlazeCategory = "SATIN"
	GlazeCrystalline GlazeCategory = "CRYSTALLINE"
	GlazeCeladon     GlazeCategory = "CELADON"
	GlazeTemmoku     GlazeCategory = "TEMMOKU"
)

func AllGlazeCategories() []GlazeCategory {
	return []GlazeCategory{GlazeMatte, GlazeGlossy, GlazeSatin, GlazeCrystalline, GlazeCeladon, GlazeTemmoku}
}

func (c *GlazeCategory) UnmarshalText(b []byte) error {
	v, err := parseEnum(string(b), AllGlazeCategories())
	if err != nil {
		return err
	}
	*c = v
	return nil
}

func (c GlazeCategory) DisplayName() string {
	switch c {
	case GlazeMatte:
		return "Mat"
	case GlazeGlossy:
		return "Parlak"
	case GlazeSatin:
		return "Saten"
	case GlazeCrystalline:
		return "Kristal"
	case GlazeCeladon:
		return "Seladon"
	case GlazeTemmoku:
		return "Temmoku"
	}
	return string(c)
}

// FiringCategory is the temperature band of a firing.
type FiringCategory string

const (
	FiringLow       FiringCategory = "LOW_FIRE"
	FiringMid       FiringCategory = "MID_FIRE"
	FiringHigh      FiringCategory = "HIGH_FIRE"
	FiringSpecialty FiringCategory = "SPECIALTY"
)

func AllFiringCategories() []FiringCategory {
	return []FiringCategory{FiringLow, FiringMid, FiringHigh, FiringSpecialty}
}

func (c *FiringCategory) UnmarshalText(b []byte) error {
	v, err := parseEnum(string(b), AllFiringCategories())
	if err != nil {
		return err
	}
	*c = v
	return nil
}

func (c FiringCategory) DisplayName() string {
	switch c {
	case FiringLow:
		return "Düşük"
	case FiringMid:
		return "Orta"
	case FiringHigh:
		return "Yüksek"
	case FiringSpecialty:
		return "Özel"
	}
	return string(c)
}

// Atmosphere is the kiln atmosphere during a firing.
type Atmosphere string

const (
	AtmosphereOxidation Atmosphere = "OXIDATION"
	AtmosphereReduction Atmosphere = "REDUCTION"
	AtmosphereNeutral   Atmosphere = "NEUTRAL"
	AtmosphereVariable  Atmosphere = "VARIABLE"
)

func AllAtmospheres() []Atmosphere {
	return []Atmosphere{AtmosphereOxidation, AtmosphereReduction, AtmosphereNeutral, AtmosphereVariable}
}

func (a *Atmosphere) UnmarshalText(b []byte) error {
	v, err := parseEnum(string(b), AllAtmospheres())
	if err != nil {
		return err
	}
	*a = v
	return nil
}

func (a Atmosphere) DisplayName() string {
	switch a {
	case AtmosphereOxidation:
		return "Oksidasyon"
	case AtmosphereReduction:
		return "Redüksiyon"
	case AtmosphereNeutral:
		return "Nötr"
	case AtmosphereVariable:
		return "Değişken"
	}
	return string(a)
}

// EffectType classifies surface effects.
type EffectType string

const (
	EffectDecorative     EffectType = "DECORATIVE"
	EffectTextural       EffectType = "TEXTURAL"
	EffectColorVariation EffectType = "COLOR_VARIATION"
	EffectCrystalline    EffectType = "CRYSTALLINE"
)

func AllEffectTypes() []EffectType {
	return []EffectType{EffectDecorative, EffectTextural, EffectColorVariation, EffectCrystalline}
}

func (e *EffectType) UnmarshalText(b []byte) error {
	v, err := parseEnum(string(b), AllEffectTypes())
	if err != nil {
		return err
	}
	*e = v
	return nil
}

func (e EffectType) DisplayName() string {
	switch e {
	case EffectDecorative:
		return "Dekoratif"
	case EffectTextural:
		return "Dokusal"
	case EffectColorVariation:
		return "Renk"
	case EffectCrystalline:
		return "Kristal"
	}
	return string(e)
}

// SafetyCategory groups safety articles.
type SafetyCategory string

const (
	SafetyMaterial    SafetyCategory = "MATERIAL_SAFETY"
	SafetyStudio      SafetyCategory = "STUDIO_SAFETY"
	SafetyRespiratory SafetyCategory = "RESPIRATORY"
)

func AllSafetyCategories() []SafetyCategory {
	return []SafetyCategory{SafetyMaterial, SafetyStudio, SafetyRespiratory}
}

func (c *SafetyCategory) UnmarshalText(b []byte) error {
	v, err := parseEnum(string(b), AllSafetyCategories())
	if err != nil {
		return err
	}
	*c = v
	return nil
}

func (c SafetyCategory) DisplayName() string {
	switch c {
	case SafetyMaterial:
		return "Malzeme"
	case SafetyStudio:
		return "Stüdyo"
	case SafetyRespiratory:
		return "Solunum"
	}
	return string(c)
}

// HazardType is an exposure route.
type HazardType string

const (
	HazardInhalation  HazardType = "INHALATION"
	HazardSkinContact HazardType = "SKIN_CONTACT"
	HazardEyeContact  HazardType = "EYE_CONTACT"
	HazardIngestion   HazardType = "INGESTION"
)

func AllHazardTypes() []HazardType {
	return []HazardType{HazardInhalation, HazardSkinContact, HazardEyeContact, HazardIngestion}
}

func (h *HazardType) UnmarshalText(b []byte) error {
	v, err := parseEnum(string(b), AllHazardTypes())
	if err != nil {
		return err
	}
	*h = v
	return nil
}

func (h HazardType) DisplayName() string {
	switch h {
	case HazardInhalation:
		return "Soluma"
	case HazardSkinContact:
		return "Cilt"
	case HazardEyeContact:
		return "Göz"
	case HazardIngestion:
		return "Yutma"
	}
	return string(h)
}

// GlossaryCategory groups glossary terms.
type GlossaryCategory string

const (
	GlossaryMaterial  GlossaryCategory = "MATERIAL"
	GlossaryTechnique GlossaryCategory = "TECHNIQUE"
	GlossaryFiring    GlossaryCategory = "FIRING"
	GlossaryGeneral   GlossaryCategory = "GENERAL"
)

func AllGlossaryCategories() []GlossaryCategory {
	return []GlossaryCategory{GlossaryMaterial, GlossaryTechnique, GlossaryFiring, GlossaryGeneral}
}

func (c *GlossaryCategory) UnmarshalText(b []byte) error {
	v, err := parseEnum(string(b), AllGlossaryCategories())
	if err != nil {
		return err
	}
	*c = v
	return nil
}

func (c GlossaryCategory) DisplayName() string {
	switch c {
	case GlossaryMaterial:
		return "Malzeme"
	case GlossaryTechnique:
		return "Teknik"
	case GlossaryFiring:
		return "Pişirim"
	case GlossaryGeneral:
		return "Genel"
	}
	return string(c)
}
