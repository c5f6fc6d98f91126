package glaze

import (
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

const materialJSON = `{
  "id": "m_feldspar",
  "name": "Potasyum Feldspat",
  "alternativeNames": ["Custer Feldspar", "K-Spar"],
  "category": "FLUX",
  "description": "Primary flux for high fire glazes.",
  "characteristics": ["Melts around cone 9"],
  "commonUses": ["Stoneware glazes"],
  "safetyLevel": "CAUTION",
  "safetyNotes": "Contains free silica.",
  "temperatureRange": "1200-1300°C",
  "relatedMaterialIds": ["m_silica"],
  "relatedColorantIds": [],
  "relatedGlazeTypeIds": ["g_celadon"],
  "wikipediaTitle": "Feldspar",
  "wikipediaUrl": "https://en.wikipedia.org/wiki/Feldspar"
}`

func TestMaterialDecode(t *testing.T) {
	var m Material
	if err := json.Unmarshal([]byte(materialJSON), &m); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if m.Category != MaterialFlux || m.SafetyLevel != SafetyCaution {
		t.Fatalf("unexpected enums: %q %q", m.Category, m.SafetyLevel)
	}
	want := Attribution{Title: "Feldspar", URL: "https://en.wikipedia.org/wiki/Feldspar"}
	if diff := cmp.Diff(want, m.Attribution()); diff != "" {
		t.Errorf("attribution mismatch (-want +got):\n%s", diff)
	}
	if m.Key() != "m_feldspar" || m.Label() != "Potasyum Feldspat" {
		t.Errorf("unexpected key/label %q/%q", m.Key(), m.Label())
	}
}

func TestMaterialMissingRequiredField(t *testing.T) {
	tests := []string{"safetyLevel", "alternativeNames", "relatedGlazeTypeIds", "id"}
	for _, field := range tests {
		t.Run(field, func(t *testing.T) {
			var raw map[string]any
			if err := json.Unmarshal([]byte(materialJSON), &raw); err != nil {
				t.Fatalf("setup: %v", err)
			}
			delete(raw, field)
			data, _ := json.Marshal(raw)
			var m Material
			err := json.Unmarshal(data, &m)
			if !errors.Is(err, ErrMissingField) {
				t.Fatalf("expected ErrMissingField, got %v", err)
			}
			if !strings.Contains(err.Error(), field) {
				t.Errorf("error %q does not name field %q", err, field)
			}
		})
	}
}

func TestNullRequiredFieldIsMissing(t *testing.T) {
	data := strings.Replace(materialJSON, `"safetyNotes": "Contains free silica."`, `"safetyNotes": null`, 1)
	var m Material
	if err := json.Unmarshal([]byte(data), &m); !errors.Is(err, ErrMissingField) {
		t.Fatalf("expected ErrMissingField for null, got %v", err)
	}
}

func TestUnknownEnumFailsRecord(t *testing.T) {
	tests := []struct {
		name string
		from string
		to   string
	}{
		{"unknown category", `"category": "FLUX"`, `"category": "FRIT"`},
		{"wrong case", `"safetyLevel": "CAUTION"`, `"safetyLevel": "caution"`},
		{"non-string", `"safetyLevel": "CAUTION"`, `"safetyLevel": 2`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			data := strings.Replace(materialJSON, tt.from, tt.to, 1)
			var m Material
			if err := json.Unmarshal([]byte(data), &m); err == nil {
				t.Fatalf("expected decode error")
			}
		})
	}
}

func TestUnknownEnumWrapsSentinel(t *testing.T) {
	var c ColorFamily
	err := json.Unmarshal([]byte(`"TEAL"`), &c)
	if !errors.Is(err, ErrUnknownEnum) {
		t.Fatalf("expected ErrUnknownEnum, got %v", err)
	}
}

func TestHazardTypesDecode(t *testing.T) {
	var hs []HazardType
	if err := json.Unmarshal([]byte(`["INHALATION","EYE_CONTACT"]`), &hs); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if diff := cmp.Diff([]HazardType{HazardInhalation, HazardEyeContact}, hs); diff != "" {
		t.Errorf("hazards mismatch (-want +got):\n%s", diff)
	}
	if err := json.Unmarshal([]byte(`["INHALATION","SMELL"]`), &hs); err == nil {
		t.Fatalf("expected error for unknown hazard")
	}
}

func TestColorantDecode(t *testing.T) {
	data := `{
	  "id": "co_cobalt", "name": "Kobalt", "chemicalName": "Cobalt Oxide",
	  "colorFamily": "BLUE", "description": "Strong blue colorant.",
	  "colorCharacteristics": ["intense"], "oxidationEffect": "blue",
	  "reductionEffect": "blue", "temperatureSensitivity": "stable",
	  "safetyLevel": "TOXIC", "safetyNotes": "Avoid dust.",
	  "historicalBackground": "Used since antiquity.",
	  "relatedColorantIds": ["co_unknown"], "relatedMaterialIds": [],
	  "relatedSurfaceEffectIds": []
	}`
	var c Colorant
	if err := json.Unmarshal([]byte(data), &c); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if c.ColorFamily != ColorBlue || c.SafetyLevel != SafetyToxic {
		t.Fatalf("unexpected enums: %q %q", c.ColorFamily, c.SafetyLevel)
	}
	if !c.Attribution().IsZero() {
		t.Errorf("expected absent attribution, got %+v", c.Attribution())
	}
	if got := c.AtmosphereEffects(); got.Oxidation != "blue" || got.Reduction != "blue" {
		t.Errorf("unexpected atmosphere effects %+v", got)
	}
}

func TestRecipeDefaults(t *testing.T) {
	data := `{"id": 7, "name": "Leach 4321", "cone": "10", "atmosphere": "Reduction",
	  "ingredients": [{"name": "Custer Feldspar", "amount": 40}, {"name": "Silica", "amount": 30}],
	  "image_name": "leach"}`
	var r Recipe
	if err := json.Unmarshal([]byte(data), &r); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if r.Additives == nil || len(r.Additives) != 0 {
		t.Errorf("expected empty non-nil additives, got %#v", r.Additives)
	}
	if r.Instructions != "" {
		t.Errorf("expected empty instructions, got %q", r.Instructions)
	}
	if r.Key() != 7 || len(r.Ingredients) != 2 || r.Ingredients[0].Amount != 40 {
		t.Errorf("unexpected recipe %+v", r)
	}
}

func TestRecipeRequiredFields(t *testing.T) {
	tests := map[string]string{
		"no image":             `{"id": 1, "name": "a", "cone": "6", "atmosphere": "Ox", "ingredients": []}`,
		"string id":            `{"id": "1", "name": "a", "cone": "6", "atmosphere": "Ox", "ingredients": [], "image_name": "x"}`,
		"ingredient no amount": `{"id": 1, "name": "a", "cone": "6", "atmosphere": "Ox", "ingredients": [{"name": "Silica"}], "image_name": "x"}`,
	}
	for name, data := range tests {
		t.Run(name, func(t *testing.T) {
			var r Recipe
			if err := json.Unmarshal([]byte(data), &r); err == nil {
				t.Fatalf("expected error, got %+v", r)
			}
		})
	}
}

func TestDisplayNamesCoverAllVariants(t *testing.T) {
	for _, v := range AllSafetyLevels() {
		if v.DisplayName() == string(v) {
			t.Errorf("missing display name for %q", v)
		}
	}
	for _, v := range AllColorFamilies() {
		if v.DisplayName() == string(v) {
			t.Errorf("missing display name for %q", v)
		}
	}
	for _, v := range AllFiringCategories() {
		if v.DisplayName() == string(v) {
			t.Errorf("missing display name for %q", v)
		}
	}
	for _, v := range AllHazardTypes() {
		if v.DisplayName() == string(v) {
			t.Errorf("missing display name for %q", v)
		}
	}
}

func TestParseThemeMode(t *testing.T) {
	for _, m := range AllThemeModes() {
		got, err := ParseThemeMode(string(m))
		if err != nil || got != m {
			t.Errorf("ParseThemeMode(%q) = %q, %v", m, got, err)
		}
	}
	if _, err := ParseThemeMode("Dark"); !errors.Is(err, ErrUnknownEnum) {
		t.Errorf("expected ErrUnknownEnum for wrong case, got %v", err)
	}
}
