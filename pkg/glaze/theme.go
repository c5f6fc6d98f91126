package glaze

// ThemeMode is the persisted appearance preference.
type ThemeMode string

const (
	ThemeSystem ThemeMode = "system"
	ThemeLight  ThemeMode = "light"
	ThemeDark   ThemeMode = "dark"
)

func AllThemeModes() []ThemeMode {
	return []ThemeMode{ThemeSystem, ThemeLight, ThemeDark}
}

// ParseThemeMode returns the mode for s or ErrUnknownEnum.
func ParseThemeMode(s string) (ThemeMode, error) {
	return parseEnum(s, AllThemeModes())
}

func (t ThemeMode) DisplayName() string {
	switch t {
	case ThemeSystem:
		return "Sistem"
	case ThemeLight:
		return "Açık"
	case ThemeDark:
		return "Koyu"
	}
	return string(t)
}
