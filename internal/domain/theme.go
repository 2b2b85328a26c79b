package domain

// Theme is the stored display theme preference.
type Theme string

const (
	ThemeDark  Theme = "dark"
	ThemeLight Theme = "light"
)

// Valid reports whether t is one of the two supported themes.
func (t Theme) Valid() bool {
	return t == ThemeDark || t == ThemeLight
}
