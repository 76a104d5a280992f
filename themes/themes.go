package themes

import (
	"embed"
	"fmt"

	"gopkg.in/yaml.v3"
)

const defaultTheme = "standard"

// load reads themes/${theme}.yml into a flat map of color tag strings.
func load(allThemes embed.FS, theme string) (map[string]string, error) {
	colors := make(map[string]string)
	file := fmt.Sprintf("themes/%v.yml", theme)

	b, err := allThemes.ReadFile(file)
	if err != nil {
		return colors, fmt.Errorf("failed to load theme file %v: %w", file, err)
	}

	err = yaml.Unmarshal(b, &colors)
	if err != nil {
		return colors, fmt.Errorf("failed to unmarshal theme file %v: %w", file, err)
	}

	return colors, nil
}

// Load returns the requested theme's colors merged on top of the standard
// theme, so that colors left undefined by a custom theme still render with a
// visible default instead of an empty tag.
func Load(allThemes embed.FS, theme string) (map[string]string, error) {
	colors, err := load(allThemes, defaultTheme)
	if err != nil {
		return colors, err
	}

	switch theme {
	case "":
		fallthrough
	case defaultTheme:
		return colors, nil
	default:
		break
	}

	u, err := load(allThemes, theme)
	if err != nil {
		return colors, err
	}

	// merge the two maps
	for k, v := range u {
		colors[k] = v
	}

	return colors, nil
}
