package prompt

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
)

const (
	colorModeAutoStringConstant      = "auto"
	colorModeAlwaysStringConstant    = "always"
	colorModeNeverStringConstant     = "never"
	defaultSegmentStyleConstant      = "plain"
	colorConfigurationKeyConstant    = "color"
	segmentStyleConfigurationKey     = "segment_style"
	configurationKeyTemplateConstant = "%s.%s"
	unsupportedColorModeTemplate     = "unsupported color mode: %s"
)

// ColorMode selects when colour escape sequences are emitted.
type ColorMode string

// Supported colour modes.
const (
	ColorModeAuto   ColorMode = ColorMode(colorModeAutoStringConstant)
	ColorModeAlways ColorMode = ColorMode(colorModeAlwaysStringConstant)
	ColorModeNever  ColorMode = ColorMode(colorModeNeverStringConstant)
)

// ColorModeChoices lists the accepted colour mode values.
func ColorModeChoices() []string {
	return []string{colorModeAutoStringConstant, colorModeAlwaysStringConstant, colorModeNeverStringConstant}
}

// ParseColorMode normalizes a textual colour mode; the empty string selects ColorModeAlways.
func ParseColorMode(value string) (ColorMode, error) {
	normalizedValue := strings.ToLower(strings.TrimSpace(value))
	switch ColorMode(normalizedValue) {
	case "":
		return ColorModeAlways, nil
	case ColorModeAuto, ColorModeAlways, ColorModeNever:
		return ColorMode(normalizedValue), nil
	default:
		return "", fmt.Errorf(unsupportedColorModeTemplate, value)
	}
}

// TerminalColorDetector reports whether standard output accepts colour escape sequences.
type TerminalColorDetector func() bool

// DetectTerminalColor follows fatih/color, which honors NO_COLOR, TERM=dumb, and non-terminal output.
func DetectTerminalColor() bool {
	return !color.NoColor
}

// Enabled resolves the mode to a decision, consulting detector only for ColorModeAuto.
func (mode ColorMode) Enabled(detector TerminalColorDetector) bool {
	switch mode {
	case ColorModeAlways:
		return true
	case ColorModeNever:
		return false
	default:
		if detector == nil {
			detector = DetectTerminalColor
		}
		return detector()
	}
}

// Configuration captures the prompt rendering settings.
type Configuration struct {
	Color        string `mapstructure:"color"`
	SegmentStyle string `mapstructure:"segment_style"`
}

// DefaultConfiguration provides the baseline prompt settings. Colour is always on because a prompt
// hook captures the output through command substitution, which is never a terminal.
func DefaultConfiguration() Configuration {
	return Configuration{
		Color:        colorModeAlwaysStringConstant,
		SegmentStyle: defaultSegmentStyleConstant,
	}
}

// DefaultConfigurationValues exposes the defaults keyed for Viper under prefix.
func DefaultConfigurationValues(prefix string) map[string]any {
	defaults := DefaultConfiguration()
	return map[string]any{
		fmt.Sprintf(configurationKeyTemplateConstant, prefix, colorConfigurationKeyConstant): defaults.Color,
		fmt.Sprintf(configurationKeyTemplateConstant, prefix, segmentStyleConfigurationKey):  defaults.SegmentStyle,
	}
}

// Sanitize trims and lowercases values, restoring defaults for blanks.
func (configuration Configuration) Sanitize() Configuration {
	defaults := DefaultConfiguration()
	sanitized := Configuration{
		Color:        strings.ToLower(strings.TrimSpace(configuration.Color)),
		SegmentStyle: strings.ToLower(strings.TrimSpace(configuration.SegmentStyle)),
	}
	if len(sanitized.Color) == 0 {
		sanitized.Color = defaults.Color
	}
	if len(sanitized.SegmentStyle) == 0 {
		sanitized.SegmentStyle = defaults.SegmentStyle
	}
	return sanitized
}
