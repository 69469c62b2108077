package flags

import (
	"fmt"
	"strings"

	"github.com/spf13/pflag"
)

const (
	choicePlaceholderPrefix       = "<"
	choicePlaceholderSuffix       = ">"
	choiceSeparatorLiteral        = "|"
	choiceUsageEmptyTemplate      = "`%s`"
	choiceUsageFullTemplate       = "`%s` %s"
	choiceTypeNameConstant        = "choice"
	invalidChoiceTemplateConstant = "invalid value %q: expected one of %s"
)

// ChoiceValue is a pflag.Value restricted to a closed set of case-insensitive choices.
type ChoiceValue struct {
	choices []string
	value   string
}

// NewChoiceValue constructs a ChoiceValue holding defaultChoice.
func NewChoiceValue(defaultChoice string, choices []string) *ChoiceValue {
	return &ChoiceValue{
		choices: normalizeChoices(choices),
		value:   strings.ToLower(strings.TrimSpace(defaultChoice)),
	}
}

// BindChoiceFlag registers a choice flag on flagSet with a usage string that highlights the default.
func BindChoiceFlag(flagSet *pflag.FlagSet, name string, defaultChoice string, choices []string, description string) *ChoiceValue {
	choiceValue := NewChoiceValue(defaultChoice, choices)
	if flagSet != nil {
		flagSet.Var(choiceValue, name, FormatChoiceUsage(defaultChoice, choices, description))
	}
	return choiceValue
}

// String returns the selected choice.
func (choiceValue *ChoiceValue) String() string {
	if choiceValue == nil {
		return ""
	}
	return choiceValue.value
}

// Set selects candidate when it matches one of the allowed choices.
func (choiceValue *ChoiceValue) Set(candidate string) error {
	normalizedCandidate := strings.ToLower(strings.TrimSpace(candidate))
	for _, choice := range choiceValue.choices {
		if choice == normalizedCandidate {
			choiceValue.value = normalizedCandidate
			return nil
		}
	}
	return fmt.Errorf(invalidChoiceTemplateConstant, candidate, strings.Join(choiceValue.choices, choiceSeparatorLiteral))
}

// Type names the flag value kind in help output.
func (choiceValue *ChoiceValue) Type() string {
	return choiceTypeNameConstant
}

// FormatChoiceUsage builds a usage string where the default option is capitalized inside a placeholder.
func FormatChoiceUsage(defaultChoice string, choices []string, description string) string {
	placeholder := buildChoicePlaceholder(defaultChoice, choices)
	if len(strings.TrimSpace(description)) == 0 {
		return fmt.Sprintf(choiceUsageEmptyTemplate, placeholder)
	}
	return fmt.Sprintf(choiceUsageFullTemplate, placeholder, description)
}

func buildChoicePlaceholder(defaultChoice string, choices []string) string {
	normalizedDefault := strings.ToLower(strings.TrimSpace(defaultChoice))
	normalizedChoices := normalizeChoices(choices)

	highlightedChoices := make([]string, 0, len(normalizedChoices))
	for _, choice := range normalizedChoices {
		if choice == normalizedDefault {
			choice = strings.ToUpper(choice)
		}
		highlightedChoices = append(highlightedChoices, choice)
	}

	return choicePlaceholderPrefix + strings.Join(highlightedChoices, choiceSeparatorLiteral) + choicePlaceholderSuffix
}

func normalizeChoices(choices []string) []string {
	normalized := make([]string, 0, len(choices))
	seen := make(map[string]struct{}, len(choices))
	for _, choice := range choices {
		normalizedChoice := strings.ToLower(strings.TrimSpace(choice))
		if len(normalizedChoice) == 0 {
			continue
		}
		if _, exists := seen[normalizedChoice]; exists {
			continue
		}
		seen[normalizedChoice] = struct{}{}
		normalized = append(normalized, normalizedChoice)
	}
	return normalized
}
