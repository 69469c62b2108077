package pathutils

// PromptPathSanitizer normalizes the path argument handed over by a shell prompt hook.
type PromptPathSanitizer struct {
	homeExpander *HomeExpander
}

// NewPromptPathSanitizer constructs a sanitizer; a nil expander resolves the home directory from the operating system.
func NewPromptPathSanitizer(homeExpander *HomeExpander) *PromptPathSanitizer {
	if homeExpander == nil {
		homeExpander = NewHomeExpander()
	}
	return &PromptPathSanitizer{homeExpander: homeExpander}
}

// Sanitize expands a leading ~ and otherwise keeps the text as passed, whitespace included.
// It reports false only for the empty string.
func (sanitizer *PromptPathSanitizer) Sanitize(candidatePath string) (string, bool) {
	if len(candidatePath) == 0 {
		return "", false
	}
	return sanitizer.homeExpander.Expand(candidatePath), true
}
