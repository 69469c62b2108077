// Package prompt renders the working directory, or an explicit path, as a
// colourized shell prompt segment.
//
// CommandBuilder exposes the behaviour as a Cobra command. Service resolves
// the input path and delegates to pathformat.Formatter. Configuration holds
// the colour mode and segment style read from the application settings.
package prompt
