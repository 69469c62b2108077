package prompt

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/temirov/promptpath/internal/pathformat"
	"github.com/temirov/promptpath/internal/repos/filesystem"
	pathutils "github.com/temirov/promptpath/internal/utils/path"
)

const (
	commandUseNameConstant          = "format"
	commandUsageTemplateConstant    = commandUseNameConstant + " [path]"
	commandShortDescriptionConstant = "Print a path with its git repository highlighted"
	commandLongDescriptionConstant  = "format prints the provided path, or the working directory, for a shell prompt. When a git repository encloses the path, the containing directory and the repository-local remainder are printed in blue and the repository name in bright white."
	commandExampleConstant          = "PS1='$(promptpath format) $ '"
	formatSucceededMessageConstant  = "prompt path formatted"
	formatFailedMessageConstant     = "prompt path formatting failed"
	logFieldPathConstant            = "path"
	logFieldColorModeConstant       = "color_mode"
	logFieldColourEnabledConstant   = "colour_enabled"
	logFieldSegmentStyleConstant    = "segment_style"
)

// LoggerProvider yields a zap logger instance.
type LoggerProvider func() *zap.Logger

// CommandBuilder assembles the format command.
type CommandBuilder struct {
	LoggerProvider        LoggerProvider
	ConfigurationProvider func() Configuration
	FileSystem            filesystem.FileSystem
	HomeExpander          *pathutils.HomeExpander
	TerminalColorDetector TerminalColorDetector
}

// Build constructs the format command.
func (builder *CommandBuilder) Build() (*cobra.Command, error) {
	command := &cobra.Command{
		Use:     commandUsageTemplateConstant,
		Short:   commandShortDescriptionConstant,
		Long:    commandLongDescriptionConstant,
		Example: commandExampleConstant,
		Args:    cobra.MaximumNArgs(1),
		RunE:    builder.Run,
	}

	return command, nil
}

// Run renders the optional path argument and prints it followed by a newline.
func (builder *CommandBuilder) Run(command *cobra.Command, arguments []string) error {
	configuration := builder.resolveConfiguration()

	colorMode, colorModeError := ParseColorMode(configuration.Color)
	if colorModeError != nil {
		return colorModeError
	}

	segmentStyle, segmentStyleError := pathformat.ParseSegmentStyle(configuration.SegmentStyle)
	if segmentStyleError != nil {
		return segmentStyleError
	}

	candidatePath := ""
	if len(arguments) > 0 {
		candidatePath = arguments[0]
	}

	colourEnabled := colorMode.Enabled(builder.TerminalColorDetector)
	service := NewService(ServiceDependencies{
		FileSystem:    builder.FileSystem,
		PathSanitizer: pathutils.NewPromptPathSanitizer(builder.HomeExpander),
	})

	logger := builder.resolveLogger()
	result, renderError := service.Render(Options{
		Path:          candidatePath,
		SegmentStyle:  segmentStyle,
		ColourEnabled: colourEnabled,
	})
	if renderError != nil {
		logger.Debug(formatFailedMessageConstant, zap.String(logFieldPathConstant, result.Path), zap.Error(renderError))
		return renderError
	}

	logger.Debug(
		formatSucceededMessageConstant,
		zap.String(logFieldPathConstant, result.Path),
		zap.String(logFieldColorModeConstant, string(colorMode)),
		zap.Bool(logFieldColourEnabledConstant, colourEnabled),
		zap.String(logFieldSegmentStyleConstant, string(segmentStyle)),
	)

	_, writeError := fmt.Fprintln(command.OutOrStdout(), result.Output)
	return writeError
}

func (builder *CommandBuilder) resolveConfiguration() Configuration {
	if builder.ConfigurationProvider == nil {
		return DefaultConfiguration()
	}
	return builder.ConfigurationProvider().Sanitize()
}

func (builder *CommandBuilder) resolveLogger() *zap.Logger {
	if builder.LoggerProvider == nil {
		return zap.NewNop()
	}
	logger := builder.LoggerProvider()
	if logger == nil {
		return zap.NewNop()
	}
	return logger
}
