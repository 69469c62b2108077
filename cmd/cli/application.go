package cli

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"syscall"

	"github.com/adrg/xdg"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"go.uber.org/zap"

	"github.com/temirov/promptpath/internal/pathformat"
	"github.com/temirov/promptpath/internal/prompt"
	"github.com/temirov/promptpath/internal/utils"
	flagutils "github.com/temirov/promptpath/internal/utils/flags"
)

const (
	applicationNameConstant                 = "promptpath"
	applicationUsageConstant                = applicationNameConstant
	applicationShortDescriptionConstant     = "Print a shell prompt path with its git repository highlighted"
	applicationLongDescriptionConstant      = "promptpath prints a path for a shell prompt with the enclosing git repository name highlighted. Run \"promptpath format [path]\"; paths outside a repository are printed unchanged."
	configFileFlagNameConstant              = "config"
	configFileFlagUsageConstant             = "Optional path to a configuration file (YAML or JSON)."
	logLevelFlagNameConstant                = "log-level"
	logLevelFlagUsageConstant               = "Override the configured log level."
	logFormatFlagNameConstant               = "log-format"
	logFormatFlagUsageConstant              = "Override the configured log format."
	colorFlagNameConstant                   = "color"
	colorFlagUsageConstant                  = "Emit colour escape sequences."
	segmentStyleFlagNameConstant            = "segment-style"
	segmentStyleFlagUsageConstant           = "Render path segments verbatim or Go-quoted."
	commonConfigurationKeyConstant          = "common"
	commonLogLevelConfigKeyConstant         = commonConfigurationKeyConstant + ".log_level"
	commonLogFormatConfigKeyConstant        = commonConfigurationKeyConstant + ".log_format"
	promptConfigurationKeyConstant          = "prompt"
	environmentPrefixConstant               = "PROMPTPATH"
	configurationNameConstant               = "config"
	configurationTypeConstant               = "yaml"
	configurationInitializedMessageConstant = "configuration initialized"
	configurationLogLevelFieldConstant      = "log_level"
	configurationLogFormatFieldConstant     = "log_format"
	configurationFileFieldConstant          = "config_file"
	configurationLoadErrorTemplateConstant  = "unable to load configuration: %w"
	loggerCreationErrorTemplateConstant     = "unable to create logger: %w"
	loggerSyncErrorTemplateConstant         = "unable to flush logger: %w"
	commandBuildErrorTemplateConstant       = "unable to build format command: %w"
	defaultConfigurationSearchPathConstant  = "."
	defaultLogLevelConstant                 = string(utils.LogLevelError)
	defaultLogFormatConstant                = string(utils.LogFormatStructured)
)

var applicationVersion = "dev"

// ApplicationConfiguration describes the persisted configuration for the CLI entrypoint.
type ApplicationConfiguration struct {
	Common ApplicationCommonConfiguration `mapstructure:"common"`
	Prompt prompt.Configuration           `mapstructure:"prompt"`
}

// ApplicationCommonConfiguration stores logging configuration.
type ApplicationCommonConfiguration struct {
	LogLevel  string `mapstructure:"log_level"`
	LogFormat string `mapstructure:"log_format"`
}

// Application wires the Cobra root command, configuration loader, and structured logger.
type Application struct {
	rootCommand           *cobra.Command
	configurationLoader   *utils.ConfigurationLoader
	loggerFactory         *utils.LoggerFactory
	logger                *zap.Logger
	configuration         ApplicationConfiguration
	configurationMetadata utils.LoadedConfiguration
	configurationFilePath string
	logLevelFlagValue     *flagutils.ChoiceValue
	logFormatFlagValue    *flagutils.ChoiceValue
	colorFlagValue        *flagutils.ChoiceValue
	segmentStyleFlagValue *flagutils.ChoiceValue
}

// NewApplication assembles a fully wired CLI application instance.
func NewApplication() (*Application, error) {
	return newApplication(defaultConfigurationSearchPaths())
}

func defaultConfigurationSearchPaths() []string {
	return []string{
		defaultConfigurationSearchPathConstant,
		filepath.Join(xdg.ConfigHome, applicationNameConstant),
	}
}

func newApplication(configurationSearchPaths []string) (*Application, error) {
	configurationLoader := utils.NewConfigurationLoader(
		configurationNameConstant,
		configurationTypeConstant,
		environmentPrefixConstant,
		configurationSearchPaths,
	)
	configurationLoader.SetEmbeddedConfiguration(EmbeddedDefaultConfiguration())

	application := &Application{
		configurationLoader: configurationLoader,
		loggerFactory:       utils.NewLoggerFactory(),
		logger:              zap.NewNop(),
	}

	promptBuilder := prompt.CommandBuilder{
		LoggerProvider: func() *zap.Logger {
			return application.logger
		},
		ConfigurationProvider: func() prompt.Configuration {
			return application.configuration.Prompt
		},
		TerminalColorDetector: prompt.DetectTerminalColor,
	}

	cobraCommand := &cobra.Command{
		Use:           applicationUsageConstant,
		Short:         applicationShortDescriptionConstant,
		Long:          applicationLongDescriptionConstant,
		Version:       applicationVersion,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(command *cobra.Command, arguments []string) error {
			return application.initializeConfiguration(command)
		},
	}

	cobraCommand.SetContext(context.Background())
	persistentFlags := cobraCommand.PersistentFlags()
	persistentFlags.StringVar(&application.configurationFilePath, configFileFlagNameConstant, "", configFileFlagUsageConstant)
	application.logLevelFlagValue = flagutils.BindChoiceFlag(persistentFlags, logLevelFlagNameConstant, defaultLogLevelConstant, logLevelChoices(), logLevelFlagUsageConstant)
	application.logFormatFlagValue = flagutils.BindChoiceFlag(persistentFlags, logFormatFlagNameConstant, defaultLogFormatConstant, logFormatChoices(), logFormatFlagUsageConstant)
	application.colorFlagValue = flagutils.BindChoiceFlag(persistentFlags, colorFlagNameConstant, string(prompt.ColorModeAlways), prompt.ColorModeChoices(), colorFlagUsageConstant)
	application.segmentStyleFlagValue = flagutils.BindChoiceFlag(persistentFlags, segmentStyleFlagNameConstant, string(pathformat.SegmentStylePlain), segmentStyleChoices(), segmentStyleFlagUsageConstant)

	formatCommand, formatBuildError := promptBuilder.Build()
	if formatBuildError != nil {
		return nil, fmt.Errorf(commandBuildErrorTemplateConstant, formatBuildError)
	}
	cobraCommand.AddCommand(formatCommand)

	application.rootCommand = cobraCommand

	return application, nil
}

func logLevelChoices() []string {
	return []string{string(utils.LogLevelDebug), string(utils.LogLevelInfo), string(utils.LogLevelWarn), string(utils.LogLevelError)}
}

func logFormatChoices() []string {
	return []string{string(utils.LogFormatStructured), string(utils.LogFormatConsole)}
}

func segmentStyleChoices() []string {
	return []string{string(pathformat.SegmentStylePlain), string(pathformat.SegmentStyleQuoted)}
}

// Execute runs the configured Cobra command hierarchy and ensures logger flushing.
func (application *Application) Execute() error {
	executionError := application.rootCommand.Execute()
	if syncError := application.flushLogger(); syncError != nil {
		return fmt.Errorf(loggerSyncErrorTemplateConstant, syncError)
	}
	return executionError
}

// Execute builds a fresh application instance and executes the root command hierarchy.
func Execute() error {
	application, applicationError := NewApplication()
	if applicationError != nil {
		return applicationError
	}
	return application.Execute()
}

func (application *Application) initializeConfiguration(command *cobra.Command) error {
	defaultValues := map[string]any{
		commonLogLevelConfigKeyConstant:  defaultLogLevelConstant,
		commonLogFormatConfigKeyConstant: defaultLogFormatConstant,
	}
	for configurationKey, configurationValue := range prompt.DefaultConfigurationValues(promptConfigurationKeyConstant) {
		defaultValues[configurationKey] = configurationValue
	}

	loadedConfiguration, loadError := application.configurationLoader.LoadConfiguration(application.configurationFilePath, defaultValues, &application.configuration)
	if loadError != nil {
		return fmt.Errorf(configurationLoadErrorTemplateConstant, loadError)
	}

	application.configurationMetadata = loadedConfiguration
	application.applyFlagOverrides(command)

	logger, loggerCreationError := application.loggerFactory.CreateLogger(
		utils.LogLevel(application.configuration.Common.LogLevel),
		utils.LogFormat(application.configuration.Common.LogFormat),
	)
	if loggerCreationError != nil {
		return fmt.Errorf(loggerCreationErrorTemplateConstant, loggerCreationError)
	}

	application.logger = logger

	application.logger.Info(
		configurationInitializedMessageConstant,
		zap.String(configurationLogLevelFieldConstant, application.configuration.Common.LogLevel),
		zap.String(configurationLogFormatFieldConstant, application.configuration.Common.LogFormat),
		zap.String(configurationFileFieldConstant, application.configurationMetadata.ConfigFileUsed),
	)

	return nil
}

func (application *Application) applyFlagOverrides(command *cobra.Command) {
	if application.persistentFlagChanged(command, logLevelFlagNameConstant) {
		application.configuration.Common.LogLevel = application.logLevelFlagValue.String()
	}
	if application.persistentFlagChanged(command, logFormatFlagNameConstant) {
		application.configuration.Common.LogFormat = application.logFormatFlagValue.String()
	}
	if application.persistentFlagChanged(command, colorFlagNameConstant) {
		application.configuration.Prompt.Color = application.colorFlagValue.String()
	}
	if application.persistentFlagChanged(command, segmentStyleFlagNameConstant) {
		application.configuration.Prompt.SegmentStyle = application.segmentStyleFlagValue.String()
	}
}

func (application *Application) flushLogger() error {
	if application.logger == nil {
		return nil
	}

	syncError := application.logger.Sync()
	switch {
	case syncError == nil:
		return nil
	case errors.Is(syncError, syscall.ENOTSUP):
		return nil
	case errors.Is(syncError, syscall.EINVAL):
		return nil
	default:
		return syncError
	}
}

func (application *Application) persistentFlagChanged(command *cobra.Command, flagName string) bool {
	if command == nil {
		return false
	}

	flagSetsToInspect := []*pflag.FlagSet{
		command.PersistentFlags(),
		command.InheritedFlags(),
	}

	if rootCommand := command.Root(); rootCommand != nil {
		flagSetsToInspect = append(flagSetsToInspect, rootCommand.PersistentFlags())
	}

	for _, flagSet := range flagSetsToInspect {
		if flagSet != nil && flagSet.Changed(flagName) {
			return true
		}
	}

	return false
}
