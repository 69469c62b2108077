// Package utils exposes the ambient helpers shared by the promptpath commands.
//
// ConfigurationLoader layers embedded defaults, configuration files, and
// environment variables through Viper. LoggerFactory builds zap loggers that
// write to standard error so that standard output carries only the prompt.
package utils
