// Package cli constructs the promptpath command-line interface, wiring the
// Cobra root command, the layered Viper configuration, and zap logging
// around the prompt formatting command.
package cli
