package cli

import _ "embed"

//go:embed default_config.yaml
var builtInPromptSettings []byte

// EmbeddedDefaultConfiguration returns a private copy of the built-in logging and prompt
// settings along with the Viper type used to parse them.
func EmbeddedDefaultConfiguration() ([]byte, string) {
	return append([]byte(nil), builtInPromptSettings...), configurationTypeConstant
}
