package pathformat_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/temirov/promptpath/internal/pathformat"
)

func TestColourEscapeCodes(testInstance *testing.T) {
	expectedEscapeCodes := map[pathformat.Colour]string{
		pathformat.Black:         "\x1b[30m",
		pathformat.Red:           "\x1b[31m",
		pathformat.Green:         "\x1b[32m",
		pathformat.Yellow:        "\x1b[33m",
		pathformat.Blue:          "\x1b[34m",
		pathformat.Magenta:       "\x1b[35m",
		pathformat.Cyan:          "\x1b[36m",
		pathformat.White:         "\x1b[37m",
		pathformat.BrightBlack:   "\x1b[30;1m",
		pathformat.BrightRed:     "\x1b[31;1m",
		pathformat.BrightGreen:   "\x1b[32;1m",
		pathformat.BrightYellow:  "\x1b[33;1m",
		pathformat.BrightBlue:    "\x1b[34;1m",
		pathformat.BrightMagenta: "\x1b[35;1m",
		pathformat.BrightCyan:    "\x1b[36;1m",
		pathformat.BrightWhite:   "\x1b[37;1m",
		pathformat.Reset:         "\x1b[0m",
	}

	for colour, expectedEscapeCode := range expectedEscapeCodes {
		testInstance.Run(colour.String(), func(testInstance *testing.T) {
			require.Equal(testInstance, expectedEscapeCode, colour.EscapeCode())
		})
	}
}

func TestColourOutOfRange(testInstance *testing.T) {
	unknownColour := pathformat.Colour(99)
	require.Empty(testInstance, unknownColour.EscapeCode())
	require.Equal(testInstance, "Colour(99)", unknownColour.String())
}
