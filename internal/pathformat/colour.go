package pathformat

import "fmt"

// Colour enumerates the ANSI foreground colours understood by the formatter.
type Colour int

// Supported colours. Reset clears all attributes.
const (
	Black Colour = iota
	Red
	Green
	Yellow
	Blue
	Magenta
	Cyan
	White
	BrightBlack
	BrightRed
	BrightGreen
	BrightYellow
	BrightBlue
	BrightMagenta
	BrightCyan
	BrightWhite
	Reset
)

const (
	blackEscapeCodeConstant         = "\x1b[30m"
	redEscapeCodeConstant           = "\x1b[31m"
	greenEscapeCodeConstant         = "\x1b[32m"
	yellowEscapeCodeConstant        = "\x1b[33m"
	blueEscapeCodeConstant          = "\x1b[34m"
	magentaEscapeCodeConstant       = "\x1b[35m"
	cyanEscapeCodeConstant          = "\x1b[36m"
	whiteEscapeCodeConstant         = "\x1b[37m"
	brightBlackEscapeCodeConstant   = "\x1b[30;1m"
	brightRedEscapeCodeConstant     = "\x1b[31;1m"
	brightGreenEscapeCodeConstant   = "\x1b[32;1m"
	brightYellowEscapeCodeConstant  = "\x1b[33;1m"
	brightBlueEscapeCodeConstant    = "\x1b[34;1m"
	brightMagentaEscapeCodeConstant = "\x1b[35;1m"
	brightCyanEscapeCodeConstant    = "\x1b[36;1m"
	brightWhiteEscapeCodeConstant   = "\x1b[37;1m"
	resetEscapeCodeConstant         = "\x1b[0m"
	unknownColourTemplateConstant   = "Colour(%d)"
)

var colourNames = [...]string{
	Black:         "Black",
	Red:           "Red",
	Green:         "Green",
	Yellow:        "Yellow",
	Blue:          "Blue",
	Magenta:       "Magenta",
	Cyan:          "Cyan",
	White:         "White",
	BrightBlack:   "BrightBlack",
	BrightRed:     "BrightRed",
	BrightGreen:   "BrightGreen",
	BrightYellow:  "BrightYellow",
	BrightBlue:    "BrightBlue",
	BrightMagenta: "BrightMagenta",
	BrightCyan:    "BrightCyan",
	BrightWhite:   "BrightWhite",
	Reset:         "Reset",
}

// EscapeCode returns the terminal escape sequence selecting the colour.
// Unknown values yield an empty string.
func (colour Colour) EscapeCode() string {
	switch colour {
	case Black:
		return blackEscapeCodeConstant
	case Red:
		return redEscapeCodeConstant
	case Green:
		return greenEscapeCodeConstant
	case Yellow:
		return yellowEscapeCodeConstant
	case Blue:
		return blueEscapeCodeConstant
	case Magenta:
		return magentaEscapeCodeConstant
	case Cyan:
		return cyanEscapeCodeConstant
	case White:
		return whiteEscapeCodeConstant
	case BrightBlack:
		return brightBlackEscapeCodeConstant
	case BrightRed:
		return brightRedEscapeCodeConstant
	case BrightGreen:
		return brightGreenEscapeCodeConstant
	case BrightYellow:
		return brightYellowEscapeCodeConstant
	case BrightBlue:
		return brightBlueEscapeCodeConstant
	case BrightMagenta:
		return brightMagentaEscapeCodeConstant
	case BrightCyan:
		return brightCyanEscapeCodeConstant
	case BrightWhite:
		return brightWhiteEscapeCodeConstant
	case Reset:
		return resetEscapeCodeConstant
	default:
		return ""
	}
}

// String returns the colour name.
func (colour Colour) String() string {
	if colour < 0 || int(colour) >= len(colourNames) {
		return fmt.Sprintf(unknownColourTemplateConstant, int(colour))
	}
	return colourNames[colour]
}
