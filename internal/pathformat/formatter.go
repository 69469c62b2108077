package pathformat

import (
	"path/filepath"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/temirov/promptpath/internal/repos/discovery"
)

const (
	segmentStylePlainStringConstant  = "plain"
	segmentStyleQuotedStringConstant = "quoted"
	repositorySeparatorConstant      = "/"
	pathSeparatorConstant            = string(filepath.Separator)
)

// SegmentStyle controls how each path segment is written between colour codes.
type SegmentStyle string

// Supported segment styles.
const (
	// SegmentStylePlain writes segments verbatim.
	SegmentStylePlain SegmentStyle = SegmentStyle(segmentStylePlainStringConstant)
	// SegmentStyleQuoted writes segments as Go-quoted strings, escaping control characters.
	SegmentStyleQuoted SegmentStyle = SegmentStyle(segmentStyleQuotedStringConstant)
)

// ParseSegmentStyle normalizes a textual style; the empty string selects SegmentStylePlain.
func ParseSegmentStyle(value string) (SegmentStyle, error) {
	normalizedValue := strings.ToLower(strings.TrimSpace(value))
	switch SegmentStyle(normalizedValue) {
	case "":
		return SegmentStylePlain, nil
	case SegmentStylePlain, SegmentStyleQuoted:
		return SegmentStyle(normalizedValue), nil
	default:
		return "", UnsupportedSegmentStyleError{Style: value}
	}
}

// RepositoryLocator finds the innermost repository root enclosing a path.
type RepositoryLocator interface {
	Locate(candidatePath string) (string, bool)
}

// Options configure rendering.
type Options struct {
	SegmentStyle  SegmentStyle
	ColourEnabled bool
}

// DefaultOptions renders plain segments with colour codes.
func DefaultOptions() Options {
	return Options{SegmentStyle: SegmentStylePlain, ColourEnabled: true}
}

// Formatter converts paths into prompt display strings. It is immutable and safe for concurrent use.
type Formatter struct {
	locator RepositoryLocator
	options Options
}

// NewFormatter constructs a Formatter backed by the provided locator.
func NewFormatter(locator RepositoryLocator, options Options) (*Formatter, error) {
	if locator == nil {
		return nil, ErrLocatorNotConfigured
	}

	segmentStyle, styleError := ParseSegmentStyle(string(options.SegmentStyle))
	if styleError != nil {
		return nil, styleError
	}
	options.SegmentStyle = segmentStyle

	return &Formatter{locator: locator, options: options}, nil
}

// Format renders candidatePath as <Blue>containing<BrightWhite>/name<Blue>/local<Reset> when a
// repository encloses it and as unmodified text otherwise.
func (formatter *Formatter) Format(candidatePath string) (string, error) {
	repositoryRoot, repositoryFound := formatter.locator.Locate(candidatePath)
	if !repositoryFound {
		if !utf8.ValidString(candidatePath) {
			return "", TextEncodingError{Path: candidatePath}
		}
		return candidatePath, nil
	}

	containingDirectory, hasParent := discovery.ParentDirectory(repositoryRoot)
	if !hasParent {
		return "", RepositoryRootError{Root: repositoryRoot, Reason: RepositoryRootMissingParent}
	}

	repositoryName, hasName := discovery.DirectoryName(repositoryRoot)
	if !hasName {
		return "", RepositoryRootError{Root: repositoryRoot, Reason: RepositoryRootMissingName}
	}

	repositoryLocalPath, stripError := stripRepositoryRoot(filepath.Clean(candidatePath), repositoryRoot)
	if stripError != nil {
		return "", stripError
	}

	for _, segment := range []string{containingDirectory, repositoryName, repositoryLocalPath} {
		if !utf8.ValidString(segment) {
			return "", TextEncodingError{Path: segment}
		}
	}

	var builder strings.Builder
	formatter.writeColour(&builder, Blue)
	formatter.writeSegment(&builder, containingDirectory)
	formatter.writeColour(&builder, BrightWhite)
	builder.WriteString(repositorySeparatorConstant)
	formatter.writeSegment(&builder, repositoryName)
	formatter.writeColour(&builder, Blue)
	builder.WriteString(repositorySeparatorConstant)
	formatter.writeSegment(&builder, repositoryLocalPath)
	formatter.writeColour(&builder, Reset)

	return builder.String(), nil
}

func (formatter *Formatter) writeColour(builder *strings.Builder, colour Colour) {
	if !formatter.options.ColourEnabled {
		return
	}
	builder.WriteString(colour.EscapeCode())
}

func (formatter *Formatter) writeSegment(builder *strings.Builder, segment string) {
	if formatter.options.SegmentStyle == SegmentStyleQuoted {
		builder.WriteString(strconv.Quote(segment))
		return
	}
	builder.WriteString(segment)
}

// stripRepositoryRoot removes repositoryRoot from the front of cleanedPath on a component boundary.
func stripRepositoryRoot(cleanedPath string, repositoryRoot string) (string, error) {
	if len(repositoryRoot) == 0 {
		if filepath.IsAbs(cleanedPath) {
			return "", PrefixMismatchError{Path: cleanedPath, Root: repositoryRoot}
		}
		return cleanedPath, nil
	}

	if cleanedPath == repositoryRoot {
		return "", nil
	}

	rootPrefix := repositoryRoot
	if !strings.HasSuffix(rootPrefix, pathSeparatorConstant) {
		rootPrefix += pathSeparatorConstant
	}

	if !strings.HasPrefix(cleanedPath, rootPrefix) {
		return "", PrefixMismatchError{Path: cleanedPath, Root: repositoryRoot}
	}

	return strings.TrimPrefix(cleanedPath, rootPrefix), nil
}
