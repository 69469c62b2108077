package pathformat

import (
	"errors"
	"fmt"
)

const (
	textEncodingErrorTemplateConstant       = "path %q is not valid UTF-8 text"
	prefixMismatchErrorTemplateConstant     = "repository root %q is not a prefix of %q"
	repositoryRootErrorTemplateConstant     = "repository root %q %s"
	missingParentReasonConstant             = "has no containing directory"
	missingNameReasonConstant               = "has no directory name"
	locatorNotConfiguredMessageConstant     = "repository locator not configured"
	unsupportedSegmentStyleTemplateConstant = "unsupported segment style: %s"
)

// ErrLocatorNotConfigured indicates the formatter was constructed without a repository locator.
var ErrLocatorNotConfigured = errors.New(locatorNotConfiguredMessageConstant)

// TextEncodingError indicates a path segment cannot be presented as UTF-8 text.
type TextEncodingError struct {
	Path string
}

// Error describes the encoding failure.
func (encodingError TextEncodingError) Error() string {
	return fmt.Sprintf(textEncodingErrorTemplateConstant, encodingError.Path)
}

// PrefixMismatchError indicates the detected repository root does not prefix the formatted path.
type PrefixMismatchError struct {
	Path string
	Root string
}

// Error describes the mismatch.
func (mismatchError PrefixMismatchError) Error() string {
	return fmt.Sprintf(prefixMismatchErrorTemplateConstant, mismatchError.Root, mismatchError.Path)
}

// RepositoryRootReason enumerates why a repository root cannot be split into segments.
type RepositoryRootReason string

// Reasons reported by RepositoryRootError.
const (
	RepositoryRootMissingParent RepositoryRootReason = RepositoryRootReason(missingParentReasonConstant)
	RepositoryRootMissingName   RepositoryRootReason = RepositoryRootReason(missingNameReasonConstant)
)

// RepositoryRootError indicates the matched repository root lacks a containing directory or a name.
type RepositoryRootError struct {
	Root   string
	Reason RepositoryRootReason
}

// Error describes the unusable root.
func (rootError RepositoryRootError) Error() string {
	return fmt.Sprintf(repositoryRootErrorTemplateConstant, rootError.Root, rootError.Reason)
}

// UnsupportedSegmentStyleError indicates an unknown segment style value.
type UnsupportedSegmentStyleError struct {
	Style string
}

// Error describes the unsupported style.
func (styleError UnsupportedSegmentStyleError) Error() string {
	return fmt.Sprintf(unsupportedSegmentStyleTemplateConstant, styleError.Style)
}
