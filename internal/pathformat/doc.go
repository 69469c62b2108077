// Package pathformat renders filesystem paths for shell prompts.
//
// Formatter splits a path at the innermost enclosing git repository into
// the containing directory, the repository name, and the repository-local
// remainder, and paints each segment with an ANSI colour. Paths outside any
// repository are returned as plain text. Conversion failures surface as
// TextEncodingError, RepositoryRootError, or PrefixMismatchError.
package pathformat
