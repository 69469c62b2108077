package discovery

import "path/filepath"

const (
	currentDirectoryConstant = "."
	parentDirectoryConstant  = ".."
	relativeRootConstant     = ""
)

// Ancestors lists the cleaned candidate path followed by each successive parent, ending at the root.
// Relative paths end with the empty relative root, which resolves against the working directory.
func Ancestors(candidatePath string) []string {
	currentPath := filepath.Clean(candidatePath)
	ancestors := []string{currentPath}
	for {
		parentPath, hasParent := ParentDirectory(currentPath)
		if !hasParent {
			return ancestors
		}
		ancestors = append(ancestors, parentPath)
		currentPath = parentPath
	}
}

// ParentDirectory returns the directory containing candidatePath.
// Filesystem roots, the current directory, and the empty relative root have no parent.
func ParentDirectory(candidatePath string) (string, bool) {
	if candidatePath == relativeRootConstant || candidatePath == currentDirectoryConstant {
		return "", false
	}

	parentPath := filepath.Dir(candidatePath)
	if parentPath == candidatePath {
		return "", false
	}
	if parentPath == currentDirectoryConstant {
		return relativeRootConstant, true
	}
	return parentPath, true
}

// DirectoryName returns the final component of candidatePath.
// Roots and dot references have no final component.
func DirectoryName(candidatePath string) (string, bool) {
	if candidatePath == relativeRootConstant || candidatePath == currentDirectoryConstant {
		return "", false
	}
	if filepath.Dir(candidatePath) == candidatePath {
		return "", false
	}

	baseName := filepath.Base(candidatePath)
	if baseName == parentDirectoryConstant {
		return "", false
	}
	return baseName, true
}
