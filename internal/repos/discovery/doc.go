// Package discovery locates the git repository that encloses a filesystem path.
//
// The search walks the ancestor chain of a path from the path itself toward
// the filesystem root and stops at the first directory holding a .git entry.
// Directory entries are probed with Lstat, so a .git file (as written by
// worktrees and submodules) or a symbolic link qualifies as a marker.
package discovery
