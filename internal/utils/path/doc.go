// Package pathutils normalizes user-supplied paths before they are formatted.
package pathutils
