// Package rpath manipulates canonical remote paths. Remote paths are
// always slash separated and absolute, independently of the runtime OS,
// mirroring how the WebDAV server addresses its tree.
package rpath

import "strings"

// Separator is the remote path separator
const Separator = '/'

// Root is the canonical remote tree root
const Root = "/"

// Resolve turns a user supplied token into a canonical absolute remote
// path relative to cwd. It is pure string logic with no error path:
// malformed tokens normalize to the best-effort canonical path, and a
// ".." can never escape above the root.
func Resolve(token, cwd string) string {
	switch {
	case token == "~":
		return Root
	case strings.HasPrefix(token, "~/"):
		return Clean(Root + token[2:])
	case strings.HasPrefix(token, Root):
		return Clean(token)
	case token == ".":
		return Clean(cwd)
	}
	return Join(cwd, token)
}

// IsAbs reports whether the path is absolute.
func IsAbs(path string) bool {
	return len(path) > 0 && path[0] == Separator
}

// Join joins path elements into a single cleaned path.
func Join(elem ...string) string {
	var parts []string
	for _, e := range elem {
		if e != "" {
			parts = append(parts, e)
		}
	}
	if len(parts) == 0 {
		return ""
	}
	return Clean(strings.Join(parts, string(Separator)))
}

// Dir returns all but the last element of path, typically the path's
// directory.
func Dir(path string) string {
	if path == "" {
		return "."
	}

	i := len(path) - 1
	for i >= 0 && path[i] != Separator {
		i--
	}
	if i < 0 {
		return "."
	}
	if i == 0 {
		return Root
	}
	return Clean(path[:i])
}

// Base returns the last element of path.
func Base(path string) string {
	if path == "" {
		return "."
	}

	// Strip trailing separators
	end := len(path)
	for end > 0 && path[end-1] == Separator {
		end--
	}
	if end == 0 {
		return Root
	}

	i := end - 1
	for i >= 0 && path[i] != Separator {
		i--
	}
	if i >= 0 {
		path = path[i+1 : end]
	} else {
		path = path[:end]
	}
	if path == "" {
		return Root
	}
	return path
}

// Clean normalizes a path: duplicate separators and "." segments are
// dropped, ".." segments consume the preceding segment, and a rooted
// path never climbs above the root. The result has no trailing
// separator except when it is the root itself.
func Clean(path string) string {
	if path == "" {
		return "."
	}

	rooted := path[0] == Separator

	var components []string
	start := 0
	for i := 0; i <= len(path); i++ {
		if i == len(path) || path[i] == Separator {
			component := path[start:i]
			switch component {
			case "", ".":
				// Skip this component
			case "..":
				if len(components) > 0 && components[len(components)-1] != ".." {
					components = components[:len(components)-1]
				} else if !rooted {
					components = append(components, "..")
				}
				// A rooted path ignores ".." at the root
			default:
				components = append(components, component)
			}
			start = i + 1
		}
	}

	if len(components) == 0 {
		if rooted {
			return Root
		}
		return "."
	}

	var result strings.Builder
	if rooted {
		result.WriteByte(Separator)
	}
	for i, component := range components {
		if i > 0 {
			result.WriteByte(Separator)
		}
		result.WriteString(component)
	}
	return result.String()
}
