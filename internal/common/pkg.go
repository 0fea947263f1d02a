// Package common holds small helpers shared by the generator packages.
package common

import (
	"path"
	"strings"
)

// UnknownStr is the String form of out-of-range enum values.
const UnknownStr = "unknown"

// PkgAlias returns the last element of an import path, the default name a file
// importing it refers to it by. Returns "" for an empty path.
func PkgAlias(pkgPath string) string {
	if pkgPath == "" {
		return ""
	}

	return path.Base(pkgPath)
}

// SplitList splits a comma separated flag value, dropping blanks.
func SplitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}

	return out
}
