package catalog

import (
	"strings"
	"unicode/utf8"
)

const maxNameLength = 128

func isValidName(name string) bool {
	name = strings.TrimSpace(name)
	return name != "" && utf8.RuneCountInString(name) <= maxNameLength
}

func normalizeName(name string) string {
	return strings.TrimSpace(name)
}
