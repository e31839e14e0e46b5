package domain

import "strings"

// Directory maps contact names to phone numbers. It is loaded once at
// startup and read-only for the rest of the session.
type Directory struct {
	numbers map[string]string
}

func NewDirectory(contacts map[string]string) *Directory {
	numbers := make(map[string]string, len(contacts))
	for name, number := range contacts {
		numbers[normalizeName(name)] = number
	}
	return &Directory{numbers: numbers}
}

// Lookup resolves a spoken contact name to a phone number. Matching is
// case-insensitive and ignores surrounding whitespace, since the name
// arrives from a transcription.
func (d *Directory) Lookup(name string) (string, bool) {
	number, ok := d.numbers[normalizeName(name)]
	return number, ok
}

func (d *Directory) Len() int {
	return len(d.numbers)
}

func normalizeName(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}
