package verify

import "strings"

// NormalizePPU turns a raw plate into its canonical six-digit form.
// Letter segments are substituted through the alphabet tables and separators
// are dropped, so "AB-1234" becomes "011234" and "PHZF55" becomes "069455".
// Normalizing a canonical string returns it unchanged.
func NormalizePPU(raw string) (string, error) {
	p, err := parsePlate(raw)
	if err != nil {
		return "", err
	}
	return p.canonical()
}

func (p plate) canonical() (string, error) {
	l := layouts[p.format]

	var b strings.Builder
	b.Grow(CanonicalLength)

	switch l.coding {
	case codingDigraph:
		code, err := DigraphCode(p.letters)
		if err != nil {
			return "", err
		}
		b.WriteString(code)
	case codingLetters:
		codes, err := encodeLetters(p.letters, l.letters)
		if err != nil {
			return "", err
		}
		b.WriteString(codes)
	}

	for range l.pad {
		b.WriteByte('0')
	}
	b.WriteString(p.digits)
	return b.String(), nil
}

// padded is the separator-free, upper-cased plate with the padding zeros of
// its layout, e.g. "BBC012" for "bbc-12".
func (p plate) padded() string {
	return p.letters + strings.Repeat("0", layouts[p.format].pad) + p.digits
}
