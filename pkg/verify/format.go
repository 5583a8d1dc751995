package verify

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
	"golang.org/x/text/width"
)

// CanonicalLength is the width of every normalized plate.
const CanonicalLength = 6

// Format is one of the recognized plate layouts.
type Format uint8

const (
	FormatUnknown Format = iota
	// FormatLLNNNN is the older two-letter series, e.g. "AB1234".
	FormatLLNNNN
	// FormatLLLLNN is the current four-consonant series, e.g. "PHZF55".
	FormatLLLLNN
	// FormatLLLNNN is the current motorcycle series, e.g. "BBC123".
	FormatLLLNNN
	// FormatLLLNN is the older motorcycle series, e.g. "BBC12".
	FormatLLLNN
	// FormatNNNNNN is an already normalized plate.
	FormatNNNNNN
)

type coding uint8

const (
	codingNone coding = iota
	codingDigraph
	codingLetters
)

// layout describes how a format is recognized and turned into its canonical
// digits: the letter segment is encoded with coding, then pad zeros are
// inserted before the digit segment.
type layout struct {
	tag     string
	letters int
	digits  int
	coding  coding
	pad     int
}

var layouts = [...]layout{
	FormatUnknown: {tag: "unknown"},
	FormatLLNNNN:  {tag: "LLNNNN", letters: 2, digits: 4, coding: codingDigraph},
	FormatLLLLNN:  {tag: "LLLLNN", letters: 4, digits: 2, coding: codingLetters},
	FormatLLLNNN:  {tag: "LLLNNN", letters: 3, digits: 3, coding: codingLetters},
	FormatLLLNN:   {tag: "LLLNN", letters: 3, digits: 2, coding: codingLetters, pad: 1},
	FormatNNNNNN:  {tag: "NNNNNN", digits: 6, coding: codingNone},
}

// Formats returns the recognized formats in detection order.
func Formats() []Format {
	return []Format{FormatLLNNNN, FormatLLLLNN, FormatLLLNNN, FormatLLLNN, FormatNNNNNN}
}

// String returns the layout tag, e.g. "LLLLNN".
func (f Format) String() string {
	if int(f) >= len(layouts) {
		return layouts[FormatUnknown].tag
	}
	return layouts[f].tag
}

// MarshalText encodes the format as its tag.
func (f Format) MarshalText() ([]byte, error) {
	return []byte(f.String()), nil
}

// ParseFormat returns the format with the given tag. Matching is case-insensitive.
func ParseFormat(tag string) (Format, error) {
	for _, f := range Formats() {
		if strings.EqualFold(layouts[f].tag, tag) {
			return f, nil
		}
	}
	return FormatUnknown, errUnknownFormat(tag)
}

// DigraphCoded reports whether the letter segment is encoded as a single digraph.
func (f Format) DigraphCoded() bool {
	return int(f) < len(layouts) && layouts[f].coding == codingDigraph
}

// LetterCoded reports whether each letter of the letter segment is encoded alone.
func (f Format) LetterCoded() bool {
	return int(f) < len(layouts) && layouts[f].coding == codingLetters
}

// DetectFormat classifies raw into one of the recognized layouts.
// Spaces, dashes, dots and middle dots are ignored; any other symbol rejects
// the input with KindUnknownFormat.
func DetectFormat(raw string) (Format, error) {
	p, err := parsePlate(raw)
	if err != nil {
		return FormatUnknown, err
	}
	return p.format, nil
}

// plate is a raw input split along its detected layout.
type plate struct {
	format  Format
	letters string
	digits  string
}

func parsePlate(raw string) (plate, error) {
	var b strings.Builder
	b.Grow(len(raw))
	for _, r := range fold(raw) {
		switch {
		case isSeparator(r):
		case isLetter(r), isDigit(r):
			b.WriteRune(r)
		default:
			return plate{}, errUnknownFormat(raw)
		}
	}
	s := b.String()

	split := strings.IndexFunc(s, isDigit)
	if split < 0 {
		split = len(s)
	}
	letters, digits := s[:split], s[split:]
	if strings.IndexFunc(digits, isLetter) >= 0 {
		return plate{}, errUnknownFormat(raw)
	}

	for _, f := range Formats() {
		l := layouts[f]
		if l.letters == len(letters) && l.digits == len(digits) {
			return plate{format: f, letters: letters, digits: digits}, nil
		}
	}
	return plate{}, errUnknownFormat(raw)
}

// fold narrows full-width forms, drops combining marks and upper-cases one
// rune at a time, so "ｂｂｃ１２" and "bbc12" both become "BBC12". Runes are
// never expanded: "ß", "ﬀ" and "①" stay as they are and reject the input, and
// a rune that decomposes into several base runes becomes U+FFFD.
func fold(s string) string {
	t := transform.Chain(width.Fold, norm.NFD, runes.Remove(runes.In(unicode.Mn)))
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		out, _, err := transform.String(t, string(r))
		if err != nil {
			b.WriteRune(utf8.RuneError)
			continue
		}
		switch utf8.RuneCountInString(out) {
		case 0:
		case 1:
			folded, _ := utf8.DecodeRuneInString(out)
			b.WriteRune(unicode.ToUpper(folded))
		default:
			b.WriteRune(utf8.RuneError)
		}
	}
	return b.String()
}

func isSeparator(r rune) bool {
	switch r {
	case ' ', '-', '.', '·':
		return true
	}
	return false
}

func isLetter(r rune) bool { return r >= 'A' && r <= 'Z' }

func isDigit(r rune) bool { return r >= '0' && r <= '9' }
