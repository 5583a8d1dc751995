package verify

import (
	"slices"
	"strings"
	"unicode/utf8"
)

// letterCodes maps the consonants of the current plate series to their digit.
// Several letters share a digit, so decoding a canonical code yields a set.
var letterCodes = map[string]byte{
	"B": '1', "C": '2', "D": '3', "F": '4', "G": '5', "H": '6', "J": '7', "K": '8', "L": '9',
	"P": '0', "R": '2', "S": '3', "T": '4', "V": '5', "W": '6', "X": '7', "Y": '8', "Z": '9',
}

// digraphCodes maps the two-letter series of the older plates onto 00..99.
var digraphCodes = map[string]string{
	"AA": "00", "AB": "01", "AC": "02", "AD": "03", "AE": "04", "AF": "05", "AG": "06", "AH": "07", "AJ": "08", "AK": "09",
	"BA": "10", "BB": "11", "BC": "12", "BD": "13", "BE": "14", "BF": "15", "BG": "16", "BH": "17", "BJ": "18", "BK": "19",
	"CA": "20", "CB": "21", "CC": "22", "CD": "23", "CE": "24", "CF": "25", "CG": "26", "CH": "27", "CJ": "28", "CK": "29",
	"DA": "30", "DB": "31", "DC": "32", "DD": "33", "DE": "34", "DF": "35", "DG": "36", "DH": "37", "DJ": "38", "DK": "39",
	"EA": "40", "EB": "41", "EC": "42", "ED": "43", "EE": "44", "EF": "45", "EG": "46", "EH": "47", "EJ": "48", "EK": "49",
	"FA": "50", "FB": "51", "FC": "52", "FD": "53", "FE": "54", "FF": "55", "FG": "56", "FH": "57", "FJ": "58", "FK": "59",
	"GA": "60", "GB": "61", "GC": "62", "GD": "63", "GE": "64", "GF": "65", "GG": "66", "GH": "67", "GJ": "68", "GK": "69",
	"HA": "70", "HB": "71", "HC": "72", "HD": "73", "HE": "74", "HF": "75", "HG": "76", "HH": "77", "HJ": "78", "HK": "79",
	"JA": "80", "JB": "81", "JC": "82", "JD": "83", "JE": "84", "JF": "85", "JG": "86", "JH": "87", "JJ": "88", "JK": "89",
	"KA": "90", "KB": "91", "KC": "92", "KD": "93", "KE": "94", "KF": "95", "KG": "96", "KH": "97", "KJ": "98", "KK": "99",
}

// Reverse tables, derived once from the forward ones.
var (
	lettersByCode  map[byte][]string
	digraphsByCode map[string]string
)

func init() {
	lettersByCode = make(map[byte][]string, 10)
	for letter, code := range letterCodes {
		lettersByCode[code] = append(lettersByCode[code], letter)
	}
	for _, letters := range lettersByCode {
		slices.Sort(letters)
	}

	digraphsByCode = make(map[string]string, len(digraphCodes))
	for digraph, code := range digraphCodes {
		digraphsByCode[code] = digraph
	}
}

// LetterCode returns the digit ('0'..'9') a single plate letter encodes to.
// Lookup is case-insensitive.
func LetterCode(letter string) (byte, error) {
	if letter == "" {
		return 0, &Error{Kind: KindEmptyLetter}
	}
	if n := utf8.RuneCountInString(letter); n != 1 {
		return 0, errInvalidLength(1, n, letter)
	}
	code, ok := letterCodes[strings.ToUpper(letter)]
	if !ok {
		return 0, &Error{Kind: KindUnknownLetter, Input: letter}
	}
	return code, nil
}

// DigraphCode returns the two-digit code of a two-letter series.
// Lookup is case-insensitive.
func DigraphCode(letters string) (string, error) {
	if letters == "" {
		return "", &Error{Kind: KindEmptyDigraph}
	}
	if n := utf8.RuneCountInString(letters); n != 2 {
		return "", errInvalidLength(2, n, letters)
	}
	code, ok := digraphCodes[strings.ToUpper(letters)]
	if !ok {
		return "", &Error{Kind: KindUnknownDigraph, Input: letters}
	}
	return code, nil
}

// Digraph returns the two-letter series encoded by a two-digit code.
func Digraph(code string) (string, error) {
	if code == "" {
		return "", &Error{Kind: KindEmptyDigits}
	}
	digraph, ok := digraphsByCode[code]
	if !ok {
		return "", errInvalidDigits(code, "not a digraph code")
	}
	return digraph, nil
}

// Letters returns, sorted, the plate letters that encode to the digit code.
// The result is a copy and may be modified by the caller.
func Letters(code byte) []string {
	return slices.Clone(lettersByCode[code])
}

// encodeLetters substitutes each letter of a letter-coded segment.
func encodeLetters(letters string, expected int) (string, error) {
	if n := utf8.RuneCountInString(letters); n != expected {
		return "", errInvalidLength(expected, n, letters)
	}
	var b strings.Builder
	b.Grow(expected)
	for _, r := range letters {
		code, err := LetterCode(string(r))
		if err != nil {
			return "", err
		}
		b.WriteByte(code)
	}
	return b.String(), nil
}
