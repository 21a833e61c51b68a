package transform

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"

	"dispatchcsv/internal/schema"
)

// VinModel decodes the coarse model family from a VIN: the 4th character
// (0-indexed position 3) is uppercased and looked up in the model table.
// VINs shorter than 4 characters and unmapped characters yield "".
func VinModel(vin string) string {
	if len(vin) < 4 {
		return ""
	}
	ch := vin[3]
	if ch >= 'a' && ch <= 'z' {
		ch -= 'a' - 'A'
	}
	return schema.ModelByVinChar[ch]
}

// PadZip left-pads a ZIP code with zeros to 5 characters. Longer values are
// kept as-is (padding never truncates), and an empty cell stays empty rather
// than becoming "00000".
func PadZip(s string) string {
	if s == "" || len(s) >= 5 {
		return s
	}
	return strings.Repeat("0", 5-len(s)) + s
}

// NormalizeState converts a state cell to a USPS two-letter code. The value
// is trimmed, accent-folded and uppercased; a result of exactly two
// characters is assumed to already be an abbreviation and kept verbatim
// without validation. Anything else must match the state-name table exactly
// or the result is "".
func NormalizeState(s string) string {
	s = strings.ToUpper(asciiFold(strings.TrimSpace(s)))
	if len(s) == 2 {
		return s
	}
	if abbr, ok := schema.StateAbbr[s]; ok {
		return abbr
	}
	return ""
}

// stripFloatZero removes the exact ".0" suffix that numeric source columns
// with no fractional part leave behind when stringified. Only the single
// trailing zero form is an artifact; "x.00" is real data and kept. The
// prefix must be an integer so version-like strings survive untouched.
func stripFloatZero(s string) string {
	if !strings.HasSuffix(s, ".0") {
		return s
	}
	head := strings.TrimPrefix(s[:len(s)-2], "-")
	if head == "" {
		return s
	}
	for i := 0; i < len(head); i++ {
		if head[i] < '0' || head[i] > '9' {
			return s
		}
	}
	return s[:len(s)-2]
}

// asciiFold strips combining marks (NFD -> remove Mn -> NFC) so accented
// spellings still hit the lookup table.
func asciiFold(s string) string {
	t := transform.Chain(
		norm.NFD,
		runes.Remove(runes.In(unicode.Mn)),
		norm.NFC,
	)
	folded, _, err := transform.String(t, s)
	if err != nil {
		return s
	}
	return folded
}
