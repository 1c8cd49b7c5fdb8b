package pptoken

import "sort"

// codePointRange is an inclusive [Lo, Hi] range of Unicode scalar
// values, used to represent the Annex E tables from the C++ standard.
type codePointRange struct {
	Lo, Hi rune
}

func inRanges(ranges []codePointRange, r rune) bool {
	i := sort.Search(len(ranges), func(i int) bool { return ranges[i].Hi >= r })
	return i < len(ranges) && ranges[i].Lo <= r
}

// annexE1AllowedRanges lists the code points Annex E.1 of the C++
// standard allows in an identifier, beyond plain ASCII letters,
// digits and underscore. Sorted and non-overlapping so inRanges can
// binary-search it.
var annexE1AllowedRanges = []codePointRange{
	{0x00A8, 0x00A8}, {0x00AA, 0x00AA}, {0x00AD, 0x00AD}, {0x00AF, 0x00AF},
	{0x00B2, 0x00B5}, {0x00B7, 0x00BA}, {0x00BC, 0x00BE}, {0x00C0, 0x00D6},
	{0x00D8, 0x00F6}, {0x00F8, 0x00FF},
	{0x0100, 0x167F}, {0x1681, 0x180D}, {0x180F, 0x1FFF},
	{0x200B, 0x200D}, {0x202A, 0x202E}, {0x203F, 0x2040}, {0x2054, 0x2054},
	{0x2060, 0x206F},
	{0x2070, 0x218F}, {0x2460, 0x24FF}, {0x2776, 0x2793},
	{0x2C00, 0x2DFF}, {0x2E80, 0x2FFF},
	{0x3004, 0x3007}, {0x3021, 0x302F}, {0x3031, 0x303F},
	{0x3040, 0xD7FF},
	{0xF900, 0xFD3D}, {0xFD40, 0xFDCF}, {0xFDF0, 0xFE44}, {0xFE47, 0xFFFD},
	{0x10000, 0x1FFFD}, {0x20000, 0x2FFFD}, {0x30000, 0x3FFFD},
	{0x40000, 0x4FFFD}, {0x50000, 0x5FFFD}, {0x60000, 0x6FFFD},
	{0x70000, 0x7FFFD}, {0x80000, 0x8FFFD}, {0x90000, 0x9FFFD},
	{0xA0000, 0xAFFFD}, {0xB0000, 0xBFFFD}, {0xC0000, 0xCFFFD},
	{0xD0000, 0xDFFFD}, {0xE0000, 0xEFFFD},
}

// annexE2DisallowedInitialRanges lists the Annex E.1 code points that
// are additionally forbidden as the very first character of an
// identifier (Annex E.2).
var annexE2DisallowedInitialRanges = []codePointRange{
	{0x0300, 0x036F}, {0x1DC0, 0x1DFF}, {0x20D0, 0x20FF}, {0xFE20, 0xFE2F},
}

func isAnnexE1Allowed(r rune) bool {
	return inRanges(annexE1AllowedRanges, r)
}

func isAnnexE2DisallowedInitial(r rune) bool {
	return inRanges(annexE2DisallowedInitialRanges, r)
}

// isIdentifierNonDigit reports whether r may appear anywhere in an
// identifier other than as the leading character of the very first
// token position (i.e. it is a non-digit identifier character: ASCII
// letter or underscore, or an Annex E.1 code point).
func isIdentifierNonDigit(r rune) bool {
	if r == '_' || (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') {
		return true
	}
	if r < 0x80 {
		return false
	}
	return isAnnexE1Allowed(r)
}

// isValidInitialIdentifierChar reports whether r may start an
// identifier: an identifier-non-digit character not excluded by
// Annex E.2.
func isValidInitialIdentifierChar(r rune) bool {
	return isIdentifierNonDigit(r) && !isAnnexE2DisallowedInitial(r)
}

func isDigit(r rune) bool { return r >= '0' && r <= '9' }

// identifierLikeOperators are preprocessing-op-or-punc tokens spelled
// as identifiers (§2.12): once lexed as an identifier they are still
// classified as preprocessing-op-or-punc tokens, not as "identifier".
var identifierLikeOperators = map[string]bool{
	"new": true, "delete": true, "and": true, "and_eq": true,
	"bitand": true, "bitor": true, "compl": true, "not": true,
	"not_eq": true, "or": true, "or_eq": true, "xor": true, "xor_eq": true,
}

// foldTrigraph maps the third character of a "??x" sequence to its
// single-character replacement, per the trigraph table. The table is
// exhaustive for the nine trigraphs the standard defines; for any
// other character it reports false, which is how the caller tells a
// plain "??" from a trigraph.
func foldTrigraph(third rune) (rune, bool) {
	switch third {
	case '=':
		return '#', true
	case '/':
		return '\\', true
	case '\'':
		return '^', true
	case '(':
		return '[', true
	case ')':
		return ']', true
	case '!':
		return '|', true
	case '<':
		return '{', true
	case '>':
		return '}', true
	case '-':
		return '~', true
	}
	return 0, false
}

func isHexDigit(r rune) bool {
	return (r >= '0' && r <= '9') || (r >= 'a' && r <= 'f') || (r >= 'A' && r <= 'F')
}

func hexValue(r rune) rune {
	switch {
	case r >= '0' && r <= '9':
		return r - '0'
	case r >= 'a' && r <= 'f':
		return r - 'a' + 10
	case r >= 'A' && r <= 'F':
		return r - 'A' + 10
	}
	panic("hexValue called on a non-hex-digit rune")
}
