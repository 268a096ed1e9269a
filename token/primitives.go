package token

// primitiveTable classifies every punctuation glyph the lexer may
// assemble into a part of speech. It is consulted by a longest-match
// scan over raw source offsets: the scanner never skips whitespace while
// matching a glyph, so the with-space/without-space distinction in
// spec §4.1 falls directly out of this table rather than out of the
// scanner's control flow.
//
// Keys are ordered longest-first only for readability; lookup itself
// tries lengths from maxGlyphLen down to 1.
// Dot-suffixed verbs (<. >. +. *. -. %. ^. |.) are deliberately absent
// here even though a from-scratch reading of spec §4.1 lists them: this
// core defines no kernel for any of them, and keeping them would make
// the scanner match "<." greedily whenever "<./" appears, which
// disagrees with the required "<" + "./" split (spec §8's reduce-over-
// comparison examples depend on that split). Dropping them costs
// nothing semantically and keeps the with-space/without-space rule
// exact for the glyphs this core actually evaluates.
var primitiveTable = map[string]Kind{
	// three-character glyphs
	".\\": Adverb, // two characters (dot, backslash); the scan counterpart of "./" below
	"+.*": Verb,   // fused inner-product glyph: sum-of-products, i.e. +/.*

	// two-character glyphs
	"<:": Verb,
	">:": Verb,
	"*:": Verb,
	"./": Adverb,
	"^:": Conjunction,

	// one-character glyphs
	"+": Verb,
	"-": Verb,
	"*": Verb,
	"%": Verb,
	"#": Verb,
	"$": Verb,
	"<": Verb,
	">": Verb,
	",": Verb,
	"^": Verb,
	"|": Verb,
	"~": Verb,
	"!": Verb,
	"/": Adverb,
	"\\": Adverb,
	".": Conjunction,
}

// maxGlyphLen is the length, in bytes, of the longest key in
// primitiveTable. All glyphs are ASCII, so byte length equals rune
// length.
var maxGlyphLen = func() int {
	max := 0
	for g := range primitiveTable {
		if len(g) > max {
			max = len(g)
		}
	}
	return max
}()

// controlWords classifies identifier-shaped primitives: lexemes that
// look like names (they start with a letter) but are in fact verbs.
// "i." (iota) is the only one this core evaluates; lexIdentifier
// consults this table after assembling a full identifier lexeme and
// only falls back to a Name token when the lookup misses.
var controlWords = map[string]Kind{
	"i.": Verb,
}

// LookupControlWord reports whether lexeme names an identifier-shaped
// primitive, and if so its Kind.
func LookupControlWord(lexeme string) (Kind, bool) {
	k, ok := controlWords[lexeme]
	return k, ok
}

// LongestPrimitive scans src[pos:] for the longest glyph present in
// primitiveTable, never looking past the end of src. It returns the
// matched glyph, its part of speech, and whether a match was found.
// Because the table holds no key containing whitespace, a candidate
// substring that straddles a space simply fails to match any entry —
// the whitespace-sensitivity rule needs no special casing here.
func LongestPrimitive(src string, pos int) (glyph string, kind Kind, ok bool) {
	limit := maxGlyphLen
	if pos+limit > len(src) {
		limit = len(src) - pos
	}
	for n := limit; n >= 1; n-- {
		cand := src[pos : pos+n]
		if k, found := primitiveTable[cand]; found {
			return cand, k, true
		}
	}
	return "", 0, false
}
