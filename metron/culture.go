package metron

import "golang.org/x/text/language"

// Culture carries the numeric conventions used by the text forms.
// Suffix keywords are matched culture-invariantly; only the decimal
// point and the list separator vary between cultures.
type Culture struct {
	DecimalSep rune // decimal point, e.g. '.' or ','
	ListSep    rune // separator between edge tokens, e.g. ',' or ';'
}

// Invariant is the culture-neutral convention: '.' decimal point and
// ',' list separator.
var Invariant = Culture{DecimalSep: '.', ListSep: ','}

// cultureTable pairs language tags with their separators. The first
// entry doubles as the fallback for unknown tags.
var cultureTable = []struct {
	tag language.Tag
	c   Culture
}{
	{language.AmericanEnglish, Culture{'.', ','}},
	{language.BritishEnglish, Culture{'.', ','}},
	{language.German, Culture{',', ';'}},
	{language.French, Culture{',', ';'}},
	{language.Spanish, Culture{',', ';'}},
	{language.Italian, Culture{',', ';'}},
	{language.Dutch, Culture{',', ';'}},
	{language.Portuguese, Culture{',', ';'}},
	{language.Russian, Culture{',', ';'}},
	{language.Japanese, Culture{'.', ','}},
	{language.SimplifiedChinese, Culture{'.', ','}},
	{language.Korean, Culture{'.', ','}},
}

var cultureMatcher language.Matcher

func init() {
	tags := make([]language.Tag, len(cultureTable))
	for i, e := range cultureTable {
		tags[i] = e.tag
	}
	cultureMatcher = language.NewMatcher(tags)
}

// CultureFor returns the numeric conventions for a language tag using
// best-fit matching, so regional variants resolve to their base
// language's entry. Unknown tags fall back to Invariant conventions.
func CultureFor(tag language.Tag) Culture {
	_, i, _ := cultureMatcher.Match(tag)
	return cultureTable[i].c
}

// ParseCulture resolves a BCP-47 tag string such as "de-DE".
func ParseCulture(s string) (Culture, error) {
	tag, err := language.Parse(s)
	if err != nil {
		return Invariant, err
	}
	return CultureFor(tag), nil
}
