package lib

import (
	"regexp"
	"sort"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/unicode/norm"
)

var (
	hanRe        = regexp.MustCompile(`\p{Han}+`)
	nameStripRe  = regexp.MustCompile(`[^A-Za-z0-9_Ω% ]`)
	mojibakeRepl = strings.NewReplacer(
		"Î©", "Ω",
		"Â±", "±",
		"Âµ", "µ",
	)
)

// CJKToken replaces a run of CJK ideographs that has no known translation.
const CJKToken = "CN"

/*
	Translator looks up an English rendering for a run of CJK text
*/
type Translator interface {
	Translate(source string) (string, bool)
}

/*
	Normalizer derives canonical device names from manufacturer part strings.
	A nil Translations means every CJK run becomes CJKToken.
*/
type Normalizer struct {
	Translations Translator

	untranslated map[string]struct{}
}

func NewNormalizer(translations Translator) *Normalizer {
	return &Normalizer{
		Translations: translations,
		untranslated: make(map[string]struct{}),
	}
}

/*
	NormalizeName returns the device name for a manufacturer part, or "" when
	nothing usable survives normalization.
*/
func (n *Normalizer) NormalizeName(part string) string {
	name := strings.TrimSpace(part)
	name = canonicalText(name)
	name = hanRe.ReplaceAllStringFunc(name, n.translate)
	name = nameStripRe.ReplaceAllString(name, "")
	name = strings.ReplaceAll(name, " ", "_")
	name = strings.ToUpper(name)

	return strings.ToValidUTF8(name, "")
}

func (n *Normalizer) translate(run string) string {
	if n.Translations != nil {
		if english, ok := n.Translations.Translate(run); ok && english != "" {
			return canonicalText(english)
		}
	}

	if n.untranslated != nil {
		n.untranslated[run] = struct{}{}
	}

	return CJKToken
}

/*
	Untranslated returns the CJK runs seen without a translation, sorted
*/
func (n *Normalizer) Untranslated() []string {
	runs := make([]string, 0, len(n.untranslated))
	for run := range n.untranslated {
		runs = append(runs, run)
	}
	sort.Strings(runs)

	return runs
}

/*
	canonicalText coerces text to NFC UTF-8. Bytes that are not UTF-8 are read
	as Windows-1252, which is what the catalog uses when it is not UTF-8.
*/
func canonicalText(s string) string {
	if !utf8.ValidString(s) {
		if decoded, err := charmap.Windows1252.NewDecoder().String(s); err == nil {
			s = decoded
		}
	}

	return norm.NFC.String(mojibakeRepl.Replace(s))
}

/*
	PickValue returns the display value of a manufacturer part: the text up to
	the first space, without a trailing parenthetical.
*/
func PickValue(part string) string {
	i := strings.Index(part, " ")
	if i < 0 {
		return part
	}

	value := part[:i]
	if j := strings.Index(value, "("); j >= 0 {
		value = value[:j]
	}

	return value
}
