// Package textfilter softens profanity in narration output for
// family-friendly deployments.
package textfilter

import (
	"regexp"
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// swearWordReplacements maps filtered words to tamer alternatives. The
// narrator model occasionally slips despite prompt framing, so the filter
// runs on its output rather than on player input.
var swearWordReplacements = map[string]string{
	"fuck":      "fudge",
	"shit":      "shoot",
	"damn":      "dang",
	"hell":      "heck",
	"ass":       "butt",
	"bitch":     "jerk",
	"bastard":   "jerk",
	"crap":      "crud",
	"goddamn":   "gosh-dang",
	"asshole":   "jerk",
	"bullshit":  "baloney",
	"dumbass":   "dummy",
	"jackass":   "jerk",
	"prick":     "jerk",
	"dickhead":  "jerk",
	"shithead":  "jerk",
	"horseshit": "nonsense",
}

// ProfanityFilter replaces profanity with family-friendly alternatives
// while preserving the case pattern of the original word.
type ProfanityFilter struct {
	regexes map[string]*regexp.Regexp
}

// NewProfanityFilter compiles the word-boundary patterns once.
func NewProfanityFilter() *ProfanityFilter {
	pf := &ProfanityFilter{
		regexes: make(map[string]*regexp.Regexp, len(swearWordReplacements)),
	}
	for word := range swearWordReplacements {
		pf.regexes[word] = regexp.MustCompile(`(?i)\b` + regexp.QuoteMeta(word) + `\b`)
	}
	return pf
}

// FilterText replaces every filtered word in text.
func (pf *ProfanityFilter) FilterText(text string) string {
	result := text
	for word, replacement := range swearWordReplacements {
		result = pf.regexes[word].ReplaceAllStringFunc(result, func(match string) string {
			return preserveCase(match, replacement)
		})
	}
	return result
}

// ContainsProfanity reports whether text matches any filtered word.
func (pf *ProfanityFilter) ContainsProfanity(text string) bool {
	for _, regex := range pf.regexes {
		if regex.MatchString(text) {
			return true
		}
	}
	return false
}

// preserveCase applies the case pattern of the original word to the
// replacement: all-upper and all-lower pass through, title case uses the
// English caser, anything else is matched rune by rune.
func preserveCase(original, replacement string) string {
	if len(original) == 0 {
		return replacement
	}

	if strings.ToUpper(original) == original {
		return strings.ToUpper(replacement)
	}
	if strings.ToLower(original) == original {
		return strings.ToLower(replacement)
	}

	titleCaser := cases.Title(language.English)
	if titleCaser.String(strings.ToLower(original)) == original {
		return titleCaser.String(replacement)
	}

	originalRunes := []rune(original)
	result := make([]rune, 0, len(replacement))
	for i, r := range replacement {
		if i < len(originalRunes) && unicode.IsUpper(originalRunes[i]) {
			result = append(result, unicode.ToUpper(r))
		} else {
			result = append(result, unicode.ToLower(r))
		}
	}
	return string(result)
}
