// Package intent parses classifier replies into a closed intent type.
//
// The external model speaks a literal string protocol (MSKILL:FIREBALL,
// OSKILL:ALCHEMY, ITEM:HEALTH_POTION, ATTACK, NONE). That wire contract is
// preserved exactly at the boundary, but raw tag strings never travel past
// this package: callers work with Intent values.
package intent

import "strings"

// Kind is the closed set of intent categories.
type Kind int

const (
	// KindNone means the action carries no mechanical tag.
	KindNone Kind = iota
	// KindAttack is a plain weapon attack.
	KindAttack
	// KindMagicSkill is a magic skill use (MSKILL:*).
	KindMagicSkill
	// KindOtherSkill is a non-magic skill use (OSKILL:*).
	KindOtherSkill
	// KindItem is an item use (ITEM:*).
	KindItem
)

// Intent is a parsed classifier reply. Name holds the tag suffix
// ("FIREBALL", "HEALTH_POTION") for skill and item intents, "ATTACK" for
// attacks, and is empty for KindNone.
type Intent struct {
	Kind Kind
	Name string
}

// None is the zero intent.
var None = Intent{Kind: KindNone}

const (
	prefixMagicSkill = "MSKILL:"
	prefixOtherSkill = "OSKILL:"
	prefixItem       = "ITEM:"
	tagAttack        = "ATTACK"
	tagNone          = "NONE"
)

// Parse extracts a single intent from a raw classifier reply.
//
// Policy: split on whitespace, drop every NONE token, and honor only the
// first remaining token; anything after it is ignored (no multi-intent
// turns). A token matching no known prefix yields None — downstream
// narration then proceeds with the raw action text.
func Parse(reply string) Intent {
	var first string
	for _, tok := range strings.Fields(reply) {
		if tok == tagNone {
			continue
		}
		first = tok
		break
	}
	if first == "" {
		return None
	}

	switch {
	case first == tagAttack:
		return Intent{Kind: KindAttack, Name: tagAttack}
	case strings.HasPrefix(first, prefixMagicSkill):
		return named(KindMagicSkill, first, prefixMagicSkill)
	case strings.HasPrefix(first, prefixOtherSkill):
		return named(KindOtherSkill, first, prefixOtherSkill)
	case strings.HasPrefix(first, prefixItem):
		return named(KindItem, first, prefixItem)
	}
	return None
}

func named(kind Kind, token, prefix string) Intent {
	name := strings.TrimPrefix(token, prefix)
	if name == "" {
		return None
	}
	return Intent{Kind: kind, Name: name}
}

// IsNone reports whether the intent carries no mechanical tag.
func (i Intent) IsNone() bool {
	return i.Kind == KindNone
}

// Tag reconstructs the wire tag, for logging and diagnostics only.
func (i Intent) Tag() string {
	switch i.Kind {
	case KindAttack:
		return tagAttack
	case KindMagicSkill:
		return prefixMagicSkill + i.Name
	case KindOtherSkill:
		return prefixOtherSkill + i.Name
	case KindItem:
		return prefixItem + i.Name
	}
	return tagNone
}
