package derive

import (
	"strings"
	"unicode/utf8"
)

// Strength is an advisory classification of a normalized root phrase. It is
// informational only and never blocks derivation.
type Strength int

const (
	StrengthWeak Strength = iota
	StrengthOK
	StrengthStrong
)

const (
	weakWordCount = 6
	weakCharCount = 40

	strongWordCount = 12
	strongCharCount = 60
)

func (s Strength) String() string {
	switch s {
	case StrengthWeak:
		return "weak"
	case StrengthOK:
		return "ok"
	case StrengthStrong:
		return "strong"
	default:
		return "unknown"
	}
}

// Normalize canonicalizes a raw root phrase: leading/trailing whitespace
// trimmed, lowercased, every internal run of whitespace collapsed to a single
// ASCII space, encoded as UTF-8. Identical phrases up to these differences
// always yield identical bytes. Returns ErrEmptyInput if nothing remains.
//
// Normalization is part of the V1 contract and must not change for this
// version tag.
func Normalize(raw []byte) ([]byte, error) {
	fields := strings.Fields(strings.ToLower(string(raw)))
	if len(fields) == 0 {
		return nil, ErrEmptyInput
	}
	return []byte(strings.Join(fields, " ")), nil
}

// Classify reports the advisory strength of an already-normalized phrase
// from its word and character counts.
func Classify(normalized []byte) Strength {
	words := len(strings.Fields(string(normalized)))
	chars := utf8.RuneCount(normalized)
	switch {
	case words < weakWordCount || chars < weakCharCount:
		return StrengthWeak
	case words >= strongWordCount && chars >= strongCharCount:
		return StrengthStrong
	default:
		return StrengthOK
	}
}
