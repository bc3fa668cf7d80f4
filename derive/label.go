package derive

import "fmt"

const (
	hotTagV1  = "HOT_PHRASE_V1"
	coldTagV1 = "COLD_PHRASE_V1"

	// customPrefix makes custom label bytes structurally distinct from
	// reserved tags: no custom text can encode to a reserved tag because
	// reserved tags never carry the prefix.
	customPrefix = "CUSTOM:"
)

// Label identifies a derivation context. Reserved labels (HOT, COLD) encode
// as their literal tag; custom labels encode with a distinguishing prefix so
// the two namespaces can never collide.
type Label struct {
	text   string
	custom bool
}

// LabelHot returns the reserved label for the daily (hot) vault.
func LabelHot() Label {
	return Label{text: hotTagV1}
}

// LabelCold returns the reserved label for the offline (cold) vault.
func LabelCold() Label {
	return Label{text: coldTagV1}
}

// CustomLabel builds a label from user-chosen text. Returns ErrEmptyLabel
// for empty text and ErrReservedLabel if the encoded bytes would equal a
// reserved tag (structurally impossible given the prefix, kept as a
// defensive check).
func CustomLabel(text string) (Label, error) {
	if text == "" {
		return Label{}, ErrEmptyLabel
	}
	encoded := customPrefix + text
	if encoded == hotTagV1 || encoded == coldTagV1 {
		return Label{}, fmt.Errorf("custom label %q: %w", text, ErrReservedLabel)
	}
	return Label{text: text, custom: true}, nil
}

// Bytes returns the label's byte encoding as fed to the child key derivation.
func (l Label) Bytes() []byte {
	if l.custom {
		return []byte(customPrefix + l.text)
	}
	return []byte(l.text)
}

// String returns the display name of the label.
func (l Label) String() string {
	return l.text
}

// IsCustom reports whether the label is user-chosen rather than reserved.
func (l Label) IsCustom() bool {
	return l.custom
}
