package widget

import (
	"fmt"
	"strings"
)

// Kind identifies which visualization a widget uses.
type Kind int

const (
	KindUnknown Kind = iota
	KindDonut
	KindPlaceholder
	KindSlider
)

// Kinds lists the selectable kinds in form order.
var Kinds = []Kind{KindDonut, KindPlaceholder, KindSlider}

func (k Kind) String() string {
	switch k {
	case KindDonut:
		return "donut"
	case KindPlaceholder:
		return "placeholder"
	case KindSlider:
		return "slider"
	default:
		return "unknown"
	}
}

// Label returns the human-readable name shown in the add form.
func (k Kind) Label() string {
	switch k {
	case KindDonut:
		return "Donut Chart"
	case KindPlaceholder:
		return "Placeholder"
	case KindSlider:
		return "Slider"
	default:
		return "Unknown"
	}
}

// ParseKind converts a kind name (case-insensitive) to a Kind.
func ParseKind(s string) (Kind, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "donut":
		return KindDonut, nil
	case "placeholder":
		return KindPlaceholder, nil
	case "slider":
		return KindSlider, nil
	}
	return KindUnknown, fmt.Errorf("unknown widget kind: %s", s)
}

// MarshalText implements encoding.TextMarshaler.
func (k Kind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (k *Kind) UnmarshalText(text []byte) error {
	parsed, err := ParseKind(string(text))
	if err != nil {
		return err
	}
	*k = parsed
	return nil
}
