package essence

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// ErrUnknownKind is returned when text does not resolve to a declared Kind.
var ErrUnknownKind = errors.New("unknown essence kind")

var (
	byName  = make(map[string]Kind, len(registry))
	byLabel = make(map[string]Kind, len(registry))
)

func init() {
	for _, e := range registry {
		byName[e.name] = e.kind
		byLabel[strings.ToLower(e.label)] = e.kind
	}
}

// Parse resolves a name ("wave_pcm"), a label ("WAVE PCM") or a decimal
// ordinal ("59"). Names and labels are matched case-insensitively; dashes
// and spaces in a name are treated as underscores.
func Parse(s string) (Kind, error) {
	value := strings.TrimSpace(s)
	if value == "" {
		return Unknown, fmt.Errorf("parse %q: %w", s, ErrUnknownKind)
	}
	lower := strings.ToLower(value)
	if k, ok := byName[lower]; ok {
		return k, nil
	}
	if k, ok := byName[strings.NewReplacer("-", "_", " ", "_").Replace(lower)]; ok {
		return k, nil
	}
	if k, ok := byLabel[lower]; ok {
		return k, nil
	}
	if n, err := strconv.Atoi(value); err == nil {
		if k := Kind(n); k.Valid() {
			return k, nil
		}
	}
	return Unknown, fmt.Errorf("parse %q: %w", s, ErrUnknownKind)
}

// ParseGeneric is Parse restricted to Unknown, Picture, Sound and Data.
func ParseGeneric(s string) (Kind, error) {
	k, err := Parse(s)
	if err != nil {
		return Unknown, err
	}
	if !k.IsGeneric() {
		return Unknown, fmt.Errorf("parse %q: %s is not a generic kind: %w", s, k.Name(), ErrUnknownKind)
	}
	return k, nil
}
