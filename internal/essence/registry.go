package essence

import (
	"fmt"
	"strconv"
)

// ContractViolation is the panic value raised when a Kind outside the
// enumeration is looked up, or when the table row for a Kind holds a
// different Kind. Both mean the binary itself is wrong; callers must not
// recover and carry on.
type ContractViolation struct {
	Kind   Kind
	Reason string
}

func (e *ContractViolation) Error() string {
	return fmt.Sprintf("essence: contract violation for kind %d: %s", int(e.Kind), e.Reason)
}

func lookup(table []entry, k Kind) entry {
	if k < 0 || int(k) >= len(table) {
		panic(&ContractViolation{Kind: k, Reason: fmt.Sprintf("out of range [0, %d)", len(table))})
	}
	e := table[k]
	if e.kind != k {
		panic(&ContractViolation{Kind: k, Reason: fmt.Sprintf("table row %d holds kind %d", int(k), int(e.kind))})
	}
	return e
}

// Label returns the human-readable description of k, e.g. "WAVE PCM".
// It panics with a *ContractViolation when k is not a declared Kind.
func (k Kind) Label() string {
	return lookup(registry[:], k).label
}

// Generic returns Unknown, Picture, Sound or Data. Generic kinds map to
// themselves. It panics with a *ContractViolation when k is not a declared Kind.
func (k Kind) Generic() Kind {
	return lookup(registry[:], k).generic
}

// Name returns the stable lower-case identifier of k, e.g. "wave_pcm".
// It panics with a *ContractViolation when k is not a declared Kind.
func (k Kind) Name() string {
	return lookup(registry[:], k).name
}

// Label is the function form of Kind.Label.
func Label(k Kind) string { return k.Label() }

// Generic is the function form of Kind.Generic.
func Generic(k Kind) Kind { return k.Generic() }

// Valid reports whether k is a declared Kind.
func (k Kind) Valid() bool {
	return k >= 0 && k < kindCount
}

// IsGeneric reports whether k is one of Unknown, Picture, Sound or Data.
func (k Kind) IsGeneric() bool {
	return k >= Unknown && k <= Data
}

// String returns the label for declared kinds and "Kind(n)" otherwise, so
// formatting an invalid value never panics.
func (k Kind) String() string {
	if !k.Valid() {
		return "Kind(" + strconv.Itoa(int(k)) + ")"
	}
	return k.Label()
}

// MarshalText encodes k as its name.
func (k Kind) MarshalText() ([]byte, error) {
	if !k.Valid() {
		return nil, fmt.Errorf("essence: marshal %s: %w", k, ErrUnknownKind)
	}
	return []byte(k.Name()), nil
}

// UnmarshalText accepts anything Parse accepts.
func (k *Kind) UnmarshalText(text []byte) error {
	parsed, err := Parse(string(text))
	if err != nil {
		return err
	}
	*k = parsed
	return nil
}

// Kinds returns every declared kind in declaration order.
func Kinds() []Kind {
	out := make([]Kind, 0, len(registry))
	for _, e := range registry {
		out = append(out, e.kind)
	}
	return out
}

// ByGeneric returns the concrete kinds whose generic kind is g, in
// declaration order. The generic kind itself is not included.
func ByGeneric(g Kind) []Kind {
	var out []Kind
	for _, e := range registry {
		if e.generic == g && !e.kind.IsGeneric() {
			out = append(out, e.kind)
		}
	}
	return out
}
