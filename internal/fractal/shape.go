package fractal

import (
	"fmt"
	"strings"

	"fractal-gallery/internal/core"
)

// ShapeKind selects the subdivision rule of a tree.
type ShapeKind uint8

const (
	// Cube subdivides into the 20 corner and edge cubes of a 3x3x3 partition.
	Cube ShapeKind = iota
	// Tetrahedron subdivides into 4 half-size copies at its vertices.
	Tetrahedron
	// TorusRing subdivides into 4 tori threaded around the parent's major circle.
	TorusRing
)

// Kinds lists every shape kind in declaration order.
var Kinds = []ShapeKind{Cube, Tetrahedron, TorusRing}

func (k ShapeKind) String() string {
	switch k {
	case Cube:
		return "cube"
	case Tetrahedron:
		return "tetrahedron"
	case TorusRing:
		return "torus"
	default:
		return fmt.Sprintf("ShapeKind(%d)", uint8(k))
	}
}

// ParseShapeKind maps a shape name (or its scene alias) to a ShapeKind.
func ParseShapeKind(s string) (ShapeKind, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "cube", "menger":
		return Cube, nil
	case "tetrahedron", "tetra", "sierpinski":
		return Tetrahedron, nil
	case "torus", "tori", "torus-ring", "torusring":
		return TorusRing, nil
	}
	return 0, fmt.Errorf("shape %q: %w", s, core.ErrInvalidParameter)
}

// MarshalText implements encoding.TextMarshaler.
func (k ShapeKind) MarshalText() ([]byte, error) {
	if _, ok := RuleFor(k); !ok {
		return nil, fmt.Errorf("shape %d: %w", uint8(k), core.ErrInvalidParameter)
	}
	return []byte(k.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (k *ShapeKind) UnmarshalText(b []byte) error {
	parsed, err := ParseShapeKind(string(b))
	if err != nil {
		return err
	}
	*k = parsed
	return nil
}
