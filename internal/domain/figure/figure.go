// Package figure computes area and perimeter for a fixed set of plane figures.
package figure

import (
	"fmt"
	"math"
)

// Kind tags the variant held by a Figure.
type Kind int

const (
	KindCircle Kind = iota + 1
	KindSquare
	KindTriangle
)

func (k Kind) String() string {
	switch k {
	case KindCircle:
		return "circle"
	case KindSquare:
		return "square"
	case KindTriangle:
		return "triangle"
	default:
		return fmt.Sprintf("kind(%d)", int(k))
	}
}

// Figure is a closed variant over the supported shapes.
// For a circle a is the radius, for a square a is the side,
// for a right triangle a is the base and b the height.
type Figure struct {
	kind Kind
	a, b float64
}

type formulas struct {
	area      func(a, b float64) float64
	perimeter func(a, b float64) float64
}

var dispatch = map[Kind]formulas{
	KindCircle: {
		area:      func(r, _ float64) float64 { return math.Pi * r * r },
		perimeter: func(r, _ float64) float64 { return 2 * math.Pi * r },
	},
	KindSquare: {
		area:      func(s, _ float64) float64 { return s * s },
		perimeter: func(s, _ float64) float64 { return 4 * s },
	},
	KindTriangle: {
		area:      func(base, height float64) float64 { return base * height / 2 },
		perimeter: func(base, height float64) float64 { return base + height + math.Hypot(base, height) },
	},
}

// NewCircle returns a circle of radius r.
func NewCircle(r float64) Figure {
	return Figure{kind: KindCircle, a: r}
}

// NewSquare returns a square with the given side.
func NewSquare(side float64) Figure {
	return Figure{kind: KindSquare, a: side}
}

// NewTriangle returns a right triangle with the given legs.
func NewTriangle(base, height float64) Figure {
	return Figure{kind: KindTriangle, a: base, b: height}
}

// Kind returns the variant tag.
func (f Figure) Kind() Kind {
	return f.kind
}

// Area returns the surface of the figure. The zero Figure has no area.
func (f Figure) Area() float64 {
	fn, ok := dispatch[f.kind]
	if !ok {
		return 0
	}

	return fn.area(f.a, f.b)
}

// Perimeter returns the length of the figure's outline.
func (f Figure) Perimeter() float64 {
	fn, ok := dispatch[f.kind]
	if !ok {
		return 0
	}

	return fn.perimeter(f.a, f.b)
}

func (f Figure) String() string {
	switch f.kind {
	case KindTriangle:
		return fmt.Sprintf("%s(%g, %g)", f.kind, f.a, f.b)
	default:
		return fmt.Sprintf("%s(%g)", f.kind, f.a)
	}
}
