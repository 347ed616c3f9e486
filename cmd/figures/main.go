package main

import (
	"fmt"

	"usermgr/internal/domain/figure"
)

func main() {
	figures := []figure.Figure{
		figure.NewCircle(1.0),
		figure.NewSquare(2.3),
		figure.NewTriangle(4.2, 4.5),
	}

	for _, f := range figures {
		fmt.Printf("%s\n  area: %.4f\n  perimeter: %.4f\n", f, f.Area(), f.Perimeter())
	}
}
