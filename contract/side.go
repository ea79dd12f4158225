package contract

import (
	"fmt"
)

// Side represents one of the four seats at the table, in clockwise order.
type Side uint8

const (
	North Side = iota
	East
	South
	West
)

// NumSides is the number of seats at the table.
const NumSides = 4

var sideStr = [...]string{
	"North",
	"East",
	"South",
	"West",
}

func (s Side) String() string {
	if s >= NumSides {
		return fmt.Sprintf("Side(%d)", uint8(s))
	}
	return sideStr[s]
}

// Next returns the side to the left, who plays after s.
func (s Side) Next() Side {
	return (s + 1) % NumSides
}

// Prev returns the side to the right, who played before s.
func (s Side) Prev() Side {
	return (s + NumSides - 1) % NumSides
}

// Partner returns the side sitting opposite s.
func (s Side) Partner() Side {
	return (s + 2) % NumSides
}

// Axis returns the partnership that s belongs to.
func (s Side) Axis() Axis {
	return Axis(s % 2)
}

// Axis identifies a partnership of two opposite sides.
type Axis uint8

const (
	NorthSouth Axis = iota
	EastWest
)

var axisStr = [...]string{
	"NorthSouth",
	"EastWest",
}

func (a Axis) String() string {
	return axisStr[a]
}

// Opponents returns the other partnership.
func (a Axis) Opponents() Axis {
	return 1 - a
}
