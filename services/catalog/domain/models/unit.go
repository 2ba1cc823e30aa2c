package models

import "fmt"

// Unit is the unit of measure a product is sold in.
type Unit string

const (
	UnitKg     Unit = "kg"
	UnitLitre  Unit = "L"
	UnitPiece  Unit = "piece"
	UnitPacket Unit = "packet"
)

// Units lists every accepted unit of measure.
var Units = []Unit{UnitKg, UnitLitre, UnitPiece, UnitPacket}

// ParseUnit validates s as a Unit.
func ParseUnit(s string) (Unit, error) {
	for _, u := range Units {
		if string(u) == s {
			return u, nil
		}
	}
	return "", fmt.Errorf("unit must be one of kg, L, piece, packet (got %q)", s)
}

func (u Unit) String() string { return string(u) }
