package enums

import "fmt"

// ProductUnit is the unit a product is priced and sold in.
type ProductUnit string

const (
	ProductUnitPiece  ProductUnit = "piece"
	ProductUnitKg     ProductUnit = "kg"
	ProductUnitGram   ProductUnit = "gram"
	ProductUnitBunch  ProductUnit = "bunch"
	ProductUnitBag    ProductUnit = "bag"
	ProductUnitDozen  ProductUnit = "dozen"
	ProductUnitLitre  ProductUnit = "litre"
	ProductUnitMeter  ProductUnit = "meter"
	ProductUnitSet    ProductUnit = "set"
	ProductUnitPair   ProductUnit = "pair"
	ProductUnitBox    ProductUnit = "box"
	ProductUnitPacket ProductUnit = "packet"
	ProductUnitHour   ProductUnit = "hour"
	ProductUnitDay    ProductUnit = "day"
)

var validProductUnits = []ProductUnit{
	ProductUnitPiece,
	ProductUnitKg,
	ProductUnitGram,
	ProductUnitBunch,
	ProductUnitBag,
	ProductUnitDozen,
	ProductUnitLitre,
	ProductUnitMeter,
	ProductUnitSet,
	ProductUnitPair,
	ProductUnitBox,
	ProductUnitPacket,
	ProductUnitHour,
	ProductUnitDay,
}

// String implements fmt.Stringer.
func (p ProductUnit) String() string {
	return string(p)
}

// IsValid reports whether the value is a known ProductUnit.
func (p ProductUnit) IsValid() bool {
	for _, candidate := range validProductUnits {
		if candidate == p {
			return true
		}
	}
	return false
}

// ParseProductUnit converts raw input into a ProductUnit.
func ParseProductUnit(value string) (ProductUnit, error) {
	for _, candidate := range validProductUnits {
		if string(candidate) == value {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("invalid product unit %q", value)
}
