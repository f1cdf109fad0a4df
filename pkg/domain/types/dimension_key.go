package types

import (
	"strings"
)

// dimensionKeySeparator joins area and dimension names into one key.
// Neither side may contain the separator.
const dimensionKeySeparator = "::"

// DimensionKey is the composite identity of a scored dimension,
// qualified by its area so that dimensions with the same name in
// different areas stay distinct.
type DimensionKey string

func NewDimensionKey(area, dimension string) DimensionKey {
	return DimensionKey(area + dimensionKeySeparator + dimension)
}

func (k DimensionKey) String() string {
	return string(k)
}

// Area returns the area half of the key
func (k DimensionKey) Area() string {
	area, _, _ := strings.Cut(string(k), dimensionKeySeparator)
	return area
}

// Dimension returns the dimension half of the key
func (k DimensionKey) Dimension() string {
	_, dimension, _ := strings.Cut(string(k), dimensionKeySeparator)
	return dimension
}
