package enums

import "fmt"

// ProductID identifies one of the three Terravik fertilizer SKUs.
type ProductID string

const (
	ProductRaizes      ProductID = "terravik_raizes"
	ProductVerdeIntens ProductID = "terravik_verde_intenso"
	ProductEscudo      ProductID = "terravik_escudo"
)

var validProductIDs = []ProductID{
	ProductRaizes,
	ProductVerdeIntens,
	ProductEscudo,
}

func (p ProductID) String() string {
	return string(p)
}

func (p ProductID) IsValid() bool {
	for _, candidate := range validProductIDs {
		if candidate == p {
			return true
		}
	}
	return false
}

func ParseProductID(value string) (ProductID, error) {
	for _, candidate := range validProductIDs {
		if string(candidate) == value {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("invalid product id %q", value)
}
