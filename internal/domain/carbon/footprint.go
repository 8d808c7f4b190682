package carbon

import (
	"github.com/shopspring/decimal"
)

// Footprint is the scored shipping footprint of a product. The three inputs and
// the three derived values travel together; a Footprint is obtained from
// Engine.Score or rehydrated from storage with RestoreFootprint.
type Footprint struct {
	weightKg           decimal.Decimal
	shippingDistanceKm decimal.Decimal
	ecoFriendly        bool
	carbonScore        decimal.Decimal
	carbonReduction    decimal.Decimal
	ecoPoints          int
}

// RestoreFootprint rebuilds a previously scored footprint from persisted columns.
// It must only be used by the persistence layer.
func RestoreFootprint(
	weightKg, shippingDistanceKm decimal.Decimal,
	ecoFriendly bool,
	carbonScore, carbonReduction decimal.Decimal,
	ecoPoints int,
) Footprint {
	return Footprint{
		weightKg:           weightKg,
		shippingDistanceKm: shippingDistanceKm,
		ecoFriendly:        ecoFriendly,
		carbonScore:        carbonScore,
		carbonReduction:    carbonReduction,
		ecoPoints:          ecoPoints,
	}
}

// WeightKg returns the shipped weight in kilograms.
func (f Footprint) WeightKg() decimal.Decimal { return f.weightKg }

// ShippingDistanceKm returns the shipping distance in kilometers.
func (f Footprint) ShippingDistanceKm() decimal.Decimal { return f.shippingDistanceKm }

// EcoFriendly reports whether the product qualified for the eco discount.
func (f Footprint) EcoFriendly() bool { return f.ecoFriendly }

// CarbonScore returns the estimated emission in kg CO2.
func (f Footprint) CarbonScore() decimal.Decimal { return f.carbonScore }

// CarbonReduction returns the emission avoided relative to a non-eco baseline.
func (f Footprint) CarbonReduction() decimal.Decimal { return f.carbonReduction }

// EcoPoints returns the reward points in [0,100].
func (f Footprint) EcoPoints() int { return f.ecoPoints }

// Equal reports whether two footprints carry the same inputs and outputs.
func (f Footprint) Equal(other Footprint) bool {
	return f.weightKg.Equal(other.weightKg) &&
		f.shippingDistanceKm.Equal(other.shippingDistanceKm) &&
		f.ecoFriendly == other.ecoFriendly &&
		f.carbonScore.Equal(other.carbonScore) &&
		f.carbonReduction.Equal(other.carbonReduction) &&
		f.ecoPoints == other.ecoPoints
}
