// Package carbon scores the shipping footprint of catalog products.
//
// The engine is a pure function of a product's weight, shipping distance and
// eco-friendly flag. It holds no mutable state and is safe for concurrent use.
package carbon

import (
	domainerrors "ecobazaar/internal/domain/errors"
	"ecobazaar/internal/errors"

	"github.com/shopspring/decimal"
)

// maxEcoPointsCeiling is the upper bound of the eco points scale.
const maxEcoPointsCeiling = 100

// Coefficients are the calibration parameters of the scoring formula.
type Coefficients struct {
	// EmissionFactor is kg CO2 emitted per kg of goods per km shipped.
	EmissionFactor decimal.Decimal
	// EcoDiscount multiplies the baseline emission of eco-friendly products. Must be in (0,1).
	EcoDiscount decimal.Decimal
	// PointsPerUnitReduction converts kg CO2 avoided into eco points.
	PointsPerUnitReduction decimal.Decimal
	// MaxEcoPoints caps the awarded eco points.
	MaxEcoPoints int
}

// DefaultCoefficients returns the calibration used when none is configured.
func DefaultCoefficients() Coefficients {
	return Coefficients{
		EmissionFactor:         decimal.RequireFromString("0.1"),
		EcoDiscount:            decimal.RequireFromString("0.7"),
		PointsPerUnitReduction: decimal.NewFromInt(20),
		MaxEcoPoints:           maxEcoPointsCeiling,
	}
}

// Validate checks that the coefficients describe a well-formed formula.
func (c Coefficients) Validate() error {
	if !c.EmissionFactor.IsPositive() {
		return errors.New("emission factor must be positive")
	}
	if !c.EcoDiscount.IsPositive() || c.EcoDiscount.GreaterThanOrEqual(decimal.NewFromInt(1)) {
		return errors.New("eco discount must be in (0,1)")
	}
	if c.PointsPerUnitReduction.IsNegative() {
		return errors.New("points per unit reduction must not be negative")
	}
	if c.MaxEcoPoints < 0 || c.MaxEcoPoints > maxEcoPointsCeiling {
		return errors.Errorf("max eco points must be in [0,%d]", maxEcoPointsCeiling)
	}

	return nil
}

// Engine computes product footprints.
type Engine struct {
	coeff Coefficients
}

// NewEngine creates a scoring engine with the given calibration.
func NewEngine(coeff Coefficients) (*Engine, error) {
	if err := coeff.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid carbon coefficients")
	}

	return &Engine{coeff: coeff}, nil
}

// Coefficients returns the calibration in use.
func (e *Engine) Coefficients() Coefficients {
	return e.coeff
}

// Score computes the footprint of a product. Negative inputs are rejected with
// ErrInvalidAttribute before anything is computed.
func (e *Engine) Score(weightKg, shippingDistanceKm decimal.Decimal, ecoFriendly bool) (Footprint, error) {
	if weightKg.IsNegative() {
		return Footprint{}, domainerrors.ErrInvalidAttribute.WrapMessage("weightKg must not be negative")
	}
	if shippingDistanceKm.IsNegative() {
		return Footprint{}, domainerrors.ErrInvalidAttribute.WrapMessage("shippingDistanceKm must not be negative")
	}

	baseline := weightKg.Mul(shippingDistanceKm).Mul(e.coeff.EmissionFactor)

	score := baseline
	if ecoFriendly {
		score = baseline.Mul(e.coeff.EcoDiscount)
	}
	reduction := baseline.Sub(score)

	return Footprint{
		weightKg:           weightKg,
		shippingDistanceKm: shippingDistanceKm,
		ecoFriendly:        ecoFriendly,
		carbonScore:        score,
		carbonReduction:    reduction,
		ecoPoints:          e.ecoPoints(reduction),
	}, nil
}

func (e *Engine) ecoPoints(reduction decimal.Decimal) int {
	points := reduction.Mul(e.coeff.PointsPerUnitReduction).Round(0)

	// Compare as decimals first so huge reductions cannot overflow int.
	if points.IsNegative() {
		return 0
	}
	if points.GreaterThan(decimal.NewFromInt(int64(e.coeff.MaxEcoPoints))) {
		return e.coeff.MaxEcoPoints
	}

	return int(points.IntPart())
}
