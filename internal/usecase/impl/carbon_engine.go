package impl

import (
	"ecobazaar/config"
	"ecobazaar/internal/domain/carbon"

	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
)

// NewCarbonEngine builds the scoring engine from the carbon configuration.
// Unset values keep the default calibration.
func NewCarbonEngine(cfg *config.Config) (*carbon.Engine, error) {
	coeff := carbon.DefaultCoefficients()
	if cfg == nil || cfg.Carbon == nil {
		return carbon.NewEngine(coeff)
	}

	var err error
	if coeff.EmissionFactor, err = parseCoefficient("emissionFactor", cfg.Carbon.EmissionFactor, coeff.EmissionFactor); err != nil {
		return nil, err
	}
	if coeff.EcoDiscount, err = parseCoefficient("ecoDiscount", cfg.Carbon.EcoDiscount, coeff.EcoDiscount); err != nil {
		return nil, err
	}
	if coeff.PointsPerUnitReduction, err = parseCoefficient("pointsPerUnitReduction", cfg.Carbon.PointsPerUnitReduction, coeff.PointsPerUnitReduction); err != nil {
		return nil, err
	}
	if cfg.Carbon.MaxEcoPoints != 0 {
		coeff.MaxEcoPoints = cfg.Carbon.MaxEcoPoints
	}

	return carbon.NewEngine(coeff)
}

func parseCoefficient(name, raw string, fallback decimal.Decimal) (decimal.Decimal, error) {
	if raw == "" {
		return fallback, nil
	}

	value, err := decimal.NewFromString(raw)
	if err != nil {
		return decimal.Zero, errors.Wrapf(err, "invalid carbon.%s %q", name, raw)
	}

	return value, nil
}
