package model

import "errors"

var (
	// ErrUnitRho indicates Rho == 1, the pole of the CRRA transform Q^(1-Rho)/(1-Rho).
	ErrUnitRho = errors.New("model: Rho must differ from 1")
	// ErrBadElasticity indicates a non-positive labor disutility elasticity Epsilon.
	ErrBadElasticity = errors.New("model: Epsilon must be positive")
	// ErrBadSigma indicates a negative home-production substitution elasticity.
	ErrBadSigma = errors.New("model: Sigma must be non-negative")
	// ErrBadOmega indicates a consumption weight outside the open interval (0,1).
	ErrBadOmega = errors.New("model: Omega must lie strictly between 0 and 1")
	// ErrBadScale indicates a negative disutility scale (Nu, or Eta under SeparateDisutility).
	ErrBadScale = errors.New("model: disutility scales must be non-negative")
	// ErrBadWage indicates a non-positive wage.
	ErrBadWage = errors.New("model: wages must be positive")
	// ErrBadWageGrid indicates an empty, non-positive or non-ascending WFGrid.
	ErrBadWageGrid = errors.New("model: WFGrid must be non-empty, positive and strictly ascending")
	// ErrBadVariant indicates a Variant value outside the declared enum.
	ErrBadVariant = errors.New("model: unknown Variant")
	// ErrDimensionMismatch indicates batch slices of unequal length.
	ErrDimensionMismatch = errors.New("model: batch slices must share one length")
)
