package process

import (
	"fortio.org/safecast"

	"measures-generator/internal/analyze"
	"measures-generator/internal/diagnostic"
	"measures-generator/internal/quantity"
	"measures-generator/internal/source"
	"measures-generator/internal/validation"
	"measures-generator/utils"
)

// Dimension bounds of vectors and vector group members.
const (
	MinDimension = 2
	MaxDimension = 64
)

// required checks a mandatory type reference. Absence and an explicit nil
// are both fatal.
func required(ctx Context, field string, ref *analyze.TypeID, span, annotation source.Span) (analyze.TypeID, validation.Check) {
	if ref != nil {
		return *ref, validation.Pass()
	}

	if span.IsZero() {
		return analyze.TypeID{}, validation.Fail(
			ctx.errorf(diagnostic.CodeMissingField, annotation, field, "%s is required", field))
	}

	return analyze.TypeID{}, validation.Fail(
		ctx.errorf(diagnostic.CodeNullField, span, field, "%s must not be nil", field))
}

// nonNull checks an optional type reference: an explicit nil is reported.
func nonNull(ctx Context, field string, ref *analyze.TypeID, span source.Span) validation.Check {
	if ref == nil && !span.IsZero() {
		return validation.Fail(ctx.errorf(diagnostic.CodeNullField, span, field, "%s is explicitly nil", field))
	}

	return validation.Pass()
}

// notSelf rejects a type naming itself as its original.
func notSelf(ctx Context, original analyze.TypeID, span source.Span) validation.Check {
	if original == ctx.ID {
		return validation.Fail(ctx.errorf(diagnostic.CodeSelfSpecialization, span, "Original",
			"%s cannot be a specialization of itself", ctx.ID.Short()))
	}

	return validation.Pass()
}

// dimension narrows and range-checks a dimension argument.
func dimension(ctx Context, field string, value int64, span, annotation source.Span) (int, validation.Check) {
	if span.IsZero() {
		return 0, validation.Fail(ctx.errorf(diagnostic.CodeMissingField, annotation, field, "%s is required", field))
	}

	d, err := safecast.Conv[int](value)
	if err != nil || !utils.IsInRange(MinDimension, d, MaxDimension) {
		return 0, validation.Fail(ctx.errorf(diagnostic.CodeInvalidDimension, span, field,
			"%s must be between %d and %d, got %d", field, MinDimension, MaxDimension, value))
	}

	return d, validation.Pass()
}

// features validates the shared features. Every problem stays local to its
// field.
func features(ctx Context, f quantity.Features, loc quantity.FeatureLocations) (quantity.Features, validation.Check) {
	difference := validation.Sequence(
		func() validation.Check {
			return nonNull(ctx, "Difference", f.Difference, loc.Difference)
		},
		func() validation.Check {
			if f.Difference == nil || f.ImplementDifference {
				return validation.Pass()
			}

			return validation.Fail(ctx.errorf(diagnostic.CodeDifferenceDisabled, loc.Difference, "Difference",
				"Difference is set but ImplementDifference is false"))
		},
	)

	name := validation.Sequence(
		func() validation.Check {
			if !loc.DefaultUnitInstanceName.IsZero() && f.DefaultUnitInstanceName == "" {
				return validation.Fail(ctx.errorf(diagnostic.CodeEmptyName, loc.DefaultUnitInstanceName,
					"DefaultUnitInstanceName", "DefaultUnitInstanceName must not be empty"))
			}

			return validation.Pass()
		},
		func() validation.Check {
			if !loc.DefaultUnitInstanceSymbol.IsZero() && loc.DefaultUnitInstanceName.IsZero() {
				return validation.Fail(ctx.warnf(diagnostic.CodeSymbolWithoutName, loc.DefaultUnitInstanceSymbol,
					"DefaultUnitInstanceSymbol", "DefaultUnitInstanceSymbol has no effect without DefaultUnitInstanceName"))
			}

			return validation.Pass()
		},
	)

	if difference.Failed() {
		f.Difference = nil
	}

	return f, validation.All(difference.Soft(), name.Soft())
}

// powers checks the five power references independently.
func powers(ctx Context, p quantity.Powers, loc quantity.PowerLocations) validation.Check {
	return validation.All(
		nonNull(ctx, "Reciprocal", p.Reciprocal, loc.Reciprocal),
		nonNull(ctx, "Square", p.Square, loc.Square),
		nonNull(ctx, "Cube", p.Cube, loc.Cube),
		nonNull(ctx, "SquareRoot", p.SquareRoot, loc.SquareRoot),
		nonNull(ctx, "CubeRoot", p.CubeRoot, loc.CubeRoot),
	).Soft()
}
