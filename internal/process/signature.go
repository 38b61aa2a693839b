package process

import (
	"measures-generator/internal/analyze"
	"measures-generator/internal/diagnostic"
	"measures-generator/internal/source"
	"measures-generator/internal/validation"
)

// signatureOf checks a list of type references: it must not be empty and
// must not contain nil.
func signatureOf(ctx Context, refs []*analyze.TypeID, loc source.ArraySpan, ann source.Span) ([]analyze.TypeID, validation.Check) {
	if len(refs) == 0 {
		return nil, validation.Fail(ctx.errorf(diagnostic.CodeEmptyList, at(loc.Span, ann), "Signature",
			"signature must list at least one type"))
	}

	out := make([]analyze.TypeID, 0, len(refs))

	var checks []validation.Check
	for i, ref := range refs {
		if ref == nil {
			checks = append(checks, validation.Fail(ctx.errorf(diagnostic.CodeNullField,
				elementSpan(loc, i, ann), "Signature", "signature entry %d is nil", i)))

			continue
		}

		out = append(out, *ref)
	}

	return out, validation.All(checks...)
}
