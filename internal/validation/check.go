package validation

import "measures-generator/internal/diagnostic"

// Check is the verdict of one validation. A fatal check means the product
// cannot be built; a non-fatal one may still carry diagnostics.
type Check struct {
	Diagnostics diagnostic.Diagnostics
	Fatal       bool
}

// Pass is a successful check without diagnostics.
func Pass() Check {
	return Check{}
}

// Warn is a non-fatal check carrying diagnostics. Referential problems that
// only disable one field are reported this way.
func Warn(diags ...diagnostic.Diagnostic) Check {
	return Check{Diagnostics: diags}
}

// Fail is a fatal check.
func Fail(diags ...diagnostic.Diagnostic) Check {
	return Check{Diagnostics: diags, Fatal: true}
}

// Failed reports whether the check is fatal.
func (c Check) Failed() bool {
	return c.Fatal
}

// Soft keeps the diagnostics of c but makes it non-fatal. It confines a
// field's failure to that field so the definition can still be built.
func (c Check) Soft() Check {
	c.Fatal = false
	return c
}

// All combines independent checks. Every check has already run; the result
// carries all their diagnostics and is fatal if any of them is.
func All(checks ...Check) Check {
	var out Check

	for _, c := range checks {
		out.Diagnostics = append(out.Diagnostics, c.Diagnostics...)
		out.Fatal = out.Fatal || c.Fatal
	}

	return out
}

// Sequence runs dependent checks in order and stops after the first fatal
// one, so a check may assume everything before it passed.
func Sequence(steps ...func() Check) Check {
	var out Check

	for _, step := range steps {
		c := step()
		out.Diagnostics = append(out.Diagnostics, c.Diagnostics...)

		if c.Fatal {
			out.Fatal = true
			break
		}
	}

	return out
}

// Into turns a check into an outcome producing v when the check passed.
func Into[T any](c Check, v T) Outcome[T] {
	if c.Fatal {
		return Failure[T](c.Diagnostics...)
	}

	return Success(v, c.Diagnostics...)
}

// When runs check only if cond holds.
func When(cond bool, check func() Check) Check {
	if !cond {
		return Pass()
	}

	return check()
}
