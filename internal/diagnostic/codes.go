package diagnostic

// Discovery and binding.
const (
	CodeMalformedAnnotation = "malformed_annotation"
	CodeMissingArguments    = "missing_arguments"
	CodeDuplicateMarker     = "duplicate_declaration"
	CodeUnknownAnnotation   = "unknown_annotation"
)

// Field-level and cross-field processing.
const (
	CodeMissingField          = "missing_field"
	CodeNullField             = "null_field"
	CodeInvalidValue          = "invalid_value"
	CodeEmptyName             = "empty_name"
	CodeDuplicateName         = "duplicate_name"
	CodeUnknownPrefix         = "unknown_prefix"
	CodeInvalidDimension      = "invalid_dimension"
	CodeDifferenceDisabled    = "difference_disabled"
	CodeSymbolWithoutName     = "symbol_without_name"
	CodeSelfSpecialization    = "self_specialization"
	CodeEmptyList             = "empty_list"
	CodeDuplicateListEntry    = "duplicate_list_entry"
	CodeDuplicateUnitInstance = "duplicate_unit_instance"
	CodeDuplicateDerivation   = "duplicate_derivation"
	CodeDuplicateConstant     = "duplicate_constant"
)

// Resolution.
const (
	CodeCategoryConflict       = "category_conflict"
	CodeUnresolvedReference    = "unresolved_reference"
	CodeWrongCategory          = "wrong_category"
	CodeUnitLacksBias          = "unit_lacks_bias"
	CodeDifferenceMismatch     = "difference_mismatch"
	CodeUnknownUnitInstance    = "unknown_unit_instance"
	CodeUnknownDerivation      = "unknown_derivation"
	CodeSignatureMismatch      = "signature_mismatch"
	CodeSpecializationCycle    = "specialization_cycle"
	CodeOriginalUnresolved     = "original_unresolved"
	CodeContradictoryDirective = "contradictory_directive"
	CodeDuplicateMemberDim     = "duplicate_member_dimension"
	CodeConstantDimension      = "constant_dimension"
	CodeInheritedConflict      = "inherited_conflict"
	CodeDefaultUnitUnselected  = "default_unit_unselected"
)
