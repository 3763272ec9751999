// Package errors provides custom error types for the clause builder.
//
// Each error type includes a constructor, Error() method, and a type-checking
// helper using errors.As for proper error unwrapping.
//
// # Error Types Overview
//
//	┌──────────────────────────┬────────┬─────────────────────────────────────┐
//	│ Error Type               │ HTTP   │ Description                         │
//	├──────────────────────────┼────────┼─────────────────────────────────────┤
//	│ ParseError               │ 400    │ Input has no non-empty lines        │
//	│ NoTableLoadedError       │ 400    │ Clause requested without a table    │
//	│ NoColumnSelectedError    │ 400    │ Column missing or not in header     │
//	│ EmptyColumnValuesError   │ 400    │ Column has no usable values         │
//	│ UnsupportedOperatorError │ 400    │ Operator outside IN/NOT IN/LIKE/... │
//	│ UnsupportedFormatError   │ 400    │ Upload is not CSV or Excel          │
//	│ ResourceNotFoundError    │ 404    │ Workspace doesn't exist             │
//	│ WarehouseError           │ 502    │ Source query failed                 │
//	└──────────────────────────┴────────┴─────────────────────────────────────┘
//
// None of these errors is fatal: they are reported to the caller and the
// service keeps running with its previous state untouched.
//
// # User errors
//
// IsUserError groups every error caused by request content. Handlers use it
// to answer 400 without logging:
//
//	if errors.IsUserError(err) {
//	    c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
//	    return
//	}
//
// # Type Checking Pattern
//
// All error types provide Is* helper functions that use errors.As
// for proper error chain unwrapping:
//
//	wrapped := fmt.Errorf("load failed: %w", errors.NewEmptyInputError())
//	errors.IsParseError(wrapped) // returns true
package errors
