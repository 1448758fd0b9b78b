// Package matrix provides the dense, row-major float64 matrix used to hold
// square cost matrices for linear assignment.
//
// The surface is intentionally small:
//
//   - Dense with safe At/Set accessors that return sentinel errors.
//   - Row views (RowView) and a flat buffer (RawData) for solver hot loops.
//   - Fill and Clone helpers.
//
// Numeric policy: Set rejects NaN and ±Inf. Callers that need "forbidden"
// cells store a large finite sentinel instead of +Inf.
package matrix
