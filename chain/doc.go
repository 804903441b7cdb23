// SPDX-License-Identifier: EPL-2.0

// Package chain plans and assembles sample chains for slice-grid samplers.
//
// BuildPlan decides the slice length policy (uniform with padding and
// truncation, or variable-length) and lays prepared clips out into a Plan:
// an ordered list of contiguous slices with millisecond start offsets. The
// Plan is consumed by two writers: Assemble renders the chain audio from
// it and the otfile package serializes its boundaries into slice metadata.
// Both reading the same layout keeps the two outputs in agreement.
//
// Non-fatal findings are returned as a []Diagnostic rather than printed,
// so the planning core stays silent and testable.
package chain
