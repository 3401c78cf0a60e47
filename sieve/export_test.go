package sieve

// Test bridge for unexported helpers.
var (
	ExportedIsqrt        = isqrt[int]
	ExportedIsPrimeTrial = isPrimeTrial
	ExportedCapacityHint = capacityHint
)
