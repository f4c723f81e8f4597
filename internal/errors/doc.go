// Package errors provides structured error handling for forge-api.
//
// It provides:
//   - Structured errors with codes, messages, and metadata
//   - Error context preservation through wrapping
//   - Validation error helpers for component configs
//   - Type-safe error checking
//
// # Basic Usage
//
// Creating errors:
//
//	err := errors.InvalidArgumentf("invalid rarity: %s", rarity)
//	err := errors.ValidationViolationf("stat %s=%d exceeds cap %d", key, v, cap)
//
// Adding metadata:
//
//	err := errors.ValidationViolation("budget outside range").
//	    WithMeta("budget", budget).
//	    WithMeta("range_lo", lo).
//	    WithMeta("range_hi", hi)
//
// Wrapping errors:
//
//	if err := repo.Get(ctx); err != nil {
//	    return errors.Wrap(err, "failed to load rules document")
//	}
//
// # Error Checking
//
//	if errors.IsValidationViolation(err) {
//	    // The generated payload broke a balance rule
//	}
//
// # Generation Error Taxonomy
//
// The generation pipeline distinguishes four failure kinds:
//   - InvalidArgument: rarity/slot/archetype outside the closed sets, or an
//     archetype conflicting with a restriction list. Detected before any
//     external call; never retried.
//   - RulesUnavailable: the standing rules document is missing when an
//     external call is about to be made. Configuration fault.
//   - ValidationViolation: a candidate payload broke a balance rule. Carries
//     the offending key, value, and allowed range in metadata.
//   - GenerationFailure: any failure on the external path (network,
//     malformed reply, or a validation violation on the parsed reply),
//     wrapping the underlying cause. Callers own retry policy.
package errors
