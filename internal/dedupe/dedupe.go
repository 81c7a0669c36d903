// Package dedupe filters newly parsed transactions against a snapshot of
// previously recorded ones.
package dedupe

import (
	"stmt-engine/internal/models"
)

// FilterNew returns the candidates whose identity triple (date,
// description, amount) does not appear in existing. The filter is stable:
// surviving candidates keep their input order. Candidates are never
// mutated.
//
// The snapshot is indexed by composite key, so the pass is linear in
// len(candidates)+len(existing). Amounts are keyed through StringFixed(2),
// which sidesteps the equality flakiness of comparing parsed floats.
func FilterNew(candidates []models.Transaction, existing []models.ExistingRecord) []models.Transaction {
	if len(candidates) == 0 {
		return nil
	}

	seen := make(map[string]struct{}, len(existing))
	for _, record := range existing {
		seen[record.IdentityKey()] = struct{}{}
	}

	fresh := make([]models.Transaction, 0, len(candidates))
	for _, candidate := range candidates {
		if _, dup := seen[candidate.IdentityKey()]; dup {
			continue
		}
		fresh = append(fresh, candidate)
	}
	return fresh
}
