// internal/engine/merge.go
package engine

import "edilia-assistant/internal/models"

// MergeTurnSlots combines data carried over from previous turns, the current
// turn's extraction and the re-extraction over the whole history text.
// Overlays skip zero values, so a field can only ever be filled or
// overwritten with a concrete value, never blanked.
//
// The history overlay is applied last and wins conflicts even against the
// fresher current-turn extraction. That ordering is deliberate, it keeps the
// merged state identical to what a single extraction over the full
// conversation would produce.
func MergeTurnSlots(carried, current, history models.SlotMap) models.SlotMap {
	merged := carried.Clone()
	merged.Overlay(current)
	merged.Overlay(history)
	return merged
}
