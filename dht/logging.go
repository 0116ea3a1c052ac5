package dht

import "github.com/sirupsen/logrus"

// logOptimizeSummary logs how many class slots Optimize promoted, and to
// what, at debug level. The package stays silent unless the embedding
// application configures logrus, matching the rest of this codebase's
// logging style: structured fields, no error return, no behavior
// change based on whether logging is enabled.
func logOptimizeSummary(slots []*classSlot, promoted int) {
	if !logrus.IsLevelEnabled(logrus.DebugLevel) {
		return
	}

	tries, bins, naive := 0, 0, 0
	for _, slot := range slots {
		switch slot.kind {
		case slotTrie:
			tries++
		case slotBin:
			bins++
		default:
			naive++
		}
	}

	logrus.WithFields(logrus.Fields{
		"function":       "Optimize",
		"classes":        len(slots),
		"promoted_count": promoted,
		"trie_slots":     tries,
		"bin_slots":      bins,
		"naive_slots":    naive,
	}).Debug("classified overlay optimized")
}
