package dht

import "sort"

// slotKind discriminates the three class-slot representations a
// ClassifiedOverlay can promote a class to.
type slotKind uint8

const (
	slotNaive slotKind = iota
	slotTrie
	slotBin
)

// optimizeTrieThreshold and optimizeBinThreshold gate Optimize's
// per-slot promotion. They match the distilled spec's observed
// crossover points but are not a hard contract: any threshold that
// still satisfies the find contract is acceptable.
const (
	optimizeTrieThreshold = 16
	optimizeBinThreshold  = 512
)

// classSlot holds every node inserted at one class, in whichever
// representation Optimize last chose for it.
type classSlot struct {
	kind  slotKind
	class Class
	naive []NodeID
	trie  *TrieOverlay
	bin   *BinOverlay
}

func newClassSlot(class Class) *classSlot {
	return &classSlot{kind: slotNaive, class: class}
}

func (s *classSlot) insert(id NodeID) {
	switch s.kind {
	case slotNaive:
		s.naive = append(s.naive, id)
	case slotTrie:
		s.trie.InsertNode(id)
	case slotBin:
		s.bin.InsertClassifiedNode(id, s.class)
	}
}

func (s *classSlot) len() int {
	switch s.kind {
	case slotNaive:
		return len(s.naive)
	case slotTrie:
		return s.trie.Len()
	case slotBin:
		return s.bin.Len()
	default:
		return 0
	}
}

// optimize promotes a naive slot to a trie or bin representation based
// on its current population. Already-promoted slots are left alone, so
// calling Optimize twice is a no-op on a converted slot.
func (s *classSlot) optimize() {
	if s.kind != slotNaive {
		return
	}

	n := len(s.naive)
	switch {
	case n >= optimizeBinThreshold:
		b := NewBinOverlay()
		for _, id := range s.naive {
			b.InsertClassifiedNode(id, s.class)
		}
		s.bin = b
		s.kind = slotBin
		s.naive = nil
	case n >= optimizeTrieThreshold:
		// The trie routes only on the bits the class mask keeps, so it
		// cannot hold two ids that agree on all of them; such a slot
		// stays naive.
		mask := ^uint64(0) >> s.class
		seen := make(map[NodeID]bool, n)
		for _, id := range s.naive {
			if seen[id&mask] {
				return
			}
			seen[id&mask] = true
		}
		tr := newTrieAt(63 - int(s.class))
		for _, id := range s.naive {
			tr.InsertNode(id)
		}
		tr.Compress()
		s.trie = tr
		s.kind = slotTrie
		s.naive = nil
	}
}

// findClassified returns up to k ids from this slot ranked by the
// class-masked distance to target.
func (s *classSlot) findClassified(target NodeID, k int, class Class) []NodeID {
	switch s.kind {
	case slotNaive:
		scratch := make([]NodeID, len(s.naive))
		copy(scratch, s.naive)
		sort.Slice(scratch, func(i, j int) bool {
			return ClassifiedDistance(scratch[i], target, class) < ClassifiedDistance(scratch[j], target, class)
		})
		if k > len(scratch) {
			k = len(scratch)
		}
		return scratch[:k]
	case slotTrie:
		return s.trie.Find(target, k)
	case slotBin:
		return s.bin.FindClassified(target, k, class)
	default:
		return nil
	}
}

// ClassifiedOverlay holds a heterogeneous bag of nodes, each tagged
// with a class in [0,63], and answers nearest-k lookups under the
// class-masked XOR metric jointly across every populated class.
//
// A node inserted with class c is stored only in slot c and only ever
// contributes to a lookup through class c's masked metric: classes
// partition the node set, they do not share storage. Optimize converts
// each slot from a naive list into a trie or bin representation based
// on population once the overlay is built; Find works identically
// before or after Optimize, just at different speeds.
type ClassifiedOverlay struct {
	slots []*classSlot
}

// NewClassifiedOverlay returns an empty classified overlay.
func NewClassifiedOverlay() *ClassifiedOverlay {
	return &ClassifiedOverlay{}
}

// InsertNode inserts id at the given class, growing the slot vector as
// needed. It returns ErrClassOutOfRange if class > MaxClass.
func (c *ClassifiedOverlay) InsertNode(id NodeID, class Class) error {
	if class > MaxClass {
		return ErrClassOutOfRange
	}
	for len(c.slots) <= int(class) {
		c.slots = append(c.slots, newClassSlot(Class(len(c.slots))))
	}
	c.slots[class].insert(id)
	return nil
}

// Optimize walks every populated class slot and promotes it from a
// naive list to a trie (population in [16,512)) or a bin overlay
// (population >= 512), per optimizeTrieThreshold/optimizeBinThreshold.
// A slot in the trie range whose ids are not all distinct on the bits
// its class mask keeps stays a naive list. It reports a debug summary via the package logger (see logging.go).
func (c *ClassifiedOverlay) Optimize() {
	promoted := 0
	for _, slot := range c.slots {
		before := slot.kind
		slot.optimize()
		if slot.kind != before {
			promoted++
		}
	}
	logOptimizeSummary(c.slots, promoted)
}

// Find returns the k nodes closest to target across every populated
// class, using each class's own masked metric. Every class slot is
// queried for up to k local candidates; the resulting at-most
// k*(highestClass+1) candidates are then sorted jointly by their own
// class's masked distance to target, and the first k are returned. A
// class-c slot cannot reveal anything about a node in another class, so
// this final joint sort is the only place global rank across classes is
// decided.
func (c *ClassifiedOverlay) Find(target NodeID, k int) []NodeID {
	if k <= 0 {
		return nil
	}

	type candidate struct {
		id    NodeID
		class Class
	}

	var candidates []candidate
	for _, slot := range c.slots {
		if slot.len() == 0 {
			continue
		}
		for _, id := range slot.findClassified(target, k, slot.class) {
			candidates = append(candidates, candidate{id: id, class: slot.class})
		}
	}

	sort.Slice(candidates, func(i, j int) bool {
		return ClassifiedDistance(candidates[i].id, target, candidates[i].class) <
			ClassifiedDistance(candidates[j].id, target, candidates[j].class)
	})

	if k > len(candidates) {
		k = len(candidates)
	}

	result := make([]NodeID, k)
	for i := 0; i < k; i++ {
		result[i] = candidates[i].id
	}
	return result
}

// Len returns the total number of nodes stored across all classes.
func (c *ClassifiedOverlay) Len() int {
	total := 0
	for _, slot := range c.slots {
		total += slot.len()
	}
	return total
}
