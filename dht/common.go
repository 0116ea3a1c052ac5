package dht

import (
	"errors"
	"sort"
)

// NodeID, DataID, and Distance share the same 64-bit representation;
// the distinct names mark intent at call sites only.
type NodeID = uint64

// DataID identifies the data key a lookup searches for.
type DataID = uint64

// Distance is an XOR (optionally masked) metric value between two keys.
type Distance = uint64

// Class attaches a masking tolerance to a node in a ClassifiedOverlay.
// Valid values are 0..63 inclusive; a higher class masks out more of
// the top bits of the XOR distance, tolerating a larger neighborhood.
type Class = uint8

// MaxClass is the highest valid Class value.
const MaxClass Class = 63

// SubnetBits is the width of the bucket partition used by BinOverlay,
// and the window width SubnetIndex extracts from a key. Changing it
// changes memory and performance only, never the find contract.
const SubnetBits = 11

// subnetCount is the number of buckets a BinOverlay allocates.
const subnetCount = 1 << SubnetBits

// ErrClassOutOfRange is returned when a caller attempts to insert a
// node at a Class greater than MaxClass.
var ErrClassOutOfRange = errors.New("dht: class out of range [0,63]")

// ErrInvariantViolation marks a build-time bug: an internal structural
// invariant the package depends on was found broken. It is never
// returned for caller-supplied bad input; those cases have their own
// sentinel errors or documented undefined behavior.
var ErrInvariantViolation = errors.New("dht: internal invariant violation")

// NodeDistance returns the XOR distance between two keys — the Kademlia
// metric used by the unclassified overlays.
func NodeDistance(a, b NodeID) Distance {
	return a ^ b
}

// ClassifiedDistance returns the XOR distance between node and target
// with the top class bits of the result masked out, so that a larger
// class tolerates a wider neighborhood of targets.
func ClassifiedDistance(node, target NodeID, class Class) Distance {
	mask := ^uint64(0) >> class
	return (node ^ target) & mask
}

// SubnetIndex maps a key to its bucket under the given class: the
// SubnetBits-wide window starting at bit (63 - class) and extending
// toward the low bits. At class 0 this is simply the top SubnetBits
// bits of id.
func SubnetIndex(id NodeID, class Class) int {
	return int((id << class) >> (64 - SubnetBits))
}

// NaiveFind is the reference oracle for nearest-k lookups: sort the
// candidate list by XOR distance to target and take the first k. It is
// O(n log n) and intended for small inputs and correctness checks
// against the faster bin/trie/classified implementations, not for
// production lookups.
func NaiveFind(ids []NodeID, target NodeID, k int) []NodeID {
	if k <= 0 || len(ids) == 0 {
		return nil
	}
	scratch := make([]NodeID, len(ids))
	copy(scratch, ids)
	sort.Slice(scratch, func(i, j int) bool {
		return NodeDistance(scratch[i], target) < NodeDistance(scratch[j], target)
	})
	if k > len(scratch) {
		k = len(scratch)
	}
	return scratch[:k]
}

// bitAt returns bit position level of id (0 = least significant bit).
func bitAt(id NodeID, level int) uint64 {
	return (id >> uint(level)) & 1
}
