package dht

import "sort"

// BinOverlay buckets node keys by their top SubnetBits bits and finds
// the k nodes closest to a target by scanning outward from the
// target's own bucket in order of increasing prefix-XOR distance.
//
// A BinOverlay constructed with NewBinOverlay operates at class 0 (the
// full, unclassified XOR metric). The classified entry points
// (InsertClassifiedNode/FindClassified) let the same implementation
// serve as a per-class slot inside a ClassifiedOverlay: Find is exactly
// FindClassified at class 0, since both the distance metric and the
// subnet index degenerate to the unclassified case there.
type BinOverlay struct {
	buckets [subnetCount][]NodeID
	count   int
}

// NewBinOverlay returns an overlay with 2^SubnetBits empty buckets.
func NewBinOverlay() *BinOverlay {
	return &BinOverlay{}
}

// InsertNode appends id to its class-0 bucket.
func (b *BinOverlay) InsertNode(id NodeID) {
	b.InsertClassifiedNode(id, 0)
}

// InsertClassifiedNode appends id to the bucket selected by
// SubnetIndex(id, class). Used directly when a BinOverlay backs one
// class slot of a ClassifiedOverlay.
func (b *BinOverlay) InsertClassifiedNode(id NodeID, class Class) {
	idx := SubnetIndex(id, class)
	b.buckets[idx] = append(b.buckets[idx], id)
	b.count++
}

// Len returns the number of nodes stored.
func (b *BinOverlay) Len() int {
	return b.count
}

// Find returns the k nodes closest to target under the full XOR metric.
func (b *BinOverlay) Find(target NodeID, k int) []NodeID {
	return b.FindClassified(target, k, 0)
}

// FindClassified returns the k nodes closest to target under the class
// masked metric, searching buckets in order of increasing prefix-XOR
// distance from SubnetIndex(target, class).
//
// diff enumerates buckets S^diff for increasing diff, where S is
// target's own bucket: for every node in bucket S^diff, the subnet
// window of its XOR with target equals diff, so this visits buckets
// in nondecreasing top-bits distance order. Only the last bucket
// visited can mix candidates that must be kept with ones that must be
// dropped, so only it needs a full sort by exact distance.
func (b *BinOverlay) FindClassified(target NodeID, k int, class Class) []NodeID {
	if k <= 0 {
		return nil
	}

	self := SubnetIndex(target, class)
	result := make([]NodeID, 0, k)

	for diff := 0; diff < subnetCount && len(result) < k; diff++ {
		bucket := b.buckets[self^diff]
		if len(bucket) == 0 {
			continue
		}

		remaining := k - len(result)
		if len(bucket) <= remaining {
			result = append(result, bucket...)
			continue
		}

		scratch := make([]NodeID, len(bucket))
		copy(scratch, bucket)
		sort.Slice(scratch, func(i, j int) bool {
			return ClassifiedDistance(scratch[i], target, class) < ClassifiedDistance(scratch[j], target, class)
		})
		result = append(result, scratch[:remaining]...)
	}

	return result
}
