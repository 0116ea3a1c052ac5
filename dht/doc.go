// Package dht implements an in-memory overlay index for a Kademlia-style
// distributed storage system. Nodes and data are both identified by
// 64-bit keys; closeness between a data key and a node key is the
// bitwise XOR of the two.
//
// # Architecture
//
// The package answers two kinds of query over a populated overlay:
//
//   - Lookup: given a target key and a replication count k, return the
//     k node IDs closest to the target under the XOR metric.
//   - Ingest support: the overlay exposes InsertNode, Compress/Optimize,
//     and Find as the only primitives an external simulation harness
//     needs to drive placement, eviction, and rejection experiments.
//     Seeding, workload generation, and reporting are a client's
//     responsibility, not this package's.
//
// Three interchangeable leaf implementations are provided:
//
//   - BinOverlay buckets node keys by their top SubnetBits bits and
//     scans outward from the target's bucket.
//   - TrieOverlay is a binary radix trie over bits 63..0 of the key,
//     with a Compress pass that collapses unary chains into skip counts.
//   - ClassifiedOverlay partitions nodes by a per-node class in [0,63]
//     and answers queries under a masked XOR metric that tolerates
//     larger classes matching more distant targets; each class picks
//     its own sub-overlay (naive list, trie, or bin) based on
//     population once Optimize is called.
//
// Overlay unifies BinOverlay and ClassifiedOverlay behind a single
// tagged choice for callers that want to swap strategies without
// changing call sites.
//
// # Thread Safety
//
// The overlay types are single-threaded and non-shared: construction
// and Optimize/Compress mutate, Find is synchronous and read-only, and
// no internal locking is performed. A caller that wants concurrent
// lookups against one overlay from multiple goroutines must provide
// its own external synchronization; the package does not support it.
// Independent overlays built on independent goroutines are always safe,
// since nothing is shared between them.
//
// # Example
//
//	overlay := dht.NewBinOverlay()
//	overlay.InsertNode(0x0123456789ABCDEF)
//	closest := overlay.Find(0xDEADBEEFCAFEBABE, 8)
//
// # Classified overlays
//
//	classified := dht.NewClassifiedOverlay()
//	classified.InsertNode(nodeA, 0)
//	classified.InsertNode(nodeB, 40)
//	classified.Optimize()
//	closest := classified.Find(target, 8)
package dht
