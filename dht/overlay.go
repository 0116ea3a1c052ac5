package dht

// overlayKind discriminates Overlay's two alternatives.
type overlayKind uint8

const (
	// OverlayVanilla backs an Overlay with a single BinOverlay over the
	// full, unclassified XOR metric.
	OverlayVanilla overlayKind = iota
	// OverlayClassified backs an Overlay with a ClassifiedOverlay.
	OverlayClassified
)

// Overlay is a tagged choice between the vanilla (bin) and classified
// strategies, letting a caller swap the underlying index without
// changing call sites. It exposes only InsertNode/Find, the common
// subset both strategies share; callers that need Compress, Optimize,
// or the classified InsertNode's class parameter should construct and
// hold the concrete BinOverlay/ClassifiedOverlay/TrieOverlay directly.
type Overlay struct {
	kind       overlayKind
	vanilla    *BinOverlay
	classified *ClassifiedOverlay
}

// NewVanillaOverlay returns an Overlay backed by a fresh BinOverlay.
func NewVanillaOverlay() *Overlay {
	return &Overlay{kind: OverlayVanilla, vanilla: NewBinOverlay()}
}

// NewClassifiedVanillaOverlay returns an Overlay backed by a fresh
// ClassifiedOverlay. Nodes inserted through this Overlay are always
// inserted at class 0; build the ClassifiedOverlay directly when
// per-node classes are needed.
func NewClassifiedVanillaOverlay() *Overlay {
	return &Overlay{kind: OverlayClassified, classified: NewClassifiedOverlay()}
}

// Kind reports which strategy backs this Overlay.
func (o *Overlay) Kind() overlayKind {
	return o.kind
}

// InsertNode inserts id using whichever strategy backs this Overlay.
func (o *Overlay) InsertNode(id NodeID) {
	switch o.kind {
	case OverlayVanilla:
		o.vanilla.InsertNode(id)
	case OverlayClassified:
		// InsertNode can only fail for class > MaxClass, which class 0
		// never triggers.
		_ = o.classified.InsertNode(id, 0)
	}
}

// Find returns the k nodes closest to target, using whichever strategy
// backs this Overlay.
func (o *Overlay) Find(target NodeID, k int) []NodeID {
	switch o.kind {
	case OverlayVanilla:
		return o.vanilla.Find(target, k)
	case OverlayClassified:
		return o.classified.Find(target, k)
	default:
		return nil
	}
}
