package element

// Leaf is an element without children whose content minimum is a fixed
// intrinsic extent. Widgets with measured content implement Measurer
// instead.
type Leaf struct {
	Base
	intrinsic [2]float64
}

// NewLeaf returns a leaf with intrinsic extent w by h.
func NewLeaf(tree *Tree, w, h float64) *Leaf {
	l := &Leaf{intrinsic: [2]float64{w, h}}
	l.Init(l, tree, LeafClass)
	return l
}

// Measure returns the intrinsic extent.
func (l *Leaf) Measure() (w, h float64) { return l.intrinsic[0], l.intrinsic[1] }

// SetIntrinsic changes the intrinsic extent.
func (l *Leaf) SetIntrinsic(w, h float64) {
	if l.intrinsic == [2]float64{w, h} {
		return
	}
	l.intrinsic = [2]float64{w, h}
	l.Invalidate()
}
