package trait

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/go-drift/strata/pkg/animation"
	"github.com/go-drift/strata/pkg/errors"
)

type holder struct {
	name  string
	class *Class
	anim  *Animator
}

func (h *holder) TraitClass() *Class  { return h.class }
func (h *holder) Animator() *Animator { return h.anim }
func (h *holder) String() string      { return h.name }

// box is a dependency value with one mutable field.
type box struct {
	DependencyBase
	v float64
}

func (b *box) set(v float64) {
	b.v = v
	b.Changed()
}

// pair contains two boxes.
type pair struct {
	DependencyBase
	a, b *box
}

func newHolder(name string, class *Class) *holder {
	return &holder{name: name, class: class, anim: NewAnimator()}
}

func floatTrait(name string, def float64) *Trait {
	return New(name, Options{
		Default: def,
		Load: func(v Value) (Value, error) {
			switch x := v.(type) {
			case int:
				return float64(x), nil
			case float64:
				return x, nil
			}
			return nil, &errors.ConfigurationError{Reason: "not a number"}
		},
		Lerp: func(from, to Value, t float64) Value {
			return animation.LerpFloat64(from.(float64), to.(float64), t)
		},
	})
}

func TestLayerPriority(t *testing.T) {
	tr := floatTrait("w", 1)
	h := newHolder("A", NewClass("Element", nil))
	c := NewContext(tr, h)
	assert.Equal(t, 1.0, c.Value())

	require.NoError(t, c.SetParent(2.0))
	assert.Equal(t, 2.0, c.Value())

	require.NoError(t, c.Set(3))
	assert.Equal(t, 3.0, c.Value())

	c.SetAnimation(4.0)
	assert.Equal(t, 4.0, c.Value())

	c.SetAnimation(nil)
	c.Clear()
	assert.Equal(t, 2.0, c.Value())
	require.NoError(t, c.SetParent(nil))
	assert.Equal(t, 1.0, c.Value())
}

func TestClassDefaultOverride(t *testing.T) {
	tr := floatTrait("h", 5)
	base := NewClass("Element", nil)
	button := NewClass("Button", base)
	require.NoError(t, base.SetDefault(tr, 10))

	c := NewContext(tr, newHolder("B", button))
	assert.Equal(t, 10.0, c.Value())
	assert.True(t, button.Is(base))
	assert.False(t, base.Is(button))
}

func TestLoadErrorNamesElementAndTrait(t *testing.T) {
	tr := floatTrait("spacing", 0)
	c := NewContext(tr, newHolder("Stack#7", NewClass("Stack", nil)))
	err := c.Set("wide")
	require.Error(t, err)
	var ce *errors.ConfigurationError
	require.ErrorAs(t, err, &ce)
	assert.Equal(t, "Stack#7", ce.Element)
	assert.Equal(t, "spacing", ce.Trait)
	assert.Equal(t, 0.0, c.Value())
}

func TestEqualAssignmentIsNoop(t *testing.T) {
	tr := floatTrait("x", 0)
	calls := 0
	tr.OnUpdate(func(*Context) { calls++ })
	c := NewContext(tr, newHolder("A", NewClass("Element", nil)))

	require.NoError(t, c.Set(7))
	require.NoError(t, c.Set(7))
	assert.Equal(t, 1, calls)
}

func TestCallbacksBeforeDependents(t *testing.T) {
	tr := floatTrait("y", 0)
	class := NewClass("Element", nil)
	src := NewContext(tr, newHolder("src", class))
	dst := NewContext(tr, newHolder("dst", class))

	var order []string
	tr.OnUpdate(func(c *Context) { order = append(order, "first:"+c.Holder().String()) })
	tr.OnUpdate(func(c *Context) { order = append(order, "second:"+c.Holder().String()) })

	require.NoError(t, dst.Set(src))
	order = nil
	require.NoError(t, src.Set(9))

	assert.Equal(t, 9.0, dst.Value())
	assert.Equal(t, []string{"first:src", "second:src", "first:dst", "second:dst"}, order)
}

func TestReferenceCycleRejected(t *testing.T) {
	tr := floatTrait("ref", 0)
	class := NewClass("Element", nil)
	a := NewContext(tr, newHolder("a", class))
	b := NewContext(tr, newHolder("b", class))

	require.NoError(t, a.Set(b))
	err := b.Set(a)
	require.Error(t, err)
	assert.ErrorIs(t, err, errors.ErrInternal)
	assert.Nil(t, b.ElementValue())
}

func TestDependencyChangedReachesContexts(t *testing.T) {
	tr := New("dep", Options{})
	class := NewClass("Element", nil)
	inner := &box{v: 1}
	outer := &pair{a: inner}
	require.NoError(t, Link(outer, inner))

	c := NewContext(tr, newHolder("a", class))
	fired := 0
	tr.OnUpdate(func(got *Context) {
		if got == c {
			fired++
		}
	})
	require.NoError(t, c.Set(outer))
	fired = 0

	inner.set(2)
	assert.Equal(t, 1, fired)
	assert.Same(t, outer, c.Value())
	assert.Len(t, outer.Contexts(), 1)

	c.Detach()
	inner.set(3)
	assert.Equal(t, 1, fired)
	assert.Empty(t, outer.Contexts())
}

func TestDependencyCycleRejected(t *testing.T) {
	a, b := &box{}, &box{}
	require.NoError(t, Link(a, b))
	err := Link(b, a)
	require.Error(t, err)
	assert.ErrorIs(t, err, errors.ErrInternal)
	require.Error(t, Link(a, a))

	Unlink(a, b)
	assert.NoError(t, Link(b, a))
}

func TestRelinkSwapsChild(t *testing.T) {
	p := &pair{}
	first, second := &box{}, &box{}
	require.NoError(t, Relink(p, nil, first))
	require.NoError(t, Relink(p, first, second))
	assert.Empty(t, first.Parents())
	assert.Len(t, second.Parents(), 1)

	var nilBox *box
	require.NoError(t, Relink(p, second, nilBox))
	assert.Empty(t, second.Parents())
}

func TestAnimatedAssignment(t *testing.T) {
	tr := floatTrait("aw", 0)
	h := newHolder("A", NewClass("Element", nil))
	c := NewContext(tr, h)
	require.NoError(t, c.Set(100))

	h.anim.Animate(animation.Smooth(200*time.Millisecond), func() {
		require.NoError(t, c.Set(200))
	})
	assert.True(t, c.Animating())
	assert.Equal(t, 100.0, c.Value())
	assert.Equal(t, 200.0, c.ElementValue())

	h.anim.Advance(0.1)
	assert.InDelta(t, 150, c.Value().(float64), 0.5)

	h.anim.Advance(0.1)
	assert.Equal(t, 200.0, c.Value())
	assert.Nil(t, c.AnimationValue())
	assert.False(t, c.Animating())
	assert.Zero(t, h.anim.Running())
}

func TestReassignmentCancelsAnimation(t *testing.T) {
	tr := floatTrait("ah", 0)
	h := newHolder("A", NewClass("Element", nil))
	c := NewContext(tr, h)

	h.anim.Animate(animation.Linear(time.Second), func() {
		require.NoError(t, c.Set(50))
	})
	h.anim.Advance(0.25)
	require.True(t, c.Animating())

	require.NoError(t, c.Set(80))
	assert.Nil(t, c.AnimationValue())
	assert.Equal(t, 80.0, c.Value())
	assert.Zero(t, h.anim.Running())
}

func TestNilScopeMasksAnimation(t *testing.T) {
	tr := floatTrait("am", 0)
	h := newHolder("A", NewClass("Element", nil))
	c := NewContext(tr, h)

	h.anim.Push(animation.Linear(time.Second))
	h.anim.Push(nil)
	require.NoError(t, c.Set(10))
	h.anim.Pop()
	h.anim.Pop()

	assert.False(t, c.Animating())
	assert.Equal(t, 10.0, c.Value())
}

type recordingDispatcher struct {
	keys   []Key
	depths []int
}

func (d *recordingDispatcher) DispatchCascade(key Key, depth int) {
	d.keys = append(d.keys, key)
	d.depths = append(d.depths, depth)
}

func TestRepositoryLookup(t *testing.T) {
	tr := floatTrait("cx", 0)
	base := NewClass("Element", nil)
	label := NewClass("Label", base)
	d := &recordingDispatcher{}
	repo := NewRepository(d)

	repo.Add(tr.Bind(base).MustCascade(1, DefaultDepth))
	repo.Add(tr.Bind(label).MustCascade(2, Unbounded))

	v, ok := repo.Lookup(tr, label, 5)
	require.True(t, ok)
	assert.Equal(t, 2.0, v)

	v, ok = repo.Lookup(tr, base, 1)
	require.True(t, ok)
	assert.Equal(t, 1.0, v)

	_, ok = repo.Lookup(tr, base, 2)
	assert.False(t, ok)

	assert.True(t, repo.Delete(tr.Bind(label).Key()))
	assert.False(t, repo.Delete(tr.Bind(label).Key()))
	assert.Equal(t, 1, repo.Len())
	assert.Equal(t, []int{1, Unbounded, Unbounded}, d.depths)
}

func TestRepositoryReaddKeepsWidestDepth(t *testing.T) {
	tr := floatTrait("cy", 0)
	class := NewClass("Element", nil)
	d := &recordingDispatcher{}
	repo := NewRepository(d)

	repo.Add(tr.Bind(class).MustCascade(1, 3))
	repo.Add(tr.Bind(class).MustCascade(1, 1))
	assert.Equal(t, []int{3, 3}, d.depths)
	assert.Equal(t, 1, repo.Len())
	assert.Equal(t, []*Trait{tr}, repo.Traits())
}

func TestCascadeDefaultDepth(t *testing.T) {
	tr := New("deep", Options{CascadeDepth: Unbounded})
	cv := tr.Bind(NewClass("Element", nil)).MustCascade("v", DefaultDepth)
	assert.Equal(t, Unbounded, cv.Depth)
	assert.True(t, cv.Reaches(100))
}
