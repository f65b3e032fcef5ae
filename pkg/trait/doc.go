// Package trait implements layered, animatable element attributes.
//
// A [Trait] describes one attribute (width, x position, spacing) shared by a
// class of elements. Each element owns one [Context] per trait it uses. The
// context keeps four layers in priority order:
//
//	animation  - interpolated value installed by a running animation
//	element    - value assigned directly on the element
//	parent     - value cascaded from an ancestor's [Repository]
//	default    - the class default (see [Class.SetDefault])
//
// The resolved value is the first non-nil layer. Whenever it changes, the
// trait's update callbacks run in registration order, then every context that
// follows this one by reference is refreshed.
//
// Values that carry mutable internal state embed [DependencyBase]. Mutating
// such a value and calling Changed refreshes every context that resolves to
// it, directly or through an enclosing dependency, without reassigning it.
//
// Animated assignment is explicit: an [Animator] owns the scope stack, and
// assignments made inside [Animator.Animate] interpolate from the current
// value to the new one.
package trait
