package animation

// Stack is the scope stack consulted whenever an animatable value is
// assigned. While an animation is on top of the stack, assignments are
// animated with it; a nil entry masks outer scopes so assignments inside it
// apply immediately.
//
// A Stack belongs to one element tree and is never shared between threads.
type Stack struct {
	scopes []*Animation
}

// Push enters a scope. Pass nil to suspend animation for nested assignments.
func (s *Stack) Push(a *Animation) {
	s.scopes = append(s.scopes, a)
}

// Pop leaves the innermost scope. Popping an empty stack is a no-op.
func (s *Stack) Pop() {
	if len(s.scopes) == 0 {
		return
	}
	s.scopes[len(s.scopes)-1] = nil
	s.scopes = s.scopes[:len(s.scopes)-1]
}

// Top returns the innermost animation, or nil when assignments are immediate.
func (s *Stack) Top() *Animation {
	if len(s.scopes) == 0 {
		return nil
	}
	return s.scopes[len(s.scopes)-1]
}

// Depth returns the number of open scopes.
func (s *Stack) Depth() int {
	return len(s.scopes)
}

// With runs fn inside a scope for a, popping it even if fn panics.
func (s *Stack) With(a *Animation, fn func()) {
	s.Push(a)
	defer s.Pop()
	fn()
}
