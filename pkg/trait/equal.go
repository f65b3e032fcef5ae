package trait

import "reflect"

// Equaler is implemented by values that define structural equality. Two
// values that report Equal replace each other without notifying anyone.
type Equaler interface {
	Equal(other Value) bool
}

// Equal reports whether two trait values are interchangeable.
func Equal(a, b Value) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	if e, ok := a.(Equaler); ok {
		return e.Equal(b)
	}
	return same(a, b)
}

// same reports identity for comparable values and false otherwise.
func same(a, b Value) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	ta, tb := reflect.TypeOf(a), reflect.TypeOf(b)
	if ta != tb || !ta.Comparable() {
		return false
	}
	return a == b
}
