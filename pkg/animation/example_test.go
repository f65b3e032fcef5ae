package animation_test

import (
	"fmt"
	"time"

	"github.com/go-drift/strata/pkg/animation"
)

// This example polls a progress the way the frame loop does.
func ExampleProgress() {
	p := animation.Smooth(200 * time.Millisecond).Start()
	for {
		v, done := p.Advance(0.05)
		fmt.Printf("%.2f\n", v)
		if done {
			break
		}
	}
	// Output:
	// 0.15
	// 0.50
	// 0.85
	// 1.00
}

// This example scopes assignments to an animation.
func ExampleStack() {
	var scopes animation.Stack
	scopes.With(animation.Linear(time.Second), func() {
		fmt.Println(scopes.Top())
	})
	fmt.Println(scopes.Top() == nil)
	// Output:
	// linear(1s)
	// true
}
