package diophantine_test

import (
	"fmt"

	"github.com/agbru/diocalc/internal/diophantine"
)

// ExampleReduce demonstrates Euclidean reduction with quotient collection.
func ExampleReduce() {
	g, quotients, err := diophantine.Reduce(237, 141)
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		return
	}
	fmt.Println(g, quotients)
	// Output:
	// 3 [1 1 2 7]
}

// ExampleBezout demonstrates expressing the gcd as a linear combination.
func ExampleBezout() {
	g, a, b, err := diophantine.Bezout(237, 141)
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		return
	}
	fmt.Printf("gcd(237,141) = %d = %d*237 + %d*141\n", g, a, b)
	// Output:
	// gcd(237,141) = 3 = -22*237 + 37*141
}

// ExampleSolveBounded demonstrates enumerating the solutions of
// 23s + 31t = 4 with 0 <= s <= 99.
func ExampleSolveBounded() {
	sols, err := diophantine.SolveBounded(23, 31, 4, 0, 99, false)
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		return
	}
	for _, sol := range sols {
		fmt.Printf("(s,t)=(%d,%d)\n", sol.S, sol.T)
	}
	// Output:
	// (s,t)=(15,-11)
	// (s,t)=(46,-34)
	// (s,t)=(77,-57)
}
