// Package kakuro provides constraint satisfaction infrastructure.
// This file defines the Domain type for representing the finite set of
// candidate digits a cell may take.
package kakuro

import (
	"fmt"
	"math/bits"
	"strings"
)

// MaxDigit is the largest digit a Kakuro cell may hold. Fillable cells
// always start with the full domain 1..MaxDigit.
const MaxDigit = 9

// Domain represents a finite set of candidate values for one variable.
// Values are 1-indexed integers in the range [1, n] with n <= 64, stored
// as a single bitset word: bit i represents value i+1.
//
// Domain has value semantics and all operations return new domains rather
// than modifying in place. The Store owns the current domain of each
// variable; search-phase pruning and restoration go through the Store so
// that the undo discipline is explicit.
type Domain struct {
	n    int
	bits uint64
}

// NewDomain creates a domain containing all values from 1 to n inclusive.
// n must be in [1, 64].
func NewDomain(n int) Domain {
	if n < 1 || n > 64 {
		panic(fmt.Sprintf("kakuro: domain size %d out of range [1,64]", n))
	}
	if n == 64 {
		return Domain{n: n, bits: ^uint64(0)}
	}
	return Domain{n: n, bits: (uint64(1) << uint(n)) - 1}
}

// NewDomainFromValues creates a domain over [1, n] containing only the
// given values. Values outside the range are ignored.
func NewDomainFromValues(n int, values []int) Domain {
	d := NewDomain(n)
	d.bits = 0
	for _, v := range values {
		if v >= 1 && v <= n {
			d.bits |= 1 << uint(v-1)
		}
	}
	return d
}

// Has returns true if the domain contains the value.
func (d Domain) Has(v int) bool {
	if v < 1 || v > d.n {
		return false
	}
	return (d.bits>>uint(v-1))&1 == 1
}

// Remove returns a new domain with the value removed.
// Removing a value that is not present is a no-op.
func (d Domain) Remove(v int) Domain {
	if v < 1 || v > d.n {
		return d
	}
	d.bits &^= 1 << uint(v-1)
	return d
}

// Add returns a new domain with the value present. Used to reinstate
// values pruned during search. Adding a value outside [1, n] is a no-op.
func (d Domain) Add(v int) Domain {
	if v < 1 || v > d.n {
		return d
	}
	d.bits |= 1 << uint(v-1)
	return d
}

// Count returns the number of values in the domain.
func (d Domain) Count() int {
	return bits.OnesCount64(d.bits)
}

// IsEmpty returns true if the domain contains no values.
// An empty domain represents an inconsistent state.
func (d Domain) IsEmpty() bool {
	return d.bits == 0
}

// IsSingleton returns true if the domain contains exactly one value.
func (d Domain) IsSingleton() bool {
	return d.bits != 0 && d.bits&(d.bits-1) == 0
}

// IterateValues calls f for each value in the domain in ascending order.
func (d Domain) IterateValues(f func(v int)) {
	w := d.bits
	for w != 0 {
		low := w & -w
		f(bits.TrailingZeros64(w) + 1)
		w &^= low
	}
}

// Values returns all values in the domain as an ascending slice.
func (d Domain) Values() []int {
	values := make([]int, 0, d.Count())
	d.IterateValues(func(v int) {
		values = append(values, v)
	})
	return values
}

// Equal returns true if both domains contain exactly the same values.
func (d Domain) Equal(other Domain) bool {
	return d.n == other.n && d.bits == other.bits
}

// MaxValue returns the largest value the domain can hold.
func (d Domain) MaxValue() int {
	return d.n
}

// String returns a human-readable representation, e.g. "{1,3,5}".
func (d Domain) String() string {
	var b strings.Builder
	b.WriteString("{")
	first := true
	d.IterateValues(func(v int) {
		if !first {
			b.WriteString(",")
		}
		fmt.Fprintf(&b, "%d", v)
		first = false
	})
	b.WriteString("}")
	return b.String()
}
