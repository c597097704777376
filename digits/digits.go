// Package digits represents a non-negative integer as a linked list of its
// decimal digits, most-significant digit first.
package digits

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/goose-lang/primitive"
	"github.com/goose-lang/std"

	"linked_list_code/list"
)

// ErrInvalidArgument is returned when constructing an Int from a negative
// number.
var ErrInvalidArgument = errors.New("digits: invalid argument")

// Int stores one decimal digit per list node.
type Int struct {
	num *list.List[int]
}

// New builds the digit chain for n. Negative numbers are not supported.
func New(n int) (*Int, error) {
	i := &Int{num: list.New[int]()}
	if err := i.set(n); err != nil {
		return nil, err
	}
	return i, nil
}

func (i *Int) set(n int) error {
	if n < 0 {
		return fmt.Errorf("%w: no support for negative number %d", ErrInvalidArgument, n)
	}
	i.num.Clear()
	// least-significant digit first, so the last digit added (the most
	// significant) ends up at the head
	for {
		i.num.AddFront(n % 10)
		n = n / 10
		if n == 0 {
			break
		}
	}
	return nil
}

// Assign replaces i's digits with those of src. The chain is rebuilt from
// src's value rather than copied node by node.
func (i *Int) Assign(src *Int) error {
	return i.set(src.Value())
}

// Value reconstructs the integer from the digit chain.
func (i *Int) Value() int {
	var n = uint64(0)
	for d := range i.num.All() {
		primitive.Assert(0 <= d && d < 10)
		n = std.SumAssumeNoOverflow(n*10, uint64(d))
	}
	return int(n)
}

// Digits returns the decimal digits, most significant first.
func (i *Int) Digits() []int {
	return i.num.Values()
}

// Chain renders the underlying list, e.g. HEAD->9->0->5->NULL.
func (i *Int) Chain() string {
	return i.num.String()
}

func (i *Int) String() string {
	return strconv.Itoa(i.Value())
}
