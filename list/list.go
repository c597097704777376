// Package list implements a singly linked list whose operations work by
// rewiring node links: iterative and recursive reversal, and deletion of the
// first node matching a key.
//
// A List is not safe for concurrent use.
package list

import (
	"errors"
	"fmt"
	"iter"
	"strings"

	"github.com/goose-lang/primitive"
	"github.com/goose-lang/std"
)

// ErrEmptyCollection is returned when an operation needs at least one element.
var ErrEmptyCollection = errors.New("list: empty collection")

// List is a singly linked list. The zero value is an empty list ready to use.
type List[T comparable] struct {
	head *node[T]
	// number of nodes reachable from head
	size uint64
}

func New[T comparable]() *List[T] {
	return &List[T]{}
}

func (l *List[T]) Empty() bool {
	return l.size == 0
}

func (l *List[T]) Size() uint64 {
	return l.size
}

// Front returns the value at the head of the list, or ErrEmptyCollection if
// there is none.
func (l *List[T]) Front() (T, error) {
	if l.head == nil {
		var zero T
		return zero, ErrEmptyCollection
	}
	return l.head.elem, nil
}

func (l *List[T]) AddFront(e T) {
	l.head = &node[T]{elem: e, next: l.head}
	l.size = std.SumAssumeNoOverflow(l.size, 1)
}

// RemoveFront detaches the head node. It does nothing on an empty list.
func (l *List[T]) RemoveFront() {
	if l.head == nil {
		return
	}
	old := l.head
	l.head = old.next
	old.next = nil
	l.size--
}

// Clear removes every node, one at a time from the front.
func (l *List[T]) Clear() {
	for !l.Empty() {
		l.RemoveFront()
	}
}

func (l *List[T]) Contains(key T) bool {
	return l.head.contains(key)
}

// DeleteKey unlinks the first node whose value equals key. Later duplicates
// are left in place, and a key that is not present leaves the list unchanged.
func (l *List[T]) DeleteKey(key T) {
	var prev *node[T]
	var cur = l.head
	for cur != nil {
		if cur.elem == key {
			break
		}
		prev = cur
		cur = cur.next
	}
	if cur == nil {
		return
	}
	if prev == nil {
		primitive.Assert(cur == l.head)
		l.head = cur.next
	} else {
		prev.next = cur.next
	}
	cur.next = nil
	l.size--
}

// All iterates over the values from head to tail. The sequence can be ranged
// over more than once; mutating the list during iteration is not supported.
func (l *List[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		for n := l.head; n != nil; n = n.next {
			if !yield(n.elem) {
				return
			}
		}
	}
}

// Values returns a copy of the list's values in order.
func (l *List[T]) Values() []T {
	vals := make([]T, 0, l.size)
	for v := range l.All() {
		vals = append(vals, v)
	}
	return vals
}

// String renders the list as HEAD->a->b->NULL.
func (l *List[T]) String() string {
	var b strings.Builder
	b.WriteString("HEAD->")
	for v := range l.All() {
		fmt.Fprintf(&b, "%v->", v)
	}
	b.WriteString("NULL")
	return b.String()
}
