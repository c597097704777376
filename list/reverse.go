package list

import (
	"github.com/goose-lang/primitive"
	"github.com/goose-lang/std"
)

// Reverse reverses the list in place by relinking the existing nodes; no
// nodes are allocated. Each node's next pointer is written exactly once.
func (l *List[T]) Reverse() {
	if l.head == nil || l.head.next == nil {
		return
	}

	// the old head becomes the tail; everything after it is still to move
	var todo = l.head.next
	l.head.next = nil
	var moved = uint64(1)

	for todo != nil {
		n := todo
		todo = todo.next
		n.next = l.head
		l.head = n
		moved = std.SumAssumeNoOverflow(moved, 1)
	}
	primitive.Assert(moved == l.size)
}

// ReverseRecursive has the same result as Reverse, but reverses the tail
// recursively and then splices the old head onto the end of it.
//
// The recursion depth equals the length of the list, so it uses O(n) stack
// where Reverse uses O(1) space. Prefer Reverse for long lists.
func (l *List[T]) ReverseRecursive() {
	l.head = l.head.reverseRecursive()
}
