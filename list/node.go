package list

// A node is owned by exactly one predecessor, or by the list if it is the
// head. A nil *node is the empty chain, so the helpers here accept a nil
// receiver.
type node[T comparable] struct {
	elem T
	next *node[T]
}

func (n *node[T]) contains(elem T) bool {
	var cur = n
	var found = false
	for {
		if cur == nil {
			break
		}
		if cur.elem == elem {
			found = true
			break
		}
		cur = cur.next
	}
	return found
}

// reverseRecursive reverses the chain starting at n and returns its new
// head. The former head ends up as the tail with a nil next.
func (n *node[T]) reverseRecursive() *node[T] {
	if n == nil || n.next == nil {
		return n
	}
	reversed := n.next.reverseRecursive()
	// n.next is now the tail of reversed
	n.next.next = n
	n.next = nil
	return reversed
}
