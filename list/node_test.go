package list

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"pgregory.net/rapid"
)

func (n *node[T]) length() uint64 {
	var count = uint64(0)
	for cur := n; cur != nil; cur = cur.next {
		count++
	}
	return count
}

func (n *node[T]) nodes() []*node[T] {
	var ns []*node[T]
	for cur := n; cur != nil; cur = cur.next {
		ns = append(ns, cur)
	}
	return ns
}

func checkInvariant(t assert.TestingT, l *List[int]) {
	assert.Equal(t, l.size, l.head.length(), "size does not match reachable nodes")
	assert.Equal(t, l.head == nil, l.size == 0, "head is nil iff size is 0")
}

func TestNodeContains(t *testing.T) {
	assert := assert.New(t)

	var n *node[uint64]
	assert.False(n.contains(1))
	n = &node[uint64]{elem: 1, next: n}
	n = &node[uint64]{elem: 3, next: n}
	assert.True(n.contains(1))
	assert.True(n.contains(3))
	assert.False(n.contains(2))
}

func TestReverseReusesNodes(t *testing.T) {
	assert := assert.New(t)

	l := New[int]()
	for i := 0; i < 5; i++ {
		l.AddFront(i)
	}
	before := l.head.nodes()

	l.Reverse()
	after := l.head.nodes()
	assert.Len(after, len(before))
	for i := range before {
		assert.Same(before[i], after[len(after)-1-i])
	}
	assert.Nil(after[len(after)-1].next)

	l.ReverseRecursive()
	assert.Equal(before, l.head.nodes())
	checkInvariant(t, l)
}

func TestRemovedNodesUnlinked(t *testing.T) {
	assert := assert.New(t)

	l := New[int]()
	for i := 0; i < 4; i++ {
		l.AddFront(i)
	}
	ns := l.head.nodes()

	l.DeleteKey(2)
	assert.Nil(ns[1].next, "deleted node still points into the list")
	l.RemoveFront()
	assert.Nil(ns[0].next, "removed head still points into the list")
	checkInvariant(t, l)

	l.Clear()
	for _, n := range ns {
		assert.Nil(n.next)
	}
	checkInvariant(t, l)
}

func TestSizeInvariant(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		l := New[int]()
		t.Repeat(map[string]func(*rapid.T){
			"addFront": func(t *rapid.T) {
				l.AddFront(rapid.IntRange(0, 5).Draw(t, "x"))
			},
			"removeFront": func(t *rapid.T) {
				l.RemoveFront()
			},
			"reverse": func(t *rapid.T) {
				l.Reverse()
			},
			"reverseRecursive": func(t *rapid.T) {
				l.ReverseRecursive()
			},
			"deleteKey": func(t *rapid.T) {
				l.DeleteKey(rapid.IntRange(0, 5).Draw(t, "k"))
			},
			"clear": func(t *rapid.T) {
				l.Clear()
			},
			"": func(t *rapid.T) {
				checkInvariant(t, l)
			},
		})
	})
}
