// Package lru provides the recency list used by the curve cache.
package lru

// Node is an element of a List. It stores its key so that the owner of the
// list can delete the matching map entry in O(1) on eviction.
type Node[K comparable] struct {
	key  K
	prev *Node[K]
	next *Node[K]
}

// Key returns the key stored in the node.
func (n *Node[K]) Key() K { return n.key }

// List is a doubly linked list ordered from most to least recently used.
// It is not safe for concurrent use; callers must synchronize.
type List[K comparable] struct {
	head *Node[K]
	tail *Node[K]
	len  int
}

// New creates an empty list.
func New[K comparable]() *List[K] {
	return &List[K]{}
}

// Len returns the number of nodes in the list.
func (l *List[K]) Len() int {
	return l.len
}

// PushFront inserts key as the most recently used node and returns it.
func (l *List[K]) PushFront(key K) *Node[K] {
	node := &Node[K]{key: key}
	l.linkFront(node)
	return node
}

// MoveToFront marks an existing node as most recently used.
func (l *List[K]) MoveToFront(node *Node[K]) {
	if node == nil || node == l.head {
		return
	}
	l.unlink(node)
	l.linkFront(node)
}

// Remove deletes a node from the list.
func (l *List[K]) Remove(node *Node[K]) {
	if node == nil {
		return
	}
	l.unlink(node)
}

// RemoveOldest removes the least recently used node and returns its key.
// Returns the zero key and false if the list is empty.
func (l *List[K]) RemoveOldest() (K, bool) {
	if l.tail == nil {
		var zero K
		return zero, false
	}
	node := l.tail
	l.unlink(node)
	return node.key, true
}

// Clear removes all nodes.
func (l *List[K]) Clear() {
	l.head = nil
	l.tail = nil
	l.len = 0
}

func (l *List[K]) linkFront(node *Node[K]) {
	node.prev = nil
	node.next = l.head
	if l.head != nil {
		l.head.prev = node
	}
	l.head = node
	if l.tail == nil {
		l.tail = node
	}
	l.len++
}

func (l *List[K]) unlink(node *Node[K]) {
	if node.prev != nil {
		node.prev.next = node.next
	} else {
		l.head = node.next
	}
	if node.next != nil {
		node.next.prev = node.prev
	} else {
		l.tail = node.prev
	}
	node.prev = nil
	node.next = nil
	l.len--
}
