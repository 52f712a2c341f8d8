package list

import "go.uber.org/multierr"

// A node links one value of a chain to the rest of the chain. A nil *node is
// the end of the chain. Nodes refer to values by arena slot and own nothing.
type node struct {
	slot int
	next *node
}

// prepend returns a new node for slot in front of n.
func (n *node) prepend(slot int) *node {
	return &node{slot: slot, next: n}
}

// append adds a node for slot at the end of the chain starting at n and
// returns the head of the chain.
func (n *node) append(slot int) *node {
	if n == nil {
		return &node{slot: slot}
	}
	n.next = n.next.append(slot)
	return n
}

// index returns the node k positions after n, or nil once the chain ends.
func (n *node) index(k int) *node {
	if n == nil || k == 0 {
		return n
	}
	return n.next.index(k - 1)
}

// len returns the number of nodes in the chain starting at n.
func (n *node) len() int {
	if n == nil {
		return 0
	}
	return 1 + n.next.len()
}

// release frees the value of n, then the rest of the chain.
func (n *node) release(a *arena) error {
	if n == nil {
		return nil
	}
	err := a.free(n.slot)
	return multierr.Append(err, n.next.release(a))
}
