package keypad

// Node is one position in the trie. A node that holds a word may also head
// a chain of single-word nodes for other words with the same key sequence.
type Node struct {
	children [NumGroups]*Node
	word     string
	next     *Node
}

func newNode() *Node {
	return &Node{}
}

func (n *Node) Child(g Group) *Node {
	if n == nil || int(g) >= NumGroups {
		return nil
	}
	return n.children[g]
}

func (n *Node) Word() (string, bool) {
	if n == nil || n.word == "" {
		return "", false
	}
	return n.word, true
}

func (n *Node) Next() *Node {
	if n == nil {
		return nil
	}
	return n.next
}

// Words returns the collision chain starting at n in insertion order.
func (n *Node) Words() []string {
	if n == nil || n.word == "" {
		return nil
	}

	var words []string
	for cur := n; cur != nil; cur = cur.next {
		words = append(words, cur.word)
	}
	return words
}

// appendWord stores word at n, or at a new node linked to the tail of the
// chain if n already holds one. It reports whether a node was allocated.
func (n *Node) appendWord(word string) bool {
	if n.word == "" {
		n.word = word
		return false
	}

	tail := n
	for tail.next != nil {
		tail = tail.next
	}
	tail.next = newNode()
	tail.next.word = word
	return true
}

// release unlinks the subtree below n, children first, then the chain,
// then n itself.
func (n *Node) release() {
	if n == nil {
		return
	}

	for i := range n.children {
		n.children[i].release()
		n.children[i] = nil
	}

	for cur := n.next; cur != nil; {
		next := cur.next
		cur.next = nil
		cur.word = ""
		cur = next
	}
	n.next = nil
	n.word = ""
}
