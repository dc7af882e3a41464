package keypad

// Sentinel ends a key sequence early when it appears before the last byte.
const Sentinel = '#'

// Trie maps keypad key sequences to the dictionary words that produce them.
// It is built once and is safe for concurrent readers after that; Insert and
// Clear must not run alongside any other call.
type Trie struct {
	root  *Node
	words int
	nodes int
}

func New() *Trie {
	return &Trie{root: newNode(), nodes: 1}
}

func (t *Trie) Root() *Node {
	if t == nil {
		return nil
	}
	return t.root
}

// Len returns the number of stored words, duplicates included.
func (t *Trie) Len() int {
	if t == nil {
		return 0
	}
	return t.words
}

// Nodes returns the number of allocated nodes, root and chain nodes included.
func (t *Trie) Nodes() int {
	if t == nil {
		return 0
	}
	return t.nodes
}

// Insert adds word under its key sequence, reusing any existing prefix path.
// Words with characters outside a-z are rejected before the tree is touched.
func (t *Trie) Insert(word string) error {
	if word == "" {
		return ErrEmptyWord
	}

	path := make([]Group, len(word))
	for i := 0; i < len(word); i++ {
		g, ok := LetterGroup(word[i])
		if !ok {
			return invalidWordChar(word, i)
		}
		path[i] = g
	}

	if t.root == nil {
		t.root = newNode()
		t.nodes = 1
	}

	cur := t.root
	for _, g := range path {
		child := cur.children[g]
		if child == nil {
			child = newNode()
			cur.children[g] = child
			t.nodes++
		}
		cur = child
	}

	if cur.appendWord(word) {
		t.nodes++
	}
	t.words++
	return nil
}

// Search walks keys from the root and returns the node reached, or nil if
// the path cannot be followed. The last byte of keys is never examined: it
// is the terminator slot. A '#' before it ends the walk early. Any other
// byte must be a digit '2'..'9'.
func (t *Trie) Search(keys string) *Node {
	if t == nil || t.root == nil {
		return nil
	}

	cur := t.root
	for i := 0; i < len(keys)-1 && cur != nil; i++ {
		if keys[i] == Sentinel {
			break
		}
		g, ok := DigitGroup(keys[i])
		if !ok {
			return nil
		}
		cur = cur.children[g]
	}
	return cur
}

// Lookup returns the words stored under a bare digit sequence (no
// terminator) in insertion order.
func (t *Trie) Lookup(digits string) ([]string, bool) {
	words := t.Search(digits + string(Sentinel)).Words()
	return words, len(words) > 0
}

// Clear releases every node post-order. It is a no-op on a nil or already
// cleared trie.
func (t *Trie) Clear() {
	if t == nil || t.root == nil {
		return
	}

	t.root.release()
	t.root = nil
	t.words = 0
	t.nodes = 0
}
