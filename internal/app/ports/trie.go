package ports

import (
	"io"
	"t9dict/internal/app/infrastructure/keypad"
)

type KeypadTriePort interface {
	Insert(word string) error
	Search(keys string) *keypad.Node
	Lookup(digits string) ([]string, bool)
	Len() int
	Nodes() int
	Dump(w io.Writer) error
	Clear()
}

type KeypadNodePort interface {
	Child(g keypad.Group) *keypad.Node
	Word() (string, bool)
	Next() *keypad.Node
	Words() []string
}
