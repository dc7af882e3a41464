// Package keypad stores dictionary words under reduced keypad key sequences.
package keypad

import "strings"

// Group is one key of the reduced keypad. Digit labels start at 2.
type Group uint8

const (
	GroupABCDEF Group = iota
	GroupGHIJKL
	GroupMNOPQRS
	GroupTUVWXYZ
	Group6
	Group7
	Group8
	Group9

	NumGroups = 8
)

const firstDigit = '2'

// letterGroups splits a-z into contiguous blocks of 6, 6, 7 and 7 letters.
// Group6 to Group9 exist as child slots but no letter maps to them.
var letterGroups = [26]Group{
	GroupABCDEF, GroupABCDEF, GroupABCDEF, GroupABCDEF, GroupABCDEF, GroupABCDEF,
	GroupGHIJKL, GroupGHIJKL, GroupGHIJKL, GroupGHIJKL, GroupGHIJKL, GroupGHIJKL,
	GroupMNOPQRS, GroupMNOPQRS, GroupMNOPQRS, GroupMNOPQRS, GroupMNOPQRS, GroupMNOPQRS, GroupMNOPQRS,
	GroupTUVWXYZ, GroupTUVWXYZ, GroupTUVWXYZ, GroupTUVWXYZ, GroupTUVWXYZ, GroupTUVWXYZ, GroupTUVWXYZ,
}

// LetterGroup returns the keypad group for a lowercase ASCII letter.
func LetterGroup(letter byte) (Group, bool) {
	if letter < 'a' || letter > 'z' {
		return 0, false
	}
	return letterGroups[letter-'a'], true
}

// DigitGroup converts a keypad digit ('2'..'9') into its group.
func DigitGroup(digit byte) (Group, bool) {
	if digit < firstDigit || digit > '9' {
		return 0, false
	}
	return Group(digit - firstDigit), true
}

// Digit is the keypad key labelling g, '2' for GroupABCDEF through '9'.
func (g Group) Digit() byte {
	return firstDigit + byte(g)
}

// Index is the child slot of g in a node, 0 through NumGroups-1.
func (g Group) Index() int {
	return int(g)
}

// Letters lists the letters routed to g, in alphabetical order.
func (g Group) Letters() string {
	var sb strings.Builder
	for i, lg := range letterGroups {
		if lg == g {
			sb.WriteByte(byte('a' + i))
		}
	}
	return sb.String()
}

// Encode returns the key sequence for word without a terminator.
func Encode(word string) (string, error) {
	if word == "" {
		return "", ErrEmptyWord
	}

	keys := make([]byte, len(word))
	for i := 0; i < len(word); i++ {
		g, ok := LetterGroup(word[i])
		if !ok {
			return "", invalidWordChar(word, i)
		}
		keys[i] = g.Digit()
	}
	return string(keys), nil
}
