package keypad

import (
	"errors"
	"fmt"
)

var (
	ErrEmptyWord            = errors.New("keypad: empty word")
	ErrInvalidWordCharacter = errors.New("keypad: word character outside a-z")
	ErrWordTooLong          = errors.New("keypad: word exceeds maximum length")
	ErrUnreadableSource     = errors.New("keypad: word source unreadable")
	ErrInvalidKeySequence   = errors.New("keypad: invalid key sequence")
)

func invalidWordChar(word string, pos int) error {
	return fmt.Errorf("%w: %q at position %d in %q", ErrInvalidWordCharacter, word[pos], pos, word)
}
