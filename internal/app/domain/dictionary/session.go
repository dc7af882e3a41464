package dictionary

import (
	"fmt"
	"t9dict/internal/app/infrastructure/keypad"
	"t9dict/internal/app/ports"
)

const (
	KeyBackspace = '*'
	KeyNext      = '0'
	KeyCommit    = keypad.Sentinel
)

type SessionState struct {
	Keys       string   `json:"keys"`
	Candidates []string `json:"candidates"`
	Selected   int      `json:"selected"`
	Committed  string   `json:"committed,omitempty"`
}

// Session replays keypad presses against a dictionary: digits extend the
// key sequence, '*' deletes the last one, '0' cycles through the collision
// chain and '#' commits the selected word.
type Session struct {
	dict  ports.DictionaryPort
	state SessionState
}

func NewSession(dict ports.DictionaryPort) *Session {
	return &Session{dict: dict, state: SessionState{Candidates: []string{}}}
}

func (s *Session) State() SessionState {
	st := s.state
	st.Candidates = append([]string{}, s.state.Candidates...)
	return st
}

func (s *Session) Press(key byte) error {
	s.state.Committed = ""

	switch {
	case key == KeyBackspace:
		if n := len(s.state.Keys); n > 0 {
			s.state.Keys = s.state.Keys[:n-1]
		}
		return s.refresh()

	case key == KeyNext:
		if n := len(s.state.Candidates); n > 0 {
			s.state.Selected = (s.state.Selected + 1) % n
		}
		return nil

	case key == KeyCommit:
		if len(s.state.Candidates) > 0 {
			s.state.Committed = s.state.Candidates[s.state.Selected]
		}
		s.state.Keys = ""
		return s.refresh()
	}

	if _, ok := keypad.DigitGroup(key); !ok {
		return fmt.Errorf("%w: key %q", keypad.ErrInvalidKeySequence, key)
	}
	s.state.Keys += string(key)
	return s.refresh()
}

func (s *Session) refresh() error {
	s.state.Selected = 0
	s.state.Candidates = []string{}
	if s.state.Keys == "" {
		return nil
	}

	words, err := s.dict.Lookup(s.state.Keys)
	if err != nil {
		return err
	}
	s.state.Candidates = words
	return nil
}
