package ui

import "strings"

// Scripted is a UserInterface double fed with canned answers. Handler tests
// assert on the messages and errors it captured.
type Scripted struct {
	Inputs   []string
	Confirms []bool

	Messages []string
	Errors   []string

	inputIdx   int
	confirmIdx int
}

// Input pops the next canned answer, or "" when the script ran out.
func (s *Scripted) Input(string) string {
	if s.inputIdx >= len(s.Inputs) {
		return ""
	}
	answer := s.Inputs[s.inputIdx]
	s.inputIdx++
	return answer
}

// Message records the message.
func (s *Scripted) Message(message string) {
	s.Messages = append(s.Messages, message)
}

// Error records the error message.
func (s *Scripted) Error(message string) {
	s.Errors = append(s.Errors, message)
}

// Confirm pops the next canned confirmation, defaulting to false.
func (s *Scripted) Confirm(string) bool {
	if s.confirmIdx >= len(s.Confirms) {
		return false
	}
	answer := s.Confirms[s.confirmIdx]
	s.confirmIdx++
	return answer
}

// MaskSecret mirrors the console behavior.
func (s *Scripted) MaskSecret(secret string) string {
	return strings.Repeat("*", len(secret))
}

// Saw reports whether any recorded message or error contains substr.
func (s *Scripted) Saw(substr string) bool {
	for _, m := range append(append([]string{}, s.Messages...), s.Errors...) {
		if strings.Contains(m, substr) {
			return true
		}
	}
	return false
}
