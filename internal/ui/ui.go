// Package ui defines the user interaction boundary. The core services never
// branch on a concrete implementation, which keeps the door open for other
// front ends than the console.
package ui

// UserInterface is the capability set a front end must provide.
type UserInterface interface {
	// Input shows the prompt and returns one trimmed line of input.
	Input(prompt string) string
	// Message shows an informational message.
	Message(message string)
	// Error shows an error message.
	Error(message string)
	// Confirm asks the user to confirm an action.
	Confirm(prompt string) bool
	// MaskSecret renders a secret for display without revealing it.
	MaskSecret(secret string) string
}
