package core

import "unicode"

// Action represents a semantic game intent, abstracted from physical key
// presses and mouse clicks.
type Action int

const (
	ActionNone   Action = iota
	ActionLetter        // a-z - append a letter to the active row
	ActionDelete        // Backspace, Delete, DEL key - remove the last letter
	ActionSubmit        // Enter, ENTER key - submit the active row
	ActionQuit          // Ctrl+C, Esc - leave the game
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionLetter:
		return "Letter"
	case ActionDelete:
		return "Delete"
	case ActionSubmit:
		return "Submit"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// Intent is one input event translated into an action.
// Letter is only meaningful for ActionLetter.
type Intent struct {
	Action Action
	Letter rune
}

// LetterIntent builds an ActionLetter intent for r, lowercased.
// Returns an ActionNone intent if r is not a letter a-z.
func LetterIntent(r rune) Intent {
	r = unicode.ToLower(r)
	if r < 'a' || r > 'z' {
		return Intent{}
	}
	return Intent{Action: ActionLetter, Letter: r}
}

// DeleteIntent builds an ActionDelete intent.
func DeleteIntent() Intent {
	return Intent{Action: ActionDelete}
}

// SubmitIntent builds an ActionSubmit intent.
func SubmitIntent() Intent {
	return Intent{Action: ActionSubmit}
}
