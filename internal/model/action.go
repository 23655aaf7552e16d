package model

import "fmt"

// Action classifies a month-end judgment. It is the only closed enum in the
// model; the row Status label is derived from it for display.
type Action string

const (
	ActionStatusQuo Action = "status-quo"
	ActionChallenge Action = "challenge"
	ActionBigWin    Action = "big-win"
)

// Label returns the display name written to the Status column.
func (a Action) Label() string {
	switch a {
	case ActionStatusQuo:
		return "Status Quo"
	case ActionChallenge:
		return "Challenge"
	case ActionBigWin:
		return "Big Win"
	}
	return string(a)
}

// ParseAction accepts the CLI spelling or the display label.
func ParseAction(s string) (Action, error) {
	switch s {
	case string(ActionStatusQuo), "Status Quo":
		return ActionStatusQuo, nil
	case string(ActionChallenge), "Challenge":
		return ActionChallenge, nil
	case string(ActionBigWin), "Big Win":
		return ActionBigWin, nil
	}
	return "", fmt.Errorf("unknown action %q (want status-quo, challenge, or big-win)", s)
}
