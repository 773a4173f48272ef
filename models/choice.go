// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package models

import (
	"errors"
	"fmt"
)

// ErrInvalidChoice is returned for any choice outside the fixed poll options,
// including an empty or missing one.
var ErrInvalidChoice = errors.New("invalid choice")

// InvalidChoiceMessage is the error text clients see for ErrInvalidChoice
const InvalidChoiceMessage = "Invalid choice"

// Choice is one of the fixed poll options
type Choice int

const (
	Python Choice = iota
	JavaScript

	numChoices
)

var choiceNames = [numChoices]string{
	Python:     "python",
	JavaScript: "javascript",
}

// Choices lists every poll option in display order
func Choices() []Choice {
	out := make([]Choice, numChoices)
	for i := range out {
		out[i] = Choice(i)
	}
	return out
}

// ParseChoice maps a wire name like "python" to its Choice.
// Matching is exact; "Python" is not a valid choice.
func ParseChoice(s string) (Choice, error) {
	for i, name := range choiceNames {
		if name == s {
			return Choice(i), nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrInvalidChoice, s)
}

func (c Choice) Valid() bool {
	return c >= 0 && c < numChoices
}

func (c Choice) String() string {
	if !c.Valid() {
		return fmt.Sprintf("Choice(%d)", int(c))
	}
	return choiceNames[c]
}
