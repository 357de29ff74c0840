package utils

import (
	"errors"
	"strconv"
	"strings"
)

// DoneKeyword ends the selection loop. Matched case-insensitively.
const DoneKeyword = "done"

// MaxInputLength bounds a single line of console input, newline included.
const MaxInputLength = 1024

var (
	ErrNotANumber   = errors.New("not a number")
	ErrNonPositive  = errors.New("must be a positive number")
	ErrInputTooLong = errors.New("input line too long")
)

// IsDone reports whether the input is the termination keyword.
func IsDone(input string) bool {
	return strings.EqualFold(strings.TrimSpace(input), DoneKeyword)
}

// ParseMenuNumber parses a menu selection number. Whether the number exists
// on the menu is for the caller to decide.
func ParseMenuNumber(input string) (int, error) {
	n, err := strconv.Atoi(strings.TrimSpace(input))
	if err != nil {
		return 0, ErrNotANumber
	}
	return n, nil
}

// ParseQuantity parses a strictly positive quantity.
func ParseQuantity(input string) (int, error) {
	n, err := strconv.Atoi(strings.TrimSpace(input))
	if err != nil {
		return 0, ErrNotANumber
	}
	if n <= 0 {
		return 0, ErrNonPositive
	}
	return n, nil
}
