package domain

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

const minPlayerNameLength = 2

func NormalizePlayerName(name string) (string, error) {
	trimmed := strings.TrimSpace(name)
	if trimmed == "" {
		return "", fmt.Errorf("%w: please enter your name to continue", ErrInvalidPlayerName)
	}
	if utf8.RuneCountInString(trimmed) < minPlayerNameLength {
		return "", fmt.Errorf("%w: name must be at least %d characters", ErrInvalidPlayerName, minPlayerNameLength)
	}

	return trimmed, nil
}
