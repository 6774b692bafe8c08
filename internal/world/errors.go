package world

import "errors"

var (
	ErrInvalidConfig     = errors.New("invalid config")
	ErrInvalidEnemy      = errors.New("invalid enemy")
	ErrNoChoicePending   = errors.New("no upgrade choice pending")
	ErrChoiceOutOfRange  = errors.New("upgrade choice out of range")
	ErrIllegalTransition = errors.New("illegal phase transition")
)
