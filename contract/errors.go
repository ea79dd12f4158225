package contract

import (
	"github.com/pkg/errors"
)

var (
	ErrMissingCard       = errors.New("trick is missing a card")
	ErrDuplicateCard     = errors.New("card has already been played")
	ErrInvalidCard       = errors.New("card is not part of the deck")
	ErrSlotFilled        = errors.New("side has already played to this trick")
	ErrWrongTurn         = errors.New("side is not due to play")
	ErrExhaustedSuit     = errors.New("side is known to be void in this suit")
	ErrNothingToUndo     = errors.New("no card to undo")
	ErrContractCompleted = errors.New("all tricks have been played")
)
