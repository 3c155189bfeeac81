package derive

import (
	"errors"

	"github.com/rashamuf/museumhub/internal/domain/models"
)

// ErrTransitionLocked is returned when a suggestion transition is refused by
// configuration.
var ErrTransitionLocked = errors.New("suggestion is already replied")

// ErrUnknownStatus rejects status values outside the recognized set.
var ErrUnknownStatus = errors.New("unknown suggestion status")

// TransitionConfig controls the suggestion state machine.
//
// The observed behavior accepts any status overwrite, including re-replying
// to an already-replied suggestion. Whether that is intended is an open
// question, so the stricter behavior is a knob rather than a guess:
// LockReplied refuses any transition out of (or re-entry into) replied.
type TransitionConfig struct {
	LockReplied bool
}

// SuggestionTransition reports whether the client should accept overwriting
// the current status with next. A nil return accepts the write.
func SuggestionTransition(current, next string, cfg TransitionConfig) error {
	if !models.IsSuggestionStatus(next) {
		return ErrUnknownStatus
	}
	if cfg.LockReplied && current == models.SuggestionReplied {
		return ErrTransitionLocked
	}
	return nil
}
