// Package clipboard copies generated passwords to the system clipboard,
// degrading gracefully on headless machines.
package clipboard

import (
	"errors"
	"fmt"

	atotto "github.com/atotto/clipboard"
)

var ErrUnavailable = errors.New("clipboard unavailable")

// Copy places text on the system clipboard. On platforms or sessions
// without one (SSH, containers, missing xclip) it returns ErrUnavailable
// and the caller decides whether that matters.
func Copy(text string) error {
	if atotto.Unsupported {
		return ErrUnavailable
	}
	if err := atotto.WriteAll(text); err != nil {
		return fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	return nil
}
