// Package confirm presents yes/no confirmations before mutating actions and
// guarantees exactly one of the confirm or cancel callbacks runs.
package confirm

import (
	"context"
	"errors"
	"fmt"
	"log"
)

var (
	// ErrPending is returned when a confirmation is requested while another
	// one is still waiting for an answer.
	ErrPending = errors.New("confirm: a confirmation is already pending")
	// ErrNothingPending is returned when resolving without a pending request.
	ErrNothingPending = errors.New("confirm: nothing to resolve")
)

// Choice is the button the user picked.
type Choice int

const (
	// Cancel dismisses the action.
	Cancel Choice = iota
	// OK accepts the action.
	OK
)

func (c Choice) String() string {
	if c == OK {
		return "OK"
	}
	return "Cancel"
}

// Outcome reports how a confirmation ended.
type Outcome int

const (
	// OutcomeCancelled means the cancel callback ran.
	OutcomeCancelled Outcome = iota
	// OutcomeConfirmed means the confirm callback ran.
	OutcomeConfirmed
	// OutcomeAlreadyDone means the user accepted but the action was already
	// in its terminal state, so nothing was mutated.
	OutcomeAlreadyDone
)

func (o Outcome) String() string {
	switch o {
	case OutcomeConfirmed:
		return "confirmed"
	case OutcomeAlreadyDone:
		return "already-done"
	default:
		return "cancelled"
	}
}

// Action describes a mutating action awaiting confirmation.
type Action struct {
	Title string
	Body  string

	// OnConfirm commits the action.
	OnConfirm func() error
	// OnCancel runs when the user backs out. Optional.
	OnCancel func()

	// Done reports whether the action has already reached its terminal
	// state. Optional.
	Done func() bool
	// DoneMessage is logged when Done short-circuits the confirmation.
	DoneMessage string
}

// Controller holds at most one pending confirmation.
type Controller struct {
	pending *Action
	logf    func(format string, args ...any)
}

// NewController returns a controller that reports through the standard logger.
func NewController() *Controller {
	return &Controller{logf: log.Printf}
}

// SetLogger overrides where short-circuit reports go.
func (c *Controller) SetLogger(logf func(format string, args ...any)) {
	if logf == nil {
		logf = func(string, ...any) {}
	}
	c.logf = logf
}

// Request makes the action pending until Resolve is called.
func (c *Controller) Request(a Action) error {
	if c.pending != nil {
		return ErrPending
	}
	c.pending = &a
	return nil
}

// Pending returns the action waiting for an answer.
func (c *Controller) Pending() (Action, bool) {
	if c.pending == nil {
		return Action{}, false
	}
	return *c.pending, true
}

// IsPending reports whether a confirmation is waiting.
func (c *Controller) IsPending() bool {
	return c.pending != nil
}

// Resolve answers the pending confirmation and runs exactly one callback.
func (c *Controller) Resolve(choice Choice) (Outcome, error) {
	if c.pending == nil {
		return OutcomeCancelled, ErrNothingPending
	}
	a := *c.pending
	c.pending = nil

	if choice != OK {
		if a.OnCancel != nil {
			a.OnCancel()
		}
		return OutcomeCancelled, nil
	}

	if a.Done != nil && a.Done() {
		msg := a.DoneMessage
		if msg == "" {
			msg = "already done"
		}
		if c.logf != nil {
			c.logf("%s", msg)
		}
		return OutcomeAlreadyDone, nil
	}
	if a.OnConfirm == nil {
		return OutcomeConfirmed, nil
	}
	if err := a.OnConfirm(); err != nil {
		return OutcomeConfirmed, err
	}
	return OutcomeConfirmed, nil
}

// Asker presents a blocking two-button question.
type Asker interface {
	Ask(ctx context.Context, title, body string) (Choice, error)
}

// AskFunc adapts a function to Asker.
type AskFunc func(ctx context.Context, title, body string) (Choice, error)

// Ask implements Asker.
func (f AskFunc) Ask(ctx context.Context, title, body string) (Choice, error) {
	return f(ctx, title, body)
}

// Confirm asks synchronously and resolves the action. A failed question is
// treated as a cancel so the cancel callback still runs.
func (c *Controller) Confirm(ctx context.Context, asker Asker, a Action) (Outcome, error) {
	if err := c.Request(a); err != nil {
		return OutcomeCancelled, err
	}
	choice, askErr := asker.Ask(ctx, a.Title, a.Body)
	if askErr != nil {
		choice = Cancel
	}
	outcome, err := c.Resolve(choice)
	if askErr != nil {
		return outcome, fmt.Errorf("confirm: ask: %w", askErr)
	}
	return outcome, err
}
