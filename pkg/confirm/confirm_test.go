package confirm

import (
	"context"
	"errors"
	"strings"
	"testing"
)

type counter struct {
	confirmed int
	cancelled int
}

func (c *counter) action(done bool) Action {
	return Action{
		Title:       "Add to Favorites?",
		Body:        "Are you sure?",
		OnConfirm:   func() error { c.confirmed++; return nil },
		OnCancel:    func() { c.cancelled++ },
		Done:        func() bool { return done },
		DoneMessage: "Already favorite",
	}
}

func TestResolveRunsExactlyOneCallback(t *testing.T) {
	tests := []struct {
		name          string
		choice        Choice
		done          bool
		want          Outcome
		wantConfirmed int
		wantCancelled int
	}{
		{name: "ok", choice: OK, want: OutcomeConfirmed, wantConfirmed: 1},
		{name: "cancel", choice: Cancel, want: OutcomeCancelled, wantCancelled: 1},
		{name: "ok when done", choice: OK, done: true, want: OutcomeAlreadyDone},
		{name: "cancel when done", choice: Cancel, done: true, want: OutcomeCancelled, wantCancelled: 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var c counter
			var logged []string
			ctrl := NewController()
			ctrl.SetLogger(func(format string, args ...any) { logged = append(logged, format) })

			if err := ctrl.Request(c.action(tt.done)); err != nil {
				t.Fatalf("request: %v", err)
			}
			got, err := ctrl.Resolve(tt.choice)
			if err != nil {
				t.Fatalf("resolve: %v", err)
			}
			if got != tt.want {
				t.Fatalf("outcome = %s, want %s", got, tt.want)
			}
			if c.confirmed != tt.wantConfirmed || c.cancelled != tt.wantCancelled {
				t.Fatalf("callbacks confirmed=%d cancelled=%d", c.confirmed, c.cancelled)
			}
			if tt.want == OutcomeAlreadyDone && len(logged) != 1 {
				t.Fatalf("expected the short-circuit to be logged once, got %v", logged)
			}
			if ctrl.IsPending() {
				t.Fatal("controller still pending after resolve")
			}
		})
	}
}

func TestRequestWhilePending(t *testing.T) {
	var c counter
	ctrl := NewController()
	if err := ctrl.Request(c.action(false)); err != nil {
		t.Fatalf("request: %v", err)
	}
	if err := ctrl.Request(c.action(false)); !errors.Is(err, ErrPending) {
		t.Fatalf("expected ErrPending, got %v", err)
	}
}

func TestResolveWithoutPending(t *testing.T) {
	if _, err := NewController().Resolve(OK); !errors.Is(err, ErrNothingPending) {
		t.Fatalf("expected ErrNothingPending, got %v", err)
	}
}

func TestConfirmAskFailureCancels(t *testing.T) {
	var c counter
	ctrl := NewController()
	asker := AskFunc(func(context.Context, string, string) (Choice, error) {
		return OK, errors.New("interrupted")
	})
	outcome, err := ctrl.Confirm(context.Background(), asker, c.action(false))
	if err == nil || !strings.Contains(err.Error(), "interrupted") {
		t.Fatalf("expected ask error, got %v", err)
	}
	if outcome != OutcomeCancelled || c.cancelled != 1 || c.confirmed != 0 {
		t.Fatalf("expected a single cancel, got outcome=%s %+v", outcome, c)
	}
}

func TestConfirmPassesTitleAndBody(t *testing.T) {
	var gotTitle, gotBody string
	asker := AskFunc(func(_ context.Context, title, body string) (Choice, error) {
		gotTitle, gotBody = title, body
		return OK, nil
	})
	var c counter
	outcome, err := NewController().Confirm(context.Background(), asker, c.action(false))
	if err != nil {
		t.Fatalf("confirm: %v", err)
	}
	if outcome != OutcomeConfirmed || c.confirmed != 1 {
		t.Fatalf("expected confirmation, got %s", outcome)
	}
	if gotTitle != "Add to Favorites?" || gotBody != "Are you sure?" {
		t.Fatalf("asker saw %q / %q", gotTitle, gotBody)
	}
}
