// Copyright 2026 BarberSoft
// SPDX-License-Identifier: AGPL-3.0

package terms

import (
	"errors"
	"testing"
)

func TestScrollGateLatches(t *testing.T) {
	var g ScrollGate

	steps := []struct {
		scrollTop, clientHeight, scrollHeight int
		open                                  bool
	}{
		{0, 400, 1000, false},
		{549, 400, 1000, false},
		{550, 400, 1000, true},
		{0, 400, 1000, true},
		{100, 400, 5000, true},
	}

	for i, s := range steps {
		if got := g.Observe(s.scrollTop, s.clientHeight, s.scrollHeight); got != s.open {
			t.Fatalf("step %d: expected open=%v, got %v", i, s.open, got)
		}
	}
}

func TestScrollGateOpensOnShortContent(t *testing.T) {
	var g ScrollGate
	if !g.Observe(0, 400, 300) {
		t.Fatal("content shorter than the viewport should open the gate")
	}
}

func TestFlow(t *testing.T) {
	tests := []struct {
		name     string
		run      func(*Flow) error
		expected error
		state    State
	}{
		{
			name: "accept before scrolling",
			run: func(f *Flow) error {
				return f.Accept()
			},
			expected: ErrScrollRequired,
			state:    StateTermLoaded,
		},
		{
			name: "checkbox before scrolling",
			run: func(f *Flow) error {
				return f.SetChecked(true)
			},
			expected: ErrScrollRequired,
			state:    StateTermLoaded,
		},
		{
			name: "accept without checkbox",
			run: func(f *Flow) error {
				f.Scroll(600, 400, 1000)
				return f.Accept()
			},
			expected: ErrCheckboxRequired,
			state:    StateScrolledToEnd,
		},
		{
			name: "unchecking goes back",
			run: func(f *Flow) error {
				f.MarkScrolled()
				if err := f.SetChecked(true); err != nil {
					return err
				}
				if err := f.SetChecked(false); err != nil {
					return err
				}
				return f.Accept()
			},
			expected: ErrCheckboxRequired,
			state:    StateScrolledToEnd,
		},
		{
			name: "scrolling back up keeps the gate open",
			run: func(f *Flow) error {
				f.Scroll(600, 400, 1000)
				f.Scroll(0, 400, 1000)
				if err := f.SetChecked(true); err != nil {
					return err
				}
				return f.Accept()
			},
			state: StateAccepted,
		},
		{
			name: "accepted is final",
			run: func(f *Flow) error {
				f.MarkScrolled()
				_ = f.SetChecked(true)
				_ = f.Accept()
				return f.Accept()
			},
			expected: ErrInvalidStep,
			state:    StateAccepted,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := NewFlow()
			if err := f.Load(); err != nil {
				t.Fatalf("unexpected error: %v", err)
			}

			err := tt.run(f)
			if tt.expected != nil {
				if !errors.Is(err, tt.expected) {
					t.Errorf("expected error %v, got %v", tt.expected, err)
				}
			} else if err != nil {
				t.Errorf("unexpected error: %v", err)
			}

			if f.State() != tt.state {
				t.Errorf("expected state %s, got %s", tt.state, f.State())
			}
		})
	}
}

func TestFlowFailsFromAnyState(t *testing.T) {
	boom := errors.New("boom")

	for _, prepare := range []func(*Flow){
		func(f *Flow) {},
		func(f *Flow) { _ = f.Load() },
		func(f *Flow) { _ = f.Load(); f.MarkScrolled() },
		func(f *Flow) { _ = f.Load(); f.MarkScrolled(); _ = f.SetChecked(true) },
	} {
		f := NewFlow()
		prepare(f)
		f.Fail(boom)

		if f.State() != StateError || !errors.Is(f.Err(), boom) {
			t.Errorf("expected error state with %v, got %s / %v", boom, f.State(), f.Err())
		}
		if err := f.Accept(); !errors.Is(err, ErrInvalidStep) {
			t.Errorf("expected accept to be refused after a failure, got %v", err)
		}
	}
}
