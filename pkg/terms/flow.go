// Copyright 2026 BarberSoft
// SPDX-License-Identifier: AGPL-3.0

package terms

import (
	"errors"
	"fmt"
)

// ScrollThreshold is how close, in pixels, to the bottom of the contract a viewer must get
const ScrollThreshold = 50

var (
	ErrScrollRequired   = errors.New("term was not read to the end")
	ErrCheckboxRequired = errors.New("term agreement was not confirmed")
	ErrInvalidStep      = errors.New("invalid acceptance step")
)

type State string

const (
	StateTokenIssued     State = "token-issued"
	StateTermLoaded      State = "term-loaded"
	StateScrolledToEnd   State = "scrolled-to-end"
	StateCheckboxChecked State = "checkbox-checked"
	StateAccepted        State = "accepted"
	StateError           State = "error"
)

// ScrollGate opens once the viewer reaches the end of the contract and stays open.
type ScrollGate struct {
	open bool
}

// Observe feeds a scroll position to the gate and reports whether it is open
func (g *ScrollGate) Observe(scrollTop, clientHeight, scrollHeight int) bool {
	if scrollTop+clientHeight >= scrollHeight-ScrollThreshold {
		g.open = true
	}
	return g.open
}

func (g *ScrollGate) Open() bool {
	return g.open
}

// Flow walks a single acceptance from the issued token to the recorded acceptance.
type Flow struct {
	state State
	gate  ScrollGate
	err   error
}

func NewFlow() *Flow {
	return &Flow{state: StateTokenIssued}
}

func (f *Flow) State() State {
	return f.state
}

// Err is the failure that moved the flow to StateError
func (f *Flow) Err() error {
	return f.err
}

func (f *Flow) Load() error {
	if f.state != StateTokenIssued {
		return f.invalid("load")
	}
	f.state = StateTermLoaded
	return nil
}

// Scroll moves the flow forward when the position reaches the end of the contract.
func (f *Flow) Scroll(scrollTop, clientHeight, scrollHeight int) {
	if f.state != StateTermLoaded {
		return
	}
	if f.gate.Observe(scrollTop, clientHeight, scrollHeight) {
		f.state = StateScrolledToEnd
	}
}

// MarkScrolled records a gate already opened by the client.
func (f *Flow) MarkScrolled() {
	if f.state == StateTermLoaded {
		f.gate.open = true
		f.state = StateScrolledToEnd
	}
}

// SetChecked ticks or clears the agreement checkbox, which only exists once the gate is open.
func (f *Flow) SetChecked(checked bool) error {
	switch {
	case f.state == StateTermLoaded:
		return ErrScrollRequired
	case f.state == StateScrolledToEnd && checked:
		f.state = StateCheckboxChecked
	case f.state == StateCheckboxChecked && !checked:
		f.state = StateScrolledToEnd
	case f.state != StateScrolledToEnd && f.state != StateCheckboxChecked:
		return f.invalid("check")
	}
	return nil
}

// Accept is only allowed with the gate open and the checkbox ticked
func (f *Flow) Accept() error {
	switch f.state {
	case StateCheckboxChecked:
		f.state = StateAccepted
		return nil
	case StateTermLoaded:
		return ErrScrollRequired
	case StateScrolledToEnd:
		return ErrCheckboxRequired
	default:
		return f.invalid("accept")
	}
}

// Fail moves the flow to StateError from any state
func (f *Flow) Fail(err error) {
	f.state = StateError
	f.err = err
}

func (f *Flow) invalid(step string) error {
	return fmt.Errorf("%w: %s while %s", ErrInvalidStep, step, f.state)
}
