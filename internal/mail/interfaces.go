// Copyright 2026 BarberSoft
// SPDX-License-Identifier: AGPL-3.0

package mail

import "context"

type SenderInterface interface {
	// Send delivers msg and returns the provider's message id
	Send(ctx context.Context, msg Message) (string, error)
}
