// Copyright 2026 BarberSoft
// SPDX-License-Identifier: AGPL-3.0

package main

import "github.com/barbersoft/account-service/cmd"

func main() {
	cmd.Execute()
}
