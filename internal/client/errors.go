// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import "errors"

var (
	ErrUnknownCommand = errors.New("unknown command")
	ErrNoCommand      = errors.New("no command given")
	ErrInvalidSwitch  = errors.New("switch must be on or off")
	ErrNothingToSet   = errors.New("set needs at least one flag")
)
