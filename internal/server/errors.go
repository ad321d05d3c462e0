// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package server

import "errors"

var (
	errEmptyAddress   = errors.New("status address is empty")
	errAlreadyStarted = errors.New("status server already started")
)
