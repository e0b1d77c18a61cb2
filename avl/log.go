// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

import (
	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/avltree/fault"
)

// Warner - sink for non-fatal diagnostics such as duplicate inserts,
// satisfied by *logger.L
type Warner interface {
	Warnf(format string, arguments ...interface{})
}

// package channel used by trees that have no warner of their own
var channel *logger.L

// Initialise - open the "avl" log channel
//
// the logger must already be initialised; until this is called
// warnings from trees without a warner are discarded
func Initialise() error {
	if nil != channel {
		return fault.ErrAlreadyInitialised
	}
	channel = logger.New("avl")
	if nil == channel {
		return fault.ErrInvalidLoggerChannel
	}
	return nil
}

// Finalise - flush and close the package channel
func Finalise() {
	if nil != channel {
		channel.Flush()
	}
	channel = nil
}

func warnf(w Warner, format string, arguments ...interface{}) {
	if nil != w {
		w.Warnf(format, arguments...)
		return
	}
	if nil != channel {
		channel.Warnf(format, arguments...)
	}
}
