// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package fault

import (
	"errors"
)

// GenericError - error base
type GenericError string

// to allow for different classes of errors
type ExistsError GenericError
type InvalidError GenericError
type LengthError GenericError
type NotFoundError GenericError
type ProcessError GenericError
type RecordError GenericError

// common errors - keep in alphabetic order
var (
	ErrAlreadyInitialised        = ExistsError("already initialised")
	ErrBadParentLink             = RecordError("parent link is inconsistent")
	ErrCopyFailed                = ProcessError("copy of node failed")
	ErrCountMismatch             = RecordError("node count does not match tree")
	ErrDuplicateKey              = ExistsError("duplicate key")
	ErrHeightMismatch            = RecordError("stored height does not match subtrees")
	ErrInvalidCount              = LengthError("invalid count")
	ErrInvalidLoggerChannel      = InvalidError("invalid logger channel")
	ErrInvalidOperationMix       = InvalidError("invalid operation mix")
	ErrInvalidStructPointer      = InvalidError("invalid struct pointer")
	ErrMissingConfigurationTable = InvalidError("configuration did not return a table")
	ErrNilComparator             = InvalidError("comparator is nil")
	ErrNilNode                   = InvalidError("node is nil")
	ErrNilTree                   = InvalidError("tree is nil")
	ErrNodeInUse                 = InvalidError("node is still linked")
	ErrNodeNotDetached           = InvalidError("node is not detached")
	ErrNotMember                 = NotFoundError("node is not a member of the tree")
	ErrOrderViolation            = RecordError("keys are out of order")
	ErrUnbalanced                = RecordError("subtree heights differ by more than one")
)

// the error interface base method
func (e GenericError) Error() string { return string(e) }

// the error interface methods
func (e ExistsError) Error() string   { return string(e) }
func (e InvalidError) Error() string  { return string(e) }
func (e LengthError) Error() string   { return string(e) }
func (e NotFoundError) Error() string { return string(e) }
func (e ProcessError) Error() string  { return string(e) }
func (e RecordError) Error() string   { return string(e) }

// determine the class of an error, looking through any wrapping
func IsErrExists(e error) bool   { var t ExistsError; return errors.As(e, &t) }
func IsErrInvalid(e error) bool  { var t InvalidError; return errors.As(e, &t) }
func IsErrLength(e error) bool   { var t LengthError; return errors.As(e, &t) }
func IsErrNotFound(e error) bool { var t NotFoundError; return errors.As(e, &t) }
func IsErrProcess(e error) bool  { var t ProcessError; return errors.As(e, &t) }
func IsErrRecord(e error) bool   { var t RecordError; return errors.As(e, &t) }
