// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2026 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package fault

// GenericError - error base
type GenericError string

// to allow for different classes of errors
type ExistsError GenericError
type InvalidError GenericError
type NotFoundError GenericError
type ProcessError GenericError

// common errors - keep in alphabetic order
var (
	ErrAlreadyInitialised   = ExistsError("already initialised")
	ErrConfigNotTable       = InvalidError("configuration did not return a table")
	ErrDuplicateValue       = ExistsError("duplicate value in tree")
	ErrHeightMismatch       = InvalidError("node height does not match its children")
	ErrInvalidCount         = InvalidError("invalid count")
	ErrInvalidLoggerChannel = InvalidError("invalid logger channel")
	ErrInvalidStructPointer = InvalidError("invalid struct pointer")
	ErrInvalidTreeKind      = InvalidError("invalid tree kind")
	ErrOrderViolation       = InvalidError("node is out of order")
	ErrParentMismatch       = InvalidError("parent pointer is inconsistent")
	ErrRequiredConfigFile   = NotFoundError("config file is required")
	ErrTreeIsEmpty          = NotFoundError("tree is empty")
	ErrUnbalanced           = InvalidError("node is unbalanced")
	ErrValidationFailed     = ProcessError("tree validation failed")
)

// the error interface base method
func (e GenericError) Error() string { return string(e) }

// the error interface methods
func (e ExistsError) Error() string   { return string(e) }
func (e InvalidError) Error() string  { return string(e) }
func (e NotFoundError) Error() string { return string(e) }
func (e ProcessError) Error() string  { return string(e) }

// determine the class of an error
func IsErrExists(e error) bool   { _, ok := e.(ExistsError); return ok }
func IsErrInvalid(e error) bool  { _, ok := e.(InvalidError); return ok }
func IsErrNotFound(e error) bool { _, ok := e.(NotFoundError); return ok }
func IsErrProcess(e error) bool  { _, ok := e.(ProcessError); return ok }
