// SPDX-License-Identifier: ISC
// Copyright (c) 2019-2020 Zatoichi Labs
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package fault

// error base
type GenericError string

// to allow for different classes of errors
type ExistsError GenericError
type InvalidError GenericError
type NotFoundError GenericError
type ProcessError GenericError

// common errors - keep in alphabetic order
var (
	ErrAlreadyInitialised       = ExistsError("already initialised")
	ErrCannotDecodeAccount      = InvalidError("cannot decode account")
	ErrCannotDecodePrivateKey   = InvalidError("cannot decode private key")
	ErrChecksumMismatch         = InvalidError("checksum mismatch")
	ErrGenesisDuplicateToken    = ExistsError("genesis duplicate token")
	ErrInvalidChain             = InvalidError("invalid chain")
	ErrInvalidKeyLength         = InvalidError("invalid key length")
	ErrInvalidKeyType           = InvalidError("invalid key type")
	ErrInvalidReceiverOrSender  = InvalidError("invalid receiver or sender")
	ErrInvalidSignature         = InvalidError("invalid signature")
	ErrNotCurrentOwner          = InvalidError("not current owner")
	ErrNotDigest                = InvalidError("not digest")
	ErrNotInitialised           = NotFoundError("not initialised")
	ErrNotPrivateKey            = InvalidError("not private key")
	ErrNotPublicKey             = InvalidError("not public key")
	ErrNotTokenId               = InvalidError("not token id")
	ErrNotTransferPack          = InvalidError("not transfer pack")
	ErrSignatureTooLong         = InvalidError("signature too long")
	ErrSignerMismatch           = InvalidError("signer mismatch")
	ErrTokenAlreadyExists       = ExistsError("token already exists")
	ErrTokenDoesNotExist        = NotFoundError("token does not exist")
	ErrWrongNetworkForPublicKey = InvalidError("wrong network for public key")
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
