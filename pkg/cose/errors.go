package cose

import "errors"

// Decode failures carry the first structural rule the input broke.
// Every error returned by DecodeSign1 wraps exactly one of these
// sentinels, so callers can both test with errors.Is and surface the
// message verbatim.
var (
	// ErrNotCBOR reports input that is not well-formed CBOR, either at
	// the top level or inside the protected header byte string.
	ErrNotCBOR = errors.New("not a COSE_Sign1 message: CBOR decode error")

	// ErrInvalidTag reports a tagged top-level value whose tag is not 18.
	ErrInvalidTag = errors.New("not a COSE_Sign1 message: invalid tag")

	// ErrNotArrayOfFour reports a top-level value that is not an array
	// of length 4.
	ErrNotArrayOfFour = errors.New("not a COSE_Sign1 message: not an array of length 4")

	ErrProtectedNotBstr  = errors.New("not a COSE_Sign1 message: protected header is not a byte string")
	ErrProtectedNotMap   = errors.New("not a COSE_Sign1 message: protected header does not contain a map")
	ErrUnprotectedNotMap = errors.New("not a COSE_Sign1 message: unprotected header is not a map")
	ErrPayloadNotBstr    = errors.New("not a COSE_Sign1 message: payload is not a byte string")
	ErrSignatureNotBstr  = errors.New("not a COSE_Sign1 message: signature is not a byte string")
)
