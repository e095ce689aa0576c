// Package cose decodes COSE_Sign1 messages (RFC 8152) into a validated
// record and renders human-readable reports of their contents.
// Signatures are not verified.
package cose

import (
	"fmt"

	"github.com/microsoft/cose-inspect/pkg/cbortree"
)

// TagSign1 is the CBOR tag registered for COSE_Sign1 messages.
const TagSign1 = 18

// Sign1 is a structurally validated COSE_Sign1 message.
// It is constructed by DecodeSign1 and not mutated afterwards.
type Sign1 struct {
	// Size is the length in bytes of the encoded input.
	Size int

	// Tag is the outer CBOR tag number when the message carried one.
	// DecodeSign1 only accepts tag 18.
	Tag    uint64
	Tagged bool

	// Protected is the header map decoded from the byte string at
	// array index 0.
	Protected cbortree.Map

	// Unprotected is the header map at array index 1.
	Unprotected cbortree.Map

	// Payload and Signature are the byte strings at indices 2 and 3,
	// byte-identical to the corresponding input ranges.
	Payload   []byte
	Signature []byte
}

// DecodeSign1 parses data as a COSE_Sign1 message and validates the
// four-element array structure: [protected bstr, unprotected map,
// payload bstr, signature bstr], optionally wrapped in tag 18.
// It fails fast with the first rule the input breaks.
func DecodeSign1(data []byte) (*Sign1, error) {
	v, err := cbortree.Decode(data)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrNotCBOR, err)
	}

	msg := &Sign1{Size: len(data)}
	if tag, ok := v.(cbortree.Tag); ok {
		if tag.Number != TagSign1 {
			return nil, fmt.Errorf("%w: tag %d", ErrInvalidTag, tag.Number)
		}
		msg.Tag = tag.Number
		msg.Tagged = true
		v = tag.Content
	}

	arr, ok := v.(cbortree.Array)
	if !ok || len(arr) != 4 {
		return nil, ErrNotArrayOfFour
	}

	rawProtected, ok := arr[0].(cbortree.Bytes)
	if !ok {
		return nil, ErrProtectedNotBstr
	}
	inner, err := cbortree.Decode(rawProtected)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrNotCBOR, err)
	}
	protected, ok := inner.(cbortree.Map)
	if !ok {
		return nil, ErrProtectedNotMap
	}
	msg.Protected = protected

	unprotected, ok := arr[1].(cbortree.Map)
	if !ok {
		return nil, ErrUnprotectedNotMap
	}
	msg.Unprotected = unprotected

	payload, ok := arr[2].(cbortree.Bytes)
	if !ok {
		return nil, ErrPayloadNotBstr
	}
	msg.Payload = payload

	signature, ok := arr[3].(cbortree.Bytes)
	if !ok {
		return nil, ErrSignatureNotBstr
	}
	msg.Signature = signature

	return msg, nil
}

// Encode serializes the message back to CBOR. The protected header is
// re-encoded from its decoded map, so the result is semantically
// equivalent to the original input rather than byte-identical.
func (m *Sign1) Encode() ([]byte, error) {
	rawProtected, err := cbortree.Encode(m.Protected)
	if err != nil {
		return nil, err
	}

	var v cbortree.Value = cbortree.Array{
		cbortree.Bytes(rawProtected),
		m.Unprotected,
		cbortree.Bytes(m.Payload),
		cbortree.Bytes(m.Signature),
	}
	if m.Tagged {
		v = cbortree.Tag{Number: m.Tag, Content: v}
	}
	return cbortree.Encode(v)
}
