package cose

import (
	"crypto/ecdsa"
	"crypto/elliptic"
	"crypto/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	gocose "github.com/veraison/go-cose"

	"github.com/microsoft/cose-inspect/pkg/cbortree"
)

func mustEncode(t *testing.T, v cbortree.Value) []byte {
	t.Helper()
	data, err := cbortree.Encode(v)
	require.NoError(t, err)
	return data
}

// testSign1Tree builds the 4-element Sign1 array with an ES256 protected
// header and the given payload.
func testSign1Tree(t *testing.T, payload []byte) cbortree.Array {
	t.Helper()
	protected := mustEncode(t, cbortree.Map{
		{Key: cbortree.Integer(1), Value: cbortree.Integer(-7)},
	})
	return cbortree.Array{
		cbortree.Bytes(protected),
		cbortree.Map{},
		cbortree.Bytes(payload),
		cbortree.Bytes{0xde, 0xad, 0xbe, 0xef},
	}
}

func Test_DecodeSign1_tagged_ok(t *testing.T) {
	data := mustEncode(t, cbortree.Tag{
		Number:  18,
		Content: testSign1Tree(t, []byte("hello")),
	})

	msg, err := DecodeSign1(data)
	require.NoError(t, err)

	assert.True(t, msg.Tagged)
	assert.Equal(t, uint64(18), msg.Tag)
	assert.Equal(t, len(data), msg.Size)
	assert.Equal(t, cbortree.Map{
		{Key: cbortree.Integer(1), Value: cbortree.Integer(-7)},
	}, msg.Protected)
	assert.Empty(t, msg.Unprotected)
	assert.Equal(t, []byte("hello"), msg.Payload)
	assert.Equal(t, []byte{0xde, 0xad, 0xbe, 0xef}, msg.Signature)
}

func Test_DecodeSign1_untagged_ok(t *testing.T) {
	data := mustEncode(t, testSign1Tree(t, []byte("hello")))

	msg, err := DecodeSign1(data)
	require.NoError(t, err)
	assert.False(t, msg.Tagged)
	assert.Equal(t, []byte("hello"), msg.Payload)
}

func Test_DecodeSign1_wrong_tag(t *testing.T) {
	tree := testSign1Tree(t, []byte("hello"))

	_, err := DecodeSign1(mustEncode(t, cbortree.Tag{Number: 17, Content: tree}))
	assert.ErrorIs(t, err, ErrInvalidTag)

	_, err = DecodeSign1(mustEncode(t, cbortree.Tag{Number: 18, Content: tree}))
	assert.NoError(t, err)
}

func Test_DecodeSign1_wrong_shape(t *testing.T) {
	tree := testSign1Tree(t, []byte("hello"))

	_, err := DecodeSign1(mustEncode(t, tree[:3]))
	assert.ErrorIs(t, err, ErrNotArrayOfFour)

	_, err = DecodeSign1(mustEncode(t, append(testSign1Tree(t, []byte("hello")), cbortree.Integer(0))))
	assert.ErrorIs(t, err, ErrNotArrayOfFour)

	_, err = DecodeSign1(mustEncode(t, cbortree.Integer(42)))
	assert.ErrorIs(t, err, ErrNotArrayOfFour)
}

func Test_DecodeSign1_not_cbor(t *testing.T) {
	_, err := DecodeSign1([]byte{0xff, 0x00, 0x01})
	assert.ErrorIs(t, err, ErrNotCBOR)

	// valid message followed by trailing garbage
	data := mustEncode(t, testSign1Tree(t, []byte("hello")))
	_, err = DecodeSign1(append(data, 0x00))
	assert.ErrorIs(t, err, ErrNotCBOR)
}

func Test_DecodeSign1_protected_header(t *testing.T) {
	// map in place of the byte string
	tree := testSign1Tree(t, []byte("hello"))
	tree[0] = cbortree.Map{{Key: cbortree.Integer(1), Value: cbortree.Integer(-7)}}
	_, err := DecodeSign1(mustEncode(t, tree))
	assert.ErrorIs(t, err, ErrProtectedNotBstr)

	// byte string wrapping a non-map
	tree = testSign1Tree(t, []byte("hello"))
	tree[0] = cbortree.Bytes(mustEncode(t, cbortree.Integer(7)))
	_, err = DecodeSign1(mustEncode(t, tree))
	assert.ErrorIs(t, err, ErrProtectedNotMap)

	// byte string wrapping garbage
	tree = testSign1Tree(t, []byte("hello"))
	tree[0] = cbortree.Bytes{0xff}
	_, err = DecodeSign1(mustEncode(t, tree))
	assert.ErrorIs(t, err, ErrNotCBOR)

	// zero-length byte string holds no encoded map at all
	tree = testSign1Tree(t, []byte("hello"))
	tree[0] = cbortree.Bytes{}
	_, err = DecodeSign1(mustEncode(t, tree))
	assert.ErrorIs(t, err, ErrNotCBOR)
}

func Test_DecodeSign1_field_shapes(t *testing.T) {
	tree := testSign1Tree(t, []byte("hello"))
	tree[1] = cbortree.Integer(0)
	_, err := DecodeSign1(mustEncode(t, tree))
	assert.ErrorIs(t, err, ErrUnprotectedNotMap)

	tree = testSign1Tree(t, []byte("hello"))
	tree[2] = cbortree.SimpleNull
	_, err = DecodeSign1(mustEncode(t, tree))
	assert.ErrorIs(t, err, ErrPayloadNotBstr)

	tree = testSign1Tree(t, []byte("hello"))
	tree[3] = cbortree.Text("sig")
	_, err = DecodeSign1(mustEncode(t, tree))
	assert.ErrorIs(t, err, ErrSignatureNotBstr)
}

func Test_Sign1_Encode_roundtrip(t *testing.T) {
	data := mustEncode(t, cbortree.Tag{
		Number:  18,
		Content: testSign1Tree(t, []byte("hello")),
	})

	msg, err := DecodeSign1(data)
	require.NoError(t, err)

	out, err := msg.Encode()
	require.NoError(t, err)

	again, err := DecodeSign1(out)
	require.NoError(t, err)
	assert.Equal(t, msg, again)
}

func Test_DecodeSign1_gocose_interop(t *testing.T) {
	key, err := ecdsa.GenerateKey(elliptic.P256(), rand.Reader)
	require.NoError(t, err)

	signer, err := gocose.NewSigner(gocose.AlgorithmES256, key)
	require.NoError(t, err)

	signed := gocose.Sign1Message{
		Headers: gocose.Headers{
			Protected: gocose.ProtectedHeader{
				gocose.HeaderLabelAlgorithm: gocose.AlgorithmES256,
			},
		},
		Payload: []byte("hello"),
	}
	require.NoError(t, signed.Sign(rand.Reader, nil, signer))

	data, err := signed.MarshalCBOR()
	require.NoError(t, err)

	msg, err := DecodeSign1(data)
	require.NoError(t, err)

	assert.True(t, msg.Tagged)
	assert.Equal(t, []byte("hello"), msg.Payload)
	assert.Equal(t, signed.Signature, msg.Signature)
	require.Len(t, msg.Protected, 1)
	assert.Equal(t, "1 (alg): -7 (ES256)",
		FormatHeader(msg.Protected[0].Key, msg.Protected[0].Value))
}
