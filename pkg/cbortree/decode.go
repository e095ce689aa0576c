package cbortree

import (
	"encoding/binary"
	"fmt"
	"io"
	"math"
	"unicode/utf8"

	"github.com/fxamacker/cbor/v2"
	"github.com/x448/float16"
)

// maxNestedLevels bounds recursion for both the well-formedness check and
// the tree walk.
const maxNestedLevels = 64

var decMode cbor.DecMode

func init() {
	var err error
	decMode, err = cbor.DecOptions{
		IndefLength:     cbor.IndefLengthForbidden,
		MaxNestedLevels: maxNestedLevels,
	}.DecMode()
	if err != nil {
		panic(err)
	}
}

// Decode parses data as a single CBOR item and returns its value tree.
// The item must span the entire input; truncated or trailing bytes,
// indefinite lengths and invalid UTF-8 text strings are all errors.
func Decode(data []byte) (Value, error) {
	if err := decMode.Wellformed(data); err != nil {
		return nil, err
	}

	d := &decoder{buf: data}
	v, err := d.item(0)
	if err != nil {
		return nil, err
	}
	if d.off != len(d.buf) {
		return nil, fmt.Errorf("%d trailing bytes after item", len(d.buf)-d.off)
	}
	return v, nil
}

type decoder struct {
	buf []byte
	off int
}

// head reads the initial byte of the next item plus any extended count
// bytes selected by the additional information.
func (d *decoder) head() (major, info byte, arg uint64, err error) {
	if d.off >= len(d.buf) {
		return 0, 0, 0, io.ErrUnexpectedEOF
	}
	b := d.buf[d.off]
	d.off++

	major = b >> 5
	info = b & 0x1f
	switch {
	case info < 24:
		arg = uint64(info)
	case info == 24:
		raw, err := d.take(1)
		if err != nil {
			return 0, 0, 0, err
		}
		arg = uint64(raw[0])
	case info == 25:
		raw, err := d.take(2)
		if err != nil {
			return 0, 0, 0, err
		}
		arg = uint64(binary.BigEndian.Uint16(raw))
	case info == 26:
		raw, err := d.take(4)
		if err != nil {
			return 0, 0, 0, err
		}
		arg = uint64(binary.BigEndian.Uint32(raw))
	case info == 27:
		raw, err := d.take(8)
		if err != nil {
			return 0, 0, 0, err
		}
		arg = binary.BigEndian.Uint64(raw)
	case info == 31:
		return 0, 0, 0, fmt.Errorf("indefinite-length item")
	default:
		return 0, 0, 0, fmt.Errorf("reserved additional information %d", info)
	}
	return major, info, arg, nil
}

func (d *decoder) take(n uint64) ([]byte, error) {
	if n > uint64(len(d.buf)-d.off) {
		return nil, io.ErrUnexpectedEOF
	}
	b := d.buf[d.off : d.off+int(n)]
	d.off += int(n)
	return b, nil
}

func (d *decoder) item(depth int) (Value, error) {
	if depth > maxNestedLevels {
		return nil, fmt.Errorf("nesting deeper than %d levels", maxNestedLevels)
	}

	major, info, arg, err := d.head()
	if err != nil {
		return nil, err
	}

	switch major {
	case 0:
		if arg > math.MaxInt64 {
			return nil, fmt.Errorf("integer %d overflows int64", arg)
		}
		return Integer(arg), nil
	case 1:
		if arg > math.MaxInt64 {
			return nil, fmt.Errorf("integer -%d-1 overflows int64", arg)
		}
		return Integer(-1 - int64(arg)), nil
	case 2:
		raw, err := d.take(arg)
		if err != nil {
			return nil, err
		}
		return Bytes(append([]byte{}, raw...)), nil
	case 3:
		raw, err := d.take(arg)
		if err != nil {
			return nil, err
		}
		if !utf8.Valid(raw) {
			return nil, fmt.Errorf("text string is not valid UTF-8")
		}
		return Text(raw), nil
	case 4:
		arr := make(Array, 0, arg)
		for i := uint64(0); i < arg; i++ {
			el, err := d.item(depth + 1)
			if err != nil {
				return nil, err
			}
			arr = append(arr, el)
		}
		return arr, nil
	case 5:
		m := make(Map, 0, arg)
		for i := uint64(0); i < arg; i++ {
			k, err := d.item(depth + 1)
			if err != nil {
				return nil, err
			}
			v, err := d.item(depth + 1)
			if err != nil {
				return nil, err
			}
			m = append(m, Pair{Key: k, Value: v})
		}
		return m, nil
	case 6:
		content, err := d.item(depth + 1)
		if err != nil {
			return nil, err
		}
		return Tag{Number: arg, Content: content}, nil
	default: // major type 7
		switch info {
		case 25:
			return Float(float16.Frombits(uint16(arg)).Float32()), nil
		case 26:
			return Float(math.Float32frombits(uint32(arg))), nil
		case 27:
			return Float(math.Float64frombits(arg)), nil
		case 24:
			if arg < 32 {
				return nil, fmt.Errorf("invalid two-byte simple value %d", arg)
			}
			return Simple(arg), nil
		default:
			return Simple(info), nil
		}
	}
}
