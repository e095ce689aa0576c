package cbortree

import (
	"encoding/binary"
	"fmt"
	"math"
)

// Encode serializes a value tree to CBOR using shortest-form heads.
// Floats always encode as double precision, so Encode(Decode(b)) is not
// byte-identical for inputs carrying narrower floats; it is for
// everything else this package decodes.
func Encode(v Value) ([]byte, error) {
	var e encoder
	if err := e.item(v); err != nil {
		return nil, err
	}
	return e.buf, nil
}

type encoder struct {
	buf []byte
}

func (e *encoder) head(major byte, arg uint64) {
	switch {
	case arg < 24:
		e.buf = append(e.buf, major<<5|byte(arg))
	case arg <= math.MaxUint8:
		e.buf = append(e.buf, major<<5|24, byte(arg))
	case arg <= math.MaxUint16:
		e.buf = append(e.buf, major<<5|25)
		e.buf = binary.BigEndian.AppendUint16(e.buf, uint16(arg))
	case arg <= math.MaxUint32:
		e.buf = append(e.buf, major<<5|26)
		e.buf = binary.BigEndian.AppendUint32(e.buf, uint32(arg))
	default:
		e.buf = append(e.buf, major<<5|27)
		e.buf = binary.BigEndian.AppendUint64(e.buf, arg)
	}
}

func (e *encoder) item(v Value) error {
	switch v := v.(type) {
	case Integer:
		if v >= 0 {
			e.head(0, uint64(v))
		} else {
			e.head(1, uint64(-(int64(v) + 1)))
		}
	case Bytes:
		e.head(2, uint64(len(v)))
		e.buf = append(e.buf, v...)
	case Text:
		e.head(3, uint64(len(v)))
		e.buf = append(e.buf, v...)
	case Array:
		e.head(4, uint64(len(v)))
		for _, el := range v {
			if err := e.item(el); err != nil {
				return err
			}
		}
	case Map:
		e.head(5, uint64(len(v)))
		for _, entry := range v {
			if err := e.item(entry.Key); err != nil {
				return err
			}
			if err := e.item(entry.Value); err != nil {
				return err
			}
		}
	case Tag:
		e.head(6, v.Number)
		return e.item(v.Content)
	case Simple:
		if v >= 24 && v < 32 {
			return fmt.Errorf("unencodable simple value %d", v)
		}
		if v < 24 {
			e.buf = append(e.buf, 7<<5|byte(v))
		} else {
			e.buf = append(e.buf, 7<<5|24, byte(v))
		}
	case Float:
		e.buf = append(e.buf, 7<<5|27)
		e.buf = binary.BigEndian.AppendUint64(e.buf, math.Float64bits(float64(v)))
	default:
		return fmt.Errorf("cannot encode %T", v)
	}
	return nil
}
