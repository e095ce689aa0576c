package cose

import (
	"encoding/base64"
	"encoding/hex"
	"fmt"
	"strings"

	"github.com/microsoft/cose-inspect/pkg/cbortree"
)

// FormatValue renders a decoded value for display. Byte strings render
// in hex form, maps one entry per line, and shapes with no useful
// rendering fall back to a placeholder instead of failing.
func FormatValue(v cbortree.Value) string {
	switch v := v.(type) {
	case cbortree.Array:
		elems := make([]string, len(v))
		for i, el := range v {
			elems[i] = FormatValue(el)
		}
		return "[" + strings.Join(elems, ", ") + "]"
	case cbortree.Bytes:
		return hexForm(v)
	case cbortree.Text:
		return fmt.Sprintf("%q", string(v))
	case cbortree.Integer:
		return fmt.Sprintf("%d", int64(v))
	case cbortree.Map:
		var b strings.Builder
		for _, entry := range v {
			fmt.Fprintf(&b, "(%s): %s,\n", FormatValue(entry.Key), FormatValue(entry.Value))
		}
		return b.String()
	case cbortree.Tag:
		return fmt.Sprintf("Tag(%d) %s", v.Number, FormatValue(v.Content))
	default:
		return fmt.Sprintf("<no pretty value: %s>", kindName(v))
	}
}

func kindName(v cbortree.Value) string {
	switch v.(type) {
	case cbortree.Simple:
		return "simple"
	case cbortree.Float:
		return "float"
	case nil:
		return "nil"
	default:
		return fmt.Sprintf("%T", v)
	}
}

// hexForm renders a byte string as "<N bytes: hex>" with lowercase hex
// digits and no separators. The unit reads "bytes" even when N is 1.
func hexForm(b []byte) string {
	return fmt.Sprintf("<%d bytes: %s>", len(b), hex.EncodeToString(b))
}

// base64Form renders a byte string as "<N bytes: base64>", used for
// certificate-carrying headers where hex would be unwieldy.
func base64Form(b []byte) string {
	return fmt.Sprintf("<%d bytes: %s>", len(b), base64.StdEncoding.EncodeToString(b))
}
