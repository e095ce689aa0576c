package cose

import (
	"fmt"
	"strings"

	gocose "github.com/veraison/go-cose"

	"github.com/microsoft/cose-inspect/pkg/cbortree"
)

// headerLabelKIDContext is the kid context header parameter from
// RFC 8613, which go-cose does not name.
const headerLabelKIDContext int64 = 10

type headerParam struct {
	name   string
	format func(cbortree.Value) string
}

// headerParams lists the common header parameters from RFC 8152 3.1,
// the kid context from RFC 8613, CWT claims from RFC 9597 and the x509
// parameters from RFC 9360. Each entry pairs the registered name with
// the formatter suited to the parameter's value shape.
var headerParams = map[int64]headerParam{
	gocose.HeaderLabelAlgorithm:         {"alg", formatAlgorithm},
	gocose.HeaderLabelCritical:          {"crit", formatCritical},
	gocose.HeaderLabelContentType:       {"content type", FormatValue},
	gocose.HeaderLabelKeyID:             {"kid", FormatValue},
	gocose.HeaderLabelIV:                {"IV", formatRawBytes},
	gocose.HeaderLabelPartialIV:         {"Partial IV", formatRawBytes},
	gocose.HeaderLabelCounterSignature:  {"counter signature", FormatValue},
	gocose.HeaderLabelCounterSignature0: {"CounterSignature0", formatRawBytes},
	headerLabelKIDContext:               {"kid context", formatRawBytes},
	gocose.HeaderLabelCWTClaims:         {"CWT claims", FormatValue},
	gocose.HeaderLabelX5Bag:             {"x5bag", formatCertBag},
	gocose.HeaderLabelX5Chain:           {"x5chain", formatCertBag},
	gocose.HeaderLabelX5T:               {"x5t", formatCertThumbprint},
	gocose.HeaderLabelX5U:               {"x5u", formatQuoted},
}

// FormatHeader renders one header map entry as a report line. Known
// integer keys render as "key (name): value" with the registered
// formatter; everything else falls through to the generic forms.
func FormatHeader(key, value cbortree.Value) string {
	if k, ok := key.(cbortree.Integer); ok {
		if param, ok := headerParams[int64(k)]; ok {
			return fmt.Sprintf("%d (%s): %s", int64(k), param.name, param.format(value))
		}
	}
	return fmt.Sprintf("%s: %s", FormatValue(key), FormatValue(value))
}

// formatAlgorithm renders registered algorithm identifiers as
// "id (name)", e.g. "-7 (ES256)".
func formatAlgorithm(v cbortree.Value) string {
	if id, ok := v.(cbortree.Integer); ok {
		if name, ok := AlgorithmName(int64(id)); ok {
			return fmt.Sprintf("%d (%s)", int64(id), name)
		}
	}
	return FormatValue(v)
}

// formatCritical renders the crit parameter's label array.
func formatCritical(v cbortree.Value) string {
	arr, ok := v.(cbortree.Array)
	if !ok {
		return FormatValue(v)
	}
	labels := make([]string, len(arr))
	for i, el := range arr {
		labels[i] = FormatValue(el)
	}
	return "[" + strings.Join(labels, ", ") + "]"
}

// formatRawBytes renders IV-like parameters in hex form.
func formatRawBytes(v cbortree.Value) string {
	if b, ok := v.(cbortree.Bytes); ok {
		return hexForm(b)
	}
	return FormatValue(v)
}

// formatCertBag renders x5bag/x5chain: each certificate in base64 form,
// a bare certificate without the surrounding array likewise.
func formatCertBag(v cbortree.Value) string {
	if arr, ok := v.(cbortree.Array); ok {
		certs := make([]string, len(arr))
		for i, el := range arr {
			certs[i] = formatCert(el)
		}
		return "[" + strings.Join(certs, ", ") + "]"
	}
	return formatCert(v)
}

func formatCert(v cbortree.Value) string {
	if b, ok := v.(cbortree.Bytes); ok {
		return base64Form(b)
	}
	return FormatValue(v)
}

// formatCertThumbprint renders x5t's [hashAlg, hashValue] pair.
func formatCertThumbprint(v cbortree.Value) string {
	arr, ok := v.(cbortree.Array)
	if !ok || len(arr) != 2 {
		return FormatValue(v)
	}
	digest, ok := arr[1].(cbortree.Bytes)
	if !ok {
		return FormatValue(v)
	}
	return fmt.Sprintf("[%s, %s]", formatAlgorithm(arr[0]), hexForm(digest))
}

func formatQuoted(v cbortree.Value) string {
	if s, ok := v.(cbortree.Text); ok {
		return fmt.Sprintf("%q", string(s))
	}
	return FormatValue(v)
}
