package cose

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/microsoft/cose-inspect/pkg/cbortree"
)

// RenderReport builds the text report for a decoded message: message
// type, byte size, both header sections, payload and signature. It has
// no failure modes; the record was already validated by DecodeSign1.
func RenderReport(m *Sign1) string {
	var b strings.Builder

	if m.Tagged {
		fmt.Fprintf(&b, "COSE_Sign1 message, tagged (tag %d)\n", m.Tag)
	} else {
		b.WriteString("COSE_Sign1 message, untagged\n")
	}
	fmt.Fprintf(&b, "Size: %d bytes\n", m.Size)

	b.WriteString("\nProtected Header:\n")
	writeHeaderMap(&b, m.Protected)

	b.WriteString("\nUnprotected Header:\n")
	writeHeaderMap(&b, m.Unprotected)

	b.WriteString("\nPayload:\n")
	b.WriteString(hexForm(m.Payload))
	b.WriteString("\n")
	if utf8.Valid(m.Payload) {
		b.WriteString("Text:\n\n")
		b.Write(m.Payload)
		b.WriteString("\n")
	}

	b.WriteString("\nSignature:\n")
	b.WriteString(hexForm(m.Signature))
	b.WriteString("\n")

	return b.String()
}

func writeHeaderMap(b *strings.Builder, m cbortree.Map) {
	if len(m) == 0 {
		b.WriteString("(empty)\n")
		return
	}
	for _, entry := range m {
		b.WriteString(FormatHeader(entry.Key, entry.Value))
		b.WriteString("\n")
	}
}
