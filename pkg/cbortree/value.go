// Package cbortree models decoded CBOR items as an explicit value tree.
//
// Decoding into Go maps discards the wire order of map entries, which an
// inspection tool needs to reproduce its input faithfully. The tree keeps
// map entries as an ordered pair list instead, and keeps every item kind
// as its own concrete type so callers dispatch with a type switch.
package cbortree

// Value is a single decoded CBOR item.
type Value interface {
	isValue()
}

// Integer is a major type 0 or 1 item.
type Integer int64

// Bytes is a major type 2 item.
type Bytes []byte

// Text is a major type 3 item.
type Text string

// Array is a major type 4 item.
type Array []Value

// Pair is one map entry in wire order.
type Pair struct {
	Key   Value
	Value Value
}

// Map is a major type 5 item. Keys are not required to be unique on the
// wire, so entries are kept as a list rather than a Go map.
type Map []Pair

// Tag is a major type 6 item wrapping a single content item.
type Tag struct {
	Number  uint64
	Content Value
}

// Simple is a major type 7 simple value, such as false, true or null.
type Simple uint8

// Float is a major type 7 floating-point value of any width.
type Float float64

func (Integer) isValue() {}
func (Bytes) isValue()   {}
func (Text) isValue()    {}
func (Array) isValue()   {}
func (Map) isValue()     {}
func (Tag) isValue()     {}
func (Simple) isValue()  {}
func (Float) isValue()   {}

// Well-known simple values.
const (
	SimpleFalse     Simple = 20
	SimpleTrue      Simple = 21
	SimpleNull      Simple = 22
	SimpleUndefined Simple = 23
)
