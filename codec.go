package zpacker

// Sizer is an interface for types that can report their binary size.
// Custom types must implement it before they can be used with SizeOf;
// the reported value has to match the bytes their Serialize method emits.
type Sizer interface {
	// Size returns the size of the type in bytes when binary encoded.
	Size() int
}

// Serializer is the encoding half of the custom contract. A type
// implementing it writes its own representation to the sink, typically by
// calling Encode on each field in order. The codec adds no framing around
// a custom body; the type owns its layout.
type Serializer interface {
	Serialize(w Sink)
}

// Deserializer is the decoding half of the custom contract. Deserialize
// must consume exactly the bytes Serialize produced, in the same order.
// It is always invoked on a freshly zeroed receiver.
type Deserializer interface {
	Deserialize(r *Reader)
}

// Sink is the byte destination the encoder writes through. Writer (growable)
// and FixedWriter (bounded) both satisfy it.
//
// WriteBytes on a FixedWriter copies min(len(p), Remaining()) bytes, while a
// Writer grows to take all of p; primitive values are
// written all-or-nothing by the encoder after a CanWrite check, so a bounded
// sink that runs out of space silently drops whole values rather than
// splitting them.
type Sink interface {
	WriteBytes(p []byte)
	Count() int
	Remaining() int
	CanWrite(n int) bool
}
