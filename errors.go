package zpacker

import "errors"

var (
	// ErrShortEnvelope indicates the input is shorter than the envelope header.
	ErrShortEnvelope = errors.New("zpacker: data shorter than the envelope header")

	// ErrTruncatedPayload indicates the envelope declares more payload bytes
	// than the input actually contains.
	ErrTruncatedPayload = errors.New("zpacker: payload shorter than the envelope declares")

	// ErrVersionMismatch indicates the envelope was produced by an
	// incompatible format version.
	ErrVersionMismatch = errors.New("zpacker: envelope version mismatch")

	// ErrChecksumMismatch indicates the payload bytes do not match the
	// checksum recorded in the envelope.
	ErrChecksumMismatch = errors.New("zpacker: envelope checksum mismatch")
)
