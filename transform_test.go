package zpacker

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIdentityTransformMatchesPlainSerialize(t *testing.T) {
	v := []uint16{1, 2, 3}
	assert.Equal(t, Serialize(v, ChecksumCRC32), SerializeTransformed(v, Identity, ChecksumCRC32))
	assert.Equal(t, Serialize(v, ChecksumCRC32), SerializeTransformed(v, nil, ChecksumCRC32))
}

func TestS2TransformRoundTrip(t *testing.T) {
	v := map[string]string{
		"body": strings.Repeat("compressible payload ", 64),
		"tag":  "s2",
	}
	data := SerializeTransformed(v, S2, ChecksumCRC32)

	// The repeated content compresses well below the raw encoding.
	require.Less(t, len(data), SizeOf(v))
	require.NoError(t, Verify(data, ChecksumCRC32))

	assert.Equal(t, v, DeserializeTransformed[map[string]string](data, S2, ChecksumCRC32))
}

func TestTransformedRejectsCorruption(t *testing.T) {
	v := []int32{9, 8, 7}
	data := SerializeTransformed(v, S2, ChecksumCRC32)

	for i := range data {
		bad := append([]byte(nil), data...)
		bad[i] ^= 0xFF
		assert.Empty(t, DeserializeTransformed[[]int32](bad, S2, ChecksumCRC32), "flipped byte %d", i)
	}
}

func TestTransformedRejectsUndecodablePayload(t *testing.T) {
	// A valid envelope over bytes that are not an S2 block yields the
	// default value rather than an error or panic.
	data := Serialize([]int32{1, 2, 3}, ChecksumCRC32)
	assert.Empty(t, DeserializeTransformed[[]int32](data, S2, ChecksumCRC32))
}
