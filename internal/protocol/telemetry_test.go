package protocol

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeOrientation(t *testing.T) {
	tests := []struct {
		payload   string
		up, front byte
	}{
		{"0#0#0#1", 'U', 'F'},
		{"0#0#0#1000\x7f", 'U', 'F'},
		{"707#0#0#707", 'F', 'D'},
		{"0#0#1#0", 'D', 'F'},
	}

	for _, tt := range tests {
		t.Run(tt.payload, func(t *testing.T) {
			o, err := DecodeOrientation([]byte(tt.payload))
			require.NoError(t, err)
			assert.Equal(t, string(tt.up), string(o.Up), "up")
			assert.Equal(t, string(tt.front), string(o.Front), "front")
		})
	}
}

func TestDecodeOrientation_Errors(t *testing.T) {
	for _, p := range []string{"1#2#3", "a#0#0#1", "0#0#0#0"} {
		_, err := DecodeOrientation([]byte(p))
		assert.Error(t, err, p)
	}
}

func TestDecodeCubeType(t *testing.T) {
	kind, err := DecodeCubeType([]byte{0x01})
	require.NoError(t, err)
	assert.Equal(t, "edge", kind)

	kind, err = DecodeCubeType([]byte{0x00})
	require.NoError(t, err)
	assert.Equal(t, "standard", kind)

	_, err = DecodeCubeType(nil)
	assert.Error(t, err)
}

func TestDecodeOfflineStats(t *testing.T) {
	stats, err := DecodeOfflineStats([]byte("120#95#2"))
	require.NoError(t, err)
	assert.Equal(t, OfflineStats{Moves: 120, Seconds: 95, Solves: 2}, stats)

	_, err = DecodeOfflineStats([]byte("1#2"))
	assert.Error(t, err)
	_, err = DecodeOfflineStats([]byte("1#x#2"))
	assert.Error(t, err)
}
