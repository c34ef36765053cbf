package config

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestEncodeDecodeTagRoundTrip(t *testing.T) {
	raw := EncodeTag("DDS ")
	require.Equal(t, "DDS ", DecodeTag(raw))
}

func TestEncodeTagTruncatesLongInput(t *testing.T) {
	raw := EncodeTag("TOOLONG")
	require.Len(t, raw, 4)
	require.Equal(t, "TOOL", DecodeTag(raw))
}

func TestDefaultGtfVersion(t *testing.T) {
	require.Equal(t, uint32(0x02020000), DefaultGtfVersion)
}
