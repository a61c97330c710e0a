package errs

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestAt(t *testing.T) {
	t.Run("wraps sentinel", func(t *testing.T) {
		err := At("classes", 0x20, fmt.Errorf("entry: %w", ErrSentinelMismatch))

		var de *DecodeError
		require.ErrorAs(t, err, &de)
		require.Equal(t, "classes", de.Component)
		require.Equal(t, int64(0x20), de.Offset)
		require.ErrorIs(t, err, ErrSentinelMismatch)
		require.Contains(t, err.Error(), "classes at offset 0x20")
	})

	t.Run("keeps innermost component", func(t *testing.T) {
		inner := At("bitstream", 7, ErrTruncatedInput)
		outer := At("header variables", 100, fmt.Errorf("read DIMSCALE: %w", inner))

		var de *DecodeError
		require.ErrorAs(t, outer, &de)
		require.Equal(t, "bitstream", de.Component)
		require.Equal(t, int64(7), de.Offset)
	})

	t.Run("nil error", func(t *testing.T) {
		require.NoError(t, At("x", 0, nil))
	})
}

func TestTruncated(t *testing.T) {
	err := Truncated("locator table", 40, 12)
	require.True(t, errors.Is(err, ErrTruncatedInput))
	require.Contains(t, err.Error(), "needs 40 bytes, 12 available")
}
