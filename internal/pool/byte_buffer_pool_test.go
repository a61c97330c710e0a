package pool

import (
	"bytes"
	"errors"
	"io"
	"sync"
	"testing"

	"github.com/arloliu/dwg/errs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewByteBuffer(t *testing.T) {
	bb := NewByteBuffer(1024)

	require.NotNil(t, bb)
	assert.Equal(t, 0, bb.Len(), "new buffer should have zero length")
	assert.Equal(t, 1024, bb.Cap(), "new buffer should have specified capacity")
}

func TestByteBuffer_Reset(t *testing.T) {
	bb := NewByteBuffer(64)
	bb.B = append(bb.B, "AcDb:Header"...)
	originalCap := bb.Cap()

	bb.Reset()

	assert.Equal(t, 0, bb.Len())
	assert.Equal(t, originalCap, bb.Cap(), "Reset should preserve capacity")
}

func TestByteBuffer_Grow(t *testing.T) {
	tests := []struct {
		name     string
		initCap  int
		initLen  int
		required int
		minCap   int
	}{
		{"sufficient capacity", 100, 10, 50, 100},
		{"small buffer grows by page size", 100, 100, 10, 100 + PageBufferDefaultSize},
		{"large buffer grows by quarter", 8 * PageBufferDefaultSize, 8 * PageBufferDefaultSize, 10, 10 * PageBufferDefaultSize},
		{"requirement beats growth step", 100, 100, 5 * PageBufferDefaultSize, 100 + 5*PageBufferDefaultSize},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			bb := NewByteBuffer(tt.initCap)
			bb.B = bb.B[:tt.initLen]
			bb.B[0] = 0x5A

			bb.Grow(tt.required)

			assert.Equal(t, tt.initLen, bb.Len())
			assert.GreaterOrEqual(t, bb.Cap(), tt.minCap)
			assert.Equal(t, byte(0x5A), bb.B[0], "Grow should keep contents")
		})
	}
}

func TestByteBuffer_Resize(t *testing.T) {
	bb := NewByteBuffer(8)
	bb.Resize(4)
	assert.Equal(t, 4, bb.Len())

	bb.Resize(PageBufferDefaultSize * 2)
	assert.Equal(t, PageBufferDefaultSize*2, bb.Len())

	bb.Resize(0)
	assert.Equal(t, 0, bb.Len())

	assert.Panics(t, func() { bb.Resize(-1) })
}

type failingReader struct{}

func (failingReader) ReadAt([]byte, int64) (int, error) {
	return 0, errors.New("device gone")
}

func TestByteBuffer_ReadAt(t *testing.T) {
	src := bytes.NewReader([]byte("0123456789"))
	bb := NewByteBuffer(4)

	require.NoError(t, bb.ReadAt(src, 2, 5))
	assert.Equal(t, []byte("23456"), bb.Bytes())

	require.NoError(t, bb.ReadAt(src, 5, 5), "a read ending at EOF is complete")
	assert.Equal(t, []byte("56789"), bb.Bytes())

	err := bb.ReadAt(src, 8, 5)
	require.ErrorIs(t, err, errs.ErrTruncatedInput)
	assert.Equal(t, []byte("89"), bb.Bytes())

	err = bb.ReadAt(failingReader{}, 0, 3)
	require.Error(t, err)
	require.NotErrorIs(t, err, errs.ErrTruncatedInput)
	require.NotErrorIs(t, err, io.EOF)
}

func TestByteBufferPool(t *testing.T) {
	t.Run("get returns empty buffer", func(t *testing.T) {
		p := NewByteBufferPool(128, 0)
		bb := p.Get()
		require.NotNil(t, bb)
		assert.Equal(t, 0, bb.Len())

		bb.B = append(bb.B, 1, 2, 3)
		p.Put(bb)
		assert.Equal(t, 0, bb.Len(), "Put should reset the buffer")
	})

	t.Run("oversized buffers are dropped", func(t *testing.T) {
		p := NewByteBufferPool(16, 32)
		bb := p.Get()
		bb.Resize(1024)
		p.Put(bb)
		assert.Equal(t, 1024, bb.Len(), "dropped buffer is not reset")
	})

	t.Run("nil put", func(t *testing.T) {
		p := NewByteBufferPool(16, 0)
		assert.NotPanics(t, func() { p.Put(nil) })
	})

	t.Run("page pool concurrent use", func(t *testing.T) {
		var wg sync.WaitGroup
		for i := 0; i < 16; i++ {
			wg.Add(1)
			go func(id byte) {
				defer wg.Done()
				bb := GetPageBuffer()
				defer PutPageBuffer(bb)

				bb.Resize(PageBufferDefaultSize)
				for j := range bb.B {
					bb.B[j] = id
				}
				for _, b := range bb.B {
					if b != id {
						t.Errorf("buffer shared between goroutines")
						return
					}
				}
			}(byte(i))
		}
		wg.Wait()
	})
}
