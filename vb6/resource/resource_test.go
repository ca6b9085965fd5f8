package resource

import (
	"encoding/binary"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func record32(payload []byte) []byte {
	out := make([]byte, 4+len(payload))
	binary.LittleEndian.PutUint32(out, uint32(len(payload)))
	copy(out[4:], payload)
	return out
}

func TestReadBlob32BitPrefix(t *testing.T) {
	payload := []byte("picture bytes go here")
	data := record32(payload)

	blob, err := ReadBlob(data, 0)
	require.NoError(t, err)
	assert.Equal(t, 0, blob.Offset)
	assert.Equal(t, len(payload), blob.Size)
	assert.Equal(t, payload, blob.Data)
}

func TestReadBlobSecondRecord(t *testing.T) {
	first := record32([]byte("first"))
	second := record32([]byte("second record"))
	data := append(append([]byte{}, first...), second...)

	blob, err := ReadBlob(data, len(first))
	require.NoError(t, err)
	assert.Equal(t, []byte("second record"), blob.Data)
}

func TestReadBlobNarrowPrefixes(t *testing.T) {
	t.Run("16-bit", func(t *testing.T) {
		// a 32-bit read of these four bytes would claim 0x58580003
		// bytes, far past the end, so the 16-bit prefix wins
		data := []byte{0x03, 0x00, 'X', 'X', 'X'}
		blob, err := ReadBlob(data, 0)
		require.NoError(t, err)
		assert.Equal(t, 3, blob.Size)
		assert.Equal(t, []byte("XXX"), blob.Data)
	})

	t.Run("8-bit", func(t *testing.T) {
		data := []byte{0x02, 0xFF, 0xFE}
		blob, err := ReadBlob(data, 0)
		require.NoError(t, err)
		assert.Equal(t, 2, blob.Size)
		assert.Equal(t, []byte{0xFF, 0xFE}, blob.Data)
	})
}

func TestReadBlobErrors(t *testing.T) {
	data := record32([]byte("ok"))

	_, err := ReadBlob(data, -1)
	assert.Error(t, err)

	_, err = ReadBlob(data, len(data))
	assert.Error(t, err)

	// a lone 0xFF byte claims 255 payload bytes it does not have
	_, err = ReadBlob([]byte{0xFF}, 0)
	assert.Error(t, err)
}

func TestFileBlob(t *testing.T) {
	f := New(record32([]byte("hello")))
	assert.Equal(t, 9, f.Len())

	blob, err := f.Blob(0)
	require.NoError(t, err)
	assert.Equal(t, []byte("hello"), blob.Data)
}
