package hash

import (
	"math/rand"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestFingerprint(t *testing.T) {
	tests := []struct {
		name string
		data string
		id   uint64
	}{
		{"empty string", "", 0xef46db3751d8e999},
		{"short string", "test", 0x4fdcca5ddb678139},
		{"long string", "this is a longer test string to hash", 0x69275f7f7ee59dbd},
		{"another string", "another test string", 0x212a22f593810bec},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.id, Fingerprint([]byte(tt.data)))
		})
	}
}

func TestID(t *testing.T) {
	tests := []struct {
		name  string
		input string
		upper string
	}{
		{"empty", "", ""},
		{"upper case", "LAYOUT", "LAYOUT"},
		{"mixed case", "AcDbLayout", "ACDBLAYOUT"},
		{"lower case", "dictionaryvar", "DICTIONARYVAR"},
		{"non letters", "acad_proxy_entity-2", "ACAD_PROXY_ENTITY-2"},
		{"longer than one chunk", strings.Repeat("tablestyle", 10), strings.Repeat("TABLESTYLE", 10)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, Fingerprint([]byte(tt.upper)), ID(tt.input))
			assert.Equal(t, ID(tt.upper), ID(tt.input))
		})
	}
}

func TestID_ClassNames(t *testing.T) {
	names := []string{"ACDBDICTIONARYWDFLT", "ACDBPLACEHOLDER", "LAYOUT", "DICTIONARYVAR", "TABLESTYLE"}
	seen := make(map[uint64]string, len(names))
	for _, n := range names {
		id := ID(n)
		_, dup := seen[id]
		assert.False(t, dup, n)
		seen[id] = n
	}
}

func randString(n int) string {
	const letters = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ"
	b := make([]byte, n)
	seededRand := rand.New(rand.NewSource(time.Now().UnixNano()))
	for i := range b {
		b[i] = letters[seededRand.Intn(len(letters))]
	}

	return string(b)
}

func BenchmarkID(b *testing.B) {
	randStr := randString(20)
	b.ResetTimer()
	for _i := 0; _i < b.N; _i++ {
		ID(randStr)
	}
}

func BenchmarkFingerprint(b *testing.B) {
	page := make([]byte, 0x7400)
	b.SetBytes(int64(len(page)))
	for _i := 0; _i < b.N; _i++ {
		Fingerprint(page)
	}
}
