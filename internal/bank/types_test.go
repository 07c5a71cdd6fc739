package bank

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseOptionKey(t *testing.T) {
	tests := []struct {
		in   string
		want OptionKey
		ok   bool
	}{
		{"A", OptionA, true},
		{" b ", OptionB, true},
		{"c", OptionC, true},
		{"D", "", false},
		{"", "", false},
		{"AB", "", false},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, ok := ParseOptionKey(tt.in)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestKeyAt(t *testing.T) {
	for i, want := range Keys() {
		got, ok := KeyAt(i)
		require.True(t, ok)
		assert.Equal(t, want, got)
		assert.Equal(t, i, got.Index())
	}
	_, ok := KeyAt(3)
	assert.False(t, ok)
	_, ok = KeyAt(-1)
	assert.False(t, ok)
}

func TestNewQuestion(t *testing.T) {
	opts := map[OptionKey]string{OptionA: "a", OptionB: "b", OptionC: "c"}

	q, err := NewQuestion("q", opts, OptionC)
	require.NoError(t, err)
	assert.Equal(t, "c", q.Option(OptionC))
	assert.Equal(t, "", q.Option("Z"))

	// Mutating the input map after construction has no effect.
	opts[OptionA] = "changed"
	assert.Equal(t, "a", q.Option(OptionA))

	_, err = NewQuestion("q", map[OptionKey]string{OptionA: "a"}, OptionA)
	assert.Error(t, err)

	_, err = NewQuestion("q", map[OptionKey]string{OptionA: "a", OptionB: "b", OptionC: "c"}, "D")
	assert.Error(t, err)
}

func TestNew_EmptyBank(t *testing.T) {
	_, err := New("mem", nil)
	var loadErr *LoadError
	require.ErrorAs(t, err, &loadErr)
	assert.Equal(t, "malformed bank: no questions", loadErr.Reason)
}

func TestLoadError_Message(t *testing.T) {
	err := recordError("bank.json", 4, "missing option %s", OptionB)
	assert.Equal(t, "load bank.json: record #4 missing option B", err.Error())
}
