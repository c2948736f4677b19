package ally_test

import (
	"testing"

	"github.com/allyctl/allyctl/device/ally"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSymbolRoundTrip(t *testing.T) {
	// Every name resolves, and resolving the reverse lookup of its
	// code lands on the same code. Names shadowed by an earlier
	// duplicate (reverse lookup is first-wins) still satisfy this:
	// the winner shares the code by construction.
	for _, page := range ally.SymbolPages() {
		for _, name := range ally.SymbolNames(page) {
			gotPage, code, err := ally.ResolveSymbol(name)
			require.NoError(t, err, name)
			assert.Equal(t, page, gotPage, name)

			reverse, ok := ally.SymbolName(page, code)
			require.True(t, ok, name)
			rPage, rCode, err := ally.ResolveSymbol(reverse)
			require.NoError(t, err, reverse)
			assert.Equal(t, page, rPage, name)
			assert.Equal(t, code, rCode, name)
		}
	}
}

func TestSymbolDuplicatesFirstWins(t *testing.T) {
	cases := []struct {
		winner string
		loser  string
	}{
		{"KB_PAUSE", "KB_LEFT_ARROW"},
		{"KB_R", "KB_T"},
	}
	for _, tc := range cases {
		wPage, wCode, err := ally.ResolveSymbol(tc.winner)
		require.NoError(t, err)
		lPage, lCode, err := ally.ResolveSymbol(tc.loser)
		require.NoError(t, err)
		assert.Equal(t, wPage, lPage)
		assert.Equal(t, wCode, lCode, "%s and %s share a code", tc.winner, tc.loser)

		name, ok := ally.SymbolName(wPage, wCode)
		require.True(t, ok)
		assert.Equal(t, tc.winner, name)
	}
}

func TestResolveSymbolUnknown(t *testing.T) {
	_, _, err := ally.ResolveSymbol("KB_NO_SUCH_KEY")
	assert.True(t, ally.IsKind(err, ally.KindUnknownSymbol))

	// Lookups are case-sensitive.
	_, _, err = ally.ResolveSymbol("kb_w")
	assert.True(t, ally.IsKind(err, ally.KindUnknownSymbol))
}

func TestResolveSymbolKnownCodes(t *testing.T) {
	cases := []struct {
		name string
		page ally.Page
		code byte
	}{
		{"PAD_A", ally.PageGamepad, 0x01},
		{"PAD_XBOX", ally.PageGamepad, 0x13},
		{"KB_W", ally.PageKeyboard, 0x1d},
		{"KB_M1", ally.PageKeyboard, 0x8f},
		{"KB_M2", ally.PageKeyboard, 0x8e},
		{"MOUSE_RCLICK", ally.PageMouse, 0x02},
	}
	for _, tc := range cases {
		page, code, err := ally.ResolveSymbol(tc.name)
		require.NoError(t, err, tc.name)
		assert.Equal(t, tc.page, page, tc.name)
		assert.Equal(t, tc.code, code, tc.name)
	}
}

func TestClearSymbols(t *testing.T) {
	assert.True(t, ally.IsClearSymbol(""))
	assert.True(t, ally.IsClearSymbol(" "))
	assert.True(t, ally.IsClearSymbol("\n"))
	assert.False(t, ally.IsClearSymbol("KB_W"))
}

func TestNormalizeAndDisplaySymbol(t *testing.T) {
	assert.Equal(t, "KB_W", ally.NormalizeSymbol("KB W"))
	assert.Equal(t, "MOUSE_WHEEL_UP", ally.NormalizeSymbol("MOUSE WHEEL_UP"))
	assert.Equal(t, "KB_W", ally.NormalizeSymbol("KB_W"))

	assert.Equal(t, "KB W", ally.DisplaySymbol("KB_W"))
	assert.Equal(t, "MOUSE WHEEL_UP", ally.DisplaySymbol("MOUSE_WHEEL_UP"))
	assert.Equal(t, "PAD DPAD_UP", ally.DisplaySymbol("PAD_DPAD_UP"))
}
