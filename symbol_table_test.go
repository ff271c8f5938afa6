package fnexpr

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSymbolTable(t *testing.T) {
	global := newSymbolTable(nil)
	assert.NoError(t, global.Define(&symbol{t: symbolFunction, name: "f"}))
	assert.Equal(t, errSymbolExists, global.Define(&symbol{t: symbolFunction, name: "f"}))

	local := newSymbolTable(global)
	assert.NoError(t, local.Define(&symbol{t: symbolParameter, name: "f"}))

	s, ok := local.Get("f")
	assert.True(t, ok)
	assert.Equal(t, symbolParameter, s.t)

	s, ok = global.Get("f")
	assert.True(t, ok)
	assert.Equal(t, symbolFunction, s.t)

	local.Set(&symbol{t: symbolVariable, name: "x"})
	local.Set(&symbol{t: symbolVariable, name: "x"})
	_, ok = local.Get("x")
	assert.True(t, ok)

	_, ok = global.Get("x")
	assert.False(t, ok)
}
