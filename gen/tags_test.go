package gen

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDirectivesEmpty(t *testing.T) {
	d, err := parseDirectives("")
	require.NoError(t, err)
	assert.Equal(t, directives{}, d)
}

func TestParseDirectivesAllKeys(t *testing.T) {
	d, err := parseDirectives("rename=p,len=10,ty=string,also_as=Price,offset=1,decoder")
	require.NoError(t, err)

	assert.Equal(t, "p", d.rename)
	assert.True(t, d.hasLen)
	assert.Equal(t, 10, d.lenVal)
	assert.Equal(t, "string", d.ty)
	assert.Equal(t, "Price", d.alsoAs)
	assert.Equal(t, 1, d.offset)
	assert.True(t, d.isDecoder)
}

func TestParseDirectivesUnknownKey(t *testing.T) {
	_, err := parseDirectives("bogus=1")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrUnknownDirective)
}

func TestParseDirectivesBadLen(t *testing.T) {
	_, err := parseDirectives("len=notanumber")
	require.Error(t, err)
	assert.False(t, errors.Is(err, ErrUnknownDirective))
}

func TestParseDirectivesBareDecoderFlag(t *testing.T) {
	d, err := parseDirectives("decoder")
	require.NoError(t, err)
	assert.True(t, d.isDecoder)
}

func TestParseDirectivesExplicitDecoderFalse(t *testing.T) {
	d, err := parseDirectives("decoder=false")
	require.NoError(t, err)
	assert.False(t, d.isDecoder)
}
