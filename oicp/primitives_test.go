package oicp

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strptr(s string) *string { return &s }

func TestRequiredText(t *testing.T) {
	v, err := requiredText("City", strptr("  München "))
	require.NoError(t, err)
	assert.Equal(t, "München", v)

	for name, in := range map[string]*string{"absent": nil, "blank": strptr("   ")} {
		t.Run(name, func(t *testing.T) {
			_, err := requiredText("City", in)
			var target *MissingRequiredElementError
			require.ErrorAs(t, err, &target)
			assert.Equal(t, "City", target.Tag)
		})
	}
}

func TestOptionalBoolDefaultTrue(t *testing.T) {
	assert.True(t, optionalBoolDefaultTrue(nil))
	assert.True(t, optionalBoolDefaultTrue(strptr("")))
	assert.True(t, optionalBoolDefaultTrue(strptr("true")))
	assert.False(t, optionalBoolDefaultTrue(strptr("false")))
}

func TestRequiredBool(t *testing.T) {
	v, err := requiredBool("IsOpen24Hours", strptr("true"))
	require.NoError(t, err)
	assert.True(t, v)

	_, err = requiredBool("IsOpen24Hours", strptr("yes"))
	require.Error(t, err)
}

func TestParseDecimal(t *testing.T) {
	f, err := parseDecimal("Latitude", "48.123700")
	require.NoError(t, err)
	assert.Equal(t, 48.1237, f)

	_, err = parseDecimal("Latitude", "48,1237")
	require.Error(t, err)
	_, err = parseDecimal("Latitude", "north")
	require.Error(t, err)
}

func TestFormatCoordinate(t *testing.T) {
	assert.Equal(t, "49.729122", formatCoordinate(49.729122000001))
	assert.Equal(t, "6.000000", formatCoordinate(6))
	assert.Equal(t, "-0.127500", formatCoordinate(-0.1275))
}

func TestFormatDecimal(t *testing.T) {
	assert.Equal(t, "22", formatDecimal(22))
	assert.Equal(t, "3.7", formatDecimal(3.7))
}
