package oicp

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeStatusCode(t *testing.T) {
	desc := "Success"
	code, err := decodeStatusCode(&statusCodeXML{Code: "000", Description: &desc})
	require.NoError(t, err)
	assert.True(t, code.HasResult())
	assert.Equal(t, "Success", code.Description)

	code, err = decodeStatusCode(&statusCodeXML{Code: "021"})
	require.NoError(t, err)
	assert.False(t, code.HasResult())
	assert.Equal(t, int16(21), code.Code)

	_, err = decodeStatusCode(&statusCodeXML{Code: "abc"})
	require.Error(t, err)
}

func TestEncodeStatusCodeThreeDigits(t *testing.T) {
	x := encodeStatusCode(Success())
	assert.Equal(t, "000", x.Code)
	require.NotNil(t, x.Description)
	assert.Equal(t, "Success", *x.Description)
	assert.Nil(t, x.AdditionalInfo)

	x = encodeStatusCode(StatusCode{Code: 21, Description: "System Error"})
	assert.Equal(t, "021", x.Code)
}

func TestLocalFaultStaysNegative(t *testing.T) {
	fault := LocalFault("endpoint unreachable")
	assert.False(t, fault.HasResult())

	x := encodeStatusCode(fault)
	assert.Equal(t, "-1", x.Code)
}
