package oicp

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseOperatorID(t *testing.T) {
	tests := []struct {
		in      string
		want    string
		compact string
	}{
		{"DE*ABC", "DE*ABC", "DEABC"},
		{"DEABC", "DE*ABC", "DEABC"},
		{"de*abc", "DE*ABC", "DEABC"},
		{"+49*822", "+49*822", "+49*822"},
		{"49*822", "49*822", "49*822"},
	}
	for _, tc := range tests {
		t.Run(tc.in, func(t *testing.T) {
			id, err := ParseOperatorID(tc.in)
			require.NoError(t, err)
			assert.Equal(t, tc.want, id.String())
			assert.Equal(t, tc.compact, id.Compact())
		})
	}
}

func TestParseOperatorIDInvalid(t *testing.T) {
	for _, in := range []string{"", "D*ABC", "DE*ABCD", "DE**ABC", "DE*AB C"} {
		t.Run(in, func(t *testing.T) {
			_, err := ParseOperatorID(in)
			var target *InvalidIdentifierError
			require.ErrorAs(t, err, &target)
			assert.Equal(t, "operator", target.Kind)
		})
	}
}

func TestParseEvseID(t *testing.T) {
	id, err := ParseEvseID("DE*ABC*E1234*5")
	require.NoError(t, err)
	assert.Equal(t, "DE*ABC*E1234*5", id.String())
	assert.Equal(t, "DE*ABC", id.Operator().String())

	compact, err := ParseEvseID("DEABCE1234")
	require.NoError(t, err)
	assert.Equal(t, "DEABCE1234", compact.String())
	assert.Equal(t, "DE*ABC", compact.Operator().String())

	din, err := ParseEvseID("+49*822*1234*5678")
	require.NoError(t, err)
	assert.Equal(t, "+49*822", din.Operator().String())

	_, err = ParseEvseID("DE*ABC*S1234")
	require.Error(t, err)
	_, err = ParseEvseID("garbage")
	require.Error(t, err)
}

func TestStationEquivalent(t *testing.T) {
	id, err := ParseEvseID("DE*ABC*E1234*5")
	require.NoError(t, err)
	st, err := id.StationEquivalent()
	require.NoError(t, err)
	assert.Equal(t, "DE*ABC*S1234*5", st.String())

	din, err := ParseEvseID("+49*822*1234")
	require.NoError(t, err)
	_, err = din.StationEquivalent()
	require.Error(t, err)
}

func TestPoolEquivalent(t *testing.T) {
	id, err := ParseEvseID("DE*ABC*E1234*5")
	require.NoError(t, err)
	pool, err := id.PoolEquivalent()
	require.NoError(t, err)
	assert.Equal(t, "DE*ABC*P1234", pool.String())

	// single-segment suffix has no point number to strip
	flat, err := ParseEvseID("DE*ABC*E1234")
	require.NoError(t, err)
	pool, err = flat.PoolEquivalent()
	require.NoError(t, err)
	assert.Equal(t, "DE*ABC*P1234", pool.String())
}

func TestParseStationAndPoolID(t *testing.T) {
	st, err := ParseStationID("DE*ABC*S1234")
	require.NoError(t, err)
	assert.Equal(t, "DE*ABC*S1234", st.String())

	pool, err := ParsePoolID("DEABCP77*1")
	require.NoError(t, err)
	assert.Equal(t, "DE*ABC*P77*1", pool.String())

	_, err = ParseStationID("DE*ABC*E1234")
	require.Error(t, err)
	_, err = ParsePoolID("DE*ABC*S1234")
	require.Error(t, err)
}

func TestMatchOperatorPrefix(t *testing.T) {
	op, err := ParseOperatorID("DE*ABC")
	require.NoError(t, err)

	tests := []struct {
		text   string
		rest   string
		format string
		ok     bool
	}{
		{"DE*ABC*S5577", "S5577", prefixFormatStar, true},
		{"DE*ABC-Lot 4", "Lot 4", prefixFormatDash, true},
		{"DEABC5577", "5577", prefixFormatCompact, true},
		{"de*abc*5577", "5577", prefixFormatStar, true},
		{"Main Street Garage", "", "", false},
		{"FR*XYZ*S1", "", "", false},
	}
	for _, tc := range tests {
		t.Run(tc.text, func(t *testing.T) {
			rest, format, ok := MatchOperatorPrefix(op, tc.text)
			assert.Equal(t, tc.ok, ok)
			assert.Equal(t, tc.rest, rest)
			assert.Equal(t, tc.format, format)
		})
	}
}

func TestSynthesizeStationID(t *testing.T) {
	op, err := ParseOperatorID("DE*ABC")
	require.NoError(t, err)

	st, ok := SynthesizeStationID(op, "S5577")
	require.True(t, ok)
	assert.Equal(t, "DE*ABC*S5577", st.String())

	st, ok = SynthesizeStationID(op, "Lot 4")
	require.True(t, ok)
	assert.Equal(t, "DE*ABC*SLot4", st.String())

	st, ok = SynthesizeStationID(op, "5577")
	require.True(t, ok)
	assert.Equal(t, "DE*ABC*S5577", st.String())

	_, ok = SynthesizeStationID(op, "***")
	assert.False(t, ok)
	_, ok = SynthesizeStationID(op, "")
	assert.False(t, ok)
}
