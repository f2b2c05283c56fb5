package units

import (
	"math/big"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConvertDocumentedExamples(t *testing.T) {
	t.Parallel()

	got, err := Convert(12, "XRB", "raw")
	require.NoError(t, err)
	want := decimal.RequireFromString("12000000000000000000000000000000")
	assert.True(t, got.Equal(want), "got %s", got)

	got, err = Convert("0.4", "krai", "XRB")
	require.NoError(t, err)
	assert.True(t, got.Equal(decimal.RequireFromString("0.0004")), "got %s", got)
}

func TestConvertAcceptedInputKinds(t *testing.T) {
	t.Parallel()

	want := decimal.New(1, 30)

	for _, amount := range []any{
		"1",
		1,
		int64(1),
		uint64(1),
		big.NewInt(1),
		decimal.New(1, 0),
	} {
		got, err := Convert(amount, "XRB", "raw")
		require.NoError(t, err, "amount %T", amount)
		assert.True(t, got.Equal(want), "amount %T: got %s", amount, got)
	}
}

func TestConvertRejectsFloats(t *testing.T) {
	t.Parallel()

	for _, amount := range []any{float64(1), float32(1)} {
		_, err := Convert(amount, "XRB", "raw")

		var invalid *InvalidInputError
		require.ErrorAs(t, err, &invalid, "amount %T", amount)
		assert.Contains(t, invalid.Error(), "string or decimal")
	}
}

func TestConvertFloatBeatsUnknownUnit(t *testing.T) {
	t.Parallel()

	// A float must fail as invalid input even when the unit pair is bad too.
	_, err := Convert(1.5, "bogus", "raw")

	var invalid *InvalidInputError
	require.ErrorAs(t, err, &invalid)
}

func TestConvertRejectsBadString(t *testing.T) {
	t.Parallel()

	_, err := Convert("one", "XRB", "raw")

	var invalid *InvalidInputError
	require.ErrorAs(t, err, &invalid)
}

func TestConvertUnknownUnit(t *testing.T) {
	t.Parallel()

	_, err := Convert("1", "wei", "raw")
	var unknown *UnknownUnitError
	require.ErrorAs(t, err, &unknown)
	assert.Equal(t, "wei", unknown.Unit)

	_, err = Convert("1", "raw", "satoshi")
	require.ErrorAs(t, err, &unknown)
	assert.Equal(t, "satoshi", unknown.Unit)
}

func TestConvertRoundTrip(t *testing.T) {
	t.Parallel()

	amounts := []string{"1", "12", "0.4", "0.000000000001", "987654321.123456789"}
	names := Names()

	for _, from := range names {
		for _, to := range names {
			for _, amount := range amounts {
				x := decimal.RequireFromString(amount)

				there, err := Convert(x, from, to)
				require.NoError(t, err)

				back, err := Convert(there, to, from)
				require.NoError(t, err)

				assert.True(t, back.Equal(x), "%s %s->%s->%s gave %s", amount, from, to, from, back)
			}
		}
	}
}

func TestScale(t *testing.T) {
	t.Parallel()

	raw, err := Scale("raw")
	require.NoError(t, err)
	assert.True(t, raw.Equal(decimal.New(1, 0)))

	xrb, err := Scale("XRB")
	require.NoError(t, err)
	assert.True(t, xrb.Equal(decimal.New(1, 30)))

	_, err = Scale("gwei")
	var unknown *UnknownUnitError
	require.ErrorAs(t, err, &unknown)
}
