package interval_test

import (
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/declarative/pkg/interval"
)

func TestCast(t *testing.T) {
	t.Run("compact strings", func(t *testing.T) {
		tests := []struct {
			in   string
			want time.Duration
		}{
			{"10s", 10 * time.Second},
			{"42m", 2520 * time.Second},
			{"1h", 3600 * time.Second},
			{"10d", 864000 * time.Second},
			{"-5s", -5 * time.Second},
			{"-0s", 0},
			{"0d", 0},
			{"007m", 7 * time.Minute},
		}

		for _, tt := range tests {
			t.Run(tt.in, func(t *testing.T) {
				got, err := interval.Cast(tt.in)
				require.NoError(t, err)
				assert.Equal(t, tt.want, got)
			})
		}
	})

	t.Run("integers are seconds", func(t *testing.T) {
		values := []any{3600, int8(60), int16(60), int32(3600), int64(3600), uint(3600), uint8(60), uint16(60), uint32(3600), uint64(3600)}
		for _, v := range values {
			got, err := interval.Cast(v)
			require.NoError(t, err, "%T", v)
			assert.Equal(t, time.Duration(0), got%time.Minute, "%T", v)
		}

		got, err := interval.Cast(3600)
		require.NoError(t, err)
		assert.Equal(t, time.Hour, got)

		got, err = interval.Cast(-30)
		require.NoError(t, err)
		assert.Equal(t, -30*time.Second, got)
	})

	t.Run("named integer types are seconds", func(t *testing.T) {
		type seconds int
		type retries uint16

		got, err := interval.Cast(seconds(5))
		require.NoError(t, err)
		assert.Equal(t, 5*time.Second, got)

		got, err = interval.Cast(seconds(-5))
		require.NoError(t, err)
		assert.Equal(t, -5*time.Second, got)

		got, err = interval.Cast(retries(90))
		require.NoError(t, err)
		assert.Equal(t, 90*time.Second, got)
	})

	t.Run("durations pass through", func(t *testing.T) {
		d := 1500 * time.Millisecond
		got, err := interval.Cast(d)
		require.NoError(t, err)
		assert.Equal(t, d, got)

		got, err = interval.Cast(interval.Of(d))
		require.NoError(t, err)
		assert.Equal(t, d, got)
	})

	t.Run("rejects everything else", func(t *testing.T) {
		values := []any{"abc", "1x", "1H", "10 s", "1h30m", "1.5h", "", "s", "--1s", 1.5, float32(2), true, nil, []int{1}}
		for _, v := range values {
			_, err := interval.Cast(v)
			require.Error(t, err, "%#v", v)
			assert.ErrorIs(t, err, interval.ErrInvalidInterval, "%#v", v)
		}
	})

	t.Run("error message includes the value", func(t *testing.T) {
		_, err := interval.Cast("abc")
		assert.EqualError(t, err, "invalid interval value abc")

		_, err = interval.Cast(1.5)
		assert.EqualError(t, err, "invalid interval value 1.5")
	})

	t.Run("rejects values outside the duration range", func(t *testing.T) {
		values := []any{"99999999999999999999s", "200000000d", int64(math.MaxInt64), uint64(math.MaxUint64)}
		for _, v := range values {
			_, err := interval.Cast(v)
			assert.ErrorIs(t, err, interval.ErrInvalidInterval, "%v", v)
		}
	})

	t.Run("is idempotent", func(t *testing.T) {
		for _, v := range []any{"10s", "42m", "-5s", 3600, 2 * time.Hour} {
			once, err := interval.Cast(v)
			require.NoError(t, err)
			twice, err := interval.Cast(once)
			require.NoError(t, err)
			assert.Equal(t, once, twice)
		}
	})
}

func TestParse(t *testing.T) {
	d, err := interval.Parse("2h")
	require.NoError(t, err)
	assert.Equal(t, 2*time.Hour, d)

	_, err = interval.Parse("3600")
	assert.ErrorIs(t, err, interval.ErrInvalidInterval)

	assert.Equal(t, 3*24*time.Hour, interval.MustParse("3d"))
	assert.Panics(t, func() { interval.MustParse("3w") })
}

func TestFormat(t *testing.T) {
	tests := []struct {
		in   time.Duration
		want string
	}{
		{0, "0s"},
		{10 * time.Second, "10s"},
		{90 * time.Second, "90s"},
		{42 * time.Minute, "42m"},
		{time.Hour, "1h"},
		{36 * time.Hour, "36h"},
		{10 * 24 * time.Hour, "10d"},
		{-5 * time.Second, "-5s"},
		{-time.Hour, "-1h"},
		{1500 * time.Millisecond, "1.5s"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, interval.Format(tt.in))
	}

	for _, tt := range tests[:9] {
		back, err := interval.Parse(interval.Format(tt.in))
		require.NoError(t, err)
		assert.Equal(t, tt.in, back)
	}
}
