package clock

import (
	"testing"
	"time"

	"github.com/douhashi/coincidence/internal/testutil/helpers"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWithFixed(t *testing.T) {
	tests := []struct {
		name         string
		fake         time.Time
		expectedDate time.Time
	}{
		{
			name:         "early morning",
			fake:         time.Date(2020, 10, 13, 2, 20, 0, 0, time.UTC),
			expectedDate: time.Date(2020, 10, 13, 0, 0, 0, 0, time.UTC),
		},
		{
			name:         "mid morning",
			fake:         time.Date(2020, 7, 4, 10, 0, 0, 0, time.UTC),
			expectedDate: time.Date(2020, 7, 4, 0, 0, 0, 0, time.UTC),
		},
		{
			name:         "non-UTC location keeps its own calendar day",
			fake:         helpers.MustParseTime(t, "2020-07-04T00:30:00+09:00"),
			expectedDate: time.Date(2020, 7, 4, 0, 0, 0, 0, time.FixedZone("", 9*60*60)),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			historical := time.Date(2019, 10, 13, 2, 20, 0, 0, time.UTC)

			WithFixed(tt.fake, func() {
				assert.True(t, Now().Equal(tt.fake))
				assert.True(t, Today().Equal(tt.expectedDate))
				assert.True(t, Current().Today().Equal(DateOf(Now())))

				// 通常のtime.Timeとの演算が成立する
				assert.Equal(t, tt.fake.Sub(historical), Now().Sub(historical))
				assert.True(t, Now().After(historical))
			})

			assert.IsType(t, Real{}, Current())
		})
	}
}

func TestWithFixed_ElapsedDuration(t *testing.T) {
	WithFixed(FixedDateTime, func() {
		elapsed := Now().Sub(time.Date(2019, 10, 13, 2, 20, 0, 0, time.UTC))
		assert.Equal(t, 366*24*time.Hour, elapsed)
	})
}

func TestWithFixed_RestoresAfterPanic(t *testing.T) {
	before := Current()

	assert.PanicsWithValue(t, "boom", func() {
		WithFixed(FixedDateTime, func() {
			panic("boom")
		})
	})

	assert.Equal(t, before, Current())
	assert.False(t, Now().Equal(FixedDateTime))
}

func TestWithFixed_Nested(t *testing.T) {
	outer := time.Date(2021, 1, 1, 12, 0, 0, 0, time.UTC)
	inner := time.Date(2022, 2, 2, 12, 0, 0, 0, time.UTC)

	WithFixed(outer, func() {
		WithFixed(inner, func() {
			assert.True(t, Now().Equal(inner))
		})
		assert.True(t, Now().Equal(outer), "inner scope must restore the outer override")
	})
}

func TestRoundTrip(t *testing.T) {
	before := Now()
	WithFixed(FixedDateTime, func() {})
	after := Now()

	assert.False(t, after.Before(before))
	assert.Less(t, after.Sub(before), time.Minute)
}

func TestSet(t *testing.T) {
	t.Run("restoreは冪等", func(t *testing.T) {
		outer := Set(NewFixed(FixedDateTime))
		defer outer()

		restore := Set(NewFixed(time.Date(2000, 1, 1, 0, 0, 0, 0, time.UTC)))
		restore()
		restore()

		assert.True(t, Now().Equal(FixedDateTime))
	})

	t.Run("nilは実時計として扱う", func(t *testing.T) {
		restore := Set(nil)
		defer restore()

		assert.IsType(t, Real{}, Current())
	})
}

func TestFreeze(t *testing.T) {
	t.Run("frozen", func(t *testing.T) {
		c := Freeze(t, FixedDateTime)
		assert.True(t, Now().Equal(FixedDateTime))
		assert.True(t, c.Now().Equal(FixedDateTime))
	})

	require.IsType(t, Real{}, Current(), "cleanup must restore the wall clock")
}

func TestReal(t *testing.T) {
	var c Clock = Real{}
	before := time.Now()
	now := c.Now()
	assert.False(t, now.Before(before))

	today := c.Today()
	assert.Equal(t, 0, today.Hour())
	assert.Equal(t, 0, today.Minute())
	assert.Equal(t, DateOf(time.Now()).Year(), today.Year())
}

func TestDateOf(t *testing.T) {
	in := time.Date(2022, 4, 23, 16, 3, 6, 123, time.UTC)
	assert.Equal(t, time.Date(2022, 4, 23, 0, 0, 0, 0, time.UTC), DateOf(in))
}
