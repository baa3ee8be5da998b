package types

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTimeStringFromString(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		ts, err := NewTimeStringFromString("09:30")
		require.NoError(t, err)
		assert.Equal(t, TimeString("09:30"), ts)
	})

	t.Run("invalid", func(t *testing.T) {
		for _, s := range []string{"25:00", "09:70", "9:00", "0900", "", "abc"} {
			_, err := NewTimeStringFromString(s)
			assert.ErrorIs(t, err, ErrInvalidTimeString, "input %q", s)
		}
	})
}

func TestNewTimeString(t *testing.T) {
	ts := NewTimeString(time.Date(2026, 9, 7, 14, 5, 59, 0, time.UTC))
	assert.Equal(t, TimeString("14:05"), ts)
}

func TestTimeString_Hour(t *testing.T) {
	assert.Equal(t, 9, TimeString("09:30").Hour())
	assert.Equal(t, 0, TimeString("00:15").Hour())
	assert.Equal(t, 23, TimeString("23:59").Hour())
	assert.Equal(t, 0, TimeString("bad").Hour())
}

func TestTimeString_Compare(t *testing.T) {
	assert.True(t, TimeString("09:00").IsBefore("10:30"))
	assert.False(t, TimeString("10:30").IsBefore("09:00"))
	assert.False(t, TimeString("09:00").IsBefore("09:00"))

	assert.True(t, TimeString("14:00").IsAfter("11:59"))
	assert.False(t, TimeString("14:00").IsAfter("14:00"))

	// строковый порядок совпадает с хронологическим
	assert.True(t, TimeString("09:00") < TimeString("10:30"))
}

func TestTimeString_AddMinutes(t *testing.T) {
	ts, err := TimeString("09:30").AddMinutes(45)
	require.NoError(t, err)
	assert.Equal(t, TimeString("10:15"), ts)

	ts, err = TimeString("23:30").AddMinutes(60)
	require.NoError(t, err)
	assert.Equal(t, TimeString("00:30"), ts)

	ts, err = TimeString("00:30").AddMinutes(-60)
	require.NoError(t, err)
	assert.Equal(t, TimeString("23:30"), ts)

	_, err = TimeString("bad").AddMinutes(10)
	assert.ErrorIs(t, err, ErrInvalidTimeString)
}
