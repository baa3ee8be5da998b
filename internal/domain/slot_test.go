package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/m04kA/SMC-InspectionService/pkg/types"
)

func TestNeedsTwoSlots(t *testing.T) {
	tests := []struct {
		name       string
		areaM2     float64
		furnishing Furnishing
		kind       InspectionKind
		expected   bool
	}{
		{"large unfurnished entry", 120, FurnishingUnfurnished, KindEntry, true},
		{"small furnished entry", 45, FurnishingFurnished, KindEntry, true},
		{"boundary area entry", 100, FurnishingSemi, KindEntry, true},
		{"small semi furnished exit", 60, FurnishingSemi, KindExit, false},
		{"review never takes two slots", 200, FurnishingFurnished, KindReview, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, NeedsTwoSlots(tt.areaM2, tt.furnishing, tt.kind))
		})
	}
}

func TestSamePeriod(t *testing.T) {
	morning := types.TimeString("09:00")
	lateMorning := types.TimeString("11:30")
	noon := types.TimeString("12:00")
	afternoon := types.TimeString("15:00")

	assert.True(t, SamePeriod(morning, lateMorning))
	assert.True(t, SamePeriod(noon, afternoon))
	assert.False(t, SamePeriod(lateMorning, noon))
	assert.False(t, SamePeriod(morning, afternoon))
}

func TestInspectionKind_BookedStatus(t *testing.T) {
	assert.Equal(t, StatusBookedEntry, KindEntry.BookedStatus())
	assert.Equal(t, StatusBookedExit, KindExit.BookedStatus())
	assert.Equal(t, StatusBookedReview, KindReview.BookedStatus())
	assert.Equal(t, SlotStatus(""), InspectionKind("UNKNOWN").BookedStatus())
}

func TestSlotStatus_Transitions(t *testing.T) {
	assert.True(t, StatusBookedEntry.IsBooked())
	assert.True(t, StatusBookedReview.IsBooked())
	assert.False(t, StatusFree.IsBooked())
	assert.False(t, StatusClosed.IsBooked())
	assert.False(t, StatusFailedVisit.IsBooked())

	assert.Equal(t, KindExit, StatusBookedExit.Kind())
	assert.Equal(t, InspectionKind(""), StatusFree.Kind())
}

func TestSlot_IsFree(t *testing.T) {
	free := &Slot{Available: true, Status: StatusFree}
	booked := &Slot{Available: false, Status: StatusBookedEntry}

	assert.True(t, free.IsFree())
	assert.False(t, booked.IsFree())
}
