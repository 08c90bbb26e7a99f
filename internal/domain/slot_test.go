package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateDaySlots(t *testing.T) {
	slots := GenerateDaySlots()

	require.Len(t, slots, SlotsPerDay)

	assert.Equal(t, "00:00-00:30", slots[0])
	assert.Equal(t, "00:30-01:00", slots[1])
	assert.Equal(t, "09:00-09:30", slots[18])
	assert.Equal(t, "23:00-23:30", slots[46])
	assert.Equal(t, "23:30-24:00", slots[47])

	// Переход через границу часа не ломает формат
	assert.Contains(t, slots, "12:30-13:00")

	seen := make(map[string]struct{}, len(slots))
	for _, slot := range slots {
		_, dup := seen[slot]
		assert.False(t, dup, "duplicate slot %s", slot)
		seen[slot] = struct{}{}
	}
}

func TestIsValidSlot(t *testing.T) {
	tests := []struct {
		slot  string
		valid bool
	}{
		{"00:00-00:30", true},
		{"09:00-09:30", true},
		{"23:30-24:00", true},
		{"09:00-10:00", false}, // часовой интервал, не из каталога
		{"9:00-9:30", false},   // без ведущих нулей
		{"23:30-00:00", false},
		{"", false},
		{"garbage", false},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.valid, IsValidSlot(tt.slot), "slot %q", tt.slot)
	}
}
