package finance

import (
	"testing"
	"time"
)

func TestMonthRange(t *testing.T) {
	tests := []struct {
		name      string
		today     time.Time
		wantStart time.Time
		wantEnd   time.Time
	}{
		{
			name:      "31-day month",
			today:     date(2025, time.January, 15),
			wantStart: date(2025, time.January, 1),
			wantEnd:   date(2025, time.January, 31),
		},
		{
			name:      "february",
			today:     date(2025, time.February, 10),
			wantStart: date(2025, time.February, 1),
			wantEnd:   date(2025, time.February, 28),
		},
		{
			name:      "february leap year",
			today:     date(2024, time.February, 29),
			wantStart: date(2024, time.February, 1),
			wantEnd:   date(2024, time.February, 29),
		},
		{
			name:      "30-day month",
			today:     date(2025, time.April, 1),
			wantStart: date(2025, time.April, 1),
			wantEnd:   date(2025, time.April, 30),
		},
		{
			name:      "december stays inside the year",
			today:     date(2025, time.December, 31),
			wantStart: date(2025, time.December, 1),
			wantEnd:   date(2025, time.December, 31),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			start, end := MonthRange(tt.today)
			if !start.Equal(tt.wantStart) {
				t.Errorf("start = %v, want %v", start, tt.wantStart)
			}
			if !end.Equal(tt.wantEnd) {
				t.Errorf("end = %v, want %v", end, tt.wantEnd)
			}
		})
	}
}
