package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestWindowOverlaps(t *testing.T) {
	tests := []struct {
		name string
		a, b Window
		want bool
	}{
		{
			name: "disjoint windows",
			a:    Window{Start: day(2023, 1, 1), End: day(2023, 6, 30)},
			b:    Window{Start: day(2023, 7, 1), End: day(2023, 12, 31)},
			want: false,
		},
		{
			name: "one month shared",
			a:    Window{Start: day(2023, 1, 1), End: day(2023, 6, 30)},
			b:    Window{Start: day(2023, 6, 1), End: day(2023, 12, 31)},
			want: true,
		},
		{
			name: "touching endpoints do not overlap",
			a:    Window{Start: day(2023, 1, 1), End: day(2023, 6, 30)},
			b:    Window{Start: day(2023, 6, 30), End: day(2023, 12, 31)},
			want: false,
		},
		{
			name: "containment",
			a:    Window{Start: day(2023, 1, 1), End: day(2023, 12, 31)},
			b:    Window{Start: day(2023, 3, 1), End: day(2023, 4, 1)},
			want: true,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, tc.a.Overlaps(tc.b))
			assert.Equal(t, tc.want, tc.b.Overlaps(tc.a))
		})
	}
}

func TestValidateNoOverlap(t *testing.T) {
	existing := []Window{
		{Start: day(2023, 1, 1), End: day(2023, 6, 30)},
	}

	err := ValidateNoOverlap(Window{Start: day(2023, 6, 1), End: day(2023, 12, 31)}, existing)
	assert.ErrorIs(t, err, ErrOverlap)

	err = ValidateNoOverlap(Window{Start: day(2023, 7, 1), End: day(2023, 12, 31)}, existing)
	assert.NoError(t, err)
}
