package magneto

import "testing"

func TestTSeries(t *testing.T) {
	var ts tSeries
	ts.init(4)

	tests := []struct {
		add      int16
		min, max int16
	}{
		{-3, -3, -3},
		{5, -3, 5},
		{2, -3, 5},
		{1, -3, 5},
		// -3 drops out of the window.
		{4, 1, 5},
		// 5 drops out of the window.
		{3, 1, 4},
		{-32768, -32768, 4},
		{32767, -32768, 32767},
	}
	for i, tt := range tests {
		ts.add(tt.add)
		if ts.min != tt.min || ts.max != tt.max {
			t.Errorf("after add #%d (%d): min, max = %d, %d; want %d, %d", i, tt.add, ts.min, ts.max, tt.min, tt.max)
		}
		if got := ts.last(); got != tt.add {
			t.Errorf("after add #%d: last() = %d, want %d", i, got, tt.add)
		}
	}
}
