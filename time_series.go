package magneto

// tSeries keeps the last len(buffer) values of one axis and their range.
type tSeries struct {
	buffer []int16
	idx    int
	n      int

	max int16
	min int16
}

func (t *tSeries) init(size int) {
	t.buffer = make([]int16, size)
	t.idx = size - 1
	t.n = 0
	t.max = 0
	t.min = 0
}

func (t *tSeries) add(entries ...int16) {
	for _, e := range entries {
		t.idx++
		t.idx %= len(t.buffer)

		old := t.buffer[t.idx]
		t.buffer[t.idx] = e

		if t.n < len(t.buffer) {
			t.n++
			if t.n == 1 {
				t.max = e
				t.min = e
			} else {
				t.minmax(e)
			}
			continue
		}

		if old == t.max || old == t.min {
			t.max = e
			t.min = e
			for _, b := range t.buffer {
				t.minmax(b)
			}
		} else {
			t.minmax(e)
		}
	}
}

func (t *tSeries) minmax(v int16) {
	if v > t.max {
		t.max = v
	}
	if v < t.min {
		t.min = v
	}
}

func (t *tSeries) last() int16 {
	return t.buffer[t.idx]
}
