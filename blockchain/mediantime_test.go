// Copyright (c) 2013-2017 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package blockchain

import (
	"testing"
)

// TestCalcPastMedianTime ensures the median of the previous timestamps is
// computed the way the consensus rules do, including for short chains.
func TestCalcPastMedianTime(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		times []int64
		want  int64
	}{
		{"genesis only", []int64{100}, 100},
		{"two blocks", []int64{10, 30}, 30},
		{"three unordered", []int64{10, 30, 20}, 20},
		{"eleven ascending", []int64{1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11}, 6},
		{"eleven unordered", []int64{11, 1, 10, 2, 9, 3, 8, 4, 7, 5, 6}, 6},
		{
			name:  "only the last eleven count",
			times: []int64{1000, 1000, 1000, 1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11},
			want:  6,
		},
		{
			name:  "timestamps may go backwards",
			times: []int64{50, 40, 30, 20, 10, 60, 70, 80, 90, 100, 5},
			want:  50,
		},
	}

	for _, test := range tests {
		c := chainFromTimes(test.times...)
		got := CalcPastMedianTime(c.tip(), c)
		if got != test.want {
			t.Errorf("%s: got %d, want %d", test.name, got, test.want)
		}
	}

	if got := CalcPastMedianTime(nil, &testChain{}); got != 0 {
		t.Errorf("nil node: got %d, want 0", got)
	}
}
