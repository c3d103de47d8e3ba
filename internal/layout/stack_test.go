package layout

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestDistribute(t *testing.T) {
	type tc struct {
		children  []StackChild
		available int
		want      []int
	}

	tests := map[string]tc{
		"bounded child capped then unbounded absorbs slack": {
			children: []StackChild{
				{Ideal: 50, Min: 0, Max: 100},
				{Ideal: 100, Min: 0, Max: Unbounded},
				{Ideal: 150, Min: 0, Max: 150},
			},
			available: 400,
			want:      []int{100, 150, 150},
		},
		"exact fit leaves ideals untouched": {
			children: []StackChild{
				{Ideal: 30, Min: 0, Max: Unbounded},
				{Ideal: 70, Min: 0, Max: Unbounded},
			},
			available: 100,
			want:      []int{30, 70},
		},
		"surplus split evenly among unbounded": {
			children: []StackChild{
				{Ideal: 10, Min: 0, Max: Unbounded},
				{Ideal: 10, Min: 0, Max: Unbounded},
			},
			available: 31,
			want:      []int{16, 15},
		},
		"least flexible granted first": {
			children: []StackChild{
				{Ideal: 10, Min: 0, Max: 100},
				{Ideal: 10, Min: 0, Max: 15},
			},
			available: 30,
			want:      []int{15, 15},
		},
		"surplus beyond all maxima is left unused": {
			children: []StackChild{
				{Ideal: 10, Min: 0, Max: 20},
				{Ideal: 10, Min: 0, Max: 20},
			},
			available: 100,
			want:      []int{20, 20},
		},
		"deficit taken evenly down to minima": {
			children: []StackChild{
				{Ideal: 50, Min: 40, Max: Unbounded},
				{Ideal: 50, Min: 0, Max: Unbounded},
			},
			available: 60,
			want:      []int{40, 20},
		},
		"deficit cannot shrink below minima": {
			children: []StackChild{
				{Ideal: 50, Min: 50, Max: Unbounded},
				{Ideal: 50, Min: 50, Max: Unbounded},
			},
			available: 10,
			want:      []int{50, 50},
		},
		"empty": {
			children:  nil,
			available: 100,
			want:      []int{},
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			got := Distribute(tt.children, tt.available)
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("Distribute() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestDistribute_SumNeverExceedsAvailable(t *testing.T) {
	children := []StackChild{
		{Ideal: 50, Min: 10, Max: 100},
		{Ideal: 100, Min: 0, Max: Unbounded},
		{Ideal: 150, Min: 150, Max: 150},
	}
	for _, available := range []int{0, 100, 160, 300, 400, 1000} {
		got := Distribute(children, available)
		sum := 0
		for _, n := range got {
			sum += n
		}
		minSum := 160
		if sum > available && sum > minSum {
			t.Errorf("available %d: lengths %v sum to %d, exceeding proposal without a minimum forcing it", available, got, sum)
		}
	}
}

func TestAlignment_Offset(t *testing.T) {
	type tc struct {
		align    Alignment
		allotted int
		child    int
		want     int
	}

	tests := map[string]tc{
		"leading":             {AlignLeading, 100, 40, 0},
		"trailing":            {AlignTrailing, 100, 40, 60},
		"center even":         {AlignCenter, 100, 40, 30},
		"center rounds":       {AlignCenter, 101, 40, 31},
		"child fills allotted": {AlignCenter, 40, 40, 0},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			if got := tt.align.Offset(tt.allotted, tt.child); got != tt.want {
				t.Errorf("Offset(%d, %d) = %d, want %d", tt.allotted, tt.child, got, tt.want)
			}
		})
	}
}
