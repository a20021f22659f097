package utils

import (
	"reflect"
	"testing"
)

func TestFilterArray(t *testing.T) {
	input := []int{1, 2, 3, 4, 5}

	got := FilterArray(input, func(n int) bool { return n%2 == 0 })
	if !reflect.DeepEqual(got, []int{2, 4}) {
		t.Errorf("FilterArray() = %v, want [2 4]", got)
	}

	none := FilterArray(input, func(int) bool { return false })
	if len(none) != 0 {
		t.Errorf("FilterArray() = %v, want empty", none)
	}
}
