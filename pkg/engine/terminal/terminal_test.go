package terminal

import (
	"testing"
)

func TestGetSize_AlwaysPositive(t *testing.T) {
	w, h := GetSize()
	if w <= 0 || h <= 0 {
		t.Errorf("GetSize() = %d, %d; want positive values", w, h)
	}
}
