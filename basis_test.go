package pauliqasm

import (
	"errors"
	"reflect"
	"testing"
)

func TestDecompose(t *testing.T) {
	tests := []struct {
		basis string
		want  BasisIndices
	}{
		{"X", BasisIndices{X: []int{1}}},
		{"IIII", BasisIndices{}},
		{"XYZ", BasisIndices{X: []int{1}, Y: []int{2}, Z: []int{3}}},
		{"IXIXI", BasisIndices{X: []int{2, 4}}},
		{"ZYXIZ", BasisIndices{X: []int{3}, Y: []int{2}, Z: []int{1, 5}}},
		{"YYYY", BasisIndices{Y: []int{1, 2, 3, 4}}},
		{"", BasisIndices{}},
	}

	for _, tt := range tests {
		got, err := Decompose(tt.basis)
		if err != nil {
			t.Errorf("Decompose(%q): unexpected error %v", tt.basis, err)
			continue
		}
		if !reflect.DeepEqual(got, tt.want) {
			t.Errorf("Decompose(%q) = %+v, want %+v", tt.basis, got, tt.want)
		}
	}
}

func TestDecomposeBadCharacter(t *testing.T) {
	tests := []struct {
		basis string
		char  rune
		pos   int
	}{
		{"XAZ", 'A', 2},
		{"h", 'h', 1},
		{"IIx", 'x', 3},
	}

	for _, tt := range tests {
		_, err := Decompose(tt.basis)
		var de *DecodeError
		if !errors.As(err, &de) {
			t.Errorf("Decompose(%q): expected DecodeError, got %v", tt.basis, err)
			continue
		}
		if de.Char != tt.char || de.Pos != tt.pos {
			t.Errorf("Decompose(%q): got char %q pos %d, want char %q pos %d",
				tt.basis, de.Char, de.Pos, tt.char, tt.pos)
		}
	}
}

func TestPivot(t *testing.T) {
	tests := []struct {
		basis string
		want  int
	}{
		{"X", 1},
		{"XZ", 2},
		{"ZIIX", 4},
		{"IYI", 2},
		{"III", 0},
		{"", 0},
	}

	for _, tt := range tests {
		ix, err := Decompose(tt.basis)
		if err != nil {
			t.Fatalf("Decompose(%q): %v", tt.basis, err)
		}
		if got := ix.pivot(); got != tt.want {
			t.Errorf("pivot(%q) = %d, want %d", tt.basis, got, tt.want)
		}
	}
}
