package image

import (
	"reflect"
	"testing"
)

func TestFlip(t *testing.T) {
	d := Data{Width: 1, Height: 3, Pixels: []byte{
		1, 1, 1, 1,
		2, 2, 2, 2,
		3, 3, 3, 3,
	}}
	Flip(&d)
	want := []byte{
		3, 3, 3, 3,
		2, 2, 2, 2,
		1, 1, 1, 1,
	}
	if !reflect.DeepEqual(d.Pixels, want) {
		t.Errorf("Flip: got %v, want %v", d.Pixels, want)
	}
}

func TestFlop(t *testing.T) {
	d := Data{Width: 3, Height: 1, Pixels: []byte{
		1, 1, 1, 1,
		2, 2, 2, 2,
		3, 3, 3, 3,
	}}
	Flop(&d)
	want := []byte{
		3, 3, 3, 3,
		2, 2, 2, 2,
		1, 1, 1, 1,
	}
	if !reflect.DeepEqual(d.Pixels, want) {
		t.Errorf("Flop: got %v, want %v", d.Pixels, want)
	}
}

func TestFlipFlopEmpty(t *testing.T) {
	d := Data{}
	Flip(&d)
	Flop(&d)
	if !d.IsEmpty() {
		t.Error("expected empty image to remain empty")
	}
}
