package image

// Flip reverses d's row order in place (vertical flip).
func Flip(d *Data) {
	if d.IsEmpty() {
		return
	}
	stride := d.Width * 4
	row := make([]byte, stride)
	for top, bottom := 0, d.Height-1; top < bottom; top, bottom = top+1, bottom-1 {
		t := d.Pixels[top*stride : top*stride+stride]
		b := d.Pixels[bottom*stride : bottom*stride+stride]
		copy(row, t)
		copy(t, b)
		copy(b, row)
	}
}

// Flop reverses pixel order within each row in place (horizontal flip).
func Flop(d *Data) {
	if d.IsEmpty() {
		return
	}
	stride := d.Width * 4
	var px [4]byte
	for y := 0; y < d.Height; y++ {
		row := d.Pixels[y*stride : y*stride+stride]
		for left, right := 0, d.Width-1; left < right; left, right = left+1, right-1 {
			l := row[left*4 : left*4+4]
			r := row[right*4 : right*4+4]
			copy(px[:], l)
			copy(l, r)
			copy(r, px[:])
		}
	}
}
