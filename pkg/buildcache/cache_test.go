package buildcache

import (
	"bytes"
	"testing"
)

func TestKeyDeterministic(t *testing.T) {
	a := Key([]byte("source bytes"), "scale=1;flip=true")
	b := Key([]byte("source bytes"), "scale=1;flip=true")
	if a != b {
		t.Errorf("Key is not deterministic: %q != %q", a, b)
	}
}

func TestKeyDependsOnOptions(t *testing.T) {
	a := Key([]byte("source bytes"), "scale=1")
	b := Key([]byte("source bytes"), "scale=0.5")
	if a == b {
		t.Error("Key should differ when options differ")
	}
}

func TestEncodeDecodeRoundTrip(t *testing.T) {
	data := bytes.Repeat([]byte{1, 2, 3, 4}, 1000)
	var buf bytes.Buffer
	if err := encode(&buf, data); err != nil {
		t.Fatalf("encode: %v", err)
	}
	got, err := decode(&buf)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if !bytes.Equal(got, data) {
		t.Error("round trip did not preserve data")
	}
}

func TestDecodeRejectsTruncated(t *testing.T) {
	if _, err := decode(bytes.NewReader([]byte{1, 2, 3})); err == nil {
		t.Error("expected an error for a truncated entry")
	}
}

func TestCacheMissOnEmptyDir(t *testing.T) {
	c := &Cache{}
	if _, ok := c.Get("anything"); ok {
		t.Error("expected a miss for a Cache with no directory")
	}
}

func TestCacheGetPutRoundTrip(t *testing.T) {
	dir := t.TempDir()
	c := &Cache{dir: dir}
	pixels := bytes.Repeat([]byte{9, 8, 7, 6}, 16)

	if _, ok := c.Get("k"); ok {
		t.Fatal("expected a miss before Put")
	}
	c.Put("k", pixels)
	got, ok := c.Get("k")
	if !ok {
		t.Fatal("expected a hit after Put")
	}
	if !bytes.Equal(got, pixels) {
		t.Error("cached pixels do not match what was stored")
	}
}
