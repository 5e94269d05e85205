package dds

import (
	"bytes"
	"encoding/binary"
	"testing"
)

func readHeader(t *testing.T, data []byte, hdr *Header) {
	t.Helper()
	if err := binary.Read(bytes.NewReader(data[:128]), binary.LittleEndian, hdr); err != nil {
		t.Fatalf("readHeader: %v", err)
	}
}

func readDX10(t *testing.T, data []byte, dx10 *DX10Header) {
	t.Helper()
	if len(data) < 148 {
		t.Fatalf("file too short for a DX10 header: %d bytes", len(data))
	}
	if err := binary.Read(bytes.NewReader(data[128:148]), binary.LittleEndian, dx10); err != nil {
		t.Fatalf("readDX10: %v", err)
	}
}
