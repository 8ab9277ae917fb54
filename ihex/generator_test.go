package ihex

import (
	"bytes"
	"strings"
	"testing"
)

func TestGenerate(t *testing.T) {
	tests := []struct {
		name         string
		data         []byte
		baseAddr     uint32
		bytesPerLine int
		want         string
		wantErr      bool
		errMsg       string
	}{
		{
			name:         "empty buffer produces only eof",
			data:         nil,
			baseAddr:     0,
			bytesPerLine: 16,
			want:         ":00000001FF\n",
		},
		{
			name:         "single line at address zero",
			data:         []byte{0x01, 0x02, 0x03, 0x04},
			baseAddr:     0,
			bytesPerLine: 16,
			want: ":020000040000FA\n" +
				":0400000001020304F2\n" +
				":00000001FF\n",
		},
		{
			name:         "nonzero base address",
			data:         []byte{0xAA},
			baseAddr:     0x08000000,
			bytesPerLine: 16,
			want: ":020000040800F2\n" +
				":01000000AA55\n" +
				":00000001FF\n",
		},
		{
			name:         "short final chunk",
			data:         []byte{0x01, 0x02, 0x03, 0x04, 0x05},
			baseAddr:     0,
			bytesPerLine: 2,
			want: ":020000040000FA\n" +
				":020000000102FB\n" +
				":020002000304F5\n" +
				":0100040005F6\n" +
				":00000001FF\n",
		},
		{
			name:         "zero line length rejected",
			data:         []byte{0x01},
			baseAddr:     0,
			bytesPerLine: 0,
			wantErr:      true,
			errMsg:       "bytes per line",
		},
		{
			name:         "negative line length rejected",
			data:         []byte{0x01},
			baseAddr:     0,
			bytesPerLine: -16,
			wantErr:      true,
			errMsg:       "bytes per line",
		},
		{
			name:         "line length above record capacity rejected",
			data:         []byte{0x01},
			baseAddr:     0,
			bytesPerLine: 256,
			wantErr:      true,
			errMsg:       "bytes per line",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Generate(tt.data, tt.baseAddr, tt.bytesPerLine)

			if tt.wantErr {
				if err == nil {
					t.Fatalf("Generate() expected error containing %q, got nil", tt.errMsg)
				}
				if !strings.Contains(err.Error(), tt.errMsg) {
					t.Errorf("Generate() error = %q, want containing %q", err.Error(), tt.errMsg)
				}
				if !IsParamError(err) {
					t.Errorf("IsParamError() = false for %v", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("Generate() unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("Generate() =\n%q\nwant\n%q", got, tt.want)
			}
		})
	}
}

func TestGenerateSegmentCrossing(t *testing.T) {
	// 32 bytes starting 16 below the 64 KiB boundary: exactly one extended
	// address record per segment, at the crossing, not one per line.
	data := make([]byte, 32)
	for i := range data {
		data[i] = byte(i)
	}

	text, err := Generate(data, 0xFFF0, 16)
	if err != nil {
		t.Fatalf("Generate() error: %v", err)
	}

	if n := strings.Count(text, ":02000004"); n != 2 {
		t.Errorf("generated %d extended address records, want 2:\n%s", n, text)
	}
	if !strings.Contains(text, ":020000040000FA\n") {
		t.Error("missing extended address record for segment 0")
	}
	if !strings.Contains(text, ":020000040001F9\n") {
		t.Error("missing extended address record for segment 1")
	}

	// Second data record lands at offset 0 of the new segment
	if !strings.Contains(text, ":10000000101112131415161718191A1B1C1D1E1F78\n") {
		t.Errorf("unexpected data record for second segment:\n%s", text)
	}
}

func TestGenerateEveryLineChecksums(t *testing.T) {
	data := make([]byte, 100)
	for i := range data {
		data[i] = byte(i * 3)
	}

	text, err := Generate(data, 0x1000, 32)
	if err != nil {
		t.Fatalf("Generate() error: %v", err)
	}

	for i, line := range strings.Split(strings.TrimSuffix(text, "\n"), "\n") {
		rec, err := DecodeRecord(line)
		if err != nil {
			t.Fatalf("line %d does not round-trip: %v", i+1, err)
		}
		if rec == nil {
			t.Fatalf("line %d was not recognized as a record: %q", i+1, line)
		}
	}
}

func TestGenerateParseRoundTrip(t *testing.T) {
	tests := []struct {
		name         string
		size         int
		baseAddr     uint32
		bytesPerLine int
	}{
		{name: "base zero width 16", size: 300, baseAddr: 0, bytesPerLine: 16},
		{name: "base zero width 32", size: 1024, baseAddr: 0, bytesPerLine: 32},
		{name: "odd width", size: 77, baseAddr: 0, bytesPerLine: 7},
		{name: "high base", size: 500, baseAddr: 0x08000000, bytesPerLine: 16},
		{name: "crossing segments", size: 0x20010, baseAddr: 0xF000, bytesPerLine: 32},
		{name: "single byte", size: 1, baseAddr: 0xFFFF, bytesPerLine: 16},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			data := make([]byte, tt.size)
			for i := range data {
				data[i] = byte(i*31 + 7)
			}

			text, err := Generate(data, tt.baseAddr, tt.bytesPerLine)
			if err != nil {
				t.Fatalf("Generate() error: %v", err)
			}

			img, err := Parse(text)
			if err != nil {
				t.Fatalf("Parse() error: %v", err)
			}
			if img.MinAddress != tt.baseAddr {
				t.Errorf("MinAddress = 0x%08X, want 0x%08X", img.MinAddress, tt.baseAddr)
			}
			if !bytes.Equal(img.Data, data) {
				t.Error("reparsed buffer differs from input")
			}
		})
	}
}
