package hostname

import (
	"errors"
	"testing"
)

func TestParseNodename(t *testing.T) {
	tests := []struct {
		name    string
		buf     []byte
		want    string
		wantErr error
	}{
		{
			name: "simple hostname",
			buf:  []byte("sled-17\x00\x00\x00"),
			want: "sled-17",
		},
		{
			name: "terminator at start yields empty name",
			buf:  []byte{0, 'x', 'y'},
			want: "",
		},
		{
			name: "utf8 hostname",
			buf:  append([]byte("h\xc3\xa9bergeur"), 0),
			want: "hébergeur",
		},
		{
			name:    "missing terminator",
			buf:     []byte("no-null-here"),
			wantErr: ErrMissingNull,
		},
		{
			name:    "invalid utf8 prefix",
			buf:     []byte{'a', 0xff, 0xfe, 'b', 0},
			wantErr: ErrNonUTF8,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := parseNodename(tt.buf)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("parseNodename() error = %v, want %v", err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("parseNodename() error = %v", err)
			}
			if got != tt.want {
				t.Errorf("parseNodename() = %q, want %q", got, tt.want)
			}
		})
	}
}
