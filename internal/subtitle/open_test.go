package subtitle

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func writeFile(t *testing.T, name string, data []byte) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, data, 0644); err != nil {
		t.Fatalf("failed to write test file: %v", err)
	}
	return path
}

func TestOpen(t *testing.T) {
	content := "\ufeff1\r\n00:00:01,000 --> 00:00:04,000\r\nHello, world!\r\n\r\n" +
		"2\r\n00:00:05,500 --> 00:00:08,200\r\nThis is a test.\r\nWith multiple lines.\r\n"
	path := writeFile(t, "test.srt", []byte(content))

	doc, err := Open(path, ParseOptions{})
	if err != nil {
		t.Fatalf("failed to open SRT file: %v", err)
	}

	want := []Cue{
		{Number: 1, Begin: "00:00:01,000", End: "00:00:04,000", Text: "Hello, world!"},
		{Number: 2, Begin: "00:00:05,500", End: "00:00:08,200", Text: "This is a test.\nWith multiple lines."},
	}
	if diff := cmp.Diff(want, doc.Cues); diff != "" {
		t.Errorf("cues mismatch (-want +got):\n%s", diff)
	}
}

func TestOpenNotFound(t *testing.T) {
	_, err := Open(filepath.Join(t.TempDir(), "missing.srt"), ParseOptions{})
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
	if !errors.Is(err, os.ErrNotExist) {
		t.Errorf("expected wrapped os.ErrNotExist, got %v", err)
	}
}

func TestOpenInvalidUTF8(t *testing.T) {
	path := writeFile(t, "bad.srt", []byte("1\n00:00:01,000 --> 00:00:02,000\n\xff\xfe\xfd broken\n"))

	_, err := Open(path, ParseOptions{})
	if !errors.Is(err, ErrDecode) {
		t.Fatalf("expected ErrDecode, got %v", err)
	}
}

func TestOpenStrictError(t *testing.T) {
	path := writeFile(t, "strict.srt", []byte("1\nnot a timing line\ntext\n"))

	_, err := Open(path, ParseOptions{Strict: true})
	var perr *ParseError
	if !errors.As(err, &perr) {
		t.Fatalf("expected *ParseError, got %v", err)
	}
	if perr.Line != 2 {
		t.Errorf("expected line 2, got %d", perr.Line)
	}
}

func TestDecode(t *testing.T) {
	tests := []struct {
		name string
		raw  []byte
		want string
	}{
		{
			name: "plain utf-8",
			raw:  []byte("héllo\nworld"),
			want: "héllo\nworld",
		},
		{
			name: "utf-8 bom",
			raw:  []byte("\xef\xbb\xbf1\n"),
			want: "1\n",
		},
		{
			name: "crlf and cr",
			raw:  []byte("a\r\nb\rc"),
			want: "a\nb\nc",
		},
		{
			name: "utf-16 little endian",
			raw:  []byte{0xFF, 0xFE, 'h', 0x00, 'i', 0x00, '\n', 0x00},
			want: "hi\n",
		},
		{
			name: "utf-16 big endian",
			raw:  []byte{0xFE, 0xFF, 0x00, 'h', 0x00, 'i'},
			want: "hi",
		},
		{
			name: "empty",
			raw:  nil,
			want: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Decode(tt.raw)
			if err != nil {
				t.Fatalf("Decode returned error: %v", err)
			}
			if got != tt.want {
				t.Errorf("Decode = %q, want %q", got, tt.want)
			}
		})
	}
}
