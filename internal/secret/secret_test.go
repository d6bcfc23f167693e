package secret

import (
	"net/http"
	"testing"

	"github.com/tombowditch/passgen-serv/internal/config"
	"github.com/tombowditch/passgen-serv/passgen"
)

func TestParse(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name         string
		lengthStr    string
		charset      string
		wantLength   int
		wantAlphabet string
		wantStatus   int
	}{
		{
			name:         "defaults",
			wantLength:   config.DefaultLength,
			wantAlphabet: passgen.ASCII,
		},
		{
			name:         "explicit length",
			lengthStr:    "64",
			wantLength:   64,
			wantAlphabet: passgen.ASCII,
		},
		{
			name:         "hex charset",
			lengthStr:    "40",
			charset:      "hex",
			wantLength:   40,
			wantAlphabet: passgen.HexUpper,
		},
		{
			name:         "charset name is case insensitive",
			charset:      "ALNUM",
			wantLength:   config.DefaultLength,
			wantAlphabet: passgen.Alphanumeric,
		},
		{
			name:       "non-numeric length",
			lengthStr:  "lots",
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "zero length",
			lengthStr:  "0",
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "negative length",
			lengthStr:  "-4",
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "length above cap",
			lengthStr:  "1025",
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "unknown charset",
			charset:    "emoji",
			wantStatus: http.StatusBadRequest,
		},
	}

	for _, test := range tests {
		test := test
		t.Run(test.name, func(t *testing.T) {
			t.Parallel()

			req, err := Parse(test.lengthStr, test.charset)

			if test.wantStatus != 0 {
				ve, ok := err.(*ValidationError)
				if !ok {
					t.Fatalf("expected *ValidationError, got %v", err)
				}
				if ve.StatusCode != test.wantStatus {
					t.Fatalf("status = %d, want %d", ve.StatusCode, test.wantStatus)
				}
				return
			}

			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if req.Length != test.wantLength {
				t.Errorf("length = %d, want %d", req.Length, test.wantLength)
			}
			if req.Alphabet != test.wantAlphabet {
				t.Errorf("alphabet = %q, want %q", req.Alphabet, test.wantAlphabet)
			}
		})
	}
}

func TestParseLine(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name         string
		line         string
		wantLength   int
		wantAlphabet string
		wantErr      bool
	}{
		{
			name:         "empty line",
			line:         "",
			wantLength:   config.DefaultLength,
			wantAlphabet: passgen.ASCII,
		},
		{
			name:         "whitespace only",
			line:         "  \r\n",
			wantLength:   config.DefaultLength,
			wantAlphabet: passgen.ASCII,
		},
		{
			name:         "length only",
			line:         "16\n",
			wantLength:   16,
			wantAlphabet: passgen.ASCII,
		},
		{
			name:         "length and charset",
			line:         "32 hex\r\n",
			wantLength:   32,
			wantAlphabet: passgen.HexUpper,
		},
		{
			name:    "too many fields",
			line:    "32 hex what",
			wantErr: true,
		},
		{
			name:    "garbage",
			line:    "gimme",
			wantErr: true,
		},
	}

	for _, test := range tests {
		test := test
		t.Run(test.name, func(t *testing.T) {
			t.Parallel()

			req, err := ParseLine(test.line)
			if test.wantErr {
				if err == nil {
					t.Fatal("expected error, got nil")
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if req.Length != test.wantLength {
				t.Errorf("length = %d, want %d", req.Length, test.wantLength)
			}
			if req.Alphabet != test.wantAlphabet {
				t.Errorf("alphabet = %q, want %q", req.Alphabet, test.wantAlphabet)
			}
		})
	}
}
