package secret

import (
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/tombowditch/passgen-serv/internal/config"
	"github.com/tombowditch/passgen-serv/passgen"
)

// ValidationError holds validation failure details.
type ValidationError struct {
	StatusCode int
	Message    string
}

func (e *ValidationError) Error() string {
	return e.Message
}

// charsets maps the names accepted on the wire to the library alphabets.
var charsets = map[string]string{
	"ascii": passgen.ASCII,
	"alnum": passgen.Alphanumeric,
	"hex":   passgen.HexUpper,
}

// CharsetNames returns the accepted charset names for usage text.
func CharsetNames() string {
	return "ascii, alnum, hex"
}

// Request is a validated generation request.
type Request struct {
	Length   int
	Alphabet string
}

// Parse validates a length/charset pair as received from a query string.
// Empty values select the defaults: 24 characters of printable ASCII.
// Returns a *ValidationError with an appropriate status code on failure.
func Parse(lengthStr, charset string) (Request, error) {
	req := Request{
		Length:   config.DefaultLength,
		Alphabet: passgen.ASCII,
	}

	if lengthStr != "" {
		n, err := strconv.Atoi(lengthStr)
		if err != nil {
			return Request{}, &ValidationError{
				StatusCode: http.StatusBadRequest,
				Message:    "length must be a number",
			}
		}
		if n < 1 {
			return Request{}, &ValidationError{
				StatusCode: http.StatusBadRequest,
				Message:    "length must be at least 1",
			}
		}
		if n > config.MaxLength {
			return Request{}, &ValidationError{
				StatusCode: http.StatusBadRequest,
				Message:    fmt.Sprintf("length must be at most %d", config.MaxLength),
			}
		}
		req.Length = n
	}

	if charset != "" {
		alphabet, ok := charsets[strings.ToLower(charset)]
		if !ok {
			return Request{}, &ValidationError{
				StatusCode: http.StatusBadRequest,
				Message:    "unknown charset, pick one of: " + CharsetNames(),
			}
		}
		req.Alphabet = alphabet
	}

	return req, nil
}

// ParseLine validates a single TCP request line of the form
// "[length] [charset]", both parts optional. An empty line selects the
// defaults.
func ParseLine(line string) (Request, error) {
	fields := strings.Fields(strings.TrimSpace(line))

	switch len(fields) {
	case 0:
		return Parse("", "")
	case 1:
		return Parse(fields[0], "")
	case 2:
		return Parse(fields[0], fields[1])
	default:
		return Request{}, &ValidationError{
			StatusCode: http.StatusBadRequest,
			Message:    "expected at most two fields: [length] [charset]",
		}
	}
}
