package method

import "github.com/indigo-web/utils/uf"

// Method is an ICAP request method. The zero value is Unknown and is never returned
// by a successful parse.
type Method uint8

const (
	Unknown Method = iota
	REQMOD
	RESPMOD
	OPTIONS
)

// List contains all the valid ICAP methods, sorted by their integer value.
var List = []Method{REQMOD, RESPMOD, OPTIONS}

// InvalidMethod is returned when a token doesn't name an ICAP method. It carries no
// details and its fields are private, so compare against ErrInvalidMethod or use errors.As.
type InvalidMethod struct {
	_ struct{}
}

func (InvalidMethod) Error() string {
	return "icap: invalid method"
}

var ErrInvalidMethod error = InvalidMethod{}

// FromBytes parses the method token. The comparison is byte-exact and case-sensitive,
// no trimming is done.
func FromBytes(token []byte) (Method, error) {
	return Parse(uf.B2S(token))
}

// Parse behaves exactly as FromBytes.
func Parse(token string) (Method, error) {
	switch len(token) {
	case len("REQMOD"):
		if token == "REQMOD" {
			return REQMOD, nil
		}
	case len("RESPMOD"):
		switch token {
		case "RESPMOD":
			return RESPMOD, nil
		case "OPTIONS":
			return OPTIONS, nil
		}
	}

	return Unknown, ErrInvalidMethod
}

// IsValid reports whether m is one of the methods in List.
func (m Method) IsValid() bool {
	return m >= REQMOD && m <= OPTIONS
}

// String returns the canonical uppercase token. Unknown and out-of-range values
// are rendered as an empty string.
func (m Method) String() string {
	lut := [...]string{REQMOD: "REQMOD", RESPMOD: "RESPMOD", OPTIONS: "OPTIONS"}
	if int(m) >= len(lut) {
		return ""
	}

	return lut[m]
}

func (m Method) MarshalText() ([]byte, error) {
	if !m.IsValid() {
		return nil, ErrInvalidMethod
	}

	return []byte(m.String()), nil
}

func (m *Method) UnmarshalText(text []byte) (err error) {
	*m, err = FromBytes(text)
	return err
}
