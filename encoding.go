package hexcolor

// MarshalText returns the canonical hex code for c, as produced by String.
// It implements encoding.TextMarshaler, which lets encoding/json, TOML
// decoders, and similar frameworks serialize a Color as a single string
// token. It never fails.
func (c Color) MarshalText() ([]byte, error) { return []byte(c.String()), nil }

// UnmarshalText parses a hex code in any of the forms accepted by Parse.
// It implements encoding.TextUnmarshaler; the error it returns on bad input
// is the *ParseError from Parse, for frameworks to wrap as they see fit.
func (c *Color) UnmarshalText(b []byte) (err error) {
	in, err := Parse(string(b))
	if err == nil {
		*c = in
	}
	return
}
