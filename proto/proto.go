package proto

// Version is the ICAP protocol version. ICAP/1.0 is the only one existing, therefore
// it is also the zero value. Codecs reject any other version token before reaching here.
type Version uint8

const ICAP10 Version = 0

// Default returns ICAP10.
func Default() Version {
	return ICAP10
}

func (v Version) String() string {
	lut := [...]string{ICAP10: "ICAP/1.0"}
	if int(v) >= len(lut) {
		return ""
	}

	return lut[v]
}

func (v Version) MarshalText() ([]byte, error) {
	return []byte(v.String()), nil
}
