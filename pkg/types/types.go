// Package types contains shared data structures used across the application.
package types

// Mode is the OS-wide appearance preference at the instant it was queried.
// The zero value is Light.
type Mode int

const (
	Light Mode = iota
	Dark
)

// String returns "dark" or "light".
func (m Mode) String() string {
	if m == Dark {
		return "dark"
	}
	return "light"
}

// IsDark reports whether m is Dark.
func (m Mode) IsDark() bool {
	return m == Dark
}

// MarshalText implements encoding.TextMarshaler, so JSON output carries the name
func (m Mode) MarshalText() ([]byte, error) {
	return []byte(m.String()), nil
}
