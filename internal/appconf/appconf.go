package appconf

import "strings"

// Environment identifies the operating environment the process runs in.
type Environment int

const (
	Test Environment = iota
	Development
	Production
)

// EnvFromString maps an environment name to its Environment value.
// Unknown names fall back to Development.
func EnvFromString(name string) Environment {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "test":
		return Test
	case "production", "prod":
		return Production
	default:
		return Development
	}
}

func (e Environment) String() string {
	switch e {
	case Test:
		return "test"
	case Production:
		return "production"
	default:
		return "development"
	}
}
