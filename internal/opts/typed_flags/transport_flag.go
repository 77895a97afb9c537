package typed_flags

import (
	"github.com/jessevdk/go-flags"
)

type Transport string

const (
	TransportStdio Transport = "stdio"
	TransportHTTP  Transport = "http"
)

var TransportValues = []Transport{
	TransportStdio,
	TransportHTTP,
}

var (
	_ flags.Completer   = (*Transport)(nil)
	_ flags.Unmarshaler = (*Transport)(nil)
)

func (t *Transport) Complete(match string) []flags.Completion {
	return completeEnum(TransportValues, match)
}

// UnmarshalFlag validates the value is one of the allowed values.
func (t *Transport) UnmarshalFlag(value string) error {
	return unmarshalEnum(t, TransportValues, "transport", value)
}
