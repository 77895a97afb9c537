package typed_flags

import (
	"github.com/dastrobu/md2gdocs/internal/gdocs"
	"github.com/jessevdk/go-flags"
)

// OutputFormat is the --output-format flag of the convert_markdown tool.
type OutputFormat gdocs.OutputFormat

var OutputFormatValues = []OutputFormat{
	OutputFormat(gdocs.OutputSingle),
	OutputFormat(gdocs.OutputMultiple),
}

var (
	_ flags.Completer   = (*OutputFormat)(nil)
	_ flags.Unmarshaler = (*OutputFormat)(nil)
)

func (f *OutputFormat) Complete(match string) []flags.Completion {
	return completeEnum(OutputFormatValues, match)
}

func (f *OutputFormat) UnmarshalFlag(value string) error {
	return unmarshalEnum(f, OutputFormatValues, "output format", value)
}
