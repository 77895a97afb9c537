package typed_flags

import (
	"github.com/dastrobu/md2gdocs/internal/gdocs"
	"github.com/jessevdk/go-flags"
)

// PageBreakStrategy is the --page-breaks flag. "none" disables page breaks.
type PageBreakStrategy gdocs.PageBreakStrategy

const PageBreakNone PageBreakStrategy = "none"

var PageBreakStrategyValues = []PageBreakStrategy{
	PageBreakNone,
	PageBreakStrategy(gdocs.PageBreakH1),
	PageBreakStrategy(gdocs.PageBreakH2),
	PageBreakStrategy(gdocs.PageBreakCustom),
}

var (
	_ flags.Completer   = (*PageBreakStrategy)(nil)
	_ flags.Unmarshaler = (*PageBreakStrategy)(nil)
)

func (s *PageBreakStrategy) Complete(match string) []flags.Completion {
	return completeEnum(PageBreakStrategyValues, match)
}

func (s *PageBreakStrategy) UnmarshalFlag(value string) error {
	return unmarshalEnum(s, PageBreakStrategyValues, "page break strategy", value)
}
