package tools

import (
	"fmt"

	"github.com/dastrobu/md2gdocs/internal/gdocs"
)

// OutputFormatDefault is used when no output format is given.
const OutputFormatDefault = gdocs.OutputSingle

// ValidateAndNormalizeOutputFormat checks the optional output format
// argument. Nil or blank selects the default.
func ValidateAndNormalizeOutputFormat(format *string) (gdocs.OutputFormat, error) {
	if format == nil {
		return OutputFormatDefault, nil
	}
	normalized, err := gdocs.ParseOutputFormat(*format)
	if err != nil {
		return "", fmt.Errorf("invalid output_format: %w", err)
	}
	return normalized, nil
}

// ValidateAndNormalizePageBreaks checks the optional page break arguments.
// A marker is required for the custom strategy and ignored otherwise.
func ValidateAndNormalizePageBreaks(strategy, marker *string) (gdocs.PageBreakStrategy, string, error) {
	if strategy == nil {
		return gdocs.PageBreakNone, "", nil
	}
	normalized, err := gdocs.ParsePageBreakStrategy(*strategy)
	if err != nil {
		return "", "", fmt.Errorf("invalid page_breaks: %w", err)
	}
	if normalized != gdocs.PageBreakCustom {
		return normalized, "", nil
	}
	if marker == nil || *marker == "" {
		return "", "", fmt.Errorf("page_break_marker is required when page_breaks is %q", gdocs.PageBreakCustom)
	}
	return normalized, *marker, nil
}
