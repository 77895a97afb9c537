// Package tools implements the MCP tools served by md2gdocs.
package tools

import (
	"context"
	"fmt"

	"github.com/dastrobu/md2gdocs/internal/gdocs"
	"github.com/dastrobu/md2gdocs/internal/log"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

type ConvertMarkdownInput struct {
	Markdown        string  `json:"markdown" jsonschema:"Markdown source to convert"`
	Title           string  `json:"title" jsonschema:"Title of the Google Doc to create"`
	OutputFormat    *string `json:"output_format,omitempty" jsonschema:"Output format: 'single' (one batchUpdate body) or 'multiple' (also lists each request with a request id). Default is 'single'."`
	StartIndex      *int    `json:"start_index,omitempty" jsonschema:"Document index to insert at. Default is 1, the start of an empty document."`
	PageBreaks      *string `json:"page_breaks,omitempty" jsonschema:"Page break strategy: 'h1' (before every H1 but the first), 'h2' (before every H2) or 'custom' (replace page_break_marker). Omit for none."`
	PageBreakMarker *string `json:"page_break_marker,omitempty" jsonschema:"Literal text replaced by a page break when page_breaks is 'custom'"`
}

func RegisterConvertMarkdown(srv *mcp.Server, converter *gdocs.Converter) {
	mcp.AddTool(srv,
		&mcp.Tool{
			Name:        "convert_markdown",
			Description: "Converts Markdown into Google Docs API requests: a documents.create body with the title and a documents.batchUpdate body whose requests insert and style the content. Supports headings, emphasis, inline code, links, lists (nested and task lists), tables, blockquotes, code blocks, horizontal rules, images and page breaks. Nothing is sent to Google; submit the returned requests with your own credentials.",
			InputSchema: GenerateSchema[ConvertMarkdownInput](),
			Annotations: &mcp.ToolAnnotations{
				Title:           "Convert Markdown to Google Docs Requests",
				ReadOnlyHint:    true,
				IdempotentHint:  true,
				DestructiveHint: new(false),
				OpenWorldHint:   new(false),
			},
		},
		func(ctx context.Context, request *mcp.CallToolRequest, input ConvertMarkdownInput) (*mcp.CallToolResult, any, error) {
			return HandleConvertMarkdown(ctx, request, input, converter)
		},
	)
}

func HandleConvertMarkdown(ctx context.Context, request *mcp.CallToolRequest, input ConvertMarkdownInput, converter *gdocs.Converter) (*mcp.CallToolResult, any, error) {
	output, err := ConvertMarkdown(ctx, input, converter)
	if err != nil {
		return nil, nil, err
	}
	return nil, output, nil
}

// ConvertMarkdown validates input and runs the conversion. It backs both
// the MCP tool and the command line.
func ConvertMarkdown(ctx context.Context, input ConvertMarkdownInput, converter *gdocs.Converter) (*gdocs.Output, error) {
	if input.Title == "" {
		return nil, fmt.Errorf("title is required")
	}
	format, err := ValidateAndNormalizeOutputFormat(input.OutputFormat)
	if err != nil {
		return nil, err
	}
	strategy, marker, err := ValidateAndNormalizePageBreaks(input.PageBreaks, input.PageBreakMarker)
	if err != nil {
		return nil, err
	}
	opts := gdocs.Options{
		PageBreaks:      strategy,
		PageBreakMarker: marker,
	}
	if input.StartIndex != nil {
		if *input.StartIndex < gdocs.DefaultStartIndex {
			return nil, fmt.Errorf("start_index must be at least %d", gdocs.DefaultStartIndex)
		}
		opts.StartIndex = *input.StartIndex
	}

	output, err := converter.Convert(input.Markdown, input.Title, format, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to convert markdown: %w", err)
	}

	logger := log.FromContext(ctx)
	logger.Printf("[DEBUG] convert_markdown: %d bytes of markdown produced %d requests\n",
		len(input.Markdown), len(output.BatchUpdateRequest.Requests))

	return output, nil
}
