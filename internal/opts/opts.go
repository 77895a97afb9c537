package opts

import (
	"fmt"
	"io"
	"os"

	"github.com/dastrobu/md2gdocs/internal/opts/typed_flags"
	"github.com/dastrobu/md2gdocs/internal/tools"
	"github.com/jessevdk/go-flags"
	"github.com/joho/godotenv"
)

// Options defines the command-line options for md2gdocs
type Options struct {
	Version bool `long:"version" short:"v" description:"Show version information and exit"`

	Run        RunCmd        `command:"run" description:"Run the MCP server"`
	Completion CompletionCmd `command:"completion" description:"Generate completion scripts"`
	Tool       ToolCmd       `command:"tool" description:"Execute a tool directly"`
}

// RunCmd defines the 'run' command
type RunCmd struct {
	Transport typed_flags.Transport `long:"transport" env:"MD2GDOCS_TRANSPORT" description:"Transport type: stdio or http" default:"stdio"`
	Port      int                   `long:"port" env:"MD2GDOCS_PORT" description:"HTTP port (only used with --transport=http)" default:"8787"`
	Host      string                `long:"host" env:"MD2GDOCS_HOST" description:"HTTP host (only used with --transport=http)" default:"localhost"`
	Debug     bool                  `long:"debug" env:"MD2GDOCS_DEBUG" description:"Enable debug logging of tool calls and results to stderr"`
	Styles    string                `long:"styles" env:"MD2GDOCS_STYLES" description:"Path to custom document styles YAML file (uses embedded default if not specified)"`

	Handler func() error
}

// Execute runs the run command
func (c *RunCmd) Execute(args []string) error {
	if c.Handler != nil {
		return c.Handler()
	}
	return nil
}

// CompletionCmd holds completion subcommands
type CompletionCmd struct {
	Bash CompletionBashCmd `command:"bash" description:"Generate bash completion script"`
}

// CompletionBashCmd represents the 'completion bash' command
type CompletionBashCmd struct {
	Handler func() error
}

// Execute runs the completion bash command
func (c *CompletionBashCmd) Execute(args []string) error {
	if c.Handler != nil {
		return c.Handler()
	}
	return nil
}

// ToolCmd holds tool subcommands
type ToolCmd struct {
	ConvertMarkdown ConvertMarkdownCmd `command:"convert_markdown" description:"Converts Markdown into Google Docs API requests and prints them as JSON"`
}

// ConvertMarkdownCmd represents the 'tool convert_markdown' command
type ConvertMarkdownCmd struct {
	Markdown        string                        `long:"markdown" description:"Markdown source to convert"`
	MarkdownFile    string                        `long:"markdown-file" description:"Read the Markdown source from a file ('-' for stdin)"`
	Title           string                        `long:"title" description:"Title of the Google Doc to create" required:"true"`
	OutputFormat    typed_flags.OutputFormat      `long:"output-format" description:"Output format: single or multiple" default:"single"`
	StartIndex      int                           `long:"start-index" description:"Document index to insert at" default:"1"`
	PageBreaks      typed_flags.PageBreakStrategy `long:"page-breaks" description:"Page break strategy: none, h1, h2 or custom" default:"none"`
	PageBreakMarker string                        `long:"page-break-marker" description:"Literal text replaced by a page break with --page-breaks=custom"`
	Styles          string                        `long:"styles" env:"MD2GDOCS_STYLES" description:"Path to custom document styles YAML file"`

	Handler func(tools.ConvertMarkdownInput) error
}

// Input builds the tool input from the flags. The Markdown is read from
// --markdown-file when given.
func (c *ConvertMarkdownCmd) Input() (tools.ConvertMarkdownInput, error) {
	markdown := c.Markdown
	switch {
	case c.MarkdownFile != "" && c.Markdown != "":
		return tools.ConvertMarkdownInput{}, fmt.Errorf("--markdown and --markdown-file are mutually exclusive")
	case c.MarkdownFile == "-":
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return tools.ConvertMarkdownInput{}, fmt.Errorf("failed to read markdown from stdin: %w", err)
		}
		markdown = string(data)
	case c.MarkdownFile != "":
		data, err := os.ReadFile(c.MarkdownFile)
		if err != nil {
			return tools.ConvertMarkdownInput{}, fmt.Errorf("failed to read markdown file %s: %w", c.MarkdownFile, err)
		}
		markdown = string(data)
	}

	format := string(c.OutputFormat)
	startIndex := c.StartIndex
	input := tools.ConvertMarkdownInput{
		Markdown:     markdown,
		Title:        c.Title,
		OutputFormat: &format,
		StartIndex:   &startIndex,
	}
	if c.PageBreaks != "" && c.PageBreaks != typed_flags.PageBreakNone {
		strategy := string(c.PageBreaks)
		marker := c.PageBreakMarker
		input.PageBreaks = &strategy
		input.PageBreakMarker = &marker
	}
	return input, nil
}

// Execute runs the convert_markdown tool command
func (c *ConvertMarkdownCmd) Execute(args []string) error {
	if c.Handler == nil {
		return nil
	}
	input, err := c.Input()
	if err != nil {
		return err
	}
	return c.Handler(input)
}

var GlobalOpts = Options{}

// Parse parses command-line arguments and environment variables
// It also loads .env file if present (but doesn't fail if missing)
func Parse() (*flags.Parser, error) {
	_ = godotenv.Load()

	parser := flags.NewParser(&GlobalOpts, flags.HelpFlag|flags.PassDoubleDash)

	_, err := parser.Parse()
	if err != nil {
		if flagsErr, ok := err.(*flags.Error); ok {
			switch flagsErr.Type {
			case flags.ErrHelp:
				parser.WriteHelp(os.Stdout)
				os.Exit(0)
			case flags.ErrCommandRequired:
				// No command specified; main decides what to do.
				return parser, nil
			default:
				return nil, fmt.Errorf("failed to parse options: %w", err)
			}
		}
		return nil, fmt.Errorf("failed to parse options: %w", err)
	}

	return parser, nil
}
