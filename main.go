package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"os"

	"github.com/dastrobu/md2gdocs/internal/completion"
	"github.com/dastrobu/md2gdocs/internal/gdocs"
	mdlog "github.com/dastrobu/md2gdocs/internal/log"
	"github.com/dastrobu/md2gdocs/internal/opts"
	"github.com/dastrobu/md2gdocs/internal/opts/typed_flags"
	"github.com/dastrobu/md2gdocs/internal/tools"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

const (
	serverName    = "md2gdocs"
	serverVersion = "0.1.0"
)

func main() {
	opts.GlobalOpts.Run.Handler = func() error {
		return run(&opts.GlobalOpts.Run)
	}
	opts.GlobalOpts.Completion.Bash.Handler = func() error {
		return completion.GenerateBash(os.Stdout, os.Args[0])
	}
	opts.GlobalOpts.Tool.ConvertMarkdown.Handler = func(input tools.ConvertMarkdownInput) error {
		return convertMarkdown(input, opts.GlobalOpts.Tool.ConvertMarkdown.Styles)
	}

	parser, err := opts.Parse()
	if err != nil {
		log.Fatalf("Error: %v", err)
	}

	if opts.GlobalOpts.Version {
		fmt.Printf("%s %s\n", serverName, serverVersion)
		return
	}

	if parser.Active == nil {
		parser.WriteHelp(os.Stderr)
		os.Exit(2)
	}
}

// debugMiddleware logs all MCP requests and responses and hands the logger
// to tool handlers through the context.
func debugMiddleware(next mcp.MethodHandler) mcp.MethodHandler {
	return func(ctx context.Context, method string, req mcp.Request) (mcp.Result, error) {
		ctx = mdlog.WithLogger(ctx, log.Default())

		if req != nil {
			p := req.GetParams()
			j, _ := json.MarshalIndent(p, "", "  ")
			log.Printf("[DEBUG] MCP Request: %s\nParams: %s\n", method, string(j))
		} else {
			log.Printf("[DEBUG] MCP Request: %s\n", method)
		}

		result, err := next(ctx, method, req)

		if err != nil {
			log.Printf("[DEBUG] MCP Response: %s\nError: %v\n", method, err)
		} else if result != nil {
			resultJSON, _ := json.MarshalIndent(result, "", "  ")
			log.Printf("[DEBUG] MCP Response: %s\nResult: %s\n", method, string(resultJSON))
		} else {
			log.Printf("[DEBUG] MCP Response: %s\n", method)
		}

		return result, err
	}
}

func loadConverter(stylesPath string) (*gdocs.Converter, error) {
	styles, err := gdocs.LoadConfig(stylesPath)
	if err != nil {
		return nil, fmt.Errorf(`failed to load document styles: %w

Check the file passed with --styles (or MD2GDOCS_STYLES), or unset it to use the built-in styles.`, err)
	}
	return gdocs.NewConverter(styles), nil
}

// createServer creates and configures a new MCP server instance
func createServer(options *opts.RunCmd, converter *gdocs.Converter) *mcp.Server {
	srv := mcp.NewServer(&mcp.Implementation{
		Name:    serverName,
		Version: serverVersion,
	}, nil)

	if options.Debug {
		srv.AddReceivingMiddleware(debugMiddleware)
	}

	tools.RegisterAll(srv, converter)

	return srv
}

func run(options *opts.RunCmd) error {
	ctx := context.Background()

	converter, err := loadConverter(options.Styles)
	if err != nil {
		return err
	}

	// Log to stderr (stdout is used for MCP communication in stdio mode)
	log.Printf("md2gdocs MCP Server v%s initialized\n", serverVersion)

	srv := createServer(options, converter)

	switch options.Transport {
	case typed_flags.TransportStdio:
		log.Println("Using STDIO transport")
		if err := srv.Run(ctx, &mcp.StdioTransport{}); err != nil {
			return err
		}
	case typed_flags.TransportHTTP:
		addr := fmt.Sprintf("%s:%d", options.Host, options.Port)

		handler := mcp.NewStreamableHTTPHandler(
			func(r *http.Request) *mcp.Server {
				// conversions keep no session state, so one server serves all requests
				return srv
			},
			&mcp.StreamableHTTPOptions{
				Stateless: true,
			},
		)

		httpServer := &http.Server{
			Addr:    addr,
			Handler: handler,
		}

		log.Printf("HTTP server listening on http://%s\n", addr)
		if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			return fmt.Errorf("HTTP server error: %w", err)
		}
	default:
		return fmt.Errorf("unsupported transport: %s", options.Transport)
	}

	return nil
}

// convertMarkdown runs the convert_markdown tool once and prints its
// output as JSON.
func convertMarkdown(input tools.ConvertMarkdownInput, stylesPath string) error {
	converter, err := loadConverter(stylesPath)
	if err != nil {
		return err
	}

	output, err := tools.ConvertMarkdown(context.Background(), input, converter)
	if err != nil {
		return err
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	if err := enc.Encode(output); err != nil {
		return fmt.Errorf("failed to encode output: %w", err)
	}
	return nil
}
