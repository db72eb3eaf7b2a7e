// Package main is the entry point for the Keystorm editing kernel: it
// wires the piece-table buffer engine, command dispatcher, syntax
// highlighter, and LSP client together behind the CLI contract, in
// place of the terminal/GUI front end this build does not include.
package main

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"strconv"
	"strings"

	"github.com/rs/zerolog"

	"github.com/dshills/keystorm/internal/command"
	"github.com/dshills/keystorm/internal/command/builtin"
	"github.com/dshills/keystorm/internal/editor"
	"github.com/dshills/keystorm/internal/engine/buffer"
	"github.com/dshills/keystorm/internal/highlight"
	"github.com/dshills/keystorm/internal/lsp"
	"github.com/dshills/keystorm/internal/syntax"
	"github.com/dshills/keystorm/internal/watch"
)

// Version information (set via ldflags during build).
var (
	version = "dev"
	commit  = "unknown"
	date    = "unknown"
)

func main() {
	os.Exit(run(os.Args[1:]))
}

// cliOptions is the parsed form of
// `prog [--gui|-g|--term|-t|--help|-h|--version|-V] [+N] [files...]`.
type cliOptions struct {
	gui, term     bool
	help, version bool
	gotoLine      int // 0 means unset
	files         []string
}

func parseArgs(args []string) (cliOptions, error) {
	var o cliOptions
	for _, a := range args {
		switch a {
		case "--gui", "-g":
			o.gui = true
		case "--term", "-t":
			o.term = true
		case "--help", "-h":
			o.help = true
		case "--version", "-V":
			o.version = true
		default:
			if strings.HasPrefix(a, "+") {
				n, err := strconv.Atoi(a[1:])
				if err != nil || n < 1 {
					return o, fmt.Errorf("invalid +N argument %q", a)
				}
				o.gotoLine = n
				continue
			}
			if strings.HasPrefix(a, "-") && a != "-" {
				return o, fmt.Errorf("unknown flag %q", a)
			}
			o.files = append(o.files, a)
		}
	}
	return o, nil
}

func usage() {
	fmt.Fprintf(os.Stderr, "Keystorm - AI-native editing kernel\n\n")
	fmt.Fprintf(os.Stderr, "Usage: keystorm [--gui|-g|--term|-t|--help|-h|--version|-V] [+N] [files...]\n\n")
	fmt.Fprintf(os.Stderr, "  +N             place the cursor at line N of the first file opened, wherever +N appears\n")
	fmt.Fprintf(os.Stderr, "  --gui, -g      start the graphical front end\n")
	fmt.Fprintf(os.Stderr, "  --term, -t     start the terminal front end\n")
	fmt.Fprintf(os.Stderr, "  --version, -V  print version information\n")
	fmt.Fprintf(os.Stderr, "  --help, -h     print this message\n")
}

func run(args []string) int {
	opts, err := parseArgs(args)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		usage()
		return 2
	}
	if opts.help {
		usage()
		return 0
	}
	if opts.version {
		fmt.Printf("Keystorm %s (commit %s, built %s)\n", version, commit, date)
		return 0
	}
	if opts.gui || opts.term {
		// This build ships the kernel only: piece-table, dispatcher,
		// highlighter, and LSP client. Neither front end is linked in,
		// so requesting one fails to initialize per the exit-code
		// contract rather than silently falling back to headless mode.
		fmt.Fprintln(os.Stderr, "Error: no renderer is built into this kernel")
		return 1
	}

	level := zerolog.InfoLevel
	if os.Getenv("KEYSTORM_DEBUG") != "" {
		level = zerolog.DebugLevel
	}
	log := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr, NoColor: true}).Level(level).With().Timestamp().Logger()

	ed := editor.New()
	reg := command.NewRegistry()
	builtin.RegisterAll(reg)
	command.NewDispatcher(reg) // reserved for a future front end's key loop

	lexers := syntax.DefaultRegistry()
	mgr := lsp.NewManager(lsp.WithDiagnosticsCallback(func(uri lsp.DocumentURI, diagnostics []lsp.Diagnostic) {
		log.Debug().Str("uri", string(uri)).Int("count", len(diagnostics)).Msg("diagnostics")
	}))
	registerLanguageServers(mgr, log)
	diags := lsp.NewDiagnosticsService(mgr)
	ed.SetLSPBridge(lsp.NewBufferBridge(mgr, diags))
	ed.SetLSPQuery(lsp.NewQueryAdapter(mgr))

	fw, err := watch.New(log)
	if err != nil {
		log.Debug().Err(err).Msg("file watcher disabled")
	} else {
		defer fw.Close()
	}

	bgCtx := context.Background()
	opened := 0

	for _, path := range opts.files {
		buf, err := buffer.Open(path)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: open %s: %v\n", path, err)
			continue
		}
		buf.SetFiletype(syntax.DetectForPath(path, buf.Line(0)))
		attachHighlighter(buf, lexers)

		if opened == 0 {
			// the editor starts with one scratch buffer; replace it with
			// the first real file instead of leaving it open alongside.
			ed.AddBuffer(buf)
			ed.CloseBuffer(0)
		} else {
			ed.AddBuffer(buf)
		}
		ed.SwitchTo(opened)
		opened++

		if fw != nil {
			fw.Add(buf)
		}

		if bridge := ed.LSP(); bridge != nil {
			if err := bridge.OnBufferOpened(bgCtx, buf); err != nil {
				log.Debug().Err(err).Str("path", path).Msg("lsp open")
			}
		}

		if opened == 1 && opts.gotoLine > 0 {
			row := opts.gotoLine - 1
			if row >= buf.NRows() {
				row = buf.NRows() - 1
			}
			buf.SetCursor(buffer.Point{Row: row, Col: 0})
		}
	}

	if opened == 0 {
		attachHighlighter(ed.Current(), lexers)
	}

	ed.SwitchTo(0)

	// Headless kernel: with no front end driving the dispatcher's key
	// loop, report what would have been shown and exit. A --gui/--term
	// build replaces this block with its own render loop over the same
	// ed/reg/dispatcher.
	for _, buf := range ed.Buffers() {
		name := buf.Filename()
		if name == "" {
			name = "[No Name]"
		}
		cur := buf.Cursor()
		status := ""
		if fw != nil && fw.Changed(buf) {
			status = " (changed on disk, reload-buffer to pick it up)"
		}
		fmt.Printf("%s\t%d lines\t%s\tcursor %d:%d%s\n", name, buf.NRows(), buf.Filetype(), cur.Row+1, cur.Col+1, status)
	}

	return 0
}

// attachHighlighter installs a fresh highlight.Engine on buf, primed
// with the lexer registered for buf's filetype (or the null fallback).
func attachHighlighter(buf *buffer.Buffer, lexers *highlight.Registry) {
	if buf == nil {
		return
	}
	engine := highlight.NewEngine()
	engine.SetHighlighter(syntax.ForFiletype(lexers, buf.Filetype()))
	buf.SetHighlighter(engine)
}

// registerLanguageServers registers a server config for every language
// server this kernel knows how to launch that is actually present on
// PATH. A languageID with no registered config makes
// Manager.OpenDocument fail with ErrNoServer; run logs that error at
// debug level and goes on, so an editor with no language servers
// installed still runs.
func registerLanguageServers(mgr *lsp.Manager, log zerolog.Logger) {
	candidates := []struct {
		languageID, command string
		args                []string
	}{
		{"go", "gopls", nil},
		{"python", "pyright-langserver", []string{"--stdio"}},
		{"rust", "rust-analyzer", nil},
		{"typescript", "typescript-language-server", []string{"--stdio"}},
		{"javascript", "typescript-language-server", []string{"--stdio"}},
		{"c", "clangd", nil},
		{"cpp", "clangd", nil},
	}
	for _, c := range candidates {
		path, err := exec.LookPath(c.command)
		if err != nil {
			log.Debug().Str("command", c.command).Str("language", c.languageID).Msg("not found on PATH, support disabled")
			continue
		}
		mgr.RegisterServer(c.languageID, lsp.ServerConfig{Command: path, Args: c.args})
	}
}
