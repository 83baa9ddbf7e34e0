package cli

import (
	"cmp"
	"fmt"
	"io"
	"log/slog"

	"github.com/alecthomas/kong"
	"github.com/khalid-nowaf/trie/pkg/config"
	"github.com/khalid-nowaf/trie/pkg/trie"
	"github.com/khalid-nowaf/trie/pkg/wordlist"
)

// Globals are the flags shared by every command. Unset flags fall back to the config file.
type Globals struct {
	Config   string   `help:"YAML configuration file" type:"existingfile" short:"c"`
	Words    []string `help:"Word source files (.txt, .csv, .tsv, .json)" short:"w"`
	Column   string   `help:"CSV header or JSON field holding the word"`
	Format   string   `help:"Output format: text, json, csv or tsv" short:"f"`
	Sorted   bool     `help:"Enumerate siblings in element order instead of insertion order"`
	LogLevel string   `help:"Log level: debug, info, warn or error"`
}

type CLI struct {
	Globals

	Complete CompleteCmd `cmd:"" help:"List the words starting with each prefix"`
	Check    CheckCmd    `cmd:"" help:"Report whether each word is stored"`
	Remove   RemoveCmd   `cmd:"" help:"Remove words and report which were stored"`
	Longest  LongestCmd  `cmd:"" help:"Find the longest stored word that prefixes each input"`
	Route    RouteCmd    `cmd:"" help:"Find the most specific network containing each IP"`
	Stats    StatsCmd    `cmd:"" help:"Print the number of words and trie nodes"`
	Dump     DumpCmd     `cmd:"" help:"Print the trie node tree"`
	Serve    ServeCmd    `cmd:"" help:"Serve autocomplete over HTTP"`
}

// Context is bound to every command's Run method.
type Context struct {
	Config *config.Config
	Words  *trie.StringTrie
	Writer Writer
	Logger *slog.Logger
	Out    io.Writer
}

// Run parses args and executes the selected command.
func Run(args []string, stdout io.Writer, stderr io.Writer) error {
	var cli CLI
	parser, err := kong.New(&cli,
		kong.Name("trie"),
		kong.Description("Prefix lookups over word lists."),
		kong.Writers(stdout, stderr),
	)
	if err != nil {
		return err
	}

	kctx, err := parser.Parse(args)
	if err != nil {
		return err
	}

	ctx, err := newContext(&cli.Globals, stdout, stderr)
	if err != nil {
		return err
	}
	return kctx.Run(ctx)
}

// resolveConfig layers the command line flags over the config file and the defaults.
func resolveConfig(globals *Globals) (*config.Config, error) {
	cfg := config.Default()
	if globals.Config != "" {
		loaded, err := config.Load(globals.Config)
		if err != nil {
			return nil, err
		}
		cfg = loaded
	}

	if len(globals.Words) > 0 {
		cfg.Words = globals.Words
	}
	if globals.Column != "" {
		cfg.Column = globals.Column
	}
	if globals.Format != "" {
		cfg.Format = globals.Format
	}
	if globals.LogLevel != "" {
		cfg.LogLevel = globals.LogLevel
	}
	cfg.Sorted = cfg.Sorted || globals.Sorted

	return cfg, cfg.Validate()
}

func newContext(globals *Globals, stdout io.Writer, stderr io.Writer) (*Context, error) {
	cfg, err := resolveConfig(globals)
	if err != nil {
		return nil, err
	}

	logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: cfg.Level()}))

	var opts []trie.Option[byte]
	if cfg.Sorted {
		opts = append(opts, trie.WithOrder(cmp.Compare[byte]))
	}
	if cfg.Level() <= slog.LevelDebug {
		opts = append(opts, trie.WithLogger[byte](logger))
	}
	words := trie.NewStringTrie(opts...)

	for _, file := range cfg.Words {
		stats, err := wordlist.LoadInto(words, file, wordlist.Options{Column: cfg.Column})
		if err != nil {
			return nil, fmt.Errorf("load words: %w", err)
		}
		logger.Info("words loaded", "file", file, "read", stats.Read, "added", stats.Added, "duplicates", stats.Duplicates)
	}

	writer, err := NewWriter(cfg.Format)
	if err != nil {
		return nil, err
	}

	return &Context{
		Config: cfg,
		Words:  words,
		Writer: writer,
		Logger: logger,
		Out:    stdout,
	}, nil
}
