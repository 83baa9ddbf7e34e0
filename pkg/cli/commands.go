package cli

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strconv"
	"syscall"

	"github.com/khalid-nowaf/trie/pkg/cidr"
	"github.com/khalid-nowaf/trie/pkg/server"
	"github.com/khalid-nowaf/trie/pkg/wordlist"
)

type CompleteCmd struct {
	Prefixes []string `arg:"" help:"Prefixes to complete"`
}

// Run writes one row per (prefix, match) pair.
func (cmd *CompleteCmd) Run(ctx *Context) error {
	table := &Table{Headers: []string{"prefix", ctx.Config.Column}}
	for _, prefix := range cmd.Prefixes {
		matches := ctx.Words.StartingWith(prefix)
		ctx.Logger.Debug("completed prefix", "prefix", prefix, "matches", len(matches))
		for _, match := range matches {
			table.Rows = append(table.Rows, []string{prefix, match})
		}
	}
	return ctx.Writer.Write(ctx.Out, table)
}

type CheckCmd struct {
	Words []string `arg:"" help:"Words to look up"`
}

func (cmd *CheckCmd) Run(ctx *Context) error {
	table := &Table{Headers: []string{ctx.Config.Column, "contains"}}
	for _, word := range cmd.Words {
		table.Rows = append(table.Rows, []string{word, strconv.FormatBool(ctx.Words.Contains(word))})
	}
	return ctx.Writer.Write(ctx.Out, table)
}

type RemoveCmd struct {
	Words []string `arg:"" help:"Words to remove"`
}

func (cmd *RemoveCmd) Run(ctx *Context) error {
	table := &Table{Headers: []string{ctx.Config.Column, "removed"}}
	for _, word := range cmd.Words {
		table.Rows = append(table.Rows, []string{word, strconv.FormatBool(ctx.Words.Remove(word))})
	}
	ctx.Logger.Info("words removed", "remaining", ctx.Words.Len(), "nodes", ctx.Words.NodeCount())
	return ctx.Writer.Write(ctx.Out, table)
}

type LongestCmd struct {
	Inputs []string `arg:"" help:"Inputs to match against the stored words"`
}

func (cmd *LongestCmd) Run(ctx *Context) error {
	table := &Table{Headers: []string{"input", ctx.Config.Column, "found"}}
	for _, input := range cmd.Inputs {
		longest, found := ctx.Words.LongestPrefixOf(input)
		table.Rows = append(table.Rows, []string{input, longest, strconv.FormatBool(found)})
	}
	return ctx.Writer.Write(ctx.Out, table)
}

type RouteCmd struct {
	Cidrs      []string `help:"Network source files, one CIDR per word" required:""`
	CidrColumn string   `help:"CSV header or JSON field holding the CIDR" default:"cidr"`
	IPs        []string `arg:"" name:"ip" help:"IP addresses to route"`
}

// Run loads the networks into a routing table and writes the longest match per IP.
func (cmd *RouteCmd) Run(ctx *Context) error {
	table := cidr.NewTable()
	for _, file := range cmd.Cidrs {
		err := wordlist.Load(file, wordlist.Options{Column: cmd.CidrColumn}, func(word string) error {
			ipnet, err := cidr.ParseCIDR(word)
			if err != nil {
				return err
			}
			table.Insert(ipnet)
			return nil
		})
		if err != nil {
			return fmt.Errorf("load networks: %w", err)
		}
	}
	ctx.Logger.Info("networks loaded", "count", table.Len())

	rows := &Table{Headers: []string{"ip", "cidr", "found"}}
	for _, ip := range cmd.IPs {
		ipnet, err := table.LookupIP(ip)
		if err != nil {
			return err
		}
		match := ""
		if ipnet != nil {
			match = ipnet.String()
		}
		rows.Rows = append(rows.Rows, []string{ip, match, strconv.FormatBool(ipnet != nil)})
	}
	return ctx.Writer.Write(ctx.Out, rows)
}

type StatsCmd struct{}

func (cmd *StatsCmd) Run(ctx *Context) error {
	return ctx.Writer.Write(ctx.Out, &Table{
		Headers: []string{"words", "nodes"},
		Rows:    [][]string{{strconv.Itoa(ctx.Words.Len()), strconv.Itoa(ctx.Words.NodeCount())}},
	})
}

type DumpCmd struct{}

func (cmd *DumpCmd) Run(ctx *Context) error {
	return ctx.Words.Dump(ctx.Out)
}

type ServeCmd struct {
	Addr string `help:"Listen address, overrides the config file"`
}

// Run serves until SIGINT or SIGTERM.
func (cmd *ServeCmd) Run(ctx *Context) error {
	addr := ctx.Config.Addr
	if cmd.Addr != "" {
		addr = cmd.Addr
	}

	signalCtx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	return server.New(ctx.Words, ctx.Logger).ListenAndServe(signalCtx, addr)
}
