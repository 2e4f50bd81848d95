// Command fq drives the lexer and parser over a single query string and
// prints the resulting postfix node sequence, one token per line,
// followed by any diagnostics recorded during the parse. It exists to
// exercise the core packages end to end; it is not a search tool.
package main

import (
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/SwannedLakee/fsearch/internal/lexer"
	"github.com/SwannedLakee/fsearch/internal/macrostore"
	"github.com/SwannedLakee/fsearch/internal/parser"
	"github.com/SwannedLakee/fsearch/internal/pipeline"
	"github.com/SwannedLakee/fsearch/internal/querynode"
	"github.com/SwannedLakee/fsearch/internal/queryflags"
)

func main() {
	var (
		matchCase  = flag.Bool("case", false, "match case")
		exactMatch = flag.Bool("exact", false, "require an exact match")
		filesOnly  = flag.Bool("files", false, "match files only")
		foldersOnly = flag.Bool("folders", false, "match folders only")
		searchPath = flag.Bool("path", false, "search the full path, not just the name")
		regex      = flag.Bool("regex", false, "treat word matches as regular expressions")
		macroDSN   = flag.String("macro-db", "", "SQLite file backing the macro registry (default: in-memory, empty)")
		macroDefs  = flag.String("macros", "", "comma-separated name=query pairs registered as macros before parsing")
	)
	flag.Parse()

	if flag.NArg() != 1 {
		fmt.Fprintf(os.Stderr, "usage: %s [flags] <query>\n", os.Args[0])
		flag.PrintDefaults()
		os.Exit(2)
	}

	registry, closeRegistry, err := openRegistry(*macroDSN, *macroDefs)
	if err != nil {
		fmt.Fprintf(os.Stderr, "fq: %s\n", err)
		os.Exit(1)
	}
	defer closeRegistry()

	var flags queryflags.Flags
	if *matchCase {
		flags = flags.Add(queryflags.MatchCase)
	}
	if *exactMatch {
		flags = flags.Add(queryflags.ExactMatch)
	}
	if *filesOnly {
		flags = flags.Add(queryflags.FilesOnly)
	}
	if *foldersOnly {
		flags = flags.Add(queryflags.FoldersOnly)
	}
	if *searchPath {
		flags = flags.Add(queryflags.SearchInPath)
	}
	if *regex {
		flags = flags.Add(queryflags.Regex)
	}

	pl := pipeline.New(lexer.Processor{}, parser.Processor{MacroFilters: registry, Flags: flags})
	result := pl.Run(&pipeline.Context{Source: flag.Arg(0)})

	for _, n := range result.Nodes {
		fmt.Println(querynode.Format(n))
	}
	for _, msg := range result.Diagnostics.Messages() {
		fmt.Fprintln(os.Stderr, msg.String())
	}
}

// openRegistry builds the macro registry fq parses against: a SQLite
// file if dsn is set, otherwise an in-memory registry, seeded from
// defs ("name=query,name2=query2").
func openRegistry(dsn, defs string) (macrostore.Registry, func(), error) {
	var (
		registry macrostore.Registry
		closer   = func() {}
	)

	if dsn != "" {
		store, err := macrostore.OpenSQLStore(dsn)
		if err != nil {
			return nil, nil, fmt.Errorf("opening macro db: %w", err)
		}
		registry = store
		closer = func() { store.Close() }
	} else {
		registry = macrostore.NewMemoryRegistry()
	}

	for _, pair := range splitNonEmpty(defs, ",") {
		name, query, ok := strings.Cut(pair, "=")
		if !ok {
			closer()
			return nil, nil, fmt.Errorf("invalid -macros entry %q, expected name=query", pair)
		}
		filter := macrostore.NewFilter(name, query, 0)
		switch r := registry.(type) {
		case *macrostore.MemoryRegistry:
			r.Add(filter)
		case *macrostore.SQLStore:
			if err := r.Insert(filter); err != nil {
				closer()
				return nil, nil, fmt.Errorf("inserting macro %q: %w", name, err)
			}
		}
	}

	return registry, closer, nil
}

func splitNonEmpty(s, sep string) []string {
	if s == "" {
		return nil
	}
	return strings.Split(s, sep)
}
