package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"log/slog"
	"os"

	"zhwordvec/internal/vecdb"
)

var errUsage = errors.New("no action given")

// Imports a trained vector file into a leveldb database for constant-time
// word lookups, or fetches a single word's vector back out.
func main() {
	if err := run(os.Args[1:], os.Stdout); err != nil {
		if errors.Is(err, errUsage) {
			fmt.Fprintln(os.Stderr, "Usage: vecdb [--db=PATH] --import vectors.txt")
			fmt.Fprintln(os.Stderr, "       vecdb [--db=PATH] --get word")
			os.Exit(1)
		}
		log.Fatal(err)
	}
}

// run holds the whole command so the store's deferred Close runs on
// error paths too and leveldb's lock file is always released.
func run(args []string, out io.Writer) error {
	fs := flag.NewFlagSet("vecdb", flag.ContinueOnError)
	dbPath := fs.String("db", "data/model/wordvector.db", "Path to the leveldb vector database")
	importPath := fs.String("import", "", "Vector file to import into the database")
	word := fs.String("get", "", "Word to look up")
	if err := fs.Parse(args); err != nil {
		return err
	}

	if *importPath == "" && *word == "" {
		return errUsage
	}

	store, err := vecdb.Open(*dbPath)
	if err != nil {
		return fmt.Errorf("failed to open vector database: %w", err)
	}
	defer store.Close()

	if *importPath != "" {
		logg := slog.New(slog.NewTextHandler(out, nil))
		n, err := vecdb.ImportFile(logg, *importPath, store)
		if err != nil {
			return fmt.Errorf("import failed after %d vectors: %w", n, err)
		}
	}
	if *word != "" {
		vec, ok, err := store.Get(*word)
		if err != nil {
			return fmt.Errorf("lookup failed: %w", err)
		}
		if !ok {
			return fmt.Errorf("word %q not in database", *word)
		}
		fmt.Fprintf(out, "%s dim=%d\n", *word, len(vec))
		for _, v := range vec {
			fmt.Fprintf(out, "%.6f ", v)
		}
		fmt.Fprintln(out)
	}
	return nil
}
