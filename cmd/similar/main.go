package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"strings"

	"zhwordvec/internal/vectors"
)

// Queries a trained vector file for nearest neighbors. Plain arguments
// are looked up one by one; -positive/-negative run an analogy query
// (e.g. -positive 国王,女 -negative 男).
func main() {
	modelPath := flag.String("model", "data/model/zhwiki_vs100w5mc5.txt", "Path to a trained vector file")
	topN := flag.Int("topn", 5, "Number of neighbors to report")
	positive := flag.String("positive", "", "Comma-separated words added to the analogy query")
	negative := flag.String("negative", "", "Comma-separated words subtracted from the analogy query")
	flag.Parse()

	model, err := vectors.Load(*modelPath)
	if err != nil {
		log.Fatalf("failed to load vectors: %v", err)
	}

	if *positive != "" || *negative != "" {
		matches, err := model.Analogy(splitWords(*positive), splitWords(*negative), *topN)
		if err != nil {
			log.Fatalf("analogy query failed: %v", err)
		}
		printMatches(strings.TrimSpace(*positive+" -"+*negative), matches)
		return
	}

	if flag.NArg() == 0 {
		fmt.Println("Usage: similar [--model=PATH] [--topn=N] word [word ...]")
		fmt.Println("       similar [--model=PATH] --positive 国王,女 --negative 男")
		os.Exit(1)
	}
	for _, word := range flag.Args() {
		matches, err := model.Similar(word, *topN)
		if err != nil {
			log.Fatalf("similarity query failed: %v", err)
		}
		printMatches(word, matches)
	}
}

func splitWords(s string) []string {
	var out []string
	for _, w := range strings.Split(s, ",") {
		if w = strings.TrimSpace(w); w != "" {
			out = append(out, w)
		}
	}
	return out
}

func printMatches(query string, matches []vectors.Match) {
	fmt.Printf("%s:\n", query)
	for _, m := range matches {
		fmt.Printf("  %-16s %.4f\n", m.Word, m.Score)
	}
}
