package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/MAli82/deep-symbolic-optimization/internal/replay"
	"github.com/MAli82/deep-symbolic-optimization/internal/trace"
	_ "modernc.org/sqlite"
)

// #region main

func main() {
	dbPath := flag.String("db", "", "path to prior trace db")
	episodeID := flag.String("episode", "", "episode id to export")
	nInputVars := flag.Int("n-input-vars", 2, "number of input variables in the search vocabulary")
	functions := flag.String("functions", "add,sub,mul,div,sin,cos,exp,log", "comma-separated function set")
	vocabPath := flag.String("vocab", "", "JSON file mapping model tokens to ids")
	outPath := flag.String("out", "", "write fixture JSON here (default stdout)")
	flag.Parse()

	if *dbPath == "" || *episodeID == "" || *vocabPath == "" {
		fmt.Fprintln(os.Stderr, "usage: fixture-export --db prior_trace.db --episode id --vocab vocab.json [--n-input-vars N] [--functions f,g] [--out fixture.json]")
		os.Exit(2)
	}

	tokenToID, err := loadVocab(*vocabPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "load vocab: %v\n", err)
		os.Exit(1)
	}

	store, err := trace.NewStore(*dbPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "open db: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	steps, err := store.ListSteps(*episodeID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "list steps: %v\n", err)
		os.Exit(1)
	}
	if len(steps) == 0 {
		fmt.Fprintf(os.Stderr, "episode %s has no recorded steps\n", *episodeID)
		os.Exit(1)
	}

	fixture, err := replay.FixtureFromTrace(*nInputVars, strings.Split(*functions, ","), tokenToID, steps)
	if err != nil {
		fmt.Fprintf(os.Stderr, "build fixture: %v\n", err)
		os.Exit(1)
	}
	fixture.Description = fmt.Sprintf("episode %s exported from %s", *episodeID, *dbPath)

	out := os.Stdout
	if *outPath != "" {
		f, err := os.Create(*outPath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "create output: %v\n", err)
			os.Exit(1)
		}
		defer f.Close()
		out = f
	}

	enc := json.NewEncoder(out)
	enc.SetIndent("", "  ")
	if err := enc.Encode(fixture); err != nil {
		fmt.Fprintf(os.Stderr, "write fixture: %v\n", err)
		os.Exit(1)
	}
	fmt.Fprintf(os.Stderr, "exported %d steps\n", len(fixture.Steps))
}

// #endregion main

// #region helpers

func loadVocab(path string) (map[string]int64, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var m map[string]int64
	if err := json.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	if len(m) == 0 {
		return nil, fmt.Errorf("empty vocabulary in %s", path)
	}
	return m, nil
}

// #endregion helpers
