package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/MAli82/deep-symbolic-optimization/internal/replay"
)

// #region main

func main() {
	fixturePath := flag.String("fixture", "", "path to fixture JSON")
	flag.Parse()

	if *fixturePath == "" {
		fmt.Fprintln(os.Stderr, "usage: replay --fixture path/to/fixture.json")
		os.Exit(2)
	}

	fixture, err := replay.LoadFixture(*fixturePath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}

	summary, err := replay.Replay(fixture)
	if err != nil {
		fmt.Fprintf(os.Stderr, "replay failed: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("replayed %d steps (%d with expectations)\n", summary.TotalSteps, summary.CheckedSteps)
	for _, m := range summary.Mismatches {
		fmt.Printf("MISMATCH step=%d row=%d index=%d got=%.6f want=%.6f\n",
			m.Step, m.Row, m.Index, m.Got, m.Want)
	}
	if !summary.Passed() {
		fmt.Printf("%d mismatches\n", len(summary.Mismatches))
		os.Exit(1)
	}
	fmt.Println("all expectations met")
}

// #endregion main
