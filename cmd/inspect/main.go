package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/MAli82/deep-symbolic-optimization/internal/trace"
	_ "modernc.org/sqlite"
)

// #region main

func main() {
	dbPath := flag.String("db", "", "path to prior trace db")
	last := flag.Int("last", 20, "show N most recent episodes")
	episode := flag.String("episode", "", "show step detail for one episode")
	jsonOut := flag.Bool("json", false, "output as JSON instead of table")
	flag.Parse()

	if *dbPath == "" {
		fmt.Fprintln(os.Stderr, "usage: inspect --db path/to/prior_trace.db [--last N] [--episode id] [--json]")
		os.Exit(2)
	}

	store, err := trace.NewStore(*dbPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "open db: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	if *episode != "" {
		err = runStepMode(store, *episode, *jsonOut)
	} else {
		err = runEpisodeMode(store, *last, *jsonOut)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

// #endregion main

// #region episode-mode

type episodeRow struct {
	ID        string `json:"episode_id"`
	BatchSize int    `json:"batch_size"`
	Steps     int    `json:"steps"`
	CreatedAt string `json:"created_at"`
	ClosedAt  string `json:"closed_at,omitempty"`
}

func runEpisodeMode(store *trace.Store, last int, jsonOut bool) error {
	episodes, err := store.ListEpisodes(last)
	if err != nil {
		return err
	}

	rows := make([]episodeRow, 0, len(episodes))
	for _, e := range episodes {
		row := episodeRow{
			ID:        e.ID,
			BatchSize: e.BatchSize,
			Steps:     e.Steps,
			CreatedAt: e.CreatedAt.Format(time.RFC3339),
		}
		if !e.ClosedAt.IsZero() {
			row.ClosedAt = e.ClosedAt.Format(time.RFC3339)
		}
		rows = append(rows, row)
	}

	if jsonOut {
		return json.NewEncoder(os.Stdout).Encode(rows)
	}

	fmt.Printf("%-38s %7s %6s %-22s %s\n", "EPISODE", "BATCH", "STEPS", "CREATED", "CLOSED")
	for _, r := range rows {
		closed := r.ClosedAt
		if closed == "" {
			closed = "(open)"
		}
		fmt.Printf("%-38s %7d %6d %-22s %s\n", r.ID, r.BatchSize, r.Steps, r.CreatedAt, closed)
	}
	return nil
}

// #endregion episode-mode

// #region step-mode

type stepRow struct {
	StepIndex  int     `json:"step_idx"`
	BatchSize  int     `json:"batch_size"`
	Sharing    bool    `json:"sharing"`
	VocabSize  int     `json:"vocab_size"`
	ModelIDs   []int64 `json:"model_ids"`
	DurationUS int64   `json:"duration_us"`
}

func runStepMode(store *trace.Store, episodeID string, jsonOut bool) error {
	steps, err := store.ListSteps(episodeID)
	if err != nil {
		return err
	}
	if len(steps) == 0 {
		return fmt.Errorf("episode %s has no recorded steps", episodeID)
	}

	rows := make([]stepRow, 0, len(steps))
	for _, s := range steps {
		rows = append(rows, stepRow{
			StepIndex:  s.StepIndex,
			BatchSize:  s.BatchSize,
			Sharing:    s.Sharing,
			VocabSize:  s.VocabSize,
			ModelIDs:   s.ModelIDs,
			DurationUS: s.Duration.Microseconds(),
		})
	}

	if jsonOut {
		return json.NewEncoder(os.Stdout).Encode(rows)
	}

	fmt.Printf("%5s %6s %8s %6s %10s  %s\n", "STEP", "BATCH", "SHARING", "VOCAB", "DUR(us)", "MODEL IDS")
	for _, r := range rows {
		fmt.Printf("%5d %6d %8v %6d %10d  %v\n",
			r.StepIndex, r.BatchSize, r.Sharing, r.VocabSize, r.DurationUS, r.ModelIDs)
	}
	return nil
}

// #endregion step-mode
