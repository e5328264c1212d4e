package main

import (
	"bufio"
	"context"
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/MAli82/deep-symbolic-optimization/internal/prior"
	"github.com/MAli82/deep-symbolic-optimization/internal/seqmodel"
	"github.com/MAli82/deep-symbolic-optimization/internal/trace"
	"github.com/MAli82/deep-symbolic-optimization/internal/vocab"
)

// #region main
func main() {
	modelAddr := envOr("MODEL_ADDR", "localhost:50061")
	dbPath := os.Getenv("PRIOR_DB")
	nInputVars := envInt("N_INPUT_VARS", 2)
	functions := strings.Split(envOr("FUNCTION_SET", "add,sub,mul,div,sin,cos,exp,log"), ",")
	sharing := envOr("PROB_SHARING", "true") != "false"

	// Connect to the inference service and pull the model vocabulary
	client, err := seqmodel.NewModelClient(modelAddr)
	if err != nil {
		log.Fatalf("failed to connect to model service at %s: %v", modelAddr, err)
	}
	defer client.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	tokenToID, err := client.FetchVocabulary(ctx)
	cancel()
	if err != nil {
		log.Fatalf("failed to fetch model vocabulary: %v", err)
	}

	search := vocab.NewSearchVocabulary(nInputVars, functions)
	model := vocab.NewModelVocabulary(tokenToID)

	var opts []prior.Option
	if dbPath != "" {
		store, err := trace.NewStore(dbPath)
		if err != nil {
			log.Fatalf("failed to open trace store: %v", err)
		}
		defer store.Close()
		opts = append(opts, prior.WithRecorder(store))
	}

	computer, err := prior.NewComputer(search, model, client, opts...)
	if err != nil {
		log.Fatalf("failed to build prior computer: %v", err)
	}

	fmt.Println("LM prior bridge ready.")
	fmt.Printf("  Model: %s | Search vocab: %d tokens | Model vocab: %d tokens | Sharing: %v\n",
		modelAddr, search.Len(), model.Len(), sharing)
	fmt.Println("Enter previous-token indices per line (e.g. '0 3 1'), 'reset' to end the episode, 'quit' to exit:")

	scanner := bufio.NewScanner(os.Stdin)
	for {
		fmt.Print("> ")
		if !scanner.Scan() {
			break
		}
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		if line == "quit" || line == "exit" {
			break
		}
		if line == "reset" {
			computer.ResetEpisode()
			fmt.Println("episode reset")
			continue
		}

		indices, err := parseIndices(line)
		if err != nil {
			log.Printf("bad input: %v", err)
			continue
		}

		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		priors, err := computer.ComputeBatchPrior(ctx, indices, sharing)
		cancel()
		if err != nil {
			log.Printf("prior error: %v", err)
			continue
		}

		for row, vec := range priors {
			fmt.Printf("row %d:", row)
			for i, v := range vec {
				fmt.Printf(" %s=%.4f", search.Token(i).Text, v)
			}
			fmt.Println()
		}
		fmt.Printf("[BRIDGE] phase=%s batch=%d\n", computer.Phase(), len(indices))
	}
}

// #endregion main

// #region helpers
func parseIndices(line string) ([]int, error) {
	fields := strings.Fields(line)
	indices := make([]int, 0, len(fields))
	for _, f := range fields {
		n, err := strconv.Atoi(f)
		if err != nil {
			return nil, fmt.Errorf("token index %q: %w", f, err)
		}
		indices = append(indices, n)
	}
	return indices, nil
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return fallback
}

// #endregion helpers
