package seqmodel

import (
	"context"
	"errors"
	"fmt"

	pb "github.com/MAli82/deep-symbolic-optimization/gen/seqmodel"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
)

// #region client-struct
// ModelClient wraps the gRPC connection to the Python inference service
// that holds the trained sequence model. It is the single component that
// speaks the service's calling convention.
type ModelClient struct {
	conn   *grpc.ClientConn
	client pb.SequenceModelClient
}

// #endregion client-struct

// #region constructor
// NewModelClient connects to the inference gRPC server.
func NewModelClient(addr string) (*ModelClient, error) {
	conn, err := grpc.NewClient(addr, grpc.WithTransportCredentials(insecure.NewCredentials()))
	if err != nil {
		return nil, fmt.Errorf("grpc dial %s: %w", addr, err)
	}
	return &ModelClient{
		conn:   conn,
		client: pb.NewSequenceModelClient(conn),
	}, nil
}

// NewModelClientWithService creates a ModelClient with an injected service
// implementation. Used for testing without a real gRPC connection.
func NewModelClientWithService(svc pb.SequenceModelClient) *ModelClient {
	return &ModelClient{client: svc}
}

// #endregion constructor

// #region close
// Close shuts down the gRPC connection.
func (c *ModelClient) Close() error {
	return c.conn.Close()
}

// #endregion close

// #region step
// Step sends one token id per batch row plus the prior recurrent state and
// reshapes the flat logits into one row per batch element. All failures,
// including a malformed response shape, surface as InferenceError.
func (c *ModelClient) Step(ctx context.Context, tokenIDs []int64, prior State) ([][]float32, State, error) {
	if len(tokenIDs) == 0 {
		return nil, nil, &InferenceError{Op: "step", Err: errors.New("empty token batch")}
	}

	resp, err := c.client.Step(ctx, &pb.StepRequest{
		TokenIds: tokenIDs,
		State:    prior,
	})
	if err != nil {
		return nil, nil, &InferenceError{Op: "step rpc", Err: err}
	}

	vocabSize := int(resp.VocabSize)
	batch := len(tokenIDs)
	if vocabSize <= 0 || len(resp.Logits) != batch*vocabSize {
		return nil, nil, &InferenceError{
			Op:  "step",
			Err: fmt.Errorf("logits length %d does not match batch %d x vocab %d", len(resp.Logits), batch, vocabSize),
		}
	}

	logits := make([][]float32, batch)
	for row := 0; row < batch; row++ {
		logits[row] = resp.Logits[row*vocabSize : (row+1)*vocabSize]
	}
	return logits, State(resp.State), nil
}

// #endregion step

// #region fetch-vocabulary
// FetchVocabulary retrieves the token-to-id table from the model artifact.
// Called once before any episode begins.
func (c *ModelClient) FetchVocabulary(ctx context.Context) (map[string]int64, error) {
	resp, err := c.client.GetVocabulary(ctx, &pb.VocabularyRequest{})
	if err != nil {
		return nil, fmt.Errorf("get vocabulary rpc: %w", err)
	}

	table := make(map[string]int64, len(resp.Entries))
	for _, e := range resp.Entries {
		table[e.Token] = e.Id
	}
	return table, nil
}

// #endregion fetch-vocabulary
