package vocab

import (
	"fmt"
	"strings"
)

// #region token
// Kind distinguishes the two classes of search-grammar tokens.
type Kind int

const (
	// KindVariable is an input-variable placeholder (x1, x2, ...).
	// The sequence model sees all of these as one "terminal" token.
	KindVariable Kind = iota
	// KindFunction is an operator or function token (add, sin, ...).
	KindFunction
)

// Token is a single entry of the search grammar's token set.
type Token struct {
	Text string
	Kind Kind
}

// #endregion token

// #region search-vocabulary
// SearchVocabulary is the ordered, stable-indexed token set of the search
// grammar. Fixed for the lifetime of a search run.
type SearchVocabulary struct {
	tokens []Token
}

// NewSearchVocabulary builds the search token set: input-variable tokens
// x1..xn first, then the function set, matching the upstream library order.
func NewSearchVocabulary(nInputVars int, functions []string) SearchVocabulary {
	tokens := make([]Token, 0, nInputVars+len(functions))
	for i := 1; i <= nInputVars; i++ {
		tokens = append(tokens, Token{Text: fmt.Sprintf("x%d", i), Kind: KindVariable})
	}
	for _, f := range functions {
		tokens = append(tokens, Token{Text: f, Kind: KindFunction})
	}
	return SearchVocabulary{tokens: tokens}
}

// Len returns the number of search tokens.
func (v SearchVocabulary) Len() int {
	return len(v.tokens)
}

// Token returns the token at index i.
func (v SearchVocabulary) Token(i int) Token {
	return v.tokens[i]
}

// Tokens returns a copy of the ordered token list.
func (v SearchVocabulary) Tokens() []Token {
	out := make([]Token, len(v.tokens))
	copy(out, v.tokens)
	return out
}

// #endregion search-vocabulary

// #region model-vocabulary
// ModelVocabulary maps token strings to the ids known to the externally
// trained sequence model. Loaded once from the model artifact; immutable.
type ModelVocabulary struct {
	tokenToID map[string]int64
}

// NewModelVocabulary copies the given token-to-id table with keys
// lower-cased. Model artifacts serve their tokens in varying case (the
// terminal entry is often upper-case); lookups are always by lower-cased
// token.
func NewModelVocabulary(tokenToID map[string]int64) ModelVocabulary {
	m := make(map[string]int64, len(tokenToID))
	for k, v := range tokenToID {
		m[strings.ToLower(k)] = v
	}
	return ModelVocabulary{tokenToID: m}
}

// Len returns the number of model tokens.
func (v ModelVocabulary) Len() int {
	return len(v.tokenToID)
}

// Lookup resolves a token string to its model id.
func (v ModelVocabulary) Lookup(token string) (int64, bool) {
	id, ok := v.tokenToID[token]
	return id, ok
}

// #endregion model-vocabulary

// #region alignment-table
// AlignmentTable maps each search token index to a model token id.
// Entry i is the model id that search token i collapses onto. Total by
// construction; not necessarily injective (variables share one id).
type AlignmentTable []int64

// TerminalGroup is the set of search indices sharing one model token id.
// Groups of size 1 are valid and correction-neutral.
type TerminalGroup struct {
	ModelID int64
	Indices []int
}

// #endregion alignment-table
