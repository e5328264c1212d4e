package vocab

import (
	"fmt"
	"sort"
	"strings"
)

// TerminalToken is the model-vocabulary entry that every input-variable
// search token collapses onto. The trained model does not distinguish
// individual input variables.
const TerminalToken = "terminal"

// #region missing-token-error
// MissingTokenError reports a search token with no model-vocabulary entry.
// This is a construction-time configuration error: the bridge refuses to
// substitute a placeholder or unknown-token id.
type MissingTokenError struct {
	Token string
}

func (e *MissingTokenError) Error() string {
	return fmt.Sprintf("search token %q has no model vocabulary entry", e.Token)
}

// #endregion missing-token-error

// #region build-alignment
// BuildAlignment resolves every search token to a model token id.
// Variable tokens resolve to the model's terminal entry; function tokens
// resolve by lower-cased text. Pure and deterministic; returns a
// MissingTokenError on the first unmapped token.
func BuildAlignment(search SearchVocabulary, model ModelVocabulary) (AlignmentTable, error) {
	table := make(AlignmentTable, search.Len())
	for i := 0; i < search.Len(); i++ {
		tok := search.Token(i)

		key := strings.ToLower(tok.Text)
		if tok.Kind == KindVariable {
			key = TerminalToken
		}

		id, ok := model.Lookup(key)
		if !ok {
			return nil, &MissingTokenError{Token: tok.Text}
		}
		table[i] = id
	}
	return table, nil
}

// #endregion build-alignment

// #region groups
// Groups partitions search indices by shared model id. Order is
// deterministic: groups sorted by model id, indices ascending.
func Groups(table AlignmentTable) []TerminalGroup {
	byID := make(map[int64][]int)
	for i, id := range table {
		byID[id] = append(byID[id], i)
	}

	ids := make([]int64, 0, len(byID))
	for id := range byID {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(a, b int) bool { return ids[a] < ids[b] })

	groups := make([]TerminalGroup, 0, len(ids))
	for _, id := range ids {
		groups = append(groups, TerminalGroup{ModelID: id, Indices: byID[id]})
	}
	return groups
}

// #endregion groups
