package classifier

import (
	"encoding/json"
	"fmt"
	"os"
	"slices"

	"github.com/churn/api/internal/core/domain"
	"github.com/churn/api/internal/core/ports"
)

// artifact is the on-disk layout of the exported decision tree: the feature
// columns in training order, the integer encodings of the categorical
// columns, and a flat node array where index 0 is the root.
type artifact struct {
	Features    []string                      `json:"features"`
	Categorical map[string]map[string]float64 `json:"categorical"`
	Nodes       []node                        `json:"nodes"`
}

type node struct {
	Feature   int     `json:"feature"`
	Threshold float64 `json:"threshold"`
	Left      int     `json:"left"`
	Right     int     `json:"right"`
	Leaf      *int    `json:"leaf,omitempty"`
}

// Tree evaluates a pre-trained binary decision tree. It is read-only after
// Load and safe for concurrent use.
type Tree struct {
	features    []string
	categorical map[string]map[string]float64
	nodes       []node
}

// Load reads the model artifact from path. A missing or corrupt artifact is
// a startup failure for the caller.
func Load(path string) (*Tree, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read model artifact: %w", err)
	}

	var a artifact
	if err := json.Unmarshal(data, &a); err != nil {
		return nil, fmt.Errorf("failed to parse model artifact: %w", err)
	}
	if len(a.Nodes) == 0 {
		return nil, fmt.Errorf("model artifact %s has no nodes", path)
	}
	if !slices.Equal(a.Features, domain.ModelColumns()) {
		return nil, fmt.Errorf("model artifact %s feature columns do not match the expected schema", path)
	}

	return &Tree{
		features:    a.Features,
		categorical: a.Categorical,
		nodes:       a.Nodes,
	}, nil
}

var _ ports.Classifier = (*Tree)(nil)

func (t *Tree) Predict(row domain.FeatureRow) (int, error) {
	vec, err := t.encode(row)
	if err != nil {
		return 0, err
	}

	idx := 0
	// A well-formed tree is acyclic, so the walk takes at most len(nodes) steps.
	for steps := 0; steps <= len(t.nodes); steps++ {
		if idx < 0 || idx >= len(t.nodes) {
			return 0, fmt.Errorf("node index %d out of range", idx)
		}
		n := t.nodes[idx]
		if n.Leaf != nil {
			return *n.Leaf, nil
		}
		if n.Feature < 0 || n.Feature >= len(vec) {
			return 0, fmt.Errorf("node %d references feature %d out of range", idx, n.Feature)
		}
		if vec[n.Feature] <= n.Threshold {
			idx = n.Left
		} else {
			idx = n.Right
		}
	}
	return 0, fmt.Errorf("tree walk did not reach a leaf")
}

// encode orders the row by the training columns and replaces categorical
// values with their integer encodings.
func (t *Tree) encode(row domain.FeatureRow) ([]float64, error) {
	vec := make([]float64, len(t.features))
	for i, name := range t.features {
		value, ok := row[name]
		if !ok {
			return nil, fmt.Errorf("row is missing column %q", name)
		}
		switch v := value.(type) {
		case float64:
			vec[i] = v
		case string:
			encoded, ok := t.categorical[name][v]
			if !ok {
				return nil, fmt.Errorf("no encoding for %q value %q", name, v)
			}
			vec[i] = encoded
		default:
			return nil, fmt.Errorf("unsupported value type %T for column %q", value, name)
		}
	}
	return vec, nil
}
