// Package booster evaluates gradient-boosted tree ensembles saved in the
// XGBoost JSON model format.
package booster

import (
	"errors"
	"fmt"
	"io"
	"math"
	"path/filepath"
	"slices"
	"strconv"
	"strings"

	"estate_price/internal/domain"
	"estate_price/pkg/errcodes"
	"estate_price/pkg/iox"
)

var ErrUnsupportedFormat = errors.New("unsupported model format")

type node struct {
	left, right int
	feature     int
	split       float64
	defaultLeft bool
}

type tree struct {
	nodes  []node
	weight float64
}

type Model struct {
	trees        []tree
	baseMargin   float64
	link         func(margin float64) float64
	objective    string
	numFeature   int
	featureNames []string
}

// Load reads a JSON model from path, decompressing .gz and .zst files.
func Load(path string) (*Model, error) {
	if ext := strings.ToLower(filepath.Ext(iox.TrimCompression(path))); ext != ".json" {
		return nil, domain.WrapError(
			fmt.Errorf("%w: %q", ErrUnsupportedFormat, ext),
			errcodes.InvalidModel,
			"only XGBoost JSON models can be loaded",
		)
	}

	r, err := iox.Open(path)
	if err != nil {
		return nil, fmt.Errorf("iox.Open: %w", err)
	}
	defer r.Close()

	m, err := Parse(r)
	if err != nil {
		return nil, fmt.Errorf("booster.Load %s: %w", path, err)
	}

	return m, nil
}

func Parse(r io.Reader) (*Model, error) {
	var f modelFile
	if err := json.NewDecoder(r).Decode(&f); err != nil {
		return nil, domain.WrapError(err, errcodes.InvalidModel, "decode model")
	}

	m, err := compile(f.Learner)
	if err != nil {
		return nil, domain.WrapError(err, errcodes.InvalidModel, "compile model")
	}

	return m, nil
}

func compile(l learnerFile) (*Model, error) {
	if n := l.Param.NumClass; n != "" && n != "0" && n != "1" {
		return nil, fmt.Errorf("multi-class models are not supported (num_class=%s)", n)
	}

	if n := l.Param.NumTarget; n != "" && n != "1" {
		return nil, fmt.Errorf("multi-target models are not supported (num_target=%s)", n)
	}

	numFeature, err := strconv.Atoi(strings.TrimSpace(l.Param.NumFeature))
	if err != nil {
		return nil, fmt.Errorf("num_feature: %w", err)
	}

	if len(l.FeatureNames) > 0 && len(l.FeatureNames) != numFeature {
		return nil, fmt.Errorf("%d feature names for %d features", len(l.FeatureNames), numFeature)
	}

	base, err := parseBaseScore(l.Param.BaseScore)
	if err != nil {
		return nil, err
	}

	baseMargin, link, err := objectiveLink(l.Objective.Name, base)
	if err != nil {
		return nil, err
	}

	model, weights, err := l.GradientBooster.trees()
	if err != nil {
		return nil, err
	}

	if weights != nil && len(weights) != len(model.Trees) {
		return nil, fmt.Errorf("%d drop weights for %d trees", len(weights), len(model.Trees))
	}

	trees := make([]tree, len(model.Trees))

	for i, tf := range model.Trees {
		t, err := compileTree(tf, numFeature)
		if err != nil {
			return nil, fmt.Errorf("tree %d: %w", i, err)
		}

		t.weight = 1
		if weights != nil {
			t.weight = weights[i]
		}

		trees[i] = t
	}

	return &Model{
		trees:        trees,
		baseMargin:   baseMargin,
		link:         link,
		objective:    l.Objective.Name,
		numFeature:   numFeature,
		featureNames: l.FeatureNames,
	}, nil
}

func compileTree(tf treeFile, numFeature int) (tree, error) {
	n := len(tf.LeftChildren)
	if n == 0 {
		return tree{}, errors.New("empty tree")
	}

	if s := tf.Param.SizeLeafVector; s != "" && s != "0" && s != "1" {
		return tree{}, fmt.Errorf("vector leaves are not supported (size_leaf_vector=%s)", s)
	}

	if len(tf.CategoryNodes) > 0 || slices.ContainsFunc(tf.SplitType, func(t int) bool { return t != 0 }) {
		return tree{}, errors.New("categorical splits are not supported")
	}

	if len(tf.RightChildren) != n || len(tf.SplitIndices) != n ||
		len(tf.SplitConditions) != n || len(tf.DefaultLeft) != n {
		return tree{}, errors.New("node arrays differ in length")
	}

	nodes := make([]node, n)

	for i := range n {
		nd := node{
			left:        tf.LeftChildren[i],
			right:       tf.RightChildren[i],
			feature:     tf.SplitIndices[i],
			split:       tf.SplitConditions[i],
			defaultLeft: tf.DefaultLeft[i],
		}

		if nd.left != -1 {
			// Children always follow their parent, so traversal terminates.
			if nd.left <= i || nd.left >= n || nd.right <= i || nd.right >= n {
				return tree{}, fmt.Errorf("node %d: children %d/%d out of range", i, nd.left, nd.right)
			}

			if nd.feature < 0 || nd.feature >= numFeature {
				return tree{}, fmt.Errorf("node %d: split on feature %d of %d", i, nd.feature, numFeature)
			}
		}

		nodes[i] = nd
	}

	return tree{nodes: nodes}, nil
}

// objectiveLink returns the margin of base and the inverse link applied to the
// summed margin.
func objectiveLink(objective string, base float64) (float64, func(float64) float64, error) {
	switch objective {
	case "reg:squarederror", "reg:squaredlogerror", "reg:pseudohubererror",
		"reg:absoluteerror", "reg:quantileerror", "reg:linear":
		return base, identity, nil
	case "reg:gamma", "reg:tweedie", "count:poisson":
		if base <= 0 {
			return 0, nil, fmt.Errorf("%s needs a positive base_score, got %v", objective, base)
		}

		return math.Log(base), math.Exp, nil
	case "reg:logistic", "binary:logistic":
		if base <= 0 || base >= 1 {
			return 0, nil, fmt.Errorf("%s needs base_score in (0, 1), got %v", objective, base)
		}

		return math.Log(base / (1 - base)), sigmoid, nil
	default:
		return 0, nil, fmt.Errorf("objective %q is not supported", objective)
	}
}

func identity(x float64) float64 {
	return x
}

func sigmoid(x float64) float64 {
	return 1 / (1 + math.Exp(-x))
}

// Predict scores one row. NaN marks a missing feature and follows the
// default branch of every split it meets.
func (m *Model) Predict(features []float64) (float64, error) {
	if len(features) != m.numFeature {
		return 0, fmt.Errorf("booster.Predict: got %d features, model expects %d", len(features), m.numFeature)
	}

	margin := m.baseMargin
	for _, t := range m.trees {
		margin += t.weight * t.leaf(features)
	}

	return m.link(margin), nil
}

func (t tree) leaf(features []float64) float64 {
	i := 0

	for {
		nd := t.nodes[i]
		if nd.left == -1 {
			return nd.split
		}

		x := features[nd.feature]

		switch {
		case math.IsNaN(x):
			if nd.defaultLeft {
				i = nd.left
			} else {
				i = nd.right
			}
		case x < nd.split:
			i = nd.left
		default:
			i = nd.right
		}
	}
}

// FeatureNames returns the names stored with the model, if any.
func (m *Model) FeatureNames() []string {
	return slices.Clone(m.featureNames)
}

func (m *Model) NumFeatures() int {
	return m.numFeature
}

func (m *Model) NumTrees() int {
	return len(m.trees)
}

func (m *Model) Objective() string {
	return m.objective
}
