package booster

import (
	"bytes"
	"errors"
	"fmt"
	"strconv"
	"strings"

	jsoniter "github.com/json-iterator/go"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary //nolint:gochecknoglobals // skip

type modelFile struct {
	Learner learnerFile `json:"learner"`
	Version []int       `json:"version"`
}

type learnerFile struct {
	FeatureNames    []string        `json:"feature_names"`
	GradientBooster gradientBooster `json:"gradient_booster"`
	Param           learnerParam    `json:"learner_model_param"`
	Objective       struct {
		Name string `json:"name"`
	} `json:"objective"`
}

type learnerParam struct {
	BaseScore  string `json:"base_score"`
	NumClass   string `json:"num_class"`
	NumFeature string `json:"num_feature"`
	NumTarget  string `json:"num_target"`
}

// gradientBooster covers gbtree and dart. Dart nests the tree model one level
// down and scales every tree by its drop weight.
type gradientBooster struct {
	Name   string      `json:"name"`
	Model  *treesModel `json:"model"`
	GBTree *struct {
		Model *treesModel `json:"model"`
	} `json:"gbtree"`
	WeightDrop []float64 `json:"weight_drop"`
}

type treesModel struct {
	Trees    []treeFile `json:"trees"`
	TreeInfo []int      `json:"tree_info"`
}

type treeFile struct {
	LeftChildren    []int     `json:"left_children"`
	RightChildren   []int     `json:"right_children"`
	SplitIndices    []int     `json:"split_indices"`
	SplitConditions []float64 `json:"split_conditions"`
	DefaultLeft     flags     `json:"default_left"`
	SplitType       []int     `json:"split_type"`
	CategoryNodes   []int     `json:"categories_nodes"`
	Param           struct {
		SizeLeafVector string `json:"size_leaf_vector"`
	} `json:"tree_param"`
}

// flags decodes default_left, written as 0/1 integers by recent XGBoost
// releases and as booleans by older ones.
type flags []bool

func (f *flags) UnmarshalJSON(data []byte) error {
	var raw []jsoniter.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return fmt.Errorf("flags.UnmarshalJSON: %w", err)
	}

	out := make(flags, len(raw))

	for i, item := range raw {
		switch s := string(bytes.TrimSpace(item)); s {
		case "true", "1":
			out[i] = true
		case "false", "0":
			out[i] = false
		default:
			return fmt.Errorf("flags.UnmarshalJSON: unexpected value %s", s)
		}
	}

	*f = out

	return nil
}

// parseBaseScore accepts "5E-1" as well as the bracketed "[5E-1]" form.
func parseBaseScore(s string) (float64, error) {
	s = strings.TrimSpace(s)
	s = strings.TrimPrefix(s, "[")
	s = strings.TrimSuffix(s, "]")

	if s == "" {
		return 0, nil
	}

	if i := strings.IndexByte(s, ','); i >= 0 {
		return 0, fmt.Errorf("parseBaseScore: multi-target base score %q", s)
	}

	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, fmt.Errorf("strconv.ParseFloat: %w", err)
	}

	return v, nil
}

func (g gradientBooster) trees() (*treesModel, []float64, error) {
	switch g.Name {
	case "gbtree", "":
		if g.Model == nil {
			return nil, nil, errors.New("gbtree without model")
		}

		return g.Model, nil, nil
	case "dart":
		if g.GBTree == nil || g.GBTree.Model == nil {
			return nil, nil, errors.New("dart without gbtree model")
		}

		return g.GBTree.Model, g.WeightDrop, nil
	default:
		return nil, nil, fmt.Errorf("unsupported booster %q", g.Name)
	}
}
