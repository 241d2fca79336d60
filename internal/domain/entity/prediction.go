package entity

// FeatureVector is the ordered numeric input of the scoring model.
type FeatureVector []float64

type Prediction struct {
	Price    float64
	Features FeatureVector
	// Names holds the feature name of each Features position.
	Names []string
}

// FeatureMap pairs every feature with its name.
func (p Prediction) FeatureMap() map[string]float64 {
	m := make(map[string]float64, len(p.Names))
	for i, name := range p.Names {
		if i < len(p.Features) {
			m[name] = p.Features[i]
		}
	}

	return m
}
