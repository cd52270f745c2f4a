package gateway

// ModelConfig binds an application language pair to a model and to the
// model's own language codes.
type ModelConfig struct {
	Key             string `json:"key"`
	ModelID         string `json:"model_id"`
	SourceTag       string `json:"from"`
	TargetTag       string `json:"to"`
	ModelSourceCode string `json:"-"`
	ModelTargetCode string `json:"-"`
}

// DefaultModels are the fine-tuned NLLB checkpoints for Chadian Arabic and French.
var DefaultModels = []ModelConfig{
	{
		Key:             "ar-TD_to_fr",
		ModelID:         "Koubra-Gaby/facebook-NLLB-arb-fr",
		SourceTag:       "ar-TD",
		TargetTag:       "fr",
		ModelSourceCode: "acm_Latn",
		ModelTargetCode: "fra_Latn",
	},
	{
		Key:             "fr_to_ar-TD",
		ModelID:         "Koubra-Gaby/facebook-NLLB-fr-arb",
		SourceTag:       "fr",
		TargetTag:       "ar-TD",
		ModelSourceCode: "fra_Latn",
		ModelTargetCode: "arb_Latn",
	},
}

type pairKey struct {
	source, target string
}

type Registry struct {
	configs []ModelConfig
	index   map[pairKey]int
}

// NewRegistry indexes configs by pair. A later entry for the same pair
// replaces the earlier one in place.
func NewRegistry(configs []ModelConfig) *Registry {
	r := &Registry{index: make(map[pairKey]int, len(configs))}
	for _, c := range configs {
		k := pairKey{c.SourceTag, c.TargetTag}
		if i, ok := r.index[k]; ok {
			r.configs[i] = c
			continue
		}
		r.index[k] = len(r.configs)
		r.configs = append(r.configs, c)
	}
	return r
}

// Resolve is an exact, case-sensitive match on the pair.
func (r *Registry) Resolve(sourceTag, targetTag string) (ModelConfig, error) {
	i, ok := r.index[pairKey{sourceTag, targetTag}]
	if !ok {
		return ModelConfig{}, ErrUnsupportedPair
	}
	return r.configs[i], nil
}

func (r *Registry) Pairs() []ModelConfig {
	out := make([]ModelConfig, len(r.configs))
	copy(out, r.configs)
	return out
}

// ModelIDs lists distinct model ids in registration order.
func (r *Registry) ModelIDs() []string {
	seen := make(map[string]bool, len(r.configs))
	var ids []string
	for _, c := range r.configs {
		if !seen[c.ModelID] {
			seen[c.ModelID] = true
			ids = append(ids, c.ModelID)
		}
	}
	return ids
}
