package storage

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/oolnhq/insights-service/internal/domain"
)

// LoadCorpus reads the precomputed intent example corpus. It is called once
// at startup; the corpus is immutable afterwards. An empty or unreadable
// corpus is a startup error, not something to limp along without.
func LoadCorpus(path string) (domain.IntentCorpus, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading intent corpus %s: %w", path, err)
	}
	var corpus domain.IntentCorpus
	if err := json.Unmarshal(raw, &corpus); err != nil {
		return nil, fmt.Errorf("decoding intent corpus %s: %w", path, err)
	}
	if len(corpus) == 0 {
		return nil, fmt.Errorf("intent corpus %s is empty", path)
	}
	return corpus, nil
}

// SaveCorpus writes a freshly generated corpus, pretty-printed so diffs stay
// reviewable.
func SaveCorpus(path string, corpus domain.IntentCorpus) error {
	raw, err := json.MarshalIndent(corpus, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding intent corpus: %w", err)
	}
	if err := os.WriteFile(path, raw, 0o644); err != nil {
		return fmt.Errorf("writing intent corpus %s: %w", path, err)
	}
	return nil
}
