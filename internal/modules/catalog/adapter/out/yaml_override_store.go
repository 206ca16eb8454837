package out

import (
	"context"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"gakuplan/internal/modules/catalog/domain"
	catalogout "gakuplan/internal/modules/catalog/port/out"
)

type YAMLOverrideStore struct {
	path string
}

func NewYAMLOverrideStore(path string) catalogout.OverrideStore {
	return &YAMLOverrideStore{path: path}
}

func (s *YAMLOverrideStore) Load(_ context.Context) (domain.Overrides, error) {
	payload, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return domain.Overrides{}, nil
		}
		return domain.Overrides{}, fmt.Errorf("read catalog overrides: %w", err)
	}
	overrides := domain.Overrides{}
	if err := yaml.Unmarshal(payload, &overrides); err != nil {
		return domain.Overrides{}, fmt.Errorf("decode catalog overrides: %w", err)
	}
	return overrides, nil
}
