// Package catalog loads challenge prompts from an optional YAML file.
//
// The file maps each challenge type to its prompt list:
//
//	consumption:
//	  - Buy local, seasonal produce
//	waste:
//	  - Separate organic and inorganic waste
//	electricity: [...]
//	fuel: [...]
//
// Every type must be present with at least one prompt.
package catalog

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/alexanderramin/ecoquest/internal/domain"
	"gopkg.in/yaml.v3"
)

// Load reads the catalog at path. An empty path or a missing file yields
// the built-in catalog.
func Load(path string) (domain.Catalog, error) {
	if path == "" {
		return domain.DefaultCatalog(), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return domain.DefaultCatalog(), nil
		}
		return domain.Catalog{}, fmt.Errorf("reading catalog %s: %w", path, err)
	}
	c, err := Parse(data)
	if err != nil {
		return domain.Catalog{}, fmt.Errorf("catalog %s: %w", path, err)
	}
	return c, nil
}

// Parse decodes a YAML catalog document and validates it.
func Parse(data []byte) (domain.Catalog, error) {
	var raw map[string][]string
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return domain.Catalog{}, fmt.Errorf("parsing yaml: %w", err)
	}

	prompts := make(map[domain.ChallengeType][]string, len(raw))
	for name, list := range raw {
		t, err := domain.ParseChallengeType(name)
		if err != nil {
			return domain.Catalog{}, err
		}
		prompts[t] = append(prompts[t], list...)
	}

	c := domain.NewCatalog(prompts)
	if err := c.Validate(); err != nil {
		return domain.Catalog{}, err
	}
	return c, nil
}

// Marshal renders c as a YAML document accepted by Parse.
func Marshal(c domain.Catalog) ([]byte, error) {
	doc := yaml.Node{Kind: yaml.MappingNode}
	for _, t := range domain.AllChallengeTypes {
		list := yaml.Node{Kind: yaml.SequenceNode}
		for _, p := range c.Prompts(t) {
			list.Content = append(list.Content, &yaml.Node{Kind: yaml.ScalarNode, Value: p})
		}
		doc.Content = append(doc.Content,
			&yaml.Node{Kind: yaml.ScalarNode, Value: string(t)},
			&list,
		)
	}
	return yaml.Marshal(&doc)
}
