package config

import (
	"gopkg.in/yaml.v3"
)

// mergeDefaults lays the configured values over the defaults and decodes the result into dst.
// Both sides go through yaml so the merge follows the yaml field names. Chain sections
// merge key by key, so configuring only a chain's url keeps its default provider.
func mergeDefaults(defaults interface{}, configured interface{}, dst interface{}) error {
	merged, err := toYamlMap(defaults)
	if err != nil {
		return err
	}
	overrides, err := toYamlMap(configured)
	if err != nil {
		return err
	}
	overlay(merged, overrides)

	bz, err := yaml.Marshal(merged)
	if err != nil {
		return err
	}
	return yaml.Unmarshal(bz, dst)
}

func toYamlMap(v interface{}) (map[string]interface{}, error) {
	bz, err := yaml.Marshal(v)
	if err != nil {
		return nil, err
	}
	m := map[string]interface{}{}
	if err := yaml.Unmarshal(bz, &m); err != nil {
		return nil, err
	}
	return m, nil
}

func overlay(base map[string]interface{}, overrides map[string]interface{}) {
	for key, value := range overrides {
		existing, ok := base[key]
		if !ok {
			base[key] = value
			continue
		}
		existingSection, existingIsSection := existing.(map[string]interface{})
		section, isSection := value.(map[string]interface{})
		switch {
		case existingIsSection && isSection:
			overlay(existingSection, section)
		case existingIsSection || isSection:
			// a section and a single value never replace each other
		case value == nil:
		default:
			if list, ok := value.([]interface{}); ok && len(list) == 0 {
				continue
			}
			base[key] = value
		}
	}
}
