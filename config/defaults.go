package config

import (
	"fmt"
	"reflect"

	"gopkg.in/yaml.v3"
)

// IsAllowedOverrideType reports whether an override value should replace a default.
// Config objects should use "omitempty", or every field gets overwritten.
func IsAllowedOverrideType(v interface{}) bool {
	if v == nil {
		return false
	}
	value := reflect.ValueOf(v)
	switch value.Kind() {
	case reflect.Map:
		return false
	case reflect.Array, reflect.Slice:
		// only override with a non empty list
		return value.Len() > 0
	case reflect.Int, reflect.Bool, reflect.String:
		// enable overriding with "", 0, false
		return true
	}
	// don't overwrite with other zero values
	return !value.IsZero()
}

func isMap(v interface{}) bool {
	return v != nil && reflect.TypeOf(v).Kind() == reflect.Map
}

// RecursiveOverride merges overrides into defaults, map by map.
func RecursiveOverride(defaults map[string]interface{}, overrides map[string]interface{}) error {
	for key, val := range overrides {
		existing, ok := defaults[key]
		if !ok {
			defaults[key] = val
			continue
		}
		if isMap(existing) && isMap(val) {
			existingMap, ok1 := existing.(map[string]interface{})
			valMap, ok2 := val.(map[string]interface{})
			if !ok1 || !ok2 {
				return fmt.Errorf("cannot merge %s: unknown map %T", key, existing)
			}
			if err := RecursiveOverride(existingMap, valMap); err != nil {
				return err
			}
		} else if IsAllowedOverrideType(val) {
			defaults[key] = val
		}
	}
	return nil
}

func toMap(cfg interface{}) (map[string]interface{}, error) {
	bz, err := yaml.Marshal(cfg)
	if err != nil {
		return nil, err
	}
	result := map[string]interface{}{}
	if err := yaml.Unmarshal(bz, &result); err != nil {
		return nil, err
	}
	return result, nil
}

// ApplyDefaults writes defaultCfg overridden by overrideCfg into newCfg.
// All three may be the same kind of struct, round tripped through yaml.
func ApplyDefaults(defaultCfg interface{}, overrideCfg interface{}, newCfg interface{}) error {
	defaults, err := toMap(defaultCfg)
	if err != nil {
		return err
	}
	overrides, err := toMap(overrideCfg)
	if err != nil {
		return err
	}
	if err := RecursiveOverride(defaults, overrides); err != nil {
		return err
	}
	bz, err := yaml.Marshal(defaults)
	if err != nil {
		return err
	}
	return yaml.Unmarshal(bz, newCfg)
}
