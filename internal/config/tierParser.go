package config

import (
	"fmt"
	"reflect"

	"github.com/mitchellh/mapstructure"

	"github.com/124-hue/APIkeygenerator/internal/domain"
)

// StringToTier is a DecodeHookFunc that converts a string to domain.Tier
func StringToTier() mapstructure.DecodeHookFunc {
	return func(f, t reflect.Type, data interface{}) (interface{}, error) {
		if t != reflect.TypeOf(domain.Tier("")) || f == t {
			return data, nil
		}
		if f.Kind() != reflect.String {
			return data, nil
		}
		s, ok := data.(string)
		if !ok {
			return data, nil
		}
		tier, err := domain.ParseTier(s)
		if err != nil {
			return nil, fmt.Errorf("tier %q: %w", s, err)
		}
		return tier, nil
	}
}
