package extract

import (
	"encoding/json"
	"fmt"
	"reflect"
	"strconv"

	"github.com/mitchellh/mapstructure"
)

// Decode converts a loosely typed value (as produced by encoding/json into
// any) into out using the `json` struct tags. Decoding is weakly typed:
// numbers and booleans become strings, and nested objects or arrays landing
// in a string field are rendered as compact JSON.
func Decode(input any, out any) error {
	cfg := &mapstructure.DecoderConfig{
		Result:           out,
		TagName:          "json",
		WeaklyTypedInput: true,
		DecodeHook:       mapstructure.DecodeHookFuncType(stringifyHook),
	}

	decoder, err := mapstructure.NewDecoder(cfg)
	if err != nil {
		return fmt.Errorf("create decoder: %w", err)
	}

	if err := decoder.Decode(input); err != nil {
		return fmt.Errorf("decode: %w", err)
	}

	return nil
}

func stringifyHook(from reflect.Type, to reflect.Type, data any) (any, error) {
	if to.Kind() != reflect.String || data == nil {
		return data, nil
	}

	switch from.Kind() {
	case reflect.Bool:
		return strconv.FormatBool(reflect.ValueOf(data).Bool()), nil
	case reflect.Map, reflect.Slice, reflect.Array:
		encoded, err := json.Marshal(data)
		if err != nil {
			return fmt.Sprintf("%v", data), nil
		}
		return string(encoded), nil
	default:
		return data, nil
	}
}
