package registry

import (
	"math"

	"github.com/moznion/go-optional"
	"github.com/rxtech-lab/argo-ta/internal/types"
	"github.com/rxtech-lab/argo-ta/pkg/errors"
)

func expectParams(params []any, least, most int, usage string) error {
	if len(params) < least || len(params) > most {
		return errors.Newf(errors.ErrCodeMissingParameter, "Config expects %s", usage)
	}

	return nil
}

// intParam reads a positive integer. A whole float64 is accepted since YAML
// and JSON can deliver numbers that way.
func intParam(params []any, i int, name string) (int, error) {
	var value int

	switch v := params[i].(type) {
	case int:
		value = v
	case int64:
		value = int(v)
	case float64:
		if v != math.Trunc(v) || math.IsInf(v, 0) {
			return 0, errors.Newf(errors.ErrCodeInvalidType, "%s must be a whole number, got %v", name, v)
		}

		value = int(v)
	default:
		return 0, errors.Newf(errors.ErrCodeInvalidType, "invalid type for %s parameter, expected int or float", name)
	}

	if value <= 0 {
		return 0, errors.Newf(errors.ErrCodeInvalidPeriod, "%s must be a positive integer, got %d", name, value)
	}

	return value, nil
}

func floatParam(params []any, i int, name string) (float64, error) {
	switch v := params[i].(type) {
	case float64:
		return v, nil
	case float32:
		return float64(v), nil
	case int:
		return float64(v), nil
	case int64:
		return float64(v), nil
	default:
		return 0, errors.Newf(errors.ErrCodeInvalidType, "invalid type for %s parameter, expected float", name)
	}
}

func positiveFloatParam(params []any, i int, name string, code errors.ErrorCode) (float64, error) {
	value, err := floatParam(params, i, name)
	if err != nil {
		return 0, err
	}

	if !(value > 0) {
		return 0, errors.Newf(code, "%s must be a positive number, got %v", name, value)
	}

	return value, nil
}

// fieldParam reads an optional trailing price field.
func fieldParam(params []any, i int) (optional.Option[types.PriceField], error) {
	if i >= len(params) {
		return optional.None[types.PriceField](), nil
	}

	var field types.PriceField

	switch v := params[i].(type) {
	case string:
		field = types.PriceField(v)
	case types.PriceField:
		field = v
	default:
		return optional.None[types.PriceField](), errors.New(errors.ErrCodeInvalidType, "invalid type for field parameter, expected string")
	}

	switch field {
	case types.PriceFieldOpen, types.PriceFieldHigh, types.PriceFieldLow, types.PriceFieldClose, types.PriceFieldVolume:
		return optional.Some(field), nil
	default:
		return optional.None[types.PriceField](), errors.Newf(errors.ErrCodeInvalidPriceField, "unknown price field %q", field)
	}
}

func fieldOrClose(field optional.Option[types.PriceField]) types.PriceField {
	if field.IsSome() {
		return field.Unwrap()
	}

	return types.PriceFieldClose
}
