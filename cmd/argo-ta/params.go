package main

import "strconv"

// parseParams turns command-line parameters into the values indicator Config
// expects: integers, then floats, then plain strings such as a price field.
func parseParams(raw []string) []any {
	params := make([]any, 0, len(raw))

	for _, value := range raw {
		if i, err := strconv.Atoi(value); err == nil {
			params = append(params, i)

			continue
		}

		if f, err := strconv.ParseFloat(value, 64); err == nil {
			params = append(params, f)

			continue
		}

		params = append(params, value)
	}

	return params
}
