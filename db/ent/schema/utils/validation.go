package utils

import "fmt"

// EnumValidator returns a field validator accepting only the given values.
func EnumValidator(allowed ...string) func(string) error {
	set := make(map[string]struct{}, len(allowed))
	for _, v := range allowed {
		set[v] = struct{}{}
	}
	return func(s string) error {
		if _, ok := set[s]; !ok {
			return fmt.Errorf("value %q not in %v", s, allowed)
		}
		return nil
	}
}
