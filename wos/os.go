package wos

import (
	"fmt"
	"os"
	"strings"
)

// If s has a $ prefix then s names an env
// variable holding the actual value.
// For example: $WCONV_INPUT reads WCONV_INPUT.
//
// An unset or empty variable is an error.
// Without the $ prefix s is returned as is.
func Getenv(s string) (string, error) {
	if !strings.HasPrefix(s, "$") {
		return s, nil
	}
	name := strings.ToUpper(strings.TrimPrefix(s, "$"))
	v := os.Getenv(name)
	if v == "" {
		return "", fmt.Errorf("expected %s to be set", name)
	}
	return v, nil
}

// Resolves each element of args with Getenv
func Getenvs(args []string) ([]string, error) {
	res := make([]string, len(args))
	for i := range args {
		v, err := Getenv(args[i])
		if err != nil {
			return nil, err
		}
		res[i] = v
	}
	return res, nil
}
