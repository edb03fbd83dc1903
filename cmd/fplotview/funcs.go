package main

import "strings"

// funcFlags collects repeated -f values.
type funcFlags []string

func (f *funcFlags) String() string { return strings.Join(*f, ", ") }

func (f *funcFlags) Set(v string) error {
	*f = append(*f, v)
	return nil
}
