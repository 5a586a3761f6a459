package log

import "sort"

// Namespaces used across the acronyms CLI.
const (
	NsLocator  = "locator"
	NsDatabase = "database"
	NsCLI      = "cli"
)

// KV is a set of key-value pairs attached to a log entry.
type KV map[string]any

// kvToArgs flattens the first KV into slog arguments sorted by key.
//
// Only the first KV is used, the variadic form exists so callers can
// omit it entirely.
func kvToArgs(keyVals ...KV) []any {
	if len(keyVals) == 0 {
		return []any{}
	}

	kv := keyVals[0]
	keys := make([]string, 0, len(kv))
	for k := range kv {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	args := make([]any, 0, len(kv)*2)
	for _, k := range keys {
		args = append(args, k, kv[k])
	}
	return args
}

// kvToArgsNs is like kvToArgs but prepends the namespace as "ns".
func kvToArgsNs(namespace string, keyVals ...KV) []any {
	return append([]any{"ns", namespace}, kvToArgs(keyVals...)...)
}
