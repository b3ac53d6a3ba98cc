package astjson

import (
	"fmt"

	"github.com/tidwall/gjson"
	"github.com/tidwall/pretty"
	"github.com/tidwall/sjson"
)

// Query runs a gjson path expression against an encoded tree, e.g.
// "declarations.0.name.name" to pull the first declaration's name out
// of a --json CLI dump without re-decoding the whole program.
func Query(data []byte, path string) (string, error) {
	result := gjson.GetBytes(data, path)
	if !result.Exists() {
		return "", fmt.Errorf("astjson: query %q matched nothing", path)
	}
	return result.Raw, nil
}

// Set patches a single path in an encoded tree, the mechanism test
// fixtures use to mutate one field of a golden JSON tree (e.g.
// flipping a literal's value) without hand-editing the whole document.
func Set(data []byte, path string, value any) ([]byte, error) {
	out, err := sjson.SetBytes(data, path, value)
	if err != nil {
		return nil, fmt.Errorf("astjson: set %q: %w", path, err)
	}
	return out, nil
}

// Pretty re-indents an encoded tree. Encode already pretty-prints its
// own output; Pretty exists for callers that built or patched JSON
// bytes some other way (e.g. after Set) and want the same formatting.
func Pretty(data []byte) []byte {
	return pretty.Pretty(data)
}
