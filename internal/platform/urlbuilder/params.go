package urlbuilder

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"

	sonic "github.com/bytedance/sonic"
)

var errParamsNotObject = errors.New("parameters must be a JSON object")

// Param is a single name/value pair as supplied by the caller.
type Param struct {
	Key   string
	Value string
}

// Params keeps caller parameters in the order their keys appeared in the
// request body. A repeated key keeps its first position and its last value.
type Params []Param

// ParamsOf builds Params from alternating key/value strings.
func ParamsOf(kv ...string) Params {
	out := make(Params, 0, len(kv)/2)
	for i := 0; i+1 < len(kv); i += 2 {
		out = out.With(kv[i], kv[i+1])
	}
	return out
}

// With returns p with key set to value.
func (p Params) With(key, value string) Params {
	for i := range p {
		if p[i].Key == key {
			p[i].Value = value
			return p
		}
	}
	return append(p, Param{Key: key, Value: value})
}

func (p Params) Get(key string) (string, bool) {
	for _, item := range p {
		if item.Key == key {
			return item.Value, true
		}
	}
	return "", false
}

func (p Params) Keys() []string {
	out := make([]string, 0, len(p))
	for _, item := range p {
		out = append(out, item.Key)
	}
	return out
}

// UnmarshalJSON decodes a JSON object into ordered parameters. Scalars keep
// their literal text; nested arrays and objects are kept as compact JSON.
func (p *Params) UnmarshalJSON(data []byte) error {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")) {
		*p = nil
		return nil
	}

	dec := json.NewDecoder(bytes.NewReader(trimmed))
	dec.UseNumber()

	tok, err := dec.Token()
	if err != nil {
		return err
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return errParamsNotObject
	}

	out := make(Params, 0, 4)
	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return err
		}
		key, ok := keyTok.(string)
		if !ok {
			return fmt.Errorf("unexpected parameter key %v", keyTok)
		}

		var raw json.RawMessage
		if err := dec.Decode(&raw); err != nil {
			return fmt.Errorf("decode parameter %q: %w", key, err)
		}
		value, err := coerceValue(raw)
		if err != nil {
			return fmt.Errorf("decode parameter %q: %w", key, err)
		}
		out = out.With(key, value)
	}
	if _, err := dec.Token(); err != nil {
		return err
	}

	*p = out
	return nil
}

func coerceValue(raw json.RawMessage) (string, error) {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 {
		return "", nil
	}

	switch trimmed[0] {
	case '"':
		var s string
		if err := sonic.Unmarshal(trimmed, &s); err != nil {
			return "", err
		}
		return s, nil
	case '{', '[':
		var compact bytes.Buffer
		if err := json.Compact(&compact, trimmed); err != nil {
			return "", err
		}
		return compact.String(), nil
	default:
		// numbers, true, false and null
		return string(trimmed), nil
	}
}
