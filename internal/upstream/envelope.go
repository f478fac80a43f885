package upstream

import "encoding/json"

// extractList returns the element array from whatever envelope the backend
// wrapped it in. Shapes are probed in priority order, most nested first:
//
//	{"data":{"data":{"<key>":[...]}}}
//	{"data":{"<key>":[...]}}
//	{"data":{"data":[...]}}
//	{"data":[...]}
//	[...]
//
// Returns nil when no shape matches; callers treat that as an empty list
// rather than an error, so a malformed response degrades to an empty
// dataset instead of a failed request.
func extractList(body []byte, key string) []json.RawMessage {
	if data, ok := envelopeData(body); ok {
		if inner, ok := envelopeData(data); ok {
			if list, ok := keyedArray(inner, key); ok {
				return list
			}
		}
		if list, ok := keyedArray(data, key); ok {
			return list
		}
		if inner, ok := envelopeData(data); ok {
			if list, ok := asArray(inner); ok {
				return list
			}
		}
		if list, ok := asArray(data); ok {
			return list
		}
	}
	if list, ok := asArray(body); ok {
		return list
	}
	return nil
}

// extractObject unwraps a single-object response: {"data":{"data":{...}}},
// {"data":{...}}, or a bare object. Arrays are rejected.
func extractObject(body []byte) json.RawMessage {
	if data, ok := envelopeData(body); ok {
		if inner, ok := envelopeData(data); ok {
			return inner
		}
		return data
	}
	if _, ok := asArray(body); ok {
		return nil
	}
	if isObject(body) {
		return body
	}
	return nil
}

// envelopeData returns the value of a top-level "data" field, if raw is an
// object that has one.
func envelopeData(raw []byte) (json.RawMessage, bool) {
	if !isObject(raw) {
		return nil, false
	}
	var env struct {
		Data json.RawMessage `json:"data"`
	}
	if err := json.Unmarshal(raw, &env); err != nil || len(env.Data) == 0 {
		return nil, false
	}
	return env.Data, true
}

// keyedArray returns raw[key] when raw is an object whose key holds an array.
func keyedArray(raw []byte, key string) ([]json.RawMessage, bool) {
	if !isObject(raw) {
		return nil, false
	}
	var m map[string]json.RawMessage
	if err := json.Unmarshal(raw, &m); err != nil {
		return nil, false
	}
	return asArray(m[key])
}

func asArray(raw []byte) ([]json.RawMessage, bool) {
	if len(raw) == 0 || firstByte(raw) != '[' {
		return nil, false
	}
	var list []json.RawMessage
	if err := json.Unmarshal(raw, &list); err != nil {
		return nil, false
	}
	if list == nil {
		list = []json.RawMessage{}
	}
	return list, true
}

func isObject(raw []byte) bool {
	return firstByte(raw) == '{'
}

// firstByte returns the first non-whitespace byte of raw, or 0.
func firstByte(raw []byte) byte {
	for _, b := range raw {
		switch b {
		case ' ', '\t', '\n', '\r':
			continue
		}
		return b
	}
	return 0
}
