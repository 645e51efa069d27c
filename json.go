package bencode

import "encoding/json"

// ToJSON renders a decoded value as JSON for inspection. Byte strings are
// rendered as text; bytes outside valid UTF-8 are escaped the way
// encoding/json escapes them, so the output is lossy for binary payloads.
func ToJSON(v Bvalue) ([]byte, error) {
	return json.Marshal(toJSONValue(v))
}

func toJSONValue(v Bvalue) interface{} {
	switch val := v.(type) {
	case BInt:
		return int64(val)
	case BString:
		return string(val)
	case BList:
		out := make([]interface{}, 0, len(val))
		for _, item := range val {
			out = append(out, toJSONValue(item))
		}
		return out
	case BDict:
		out := make(map[string]interface{}, len(val))
		for key, item := range val {
			out[key] = toJSONValue(item)
		}
		return out
	}
	return nil
}
