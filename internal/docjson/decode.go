package docjson

import (
	"encoding/json"
	"fmt"
	"slices"

	"github.com/valyala/fastjson"
)

// Decode reads a document produced by Encode, keeping every object's key
// order so that Marshal with the same Options reproduces the input bytes.
func Decode(data []byte) (*DocumentJSON, error) {
	var p fastjson.Parser
	v, err := p.ParseBytes(data)
	if err != nil {
		return nil, fmt.Errorf("docjson: %w", err)
	}
	top, err := convert(v)
	if err != nil {
		return nil, fmt.Errorf("docjson: %w", err)
	}
	obj, ok := top.(Object)
	if !ok {
		return nil, fmt.Errorf("docjson: top level is not an object")
	}
	if keys := obj.Keys(); !slices.Equal(keys, []string{"root", "diagnostics"}) {
		return nil, fmt.Errorf("docjson: unexpected top-level keys %v", keys)
	}
	root, ok := obj[0].Value.(Object)
	if !ok {
		return nil, fmt.Errorf("docjson: root is not an object")
	}
	list, ok := obj[1].Value.([]any)
	if !ok {
		return nil, fmt.Errorf("docjson: diagnostics is not an array")
	}
	out := &DocumentJSON{Root: root, Diagnostics: make([]Object, 0, len(list))}
	for i, d := range list {
		o, ok := d.(Object)
		if !ok {
			return nil, fmt.Errorf("docjson: diagnostic %d is not an object", i)
		}
		out.Diagnostics = append(out.Diagnostics, o)
	}
	return out, nil
}

// convert copies a fastjson value into the package's own types; the parser's
// values are only valid until its next use.
func convert(v *fastjson.Value) (any, error) {
	switch v.Type() {
	case fastjson.TypeNull:
		return nil, nil
	case fastjson.TypeTrue:
		return true, nil
	case fastjson.TypeFalse:
		return false, nil
	case fastjson.TypeNumber:
		return json.Number(v.MarshalTo(nil)), nil
	case fastjson.TypeString:
		b, err := v.StringBytes()
		if err != nil {
			return nil, err
		}
		return string(b), nil
	case fastjson.TypeArray:
		items, err := v.Array()
		if err != nil {
			return nil, err
		}
		out := make([]any, len(items))
		for i, it := range items {
			if out[i], err = convert(it); err != nil {
				return nil, err
			}
		}
		return out, nil
	case fastjson.TypeObject:
		o, err := v.Object()
		if err != nil {
			return nil, err
		}
		out := make(Object, 0, o.Len())
		var firstErr error
		o.Visit(func(key []byte, val *fastjson.Value) {
			if firstErr != nil {
				return
			}
			cv, err := convert(val)
			if err != nil {
				firstErr = fmt.Errorf("key %q: %w", key, err)
				return
			}
			out = append(out, Member{Key: string(key), Value: cv})
		})
		return out, firstErr
	}
	return nil, fmt.Errorf("unexpected JSON value type %s", v.Type())
}
