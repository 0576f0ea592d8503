// SPDX-License-Identifier: Apache-2.0

package composer

import (
	"encoding/json"
	"fmt"

	"github.com/opensbom-generator/composerjson/internal/helper"
)

// record is implemented by every schema entity. fields lists the declared
// attributes in output order; it is the only place a record's shape is known.
type record interface {
	recordName() string
	fields() []field
}

// field binds one declared attribute to the struct member holding it.
type field struct {
	// name is the camel-case attribute name.
	name string
	// key overrides the external key derived from name.
	key string
	// get returns the flattened value and false when it must be omitted.
	get func() (any, bool)
	// set converts a decoded value and stores it.
	set func(any) error
}

func (f field) externalKey() string {
	if f.key != "" {
		return f.key
	}
	return helper.ToExternalName(f.name)
}

// flatten emits every non-empty field of r under its external key.
func flatten(r record) *Object {
	out := NewObject()
	for _, f := range r.fields() {
		if value, ok := f.get(); ok {
			out.Set(f.externalKey(), value)
		}
	}
	return out
}

// assign stores value in the field of r called name. Names outside the
// declared set fail with ErrUnknownField.
func assign(r record, name string, value any) error {
	for _, f := range r.fields() {
		if f.name != name {
			continue
		}
		if err := f.set(value); err != nil {
			return fmt.Errorf("%s.%s: %w", r.recordName(), name, err)
		}
		return nil
	}
	return fmt.Errorf("%w: %q is not a field of %s", ErrUnknownField, name, r.recordName())
}

// populate assigns every entry of obj to r. Keys listed in rename are
// translated to their attribute name first, all other keys are used verbatim.
func populate(r record, obj *Object, rename map[string]string) error {
	for pair := obj.Oldest(); pair != nil; pair = pair.Next() {
		name := pair.Key
		if renamed, ok := rename[name]; ok {
			name = renamed
		}
		if err := assign(r, name, pair.Value); err != nil {
			return err
		}
	}
	return nil
}

func typeError(expected string, value any) error {
	return fmt.Errorf("%w: expected %s, got %s", ErrFieldType, expected, jsonType(value))
}

func jsonType(value any) string {
	switch value.(type) {
	case nil:
		return "null"
	case string:
		return "string"
	case json.Number, float64, int:
		return "number"
	case bool:
		return "boolean"
	case []any:
		return "array"
	case *Object:
		return "object"
	}
	return fmt.Sprintf("%T", value)
}

// isEmpty reports whether value is omitted from flattened output.
func isEmpty(value any) bool {
	switch v := value.(type) {
	case nil:
		return true
	case string:
		return v == ""
	case bool:
		return !v
	case []any:
		return len(v) == 0
	case []string:
		return len(v) == 0
	case *Object:
		return v == nil || v.Len() == 0
	case *Links:
		return v == nil || v.Len() == 0
	case map[string]any:
		return len(v) == 0
	}
	return false
}

func stringField(name string, p *string) field {
	return field{
		name: name,
		get:  func() (any, bool) { return *p, *p != "" },
		set: func(value any) error {
			switch v := value.(type) {
			case nil:
				*p = ""
			case string:
				*p = v
			default:
				return typeError("string", value)
			}
			return nil
		},
	}
}

func boolPtrField(name, key string, p **bool) field {
	return field{
		name: name,
		key:  key,
		get: func() (any, bool) {
			if *p == nil {
				return nil, false
			}
			return **p, true
		},
		set: func(value any) error {
			switch v := value.(type) {
			case nil:
				*p = nil
			case bool:
				*p = &v
			default:
				return typeError("boolean", value)
			}
			return nil
		},
	}
}

func stringsField(name string, p *[]string) field {
	return field{
		name: name,
		get: func() (any, bool) {
			if len(*p) == 0 {
				return nil, false
			}
			list := make([]any, len(*p))
			for i := range *p {
				list[i] = (*p)[i]
			}
			return list, true
		},
		set: func(value any) error {
			switch v := value.(type) {
			case nil:
				*p = nil
			case []string:
				*p = v
			case []any:
				list := make([]string, 0, len(v))
				for i := range v {
					s, ok := v[i].(string)
					if !ok {
						return fmt.Errorf("[%d]: %w", i, typeError("string", v[i]))
					}
					list = append(list, s)
				}
				*p = list
			default:
				return typeError("array of strings", value)
			}
			return nil
		},
	}
}

// valueField holds a passthrough value that is stored exactly as decoded.
func valueField(name string, p *any) field {
	return field{
		name: name,
		get:  func() (any, bool) { return *p, !isEmpty(*p) },
		set: func(value any) error {
			*p = value
			return nil
		},
	}
}

func objectField(name string, p **Object) field {
	return field{
		name: name,
		get:  func() (any, bool) { return *p, !isEmpty(*p) },
		set: func(value any) error {
			obj, err := toObject(value)
			if err != nil {
				return err
			}
			*p = obj
			return nil
		},
	}
}

func linksField(name string, p **Links) field {
	return field{
		name: name,
		get:  func() (any, bool) { return *p, !isEmpty(*p) },
		set: func(value any) error {
			obj, err := toObject(value)
			if err != nil {
				return err
			}
			if obj == nil {
				*p = nil
				return nil
			}
			links := NewLinks()
			for pair := obj.Oldest(); pair != nil; pair = pair.Next() {
				constraint, ok := pair.Value.(string)
				if !ok {
					return fmt.Errorf("%s: %w", pair.Key, typeError("string", pair.Value))
				}
				links.Set(pair.Key, constraint)
			}
			*p = links
			return nil
		},
	}
}

// toObject accepts a decoded object. An empty array is accepted as an empty
// object since PHP encoders write empty maps that way.
func toObject(value any) (*Object, error) {
	switch v := value.(type) {
	case nil:
		return nil, nil
	case *Object:
		return v, nil
	case []any:
		if len(v) == 0 {
			return NewObject(), nil
		}
	}
	return nil, typeError("object", value)
}

func toObjectList(value any) ([]*Object, error) {
	switch v := value.(type) {
	case nil:
		return nil, nil
	case []any:
		list := make([]*Object, 0, len(v))
		for i := range v {
			obj, err := toObject(v[i])
			if err != nil {
				return nil, fmt.Errorf("[%d]: %w", i, err)
			}
			if obj == nil {
				return nil, fmt.Errorf("[%d]: %w", i, typeError("object", v[i]))
			}
			list = append(list, obj)
		}
		return list, nil
	}
	return nil, typeError("array of objects", value)
}
