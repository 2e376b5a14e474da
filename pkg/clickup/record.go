package clickup

import (
	"bytes"
	"encoding/json"
	"reflect"
	"strings"
	"sync"
)

// Extra holds object members a record does not declare, and declared
// members whose JSON kind did not fit the Go field. Encoding a record writes
// them back unchanged.
type Extra map[string]json.RawMessage

// recordFieldCache maps a struct type to its json member name -> field index.
var recordFieldCache sync.Map

func recordFields(t reflect.Type) map[string]int {
	if cached, ok := recordFieldCache.Load(t); ok {
		fields, _ := cached.(map[string]int)

		return fields
	}

	fields := make(map[string]int, t.NumField())

	for i := range t.NumField() {
		f := t.Field(i)
		if !f.IsExported() {
			continue
		}

		name, _, _ := strings.Cut(f.Tag.Get("json"), ",")
		if name == "-" {
			continue
		}

		if name == "" {
			name = f.Name
		}

		fields[name] = i
	}

	recordFieldCache.Store(t, fields)

	return fields
}

// memberSet records which declared members a decoded record carried. A nil
// set means the record was built in Go and every member is encoded.
type memberSet map[string]struct{}

// text returns value, or the raw member kept in e when the declared field
// could not hold it. JSON strings are unquoted.
func (e Extra) text(name, value string) string {
	raw, ok := e[name]
	if value != "" || !ok {
		return value
	}

	var s string
	if json.Unmarshal(raw, &s) == nil {
		return s
	}

	return string(raw)
}

// nullable reports whether a field of kind k can represent JSON null.
func nullable(k reflect.Kind) bool {
	switch k {
	case reflect.Pointer, reflect.Slice, reflect.Map, reflect.Interface:
		return true
	default:
		return false
	}
}

// unmarshalRecord decodes a JSON object into the struct dst points to, one
// member at a time. Members that are unknown or do not decode into their
// field are kept in extra; null counts as not decoding unless the field is
// nullable. Declared members that decoded are recorded in seen. Only a
// non-object document is an error.
func unmarshalRecord(data []byte, dst any, extra *Extra, seen *memberSet) error {
	if bytes.Equal(bytes.TrimSpace(data), []byte("null")) {
		return nil
	}

	var members map[string]json.RawMessage

	err := json.Unmarshal(data, &members)
	if err != nil {
		return err
	}

	v := reflect.ValueOf(dst).Elem()
	fields := recordFields(v.Type())

	var rest Extra

	present := make(memberSet, len(members))

	for name, raw := range members {
		idx, ok := fields[name]
		if ok {
			field := v.Field(idx)
			isNull := bytes.Equal(bytes.TrimSpace(raw), []byte("null"))

			if (!isNull || nullable(field.Kind())) && json.Unmarshal(raw, field.Addr().Interface()) == nil {
				present[name] = struct{}{}

				continue
			}

			field.SetZero()
		}

		if rest == nil {
			rest = make(Extra)
		}

		rest[name] = raw
	}

	*extra = rest
	*seen = present

	return nil
}

// marshalRecord encodes v, the plain form of a record. For a decoded record
// only the declared members it carried are written, including ones the
// encoder would omit as empty. extra is overlaid on the result.
func marshalRecord(v any, extra Extra, seen memberSet) ([]byte, error) {
	data, err := json.Marshal(v)
	if err != nil || (len(extra) == 0 && seen == nil) {
		return data, err
	}

	var members map[string]json.RawMessage

	err = json.Unmarshal(data, &members)
	if err != nil {
		return nil, err
	}

	if seen != nil {
		rv := reflect.ValueOf(v)

		for name, idx := range recordFields(rv.Type()) {
			_, carried := seen[name]
			_, encoded := members[name]

			switch {
			case !carried:
				delete(members, name)
			case !encoded:
				raw, marshalErr := json.Marshal(rv.Field(idx).Interface())
				if marshalErr != nil {
					return nil, marshalErr
				}

				members[name] = raw
			}
		}
	}

	for name, raw := range extra {
		members[name] = raw
	}

	return json.Marshal(members)
}
