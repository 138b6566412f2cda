package fragment

import (
	"github.com/tidwall/gjson"
)

// Field is a typed view of one member value.
type Field struct {
	Present bool
	gjson.Result
}

// FieldOf inspects key in o. An absent key yields a Field with Present
// false; gjson alone would report it as null.
func FieldOf(o *Object, key string) Field {
	raw, ok := o.Get(key)
	if !ok {
		return Field{}
	}
	return Field{Present: true, Result: gjson.ParseBytes(raw)}
}

// IsNumber reports whether the field holds a JSON number.
func (f Field) IsNumber() bool {
	return f.Present && f.Type == gjson.Number
}

// IsString reports whether the field holds a JSON string.
func (f Field) IsString() bool {
	return f.Present && f.Type == gjson.String
}

// IsNull reports whether the field is an explicit JSON null.
func (f Field) IsNull() bool {
	return f.Present && f.Type == gjson.Null
}

// IsZero reports whether the field is the number 0.
func (f Field) IsZero() bool {
	return f.IsNumber() && f.Num == 0
}
