package validate

// FieldsError carries per-field messages keyed by the json field name.
type FieldsError struct {
	Fields map[string]string
}

func NewFieldsError(fields map[string]string) *FieldsError {
	return &FieldsError{
		Fields: fields,
	}
}

func (f *FieldsError) Error() string {
	return "Fields error"
}

// Field returns the message for name, or "" when the field is valid.
func (f *FieldsError) Field(name string) string {
	return f.Fields[name]
}
