package user

import "sort"

// FieldRule pairs the expected JSON type of a field with a predicate over
// its value. The schema is data, not code: both registration and login
// validate against the same table, each passing only the fields it uses.
type FieldRule struct {
	Type  string
	Check func(value any) bool
}

type Schema map[string]FieldRule

func nonEmptyString(value any) bool {
	s, _ := value.(string)
	return s != ""
}

// CredentialsSchema validates the credential fields accepted over the wire.
// Password bounds are exclusive: length 5 and length 40 are both rejected.
var CredentialsSchema = Schema{
	"email": {Type: "string", Check: nonEmptyString},
	"password": {Type: "string", Check: func(value any) bool {
		s, _ := value.(string)
		return len(s) > 5 && len(s) < 40
	}},
	"confirmPassword": {Type: "string", Check: func(value any) bool {
		s, _ := value.(string)
		return len(s) > 5 && len(s) < 40
	}},
	"id": {Type: "string", Check: nonEmptyString},
}

// Validate checks every supplied field against the schema and returns a
// ValidationError for the first offending one. Fields are visited in
// name order so the reported field is deterministic.
func (s Schema) Validate(fields map[string]any) error {
	names := make([]string, 0, len(fields))
	for name := range fields {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		if err := s.checkValue(name, fields[name]); err != nil {
			return err
		}
	}
	return nil
}

func (s Schema) checkValue(name string, value any) error {
	rule, ok := s[name]
	if !ok {
		return &ValidationError{Field: name, Reason: "is not a recognized field"}
	}

	if rule.Type == "string" {
		if _, isString := value.(string); !isString {
			return &ValidationError{Field: name, Reason: "has wrong type, expected string"}
		}
	}

	if !rule.Check(value) {
		return &ValidationError{Field: name, Reason: "has wrong value"}
	}
	return nil
}
