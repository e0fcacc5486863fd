package dtos

import "encoding/json"

// FieldSpec is a sealed tagged variant describing one form field. Each
// variant carries exactly the sub-fields its kind needs, so a schema
// cannot be built with a select missing its options or a repeatable
// missing its row template. The JSON encoding carries a "type"
// discriminator on every field, nested ones included.
type FieldSpec interface {
	fieldSpec()
}

type TextField struct {
	Name     string `json:"name"`
	Label    string `json:"label"`
	Required bool   `json:"required"`
}

type SelectField struct {
	Name    string   `json:"name"`
	Label   string   `json:"label"`
	Options []string `json:"options"`
}

type LabelField struct {
	Text string `json:"text"`
}

type RepeatableField struct {
	Name    string      `json:"name"`
	Label   string      `json:"label"`
	MaxRows int         `json:"max_rows"`
	Fields  []FieldSpec `json:"fields"`
}

func (TextField) fieldSpec()       {}
func (SelectField) fieldSpec()     {}
func (LabelField) fieldSpec()      {}
func (RepeatableField) fieldSpec() {}

func (f TextField) MarshalJSON() ([]byte, error) {
	type alias TextField
	return json.Marshal(struct {
		Type string `json:"type"`
		alias
	}{"text", alias(f)})
}

func (f SelectField) MarshalJSON() ([]byte, error) {
	type alias SelectField
	return json.Marshal(struct {
		Type string `json:"type"`
		alias
	}{"select", alias(f)})
}

func (f LabelField) MarshalJSON() ([]byte, error) {
	type alias LabelField
	return json.Marshal(struct {
		Type string `json:"type"`
		alias
	}{"label", alias(f)})
}

func (f RepeatableField) MarshalJSON() ([]byte, error) {
	type alias RepeatableField
	return json.Marshal(struct {
		Type string `json:"type"`
		alias
	}{"repeatable", alias(f)})
}

// FormSchema is a named list of field descriptors served to the client.
type FormSchema struct {
	Name   string      `json:"name"`
	Fields []FieldSpec `json:"fields"`
}
