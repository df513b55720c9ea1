// Package schema validates request bodies against the component schemas of the
// embedded OpenAPI document. Checks are structural only.
package schema

import (
	"bytes"
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"ordering/internal/pkg/errs"

	"github.com/getkin/kin-openapi/openapi3"
)

//go:embed openapi.yaml
var document []byte

// Kind names a request body schema under components/schemas.
type Kind string

const (
	UserInput       Kind = "UserInput"
	UserUpdate      Kind = "UserUpdate"
	Credentials     Kind = "Credentials"
	OrderCreate     Kind = "OrderCreate"
	OrderUpdate     Kind = "OrderUpdate"
	OrderItemInput  Kind = "OrderItemInput"
	OrderItemUpdate Kind = "OrderItemUpdate"
)

var ErrMalformedBody = errs.NewValueIsInvalidError("The request body is not valid JSON")

type Validator struct {
	doc     *openapi3.T
	schemas map[Kind]*openapi3.Schema
}

// NewValidator loads and validates the embedded document.
func NewValidator() (*Validator, error) {
	loader := openapi3.NewLoader()

	doc, err := loader.LoadFromData(document)
	if err != nil {
		return nil, fmt.Errorf("failed to load openapi document: %w", err)
	}
	if err = doc.Validate(loader.Context); err != nil {
		return nil, fmt.Errorf("invalid openapi document: %w", err)
	}

	v := &Validator{
		doc:     doc,
		schemas: make(map[Kind]*openapi3.Schema),
	}
	for _, kind := range []Kind{UserInput, UserUpdate, Credentials, OrderCreate, OrderUpdate, OrderItemInput, OrderItemUpdate} {
		ref, ok := doc.Components.Schemas[string(kind)]
		if !ok || ref.Value == nil {
			return nil, fmt.Errorf("openapi document has no %s schema", kind)
		}
		v.schemas[kind] = ref.Value
	}

	return v, nil
}

// Validate decodes payload and checks it against the schema named by kind.
// The first violation is returned as an errs.ValueIsInvalidError naming the field.
func (v *Validator) Validate(kind Kind, payload []byte) error {
	s, ok := v.schemas[kind]
	if !ok {
		return fmt.Errorf("unknown schema %q", kind)
	}

	if len(bytes.TrimSpace(payload)) == 0 {
		return errs.NewValueIsRequiredError("request body")
	}

	var value any
	if err := json.Unmarshal(payload, &value); err != nil {
		return ErrMalformedBody
	}

	err := s.VisitJSON(value)
	if err == nil {
		return nil
	}

	var schemaErr *openapi3.SchemaError
	if !errors.As(err, &schemaErr) {
		return errs.NewValueIsInvalidErrorWithCause("body", err)
	}

	field := "body"
	if pointer := schemaErr.JSONPointer(); len(pointer) > 0 {
		field = strings.Join(pointer, ".")
	}
	return errs.NewValueIsInvalidErrorWithCause(field, errors.New(schemaErr.Reason))
}

// JSON renders the whole document for the API docs endpoint.
func (v *Validator) JSON() ([]byte, error) {
	return v.doc.MarshalJSON()
}
