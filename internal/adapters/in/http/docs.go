package http

import (
	"sync"

	"ordering/internal/adapters/in/http/schema"

	"github.com/swaggo/swag"
)

var docsOnce sync.Once

// registerDocs publishes the OpenAPI document to swag so that /swagger/doc.json serves it.
// swag allows one registration per name for the life of the process.
func registerDocs(validator *schema.Validator) error {
	var err error
	docsOnce.Do(func() {
		var raw []byte
		if raw, err = validator.JSON(); err != nil {
			return
		}
		swag.Register(swag.Name, &swag.Spec{
			Title:            "Ordering API",
			InfoInstanceName: swag.Name,
			SwaggerTemplate:  string(raw),
			LeftDelim:        "{{",
			RightDelim:       "}}",
		})
	})
	return err
}
