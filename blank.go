package desikit

import (
	"errors"
	"fmt"

	"github.com/getkin/kin-openapi/openapi3"
)

type notBlank struct{}

// NotBlank is a validation rule that rejects strings that are empty or
// consist only of whitespace (see [TrimSpace]). Non-string values fail.
var NotBlank Rule = notBlank{}

func (r notBlank) Describe(_ string, _ *openapi3.Schema, ref *openapi3.SchemaRef) error {
	appendDescription(ref, "must not be blank")
	return nil
}

func (r notBlank) Validate(value any) error {
	v, ok := value.(string)
	if !ok {
		return fmt.Errorf("expected string, got %T", value)
	}
	if IsBlank(v) {
		return errors.New("must not be blank")
	}
	return nil
}
