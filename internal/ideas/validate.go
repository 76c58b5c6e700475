package ideas

import (
	"strings"

	"github.com/xeipuuv/gojsonschema"

	"github.com/iammorganparry/brainstorm/internal/models"
)

const newIdeaSchemaJSON = `{
	"type": "object",
	"required": ["sessionId", "name"],
	"properties": {
		"sessionId":   {"type": "integer"},
		"name":        {"type": "string", "minLength": 1, "pattern": "\\S"},
		"description": {"type": "string"}
	}
}`

var newIdeaSchema = mustSchema(newIdeaSchemaJSON)

func mustSchema(s string) *gojsonschema.Schema {
	schema, err := gojsonschema.NewSchema(gojsonschema.NewStringLoader(s))
	if err != nil {
		panic("ideas: compile schema: " + err.Error())
	}
	return schema
}

// ValidateNewIdeaJSON checks a raw POST /api/ideas body, catching type errors
// that are lost once the body is decoded into a NewIdeaRequest.
func ValidateNewIdeaJSON(body []byte) error {
	return validate(gojsonschema.NewBytesLoader(body))
}

func validateRequest(req *models.NewIdeaRequest) error {
	if req == nil {
		return models.ValidationError("invalid idea", "request body is required")
	}
	if err := validate(gojsonschema.NewGoLoader(req)); err != nil {
		return err
	}
	// The schema pattern only knows ASCII whitespace.
	if strings.TrimSpace(req.Name) == "" {
		return models.ValidationError("invalid idea", "name: must not be blank")
	}
	return nil
}

func validate(doc gojsonschema.JSONLoader) error {
	result, err := newIdeaSchema.Validate(doc)
	if err != nil {
		return models.ValidationError("invalid idea", "malformed JSON: "+err.Error())
	}
	if result.Valid() {
		return nil
	}

	details := make([]string, 0, len(result.Errors()))
	for _, e := range result.Errors() {
		if e.Field() == "(root)" {
			details = append(details, e.Description())
			continue
		}
		details = append(details, e.Field()+": "+e.Description())
	}
	return models.ValidationError("invalid idea", details...)
}
