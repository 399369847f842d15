package ticket

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/santhosh-tekuri/jsonschema/v5"
)

const metadataSchemaURL = "https://campus-helpdesk.local/schemas/ticket-metadata.v1.json"

const metadataSchema = `{
  "$schema": "https://json-schema.org/draft/2020-12/schema",
  "type": "object",
  "required": ["version", "answers", "images", "profile", "tat", "comments"],
  "properties": {
    "version": {"const": 1},
    "answers": {"type": "object"},
    "images": {
      "type": "array",
      "items": {"type": "string", "pattern": "^https?://"}
    },
    "profile": {"type": "object"},
    "tat": {
      "type": "object",
      "required": ["history"],
      "properties": {
        "history": {
          "type": "array",
          "items": {
            "type": "object",
            "required": ["action", "by", "at", "to"],
            "properties": {"action": {"enum": ["set", "extend"]}}
          }
        }
      }
    },
    "comments": {
      "type": "array",
      "items": {
        "type": "object",
        "required": ["text", "author_id", "at", "source", "visibility"],
        "properties": {
          "text": {"type": "string", "minLength": 1},
          "source": {"enum": ["student", "admin", "committee", "bulk_action"]},
          "visibility": {"enum": ["student_visible", "internal_note", "super_admin_note"]}
        }
      }
    },
    "rating": {
      "type": "object",
      "required": ["value", "at"],
      "properties": {"value": {"type": "integer", "minimum": 1, "maximum": 5}}
    },
    "rating_required": {"type": "boolean"}
  }
}`

var compiledMetadataSchema = mustCompileMetadataSchema()

func mustCompileMetadataSchema() *jsonschema.Schema {
	c := jsonschema.NewCompiler()
	c.Draft = jsonschema.Draft2020
	if err := c.AddResource(metadataSchemaURL, strings.NewReader(metadataSchema)); err != nil {
		panic(fmt.Sprintf("ticket metadata schema load failed: %v", err))
	}
	return c.MustCompile(metadataSchemaURL)
}

// ValidateMetadataDocument checks the serialized form of m against the v1
// document schema.
func ValidateMetadataDocument(m Metadata) error {
	raw, err := json.Marshal(m)
	if err != nil {
		return err
	}
	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.UseNumber()
	var doc any
	if err := dec.Decode(&doc); err != nil {
		return err
	}
	if err := compiledMetadataSchema.Validate(doc); err != nil {
		return fmt.Errorf("metadata schema validation failed: %w", err)
	}
	return nil
}
