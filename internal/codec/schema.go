package codec

import (
	"strings"

	"github.com/santhosh-tekuri/jsonschema/v5"
)

// documentSchema is the structural contract for an exported document.
// Invariants that a schema cannot express (unique ids, resolvable
// category references) are checked separately in Import.
const documentSchema = `{
  "$schema": "http://json-schema.org/draft-07/schema#",
  "type": "object",
  "required": ["tasks", "categories"],
  "properties": {
    "tasks": {
      "type": "array",
      "items": { "$ref": "#/definitions/task" }
    },
    "categories": {
      "type": "array",
      "items": { "$ref": "#/definitions/category" }
    }
  },
  "definitions": {
    "task": {
      "type": "object",
      "required": ["id", "title", "category", "status", "priority", "date"],
      "properties": {
        "id": { "type": "string", "minLength": 1 },
        "title": { "type": "string", "minLength": 1 },
        "description": { "type": "string" },
        "category": { "type": "string", "minLength": 1 },
        "status": { "enum": ["Pending", "In Progress", "Completed"] },
        "priority": { "enum": ["Low", "Medium", "High"] },
        "date": { "type": "string", "format": "date-time" },
        "dueDate": { "type": "string", "format": "date-time" },
        "reminder": { "type": "string", "format": "date-time" },
        "tags": { "type": "array", "items": { "type": "string" } },
        "subtasks": {
          "type": "array",
          "items": { "$ref": "#/definitions/subtask" }
        },
        "notes": { "type": "string" }
      }
    },
    "subtask": {
      "type": "object",
      "required": ["id", "title"],
      "properties": {
        "id": { "type": "string", "minLength": 1 },
        "title": { "type": "string", "minLength": 1 },
        "completed": { "type": "boolean" }
      }
    },
    "category": {
      "type": "object",
      "required": ["id", "name", "color"],
      "properties": {
        "id": { "type": "string", "minLength": 1 },
        "name": { "type": "string", "minLength": 1 },
        "color": { "type": "string" },
        "icon": { "type": "string" }
      }
    }
  }
}`

var docSchema = mustCompileSchema()

func mustCompileSchema() *jsonschema.Schema {
	compiler := jsonschema.NewCompiler()
	compiler.AssertFormat = true
	if err := compiler.AddResource("export.schema.json", strings.NewReader(documentSchema)); err != nil {
		panic(err)
	}
	return compiler.MustCompile("export.schema.json")
}
