package report

// Schema is the JSON Schema (Draft 2020-12) for the covgap JSON
// output. It documents the structure returned by WriteJSON.
const Schema = `{
  "$schema": "https://json-schema.org/draft/2020-12/schema",
  "$id": "https://github.com/unbound-force/covgap/coverage-report.schema.json",
  "title": "Covgap Coverage Report",
  "description": "Output schema for covgap report --format=json",
  "type": "object",
  "required": ["version", "rows", "summary", "lowest"],
  "properties": {
    "version": {
      "type": "string",
      "description": "Schema version (semver)"
    },
    "rows": {
      "type": "array",
      "description": "Per-file coverage, sorted ascending by path",
      "items": { "$ref": "#/$defs/Row" }
    },
    "summary": { "$ref": "#/$defs/Summary" },
    "lowest": {
      "type": "array",
      "description": "Lowest-coverage files, ascending by percent",
      "items": { "$ref": "#/$defs/Row" }
    }
  },
  "$defs": {
    "Row": {
      "type": "object",
      "required": [
        "path", "covered_lines", "total_lines",
        "percent", "lines_to_target", "uncovered_lines"
      ],
      "properties": {
        "path": {
          "type": "string",
          "description": "Source file path as declared by the tracefile"
        },
        "covered_lines": {
          "type": "integer",
          "minimum": 0
        },
        "total_lines": {
          "type": "integer",
          "minimum": 0
        },
        "percent": {
          "type": "number",
          "minimum": 0,
          "maximum": 100,
          "description": "Line coverage percentage"
        },
        "lines_to_target": {
          "type": "integer",
          "description": "Covered lines still needed to reach the target; negative when above it"
        },
        "uncovered_lines": {
          "type": "integer",
          "minimum": 0
        }
      }
    },
    "Summary": {
      "type": "object",
      "required": [
        "files", "covered_lines", "total_lines",
        "percent", "target", "lines_needed"
      ],
      "properties": {
        "files": {
          "type": "integer",
          "minimum": 0
        },
        "covered_lines": {
          "type": "integer",
          "minimum": 0
        },
        "total_lines": {
          "type": "integer",
          "minimum": 0
        },
        "percent": {
          "type": "number",
          "minimum": 0,
          "maximum": 100
        },
        "target": {
          "type": "number",
          "description": "Configured coverage target percentage"
        },
        "lines_needed": {
          "type": "integer",
          "minimum": 0,
          "description": "Overall gap to the target, clamped to zero"
        }
      }
    }
  }
}`
