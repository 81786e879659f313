package seed

// schemaJSON validates JSON seed files before import. Task numbers are
// not part of the seed format; they are reassigned on import.
const schemaJSON = `{
  "$schema": "https://json-schema.org/draft/2020-12/schema",
  "type": "object",
  "required": ["owners"],
  "properties": {
    "owners": {
      "type": "array",
      "items": {
        "type": "object",
        "required": ["name", "daily_time_available"],
        "properties": {
          "name": {"type": "string", "minLength": 1},
          "daily_time_available": {"type": "integer", "minimum": 0},
          "pets": {
            "type": "array",
            "items": {
              "type": "object",
              "required": ["name"],
              "properties": {
                "name": {"type": "string", "minLength": 1},
                "species": {"type": "string"},
                "tasks": {
                  "type": "array",
                  "items": {
                    "type": "object",
                    "required": ["description", "duration_minutes"],
                    "properties": {
                      "description": {"type": "string", "minLength": 1},
                      "duration_minutes": {"type": "integer", "minimum": 1},
                      "priority": {"type": "integer", "minimum": 1, "maximum": 5},
                      "time": {"type": "integer", "minimum": 0, "maximum": 1439},
                      "frequency": {"enum": ["daily", "weekly", "monthly"]},
                      "completed": {"type": "boolean"},
                      "due_date": {"type": "string", "pattern": "^[0-9]{4}-[0-9]{2}-[0-9]{2}$"}
                    }
                  }
                }
              }
            }
          }
        }
      }
    }
  }
}`
