package lecture

// packSchema validates a lecture pack file before it reaches the player.
// Checkpoint timestamps intentionally allow both numbers and "MM:SS" style
// strings; the registry resolves them.
const packSchema = `{
  "$schema": "https://json-schema.org/draft/2020-12/schema",
  "type": "object",
  "required": ["id", "title", "durationSeconds", "transcript"],
  "properties": {
    "id": {"type": "string", "minLength": 1},
    "title": {"type": "string", "minLength": 1},
    "durationSeconds": {"type": "number", "exclusiveMinimum": 0},
    "minAppVersion": {"type": "string"},
    "transcript": {
      "type": "array",
      "items": {
        "type": "object",
        "required": ["start", "end", "text"],
        "properties": {
          "start": {"type": "number", "minimum": 0},
          "end": {"type": "number", "minimum": 0},
          "text": {"type": "string"}
        }
      }
    },
    "concepts": {
      "type": "array",
      "items": {
        "type": "object",
        "required": ["name", "timestamp"],
        "properties": {
          "name": {"type": "string", "minLength": 1},
          "timestamp": {"type": "number", "minimum": 0},
          "description": {"type": "string"}
        }
      }
    },
    "checkpoints": {
      "type": "array",
      "items": {
        "type": "object",
        "required": ["timestamp", "type", "prompt"],
        "properties": {
          "timestamp": {"type": ["number", "string"]},
          "type": {"enum": ["quickQuiz", "reflection", "prediction", "application"]},
          "prompt": {"type": "string", "minLength": 1},
          "options": {"type": "array", "items": {"type": "string"}},
          "correctAnswer": {"type": "string"},
          "contextStartTimestamp": {"type": ["number", "string"]},
          "pauseDelaySeconds": {"type": "number", "minimum": 0}
        }
      }
    }
  }
}`
