package store

import (
	"encoding/json"
	"fmt"

	jsonschema "github.com/santhosh-tekuri/jsonschema/v5"

	"tasklist/internal/task"
)

// tasksSchema accepts both persisted layouts: the legacy array of strings
// and the array of {id, text} objects.
const tasksSchema = `{
  "anyOf": [
    {
      "type": "array",
      "items": {"type": "string"}
    },
    {
      "type": "array",
      "items": {
        "type": "object",
        "required": ["id", "text"],
        "properties": {
          "id": {"type": "string", "minLength": 1},
          "text": {"type": "string"}
        }
      }
    }
  ]
}`

var compiledTasksSchema = jsonschema.MustCompileString("tasks.schema.json", tasksSchema)

// layout identifies which persisted form a slot value used.
type layout int

const (
	layoutEmpty layout = iota
	layoutLegacy
	layoutIdentified
)

// decodeTasks parses and validates a slot value.
// Legacy entries are given positional IDs.
func decodeTasks(data string) ([]task.Task, layout, error) {
	var doc interface{}
	if err := json.Unmarshal([]byte(data), &doc); err != nil {
		return nil, layoutEmpty, fmt.Errorf("parse tasks: %w", err)
	}
	if err := compiledTasksSchema.Validate(doc); err != nil {
		return nil, layoutEmpty, fmt.Errorf("validate tasks: %w", err)
	}

	items, _ := doc.([]interface{})
	if len(items) == 0 {
		return nil, layoutEmpty, nil
	}

	if _, ok := items[0].(string); ok {
		tasks := make([]task.Task, len(items))
		for i, item := range items {
			tasks[i] = task.Task{ID: task.LegacyID(i + 1), Text: item.(string)}
		}
		return tasks, layoutLegacy, nil
	}

	var tasks []task.Task
	if err := json.Unmarshal([]byte(data), &tasks); err != nil {
		return nil, layoutEmpty, fmt.Errorf("parse tasks: %w", err)
	}
	return tasks, layoutIdentified, nil
}

// encodeTasks serializes the list in the layout for mode.
func encodeTasks(tasks []task.Task, mode Mode) (string, error) {
	var v interface{}
	if mode == ModeValue {
		v = task.Texts(tasks)
	} else {
		if tasks == nil {
			tasks = []task.Task{}
		}
		v = tasks
	}
	data, err := json.Marshal(v)
	if err != nil {
		return "", fmt.Errorf("marshal tasks: %w", err)
	}
	return string(data), nil
}
