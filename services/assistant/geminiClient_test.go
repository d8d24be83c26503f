package assistant

import (
	"testing"

	genai "github.com/google/generative-ai-go/genai"
)

func TestSchemaFromMap(t *testing.T) {
	schema := schemaFromMap(map[string]any{
		"type": "object",
		"properties": map[string]any{
			"roomId": map[string]any{"type": "integer"},
			"email":  map[string]any{"type": "string"},
			"total":  map[string]any{"type": "number"},
		},
		"required": []string{"roomId", "email"},
	})

	if schema.Type != genai.TypeObject {
		t.Fatalf("expected object schema, got %v", schema.Type)
	}
	if len(schema.Properties) != 3 {
		t.Fatalf("expected 3 properties, got %d", len(schema.Properties))
	}
	if schema.Properties["roomId"].Type != genai.TypeInteger {
		t.Errorf("roomId type = %v", schema.Properties["roomId"].Type)
	}
	if schema.Properties["total"].Type != genai.TypeNumber {
		t.Errorf("total type = %v", schema.Properties["total"].Type)
	}
	if len(schema.Required) != 2 {
		t.Errorf("required = %v", schema.Required)
	}
}

func TestDecodeFunctionResponse(t *testing.T) {
	obj := decodeFunctionResponse(`{"success":false,"message":"taken"}`)
	if obj["success"] != false {
		t.Errorf("expected object payload to pass through, got %v", obj)
	}

	wrapped := decodeFunctionResponse(`true`)
	if wrapped["result"] != true {
		t.Errorf("expected non-object payload wrapped under result, got %v", wrapped)
	}

	list := decodeFunctionResponse(`[{"id":1}]`)
	if _, ok := list["result"]; !ok {
		t.Errorf("expected array payload wrapped under result, got %v", list)
	}
}
