package dist

import (
	"testing"
)

// TestNewSchemaClassification tests encoded-marker detection in column names
func TestNewSchemaClassification(t *testing.T) {
	tests := []struct {
		name     string
		expected Kind
	}{
		{"temperature", KindNumeric},
		{"resistance (kOhm)", KindNumeric},
		{"Ux", KindEncoded},
		{"inputUxValue", KindEncoded},
		{"distUx", KindEncoded},
		{"ux", KindNumeric},
		{"UX", KindNumeric},
		{"", KindNumeric},
	}

	for _, test := range tests {
		schema := NewSchema(test.name)
		if schema[0].Kind != test.expected {
			t.Errorf("Column '%s': expected kind %v, got %v", test.name, test.expected, schema[0].Kind)
		}
	}
}

// TestSchemaOrder tests that schemas preserve column order
func TestSchemaOrder(t *testing.T) {
	schema := NewSchema("a", "bUx", "c")

	if schema.Len() != 3 {
		t.Fatalf("Expected 3 columns, got %d", schema.Len())
	}

	names := schema.Names()
	expected := []string{"a", "bUx", "c"}
	for i, name := range expected {
		if names[i] != name {
			t.Errorf("Column %d: expected name '%s', got '%s'", i, name, names[i])
		}
	}

	if schema[0].Kind != KindNumeric || schema[1].Kind != KindEncoded || schema[2].Kind != KindNumeric {
		t.Errorf("Unexpected kinds: %v, %v, %v", schema[0].Kind, schema[1].Kind, schema[2].Kind)
	}
}

// TestSchemaIsEmpty tests empty schema detection
func TestSchemaIsEmpty(t *testing.T) {
	if !NewSchema().IsEmpty() {
		t.Error("Expected empty schema to report empty")
	}
	if NewSchema("x").IsEmpty() {
		t.Error("Expected non-empty schema not to report empty")
	}
}
