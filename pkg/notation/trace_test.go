package notation

import (
	"encoding/json"
	"reflect"
	"strings"
	"testing"
)

func TestConversionJSON(t *testing.T) {
	conv := InfixToPrefix("A+B")

	data, err := json.Marshal(conv)
	if err != nil {
		t.Fatalf("Marshal failed: %v", err)
	}
	for _, want := range []string{`"kind":"reverse-input"`, `"kind":"token"`, `"kind":"flush"`, `"kind":"reverse-result"`} {
		if !strings.Contains(string(data), want) {
			t.Errorf("JSON missing %s:\n%s", want, data)
		}
	}

	var decoded Conversion
	if err := json.Unmarshal(data, &decoded); err != nil {
		t.Fatalf("Unmarshal failed: %v", err)
	}
	if !reflect.DeepEqual(decoded, conv) {
		t.Errorf("Round trip changed the conversion:\n got %+v\nwant %+v", decoded, conv)
	}
}

func TestStepKindUnknown(t *testing.T) {
	var k StepKind
	if err := k.UnmarshalText([]byte("sideways")); err == nil {
		t.Error("Expected an error for an unknown step kind")
	}
}
