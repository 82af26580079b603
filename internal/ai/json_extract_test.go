package ai

import "testing"

func TestExtractJSONObject(t *testing.T) {
	cases := []struct {
		name string
		raw  string
		want string
		ok   bool
	}{
		{"plain", `{"O": 1}`, `{"O": 1}`, true},
		{"fenced", "```json\n{\"O\": 1}\n```", `{"O": 1}`, true},
		{"fenced no language", "```\n{\"O\": 1}\n```", `{"O": 1}`, true},
		{"bom prefix", "\ufeff{\"O\": 1}", `{"O": 1}`, true},
		{"surrounding text", `texto previo {"a": {"b": 1}, "c": "}"} texto posterior`, `{"a": {"b": 1}, "c": "}"}`, true},
		{"escaped quote in string", `{"a": "di\"jo}"}`, `{"a": "di\"jo}"}`, true},
		{"no object", "sin json aca", "", false},
		{"unbalanced", `{"a": 1`, "", false},
		{"empty", "   ", "", false},
	}
	for _, tc := range cases {
		got, ok := ExtractJSONObject(tc.raw)
		if got != tc.want || ok != tc.ok {
			t.Fatalf("%s: got (%q, %v), want (%q, %v)", tc.name, got, ok, tc.want, tc.ok)
		}
	}
}

func TestStripFences(t *testing.T) {
	if got := stripFences("```json\n{\"O\": 1}\n```"); got != `{"O": 1}` {
		t.Fatalf("unexpected: %q", got)
	}
	if got := stripFences(`{"O": 1}`); got != `{"O": 1}` {
		t.Fatalf("expected unfenced input untouched, got %q", got)
	}
}
