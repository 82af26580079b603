package ai

import "strings"

// ExtractJSONObject localiza el primer objeto JSON balanceado en una respuesta
// cruda del modelo y devuelve false si no hay ninguno completo. Tolera BOM,
// fences ```json ... ``` y texto alrededor: los modelos agregan envoltorios
// aunque se pida JSON puro. Respeta strings con llaves y comillas escapadas.
func ExtractJSONObject(raw string) (string, bool) {
	s := stripFences(strings.TrimPrefix(strings.TrimSpace(raw), "\uFEFF"))

	start := strings.IndexByte(s, '{')
	if start < 0 {
		return "", false
	}

	depth := 0
	inString := false
	for i := start; i < len(s); i++ {
		switch ch := s[i]; {
		case inString && ch == '\\':
			i++ // el siguiente byte esta escapado
		case inString && ch == '"':
			inString = false
		case inString:
		case ch == '"':
			inString = true
		case ch == '{':
			depth++
		case ch == '}':
			depth--
			if depth == 0 {
				return s[start : i+1], true
			}
		}
	}
	return "", false
}

func stripFences(s string) string {
	if !strings.HasPrefix(s, "```") {
		return s
	}
	if nl := strings.IndexByte(s, '\n'); nl >= 0 {
		s = s[nl+1:]
	} else {
		s = strings.TrimPrefix(strings.TrimPrefix(s, "```json"), "```")
	}
	s = strings.TrimSpace(s)
	return strings.TrimSpace(strings.TrimSuffix(s, "```"))
}
