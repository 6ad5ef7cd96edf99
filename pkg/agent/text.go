package agent

import "strings"

// pronunciation adjustments applied before synthesis so the engine renders
// local terms naturally
var pronunciations = []struct {
	word, spoken string
}{
	{"schedule", "shed-ule"},
	{"privacy", "pri-va-cy"},
	{"naira", "NYE-rah"},
	{"lagos", "LAY-gos"},
	{"nigeria", "nye-JEE-ree-ah"},
}

// PreprocessText rewrites known words to phonetic spellings. The rewrite
// affects only the text sent to the synthesis engine, never cache keys.
func PreprocessText(text string) string {
	for _, p := range pronunciations {
		text = strings.ReplaceAll(text, p.word, p.spoken)
		text = strings.ReplaceAll(text, capitalize(p.word), capitalize(p.spoken))
	}

	return text
}

func capitalize(val string) string {
	if val == "" {
		return val
	}

	return strings.ToUpper(val[:1]) + val[1:]
}
