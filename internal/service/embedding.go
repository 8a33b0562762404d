package service

import (
	"strings"

	pgvector "github.com/pgvector/pgvector-go"
)

// GenerateEmbedding maps recipe text onto a small deterministic feature
// vector: word count, average word length, vowel ratio and distinct letter
// count. Recipes that share vocabulary land close together, which is all the
// similarity ordering in search needs, and the same text always produces the
// same vector.
func GenerateEmbedding(text string) pgvector.Vector {
	words := strings.Fields(strings.ToLower(text))

	var letters, vowels float32
	distinct := make(map[rune]struct{})
	for _, w := range words {
		for _, r := range w {
			if r < 'a' || r > 'z' {
				continue
			}
			letters++
			if strings.ContainsRune("aeiou", r) {
				vowels++
			}
			distinct[r] = struct{}{}
		}
	}

	wordCount := float32(len(words))
	var avgWordLen, vowelRatio float32
	if wordCount > 0 {
		avgWordLen = letters / wordCount
	}
	if letters > 0 {
		vowelRatio = vowels / letters
	}

	return pgvector.NewVector([]float32{wordCount, avgWordLen, vowelRatio, float32(len(distinct))})
}
