package quiz

import (
	"encoding/json"
	"errors"
	"fmt"
	"math/rand"
	"os"
	"sort"
)

var ErrCategoryNotFound = errors.New("category not found")

// Question keeps the wire keys of the static question file. The answer is
// only used client-side; the server never scores.
type Question struct {
	Text    string   `json:"pergunta"`
	Options []string `json:"opcoes"`
	Answer  string   `json:"resposta"`
}

// Bank is the static question source, loaded once at startup and read-only
// afterwards.
type Bank struct {
	categories map[string][]Question
}

func LoadBank(path string) (*Bank, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read question bank: %w", err)
	}

	categories := make(map[string][]Question)
	if err := json.Unmarshal(data, &categories); err != nil {
		return nil, fmt.Errorf("parse question bank: %w", err)
	}

	return &Bank{categories: categories}, nil
}

// Categories lists known category names, sorted for stable rendering.
func (b *Bank) Categories() []string {
	names := make([]string, 0, len(b.categories))
	for name := range b.categories {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Questions returns a freshly shuffled copy of the category's questions.
// The shuffle is deliberately unseeded: repeat attempts should not see the
// same ordering. An unknown category is an error, not an empty set.
func (b *Bank) Questions(category string) ([]Question, error) {
	questions, ok := b.categories[category]
	if !ok {
		return nil, ErrCategoryNotFound
	}

	shuffled := make([]Question, len(questions))
	copy(shuffled, questions)
	rand.Shuffle(len(shuffled), func(i, j int) {
		shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
	})
	return shuffled, nil
}
