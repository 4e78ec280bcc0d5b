package quiz

import (
	"embed"
	"fmt"

	"gopkg.in/yaml.v3"
)

//go:embed builtin/questions.yaml
var builtinFS embed.FS

// QuestionsPerAxis is the number of questions asked on each axis.
const QuestionsPerAxis = 3

// Option is one of the two answers offered by a question.
type Option struct {
	Text  string `yaml:"text"`
	Value string `yaml:"value"`
}

// Question is a single survey item. Option A is the axis's positive pole.
type Question struct {
	ID      int    `yaml:"id"`
	Axis    Axis   `yaml:"axis"`
	Text    string `yaml:"text"`
	OptionA Option `yaml:"option_a"`
	OptionB Option `yaml:"option_b"`
}

// Bank is an immutable ordered list of questions.
type Bank struct {
	questions []Question
}

var builtin = mustLoadBuiltin()

func mustLoadBuiltin() *Bank {
	data, err := builtinFS.ReadFile("builtin/questions.yaml")
	if err != nil {
		panic(fmt.Sprintf("quiz: read embedded bank: %v", err))
	}
	b, err := LoadBank(data)
	if err != nil {
		panic(fmt.Sprintf("quiz: embedded bank: %v", err))
	}
	return b
}

// Builtin returns the embedded 12-question bank.
func Builtin() *Bank { return builtin }

// LoadBank parses a YAML question bank and checks that every axis has
// exactly QuestionsPerAxis questions.
func LoadBank(data []byte) (*Bank, error) {
	var doc struct {
		Questions []Question `yaml:"questions"`
	}
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("quiz.LoadBank: parse: %w", err)
	}

	ids := make(map[int]bool)
	for i, q := range doc.Questions {
		if !q.Axis.Valid() {
			return nil, fmt.Errorf("quiz.LoadBank: questions[%d]: unknown axis %q", i, q.Axis)
		}
		if ids[q.ID] {
			return nil, fmt.Errorf("quiz.LoadBank: questions[%d]: duplicate id %d", i, q.ID)
		}
		ids[q.ID] = true
	}
	b := &Bank{questions: doc.Questions}
	for _, a := range axisOrder {
		if n := len(b.ByAxis(a)); n != QuestionsPerAxis {
			return nil, fmt.Errorf("quiz.LoadBank: axis %s has %d questions, want %d", a, n, QuestionsPerAxis)
		}
	}
	return b, nil
}

// Len returns the number of questions.
func (b *Bank) Len() int { return len(b.questions) }

// Question returns the i-th question in display order.
func (b *Bank) Question(i int) Question { return b.questions[i] }

// Questions returns a copy of the questions in display order.
func (b *Bank) Questions() []Question {
	out := make([]Question, len(b.questions))
	copy(out, b.questions)
	return out
}

// ByAxis returns the questions on axis a, in display order.
func (b *Bank) ByAxis(a Axis) []Question {
	var out []Question
	for _, q := range b.questions {
		if q.Axis == a {
			out = append(out, q)
		}
	}
	return out
}
