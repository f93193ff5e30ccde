package testutil

import "errors"

// ErrNoAnswer is returned by ScriptedPrompter when its script is exhausted.
var ErrNoAnswer = errors.New("no scripted answer left")

// ScriptedPrompter is a prompt.Prompter returning canned answers in order.
type ScriptedPrompter struct {
	Answers   []string
	Questions []string
}

// NewScriptedPrompter creates a prompter that answers with the given lines.
func NewScriptedPrompter(answers ...string) *ScriptedPrompter {
	return &ScriptedPrompter{Answers: answers}
}

// Ask implements prompt.Prompter.
func (p *ScriptedPrompter) Ask(question string) (string, error) {
	p.Questions = append(p.Questions, question)
	if len(p.Answers) == 0 {
		return "", ErrNoAnswer
	}
	answer := p.Answers[0]
	p.Answers = p.Answers[1:]
	return answer, nil
}
