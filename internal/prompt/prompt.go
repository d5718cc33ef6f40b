// Package prompt is the interactive collaborator boundary: everything the
// normalization core needs from a console is expressed as the Prompter
// interface plus a couple of table-rendering helpers. The core works the
// same against the readline console and the auto-accept implementation used
// for headless runs and tests.
package prompt

// Prompter asks the operator questions. Implementations must be safe to use
// sequentially from one goroutine; there is no concurrent prompting.
type Prompter interface {
	// Ask requests a free-text answer. An empty answer yields defaultValue.
	Ask(question, defaultValue string) (string, error)
	// Confirm requests a yes/no answer with a default.
	Confirm(question string, defaultYes bool) (bool, error)
}

// AutoAccept answers every question with its default. It backs headless
// runs and keeps the normalization core testable without a terminal.
type AutoAccept struct{}

// Ask returns the default value.
func (AutoAccept) Ask(_, defaultValue string) (string, error) {
	return defaultValue, nil
}

// Confirm returns the default answer.
func (AutoAccept) Confirm(_ string, defaultYes bool) (bool, error) {
	return defaultYes, nil
}

// Scripted replays a fixed sequence of answers, falling back to defaults
// once exhausted. Test helper.
type Scripted struct {
	Answers  []string
	Confirms []bool

	answerIdx  int
	confirmIdx int
}

// Ask pops the next scripted answer, or the default when none remain or the
// scripted answer is empty.
func (s *Scripted) Ask(_, defaultValue string) (string, error) {
	if s.answerIdx >= len(s.Answers) {
		return defaultValue, nil
	}
	answer := s.Answers[s.answerIdx]
	s.answerIdx++
	if answer == "" {
		return defaultValue, nil
	}
	return answer, nil
}

// Confirm pops the next scripted confirmation, or the default.
func (s *Scripted) Confirm(_ string, defaultYes bool) (bool, error) {
	if s.confirmIdx >= len(s.Confirms) {
		return defaultYes, nil
	}
	answer := s.Confirms[s.confirmIdx]
	s.confirmIdx++
	return answer, nil
}
