package testutil

// ScriptedPrompt is a prompt.UserPrompt that replays canned answers and
// records everything it was asked.
type ScriptedPrompt struct {
	// Answers are returned by Confirm in order. When exhausted, Default is used.
	Answers []bool
	Default bool

	Questions []string
	Notices   []string
}

// Confirm implements prompt.UserPrompt.
func (p *ScriptedPrompt) Confirm(question string) bool {
	p.Questions = append(p.Questions, question)
	if len(p.Answers) == 0 {
		return p.Default
	}
	answer := p.Answers[0]
	p.Answers = p.Answers[1:]
	return answer
}

// Notify implements prompt.UserPrompt.
func (p *ScriptedPrompt) Notify(message string) {
	p.Notices = append(p.Notices, message)
}
