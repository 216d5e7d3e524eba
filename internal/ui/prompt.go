package ui

// modalPrompt is the prompt.UserPrompt of the terminal UI. Questions are
// answered by the y/n modal before the controller asks them, so Confirm
// only hands back the answer the user already gave.
type modalPrompt struct {
	answer   bool
	question string
	status   string
}

func (p *modalPrompt) Confirm(question string) bool {
	p.question = question
	answer := p.answer
	p.answer = false
	return answer
}

func (p *modalPrompt) Notify(message string) {
	p.status = message
}
