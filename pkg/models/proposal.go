package models

// Proposal is a client project proposal as materialized by the intake
// services. The matching engine treats every field as read-only.
type Proposal struct {
	ID      string           `json:"id" db:"id"`
	Title   string           `json:"title,omitempty"`
	Summary string           `json:"summary,omitempty"`
	Content string           `json:"content,omitempty"`
	Context *ProposalContext `json:"context,omitempty"`
}

// ProposalContext carries the semi-structured questionnaire answers collected
// alongside the free-text proposal. All containers are optional; the intake
// flow fills whichever it has.
type ProposalContext struct {
	AnswersBySlug     map[string]string `json:"answersBySlug,omitempty"`
	AnswersByQuestion map[string]string `json:"answersByQuestion,omitempty"`
	CapturedFields    []CapturedField   `json:"capturedFields,omitempty"`
	AppHints          *AppHints         `json:"appHints,omitempty"`
}

// CapturedField is a single question/answer pair captured verbatim from the
// conversational flow.
type CapturedField struct {
	Question string `json:"question"`
	Answer   string `json:"answer"`
}

// AppHints are technology hints the intake flow derives for app-style
// projects (mobile client, backend, admin dashboard).
type AppHints struct {
	Mobile    []string `json:"mobile,omitempty"`
	Backend   []string `json:"backend,omitempty"`
	Dashboard []string `json:"dashboard,omitempty"`
}

// FreeText returns the proposal's narrative fields in a stable order.
func (p *Proposal) FreeText() []string {
	if p == nil {
		return nil
	}
	texts := make([]string, 0, 3)
	for _, t := range []string{p.Title, p.Summary, p.Content} {
		if t != "" {
			texts = append(texts, t)
		}
	}
	return texts
}
