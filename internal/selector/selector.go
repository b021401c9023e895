// Package selector tracks the selected question category and subtopic and
// derives the questions that are currently visible.
package selector

import (
	"slices"

	"github.com/abaqira/guidebook/internal/questions"
)

// SubtopicRules maps a category id to its preferred subtopic order. A category
// with a rule is browsed by subtopic; all others show every question.
type SubtopicRules map[string][]string

// DefaultRules designates the science category as the one browsed by subtopic.
func DefaultRules() SubtopicRules {
	return SubtopicRules{
		"science": {"الجغرافيا", "التاريخ", "العلوم", "اللغة الإنجليزية"},
	}
}

// Selector owns the selection state over a read-only bank.
type Selector struct {
	bank  *questions.Bank
	rules SubtopicRules

	categoryID string
	subtopic   string
	subtopics  []string
}

// New creates a Selector with the first category selected. A nil bank
// behaves as an empty one.
func New(bank *questions.Bank, rules SubtopicRules) *Selector {
	if bank == nil {
		bank, _ = questions.NewBank(nil)
	}
	s := &Selector{
		bank:  bank,
		rules: rules,
	}
	if cats := bank.Categories(); len(cats) > 0 {
		s.categoryID = cats[0].ID
	}
	s.reconcile()
	return s
}

// SelectCategory switches category and clears the subtopic before auto-correction.
func (s *Selector) SelectCategory(id string) {
	s.categoryID = id
	s.subtopic = ""
	s.reconcile()
}

// SelectSubtopic selects a subtopic of the current category.
func (s *Selector) SelectSubtopic(topic string) {
	s.subtopic = topic
	s.reconcile()
}

// CategoryID returns the raw selected id, which may not exist in the list.
func (s *Selector) CategoryID() string { return s.categoryID }

// Subtopic returns the selected subtopic, or "" when none applies.
func (s *Selector) Subtopic() string { return s.subtopic }

// Categories returns the category list in display order.
func (s *Selector) Categories() []questions.Category { return s.bank.Categories() }

// Selected returns the selected category. An unknown id falls back to the
// first category; ok is false only when there are no categories.
func (s *Selector) Selected() (questions.Category, bool) {
	if cat, err := s.bank.Get(s.categoryID); err == nil {
		return cat, true
	}
	cats := s.bank.Categories()
	if len(cats) == 0 {
		return questions.Category{}, false
	}
	return cats[0], true
}

// HasSubtopics reports whether the selected category is browsed by subtopic.
func (s *Selector) HasSubtopics() bool {
	cat, ok := s.Selected()
	if !ok {
		return false
	}
	_, ok = s.rules[cat.ID]
	return ok
}

// Subtopics returns the ordered subtopics of the selected category.
func (s *Selector) Subtopics() []string {
	return s.subtopics
}

// Visible returns the questions to show for the current selection.
func (s *Selector) Visible() []questions.QuestionItem {
	cat, ok := s.Selected()
	if !ok {
		return nil
	}
	if !s.HasSubtopics() {
		return cat.Questions
	}
	if s.subtopic == "" {
		return nil
	}

	var out []questions.QuestionItem
	for _, q := range cat.Questions {
		if q.Subtopic == s.subtopic {
			out = append(out, q)
		}
	}
	return out
}

// NextCategory selects the following category, wrapping around.
func (s *Selector) NextCategory() { s.stepCategory(1) }

// PrevCategory selects the preceding category, wrapping around.
func (s *Selector) PrevCategory() { s.stepCategory(-1) }

func (s *Selector) stepCategory(delta int) {
	cats := s.bank.Categories()
	if len(cats) == 0 {
		return
	}
	cat, _ := s.Selected()
	i, _ := s.bank.Index(cat.ID)
	s.SelectCategory(cats[wrap(i+delta, len(cats))].ID)
}

// NextSubtopic selects the following subtopic, wrapping around.
func (s *Selector) NextSubtopic() { s.stepSubtopic(1) }

// PrevSubtopic selects the preceding subtopic, wrapping around.
func (s *Selector) PrevSubtopic() { s.stepSubtopic(-1) }

func (s *Selector) stepSubtopic(delta int) {
	if len(s.subtopics) == 0 {
		return
	}
	i := slices.Index(s.subtopics, s.subtopic)
	if i < 0 {
		i = 0
	} else {
		i = wrap(i+delta, len(s.subtopics))
	}
	s.SelectSubtopic(s.subtopics[i])
}

// reconcile rederives the subtopic list and keeps the selected subtopic a
// member of it.
func (s *Selector) reconcile() {
	s.subtopics = nil
	if cat, ok := s.Selected(); ok {
		if order, ok := s.rules[cat.ID]; ok {
			s.subtopics = OrderSubtopics(cat.Questions, order)
		}
	}

	switch {
	case len(s.subtopics) == 0:
		s.subtopic = ""
	case !slices.Contains(s.subtopics, s.subtopic):
		s.subtopic = s.subtopics[0]
	}
}

// OrderSubtopics collects the distinct non-empty subtopics of items in
// first-seen order, then moves those named in priority to the front in
// priority order.
func OrderSubtopics(items []questions.QuestionItem, priority []string) []string {
	var seen []string
	for _, q := range items {
		if q.Subtopic != "" && !slices.Contains(seen, q.Subtopic) {
			seen = append(seen, q.Subtopic)
		}
	}

	out := make([]string, 0, len(seen))
	for _, topic := range priority {
		if slices.Contains(seen, topic) && !slices.Contains(out, topic) {
			out = append(out, topic)
		}
	}
	for _, topic := range seen {
		if !slices.Contains(priority, topic) {
			out = append(out, topic)
		}
	}
	return out
}

func wrap(i, n int) int {
	return ((i % n) + n) % n
}
