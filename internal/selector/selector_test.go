package selector

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abaqira/guidebook/internal/questions"
)

func q(subtopic string) questions.QuestionItem {
	return questions.QuestionItem{Question: "q-" + subtopic, Answer: "a", Subtopic: subtopic}
}

func newBank(t *testing.T, cats []questions.Category) *questions.Bank {
	t.Helper()
	b, err := questions.NewBank(cats)
	require.NoError(t, err)
	return b
}

func fixture(t *testing.T) *questions.Bank {
	return newBank(t, []questions.Category{
		{ID: "bible", Title: "Bible", Questions: []questions.QuestionItem{
			{Question: "b1", Answer: "a"},
			{Question: "b2", Answer: "a"},
		}},
		{ID: "science", Title: "Science", Questions: []questions.QuestionItem{
			q("التاريخ"), q("اللغة الإنجليزية"), q("الجغرافيا"), q("التاريخ"), q(""),
		}},
		{ID: "letters", Title: "Letters", Questions: []questions.QuestionItem{
			q("B"), q("A"), q("B"),
		}},
	})
}

func TestOrderSubtopics(t *testing.T) {
	tests := []struct {
		name     string
		items    []questions.QuestionItem
		priority []string
		want     []string
	}{
		{
			name:     "priority first, absent skipped",
			items:    []questions.QuestionItem{q("التاريخ"), q("اللغة الإنجليزية"), q("الجغرافيا")},
			priority: []string{"الجغرافيا", "التاريخ", "العلوم", "اللغة الإنجليزية"},
			want:     []string{"الجغرافيا", "التاريخ", "اللغة الإنجليزية"},
		},
		{
			name:     "extras keep first-seen order after priority",
			items:    []questions.QuestionItem{q("Z"), q("التاريخ"), q("Y"), q("Z")},
			priority: []string{"الجغرافيا", "التاريخ"},
			want:     []string{"التاريخ", "Z", "Y"},
		},
		{
			name:     "empty subtopics ignored",
			items:    []questions.QuestionItem{q(""), q("")},
			priority: []string{"A"},
			want:     []string{},
		},
		{
			name:     "no priority keeps first-seen order",
			items:    []questions.QuestionItem{q("B"), q("A"), q("B"), q("C")},
			priority: nil,
			want:     []string{"B", "A", "C"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, OrderSubtopics(tt.items, tt.priority))
		})
	}
}

func TestNewSelectsFirstCategory(t *testing.T) {
	s := New(fixture(t), DefaultRules())

	cat, ok := s.Selected()
	require.True(t, ok)
	assert.Equal(t, "bible", cat.ID)
	assert.Empty(t, s.Subtopic())
	assert.Empty(t, s.Subtopics())
	assert.Len(t, s.Visible(), 2)
}

func TestSelectMultiSubtopicCategory(t *testing.T) {
	s := New(fixture(t), DefaultRules())
	s.SelectCategory("science")

	assert.Equal(t, []string{"الجغرافيا", "التاريخ", "اللغة الإنجليزية"}, s.Subtopics())
	assert.Equal(t, "الجغرافيا", s.Subtopic(), "auto-correction selects the first subtopic")
	assert.Len(t, s.Visible(), 1)

	s.SelectSubtopic("التاريخ")
	visible := s.Visible()
	require.Len(t, visible, 2)
	for _, item := range visible {
		assert.Equal(t, "التاريخ", item.Subtopic)
	}
}

func TestSelectSubtopicNotInSetIsCorrected(t *testing.T) {
	s := New(fixture(t), SubtopicRules{"letters": {"A", "B"}})
	s.SelectCategory("letters")
	require.Equal(t, []string{"A", "B"}, s.Subtopics())

	s.SelectSubtopic("Z")
	assert.Equal(t, "A", s.Subtopic())
}

func TestSelectCategoryResetsSubtopic(t *testing.T) {
	s := New(fixture(t), DefaultRules())
	s.SelectCategory("science")
	s.SelectSubtopic("التاريخ")

	s.SelectCategory("bible")
	assert.Equal(t, "", s.Subtopic())

	// Reselecting the subtopic category starts over from the first topic.
	s.SelectCategory("science")
	assert.Equal(t, "الجغرافيا", s.Subtopic())
}

func TestVisibleEmptyWithoutSubtopic(t *testing.T) {
	cats := []questions.Category{
		{ID: "science", Questions: []questions.QuestionItem{q(""), q("")}},
	}
	s := New(newBank(t, cats), DefaultRules())

	assert.True(t, s.HasSubtopics())
	assert.Empty(t, s.Subtopics())
	assert.Empty(t, s.Subtopic())
	assert.Empty(t, s.Visible())
}

func TestSubtopicIgnoredOutsideRuledCategory(t *testing.T) {
	s := New(fixture(t), DefaultRules())
	s.SelectSubtopic("التاريخ")

	assert.Empty(t, s.Subtopic())
	assert.Len(t, s.Visible(), 2)
}

func TestUnknownCategoryFallsBackToFirst(t *testing.T) {
	s := New(fixture(t), DefaultRules())
	s.SelectCategory("missing")

	assert.Equal(t, "missing", s.CategoryID())
	cat, ok := s.Selected()
	require.True(t, ok)
	assert.Equal(t, "bible", cat.ID)
}

func TestNoCategoriesRendersNothing(t *testing.T) {
	s := New(nil, DefaultRules())

	_, ok := s.Selected()
	assert.False(t, ok)
	assert.False(t, s.HasSubtopics())
	assert.Nil(t, s.Visible())

	s.NextCategory()
	s.NextSubtopic()
	assert.Empty(t, s.CategoryID())
}

func TestCycleCategories(t *testing.T) {
	s := New(fixture(t), DefaultRules())

	s.NextCategory()
	assert.Equal(t, "science", s.CategoryID())
	s.NextCategory()
	s.NextCategory()
	assert.Equal(t, "bible", s.CategoryID())

	s.PrevCategory()
	assert.Equal(t, "letters", s.CategoryID())
}

func TestCycleSubtopics(t *testing.T) {
	s := New(fixture(t), DefaultRules())
	s.SelectCategory("science")

	s.NextSubtopic()
	assert.Equal(t, "التاريخ", s.Subtopic())
	s.NextSubtopic()
	s.NextSubtopic()
	assert.Equal(t, "الجغرافيا", s.Subtopic())
	s.PrevSubtopic()
	assert.Equal(t, "اللغة الإنجليزية", s.Subtopic())
}

func TestEmbeddedScienceOrder(t *testing.T) {
	bank, err := questions.LoadEmbedded()
	require.NoError(t, err)

	s := New(bank, DefaultRules())
	s.SelectCategory("science")

	topics := s.Subtopics()
	require.GreaterOrEqual(t, len(topics), 4)
	assert.Equal(t, []string{"الجغرافيا", "التاريخ", "العلوم", "اللغة الإنجليزية"}, topics[:4])
	assert.Equal(t, "الرياضيات", topics[len(topics)-1])
}

func TestSelectorSharesBankIndex(t *testing.T) {
	bank := fixture(t)
	s := New(bank, DefaultRules())

	assert.Equal(t, bank.Categories(), s.Categories())

	s.SelectCategory("letters")
	s.NextCategory()
	assert.Equal(t, "bible", s.CategoryID())
	s.PrevCategory()
	assert.Equal(t, "letters", s.CategoryID())

	empty := New(newBank(t, nil), DefaultRules())
	_, ok := empty.Selected()
	assert.False(t, ok)
}
