package questions

import (
	"errors"
	"fmt"
)

// ErrUnknownCategory is returned when a category id is not in the bank.
var ErrUnknownCategory = errors.New("unknown category")

// Bank is the read-only, ordered set of question categories with an id index.
type Bank struct {
	categories []Category
	byID       map[string]int
}

// NewBank indexes categories by id. Order is preserved.
func NewBank(categories []Category) (*Bank, error) {
	b := &Bank{
		categories: categories,
		byID:       make(map[string]int, len(categories)),
	}
	for i, c := range categories {
		if _, dup := b.byID[c.ID]; dup {
			return nil, fmt.Errorf("%w: %q", ErrDuplicateCategory, c.ID)
		}
		b.byID[c.ID] = i
	}
	return b, nil
}

// Categories returns the categories in display order.
func (b *Bank) Categories() []Category {
	return b.categories
}

// Get returns the category with the given id.
func (b *Bank) Get(id string) (Category, error) {
	i, ok := b.Index(id)
	if !ok {
		return Category{}, fmt.Errorf("%w: %q", ErrUnknownCategory, id)
	}
	return b.categories[i], nil
}

// Index returns the display position of the category with the given id.
func (b *Bank) Index(id string) (int, bool) {
	i, ok := b.byID[id]
	return i, ok
}

// Count returns the number of categories.
func (b *Bank) Count() int {
	return len(b.categories)
}

// QuestionCount returns the total number of questions across all categories.
func (b *Bank) QuestionCount() int {
	n := 0
	for _, c := range b.categories {
		n += len(c.Questions)
	}
	return n
}
