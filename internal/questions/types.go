package questions

// QuestionItem is one question/answer pair, optionally illustrated.
type QuestionItem struct {
	Question   string `json:"question"`
	Answer     string `json:"answer"`
	Image      string `json:"image,omitempty"`
	ImageAlt   string `json:"imageAlt,omitempty"`
	Subtopic   string `json:"subtopic,omitempty"`
	Difficulty string `json:"difficulty,omitempty"`
}

// HasImage reports whether the item references an image asset.
func (q QuestionItem) HasImage() bool {
	return q.Image != ""
}

// Category is a named group of questions sharing a topic.
type Category struct {
	ID          string         `json:"id"`
	Title       string         `json:"title"`
	Description string         `json:"description"`
	Questions   []QuestionItem `json:"questions"`
}
