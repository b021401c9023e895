package questions

import (
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadEmbedded(t *testing.T) {
	bank, err := LoadEmbedded()
	require.NoError(t, err)

	require.Equal(t, len(DatasetFiles), bank.Count())
	assert.Equal(t, "bible", bank.Categories()[0].ID)
	assert.Equal(t, "general-knowledge", bank.Categories()[bank.Count()-1].ID)

	science, err := bank.Get("science")
	require.NoError(t, err)
	for _, q := range science.Questions {
		assert.NotEmpty(t, q.Subtopic, "science question %q has no subtopic", q.Question)
	}

	obs, err := bank.Get("observation-power")
	require.NoError(t, err)
	assert.Len(t, obs.Questions, 200)
	for _, q := range obs.Questions {
		assert.True(t, q.HasImage())
	}
}

func TestBankUnknownCategory(t *testing.T) {
	bank, err := NewBank([]Category{{ID: "a", Title: "A"}})
	require.NoError(t, err)

	_, err = bank.Get("missing")
	assert.ErrorIs(t, err, ErrUnknownCategory)
}

func TestBankIndex(t *testing.T) {
	bank, err := NewBank([]Category{{ID: "a"}, {ID: "b"}})
	require.NoError(t, err)

	i, ok := bank.Index("b")
	assert.True(t, ok)
	assert.Equal(t, 1, i)

	_, ok = bank.Index("c")
	assert.False(t, ok)
}

func TestBankDuplicateCategory(t *testing.T) {
	_, err := NewBank([]Category{{ID: "a"}, {ID: "a"}})
	assert.ErrorIs(t, err, ErrDuplicateCategory)
}

func TestBankQuestionCount(t *testing.T) {
	bank, err := NewBank([]Category{
		{ID: "a", Questions: make([]QuestionItem, 2)},
		{ID: "b", Questions: make([]QuestionItem, 3)},
	})
	require.NoError(t, err)
	assert.Equal(t, 5, bank.QuestionCount())
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		doc     string
		wantErr bool
	}{
		{
			name: "valid",
			doc:  `{"id":"x","title":"X","description":"","questions":[{"question":"q","answer":"a","subtopic":"s"}]}`,
		},
		{
			name:    "not json",
			doc:     `{`,
			wantErr: true,
		},
		{
			name:    "missing answer",
			doc:     `{"id":"x","title":"X","description":"","questions":[{"question":"q"}]}`,
			wantErr: true,
		},
		{
			name:    "bad id",
			doc:     `{"id":"Not An Id","title":"X","description":"","questions":[]}`,
			wantErr: true,
		},
		{
			name:    "questions not array",
			doc:     `{"id":"x","title":"X","description":"","questions":{}}`,
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Validate([]byte(tt.doc))
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestLoadFSMissingFile(t *testing.T) {
	fsys := fstest.MapFS{
		"bible.json": {Data: []byte(`{"id":"bible","title":"B","description":"","questions":[]}`)},
	}
	_, err := LoadFS(fsys)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "rite-doctrine.json")
}

func TestLoadFSInvalidFile(t *testing.T) {
	fsys := fstest.MapFS{}
	for _, name := range DatasetFiles {
		fsys[name] = &fstest.MapFile{Data: []byte(`{"id":"` + name[:len(name)-5] + `","title":"T","description":"","questions":[]}`)}
	}
	fsys["arts.json"] = &fstest.MapFile{Data: []byte(`{"id":"arts"}`)}

	_, err := LoadFS(fsys)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "validate arts.json")
}
