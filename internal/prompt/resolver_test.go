package prompt

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolver_Get_KnownTemplates(t *testing.T) {
	r := NewResolver()

	explain := r.Get(CategoryCodeExplainer, KindUserTemplate, Vars{Code: "x <- 1:10"})
	assert.Contains(t, explain, "x <- 1:10")
	assert.Contains(t, explain, "explain")

	solve := r.Get(CategoryProblemSolver, KindUserTemplate, Vars{ProblemDescription: "plot two variables"})
	assert.Contains(t, solve, "plot two variables")
	assert.Contains(t, solve, "three complete R solutions")

	chat := r.Get(CategoryConversation, KindUserTemplate, Vars{Message: "what is a factor?"})
	assert.Contains(t, chat, "what is a factor?")

	analysis := r.Get(CategoryCodeAnalyzer, KindQualityAnalysis, Vars{Code: "y <- 2", CodePurpose: "review"})
	assert.Contains(t, analysis, "y <- 2")
	assert.Contains(t, analysis, "review")
}

func TestResolver_Get_UnknownCategoryFallsBack(t *testing.T) {
	r := NewResolver()

	got := r.Get(Category("nonsense"), KindUserTemplate, Vars{Message: "help me"})
	assert.Contains(t, got, "help me")

	system := r.Get(Category("nonsense"), KindSystem, Vars{})
	assert.NotEmpty(t, system)
}

func TestResolver_Get_UnknownKindFallsBack(t *testing.T) {
	r := NewResolver()

	got := r.Get(CategoryCodeExplainer, Kind("missing"), Vars{})
	assert.NotEmpty(t, got)
}

func TestResolver_System(t *testing.T) {
	r := NewResolver()

	for _, category := range []Category{
		CategoryCodeExplainer,
		CategoryProblemSolver,
		CategoryConversation,
		CategoryCodeAnalyzer,
	} {
		assert.NotEmpty(t, r.System(category), "system prompt for %s", category)
	}
}

func TestResolver_LoadOverrides(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "prompts.yaml")

	content := `
conversation:
  user_template: "OVERRIDDEN: {message}"
  bogus_kind: "ignored"
bogus_category:
  system: "ignored"
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	r := NewResolver()
	require.NoError(t, r.LoadOverrides(path))

	got := r.Get(CategoryConversation, KindUserTemplate, Vars{Message: "hi"})
	assert.Equal(t, "OVERRIDDEN: hi", got)

	// Untouched templates still resolve.
	assert.NotEmpty(t, r.Get(CategoryConversation, KindSystem, Vars{}))
}

func TestResolver_LoadOverrides_MissingFile(t *testing.T) {
	r := NewResolver()
	err := r.LoadOverrides(filepath.Join(t.TempDir(), "absent.yaml"))
	assert.Error(t, err)
}

func TestResolver_LoadOverrides_BadYAML(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "bad.yaml")
	require.NoError(t, os.WriteFile(path, []byte("{not yaml"), 0644))

	r := NewResolver()
	assert.Error(t, r.LoadOverrides(path))
}
