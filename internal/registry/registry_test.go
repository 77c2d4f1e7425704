package registry

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultRegistry(t *testing.T) {
	r := Default()
	assert.Len(t, r.Skills(), 21)
	assert.Len(t, r.Workflows(), 21)
	assert.Len(t, r.ProjectTypes(), 5)
	require.NoError(t, r.Check())
}

func TestDefaultSkillDefaults(t *testing.T) {
	s, ok := Default().Skill("speckit.specify")
	require.True(t, ok)
	assert.Equal(t, "1.0.0", s.Version)
	assert.Equal(t, CategoryCore, s.Category)
	assert.NotEmpty(t, s.Role)

	seo, ok := Default().Skill("speckit.seo")
	require.True(t, ok)
	assert.Equal(t, "web", seo.Category)

	_, ok = Default().Skill("speckit.nope")
	assert.False(t, ok)
}

func TestSkillsFor(t *testing.T) {
	tests := []struct {
		projectType string
		skills      int
		workflows   int
	}{
		{"fullstack", 21, 21},
		{"web_public", 21, 21},
		{"web_saas", 21, 21},
		{"mobile_app", 19, 19},
		{"desktop_cli", 19, 19},
	}
	for _, tt := range tests {
		t.Run(tt.projectType, func(t *testing.T) {
			skills, err := Default().SkillsFor(tt.projectType)
			require.NoError(t, err)
			assert.Len(t, skills, tt.skills)

			workflows, err := Default().WorkflowsFor(tt.projectType)
			require.NoError(t, err)
			assert.Len(t, workflows, tt.workflows)
		})
	}
}

func TestSkillsForExcludesWebOnMobile(t *testing.T) {
	skills, err := Default().SkillsFor("mobile_app")
	require.NoError(t, err)
	for _, s := range skills {
		assert.NotEqual(t, "speckit.seo", s.Name)
		assert.NotEqual(t, "speckit.geo", s.Name)
	}
}

func TestUnknownProjectType(t *testing.T) {
	_, err := Default().SkillsFor("mainframe")
	assert.ErrorIs(t, err, ErrUnknownProjectType)

	_, err = Default().ProjectType("")
	assert.ErrorIs(t, err, ErrUnknownProjectType)
}

func TestAccessorsReturnCopies(t *testing.T) {
	r := Default()
	skills := r.Skills()
	skills[0].Name = "mutated"
	assert.NotEqual(t, "mutated", r.Skills()[0].Name)
}

func TestLoadRejectsBadDocuments(t *testing.T) {
	tests := []struct {
		name string
		doc  string
		want string
	}{
		{
			name: "syntax",
			doc:  "skills: [",
			want: "parsing registry",
		},
		{
			name: "missing name",
			doc:  "skills:\n  - role: x\n",
			want: "has no name",
		},
		{
			name: "duplicate skill",
			doc:  "skills:\n  - name: a\n  - name: a\n",
			want: `duplicate skill "a"`,
		},
		{
			name: "unknown dependency",
			doc:  "skills:\n  - name: a\n    depends_on: [b]\n",
			want: "depends on unknown skill b",
		},
		{
			name: "unknown handoff",
			doc:  "skills:\n  - name: a\n    handoffs:\n      - {label: go, agent: z, prompt: p}\n",
			want: "hands off to unknown skill z",
		},
		{
			name: "unknown workflow skill",
			doc:  "skills:\n  - name: a\nworkflows:\n  - command: run\n    skills: [b]\n",
			want: "workflow run uses unknown skill b",
		},
		{
			name: "empty workflow",
			doc:  "skills:\n  - name: a\nworkflows:\n  - command: run\n",
			want: "lists no skills",
		},
		{
			name: "duplicate workflow",
			doc:  "skills:\n  - name: a\nworkflows:\n  - command: run\n    skills: [a]\n  - command: run\n    skills: [a]\n",
			want: "duplicate workflow run",
		},
		{
			name: "cycle",
			doc:  "skills:\n  - name: a\n    depends_on: [b]\n  - name: b\n    depends_on: [a]\n",
			want: "skill dependency cycle: a -> b -> a",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load([]byte(tt.doc))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}

func TestPrerequisites(t *testing.T) {
	got, err := Default().Prerequisites("speckit.geo")
	require.NoError(t, err)
	assert.Equal(t, []string{
		"speckit.specify",
		"speckit.plan",
		"speckit.tasks",
		"speckit.implement",
		"speckit.seo",
	}, got)

	got, err = Default().Prerequisites("speckit.specify")
	require.NoError(t, err)
	assert.Empty(t, got)

	_, err = Default().Prerequisites("speckit.nope")
	assert.Error(t, err)
}

func TestDependencyTreeDedupes(t *testing.T) {
	doc := `
skills:
  - name: base
  - name: left
    depends_on: [base]
  - name: right
    depends_on: [base]
  - name: top
    depends_on: [left, right]
`
	r, err := Load([]byte(doc))
	require.NoError(t, err)

	tree, err := r.DependencyTree("top")
	require.NoError(t, err)
	require.Len(t, tree.Children, 2)
	assert.False(t, tree.Children[0].Children[0].Deduped)
	assert.True(t, tree.Children[1].Children[0].Deduped)

	order, err := r.Prerequisites("top")
	require.NoError(t, err)
	assert.Equal(t, []string{"base", "left", "right"}, order)
}
