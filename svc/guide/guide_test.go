package guide_test

import (
	"context"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vibecoders/site/pkg/i18n"
	"github.com/vibecoders/site/svc/guide"
)

func newGuide(t *testing.T, opts ...guide.Option) *guide.Guide {
	t.Helper()

	g, err := guide.New(context.Background(), opts...)
	require.NoError(t, err)
	return g
}

func TestNew_EmbeddedContent(t *testing.T) {
	t.Parallel()

	g := newGuide(t)
	assert.Equal(t, []i18n.Locale{i18n.EN, i18n.KO}, g.Locales())

	for _, l := range g.Locales() {
		for _, n := range guide.Levels() {
			lc, ok := g.Level(n, l)
			require.True(t, ok)
			assert.Equal(t, n, lc.Level)
			assert.NotEmpty(t, lc.Title)
			assert.NotEmpty(t, lc.Sections)
			assert.Equal(t, g.LevelContent(n, i18n.EN).SectionKeys(), lc.SectionKeys(), "locale %s level %d", l, n)
		}
		assert.Len(t, g.Overview(l).Milestones, guide.MaxLevel-guide.MinLevel+1)
	}
}

func TestLevelContent(t *testing.T) {
	t.Parallel()

	g := newGuide(t)

	en := g.LevelContent(0, i18n.EN)
	assert.Equal(t, "Level 0: Mindset Reset", en.Title)
	assert.Equal(t, []string{
		"wrongBeliefs", "whatVibeCodingMeans", "responsibilities",
		"commonFears", "mentalModel", "readyChecklist",
	}, en.SectionKeys())

	ko := g.LevelContent(0, i18n.KO)
	assert.Equal(t, "레벨 0: 마인드셋 리셋", ko.Title)
	assert.Len(t, ko.Sections[3].Fears, 5)
	assert.Len(t, ko.Sections[2].YourResponsibilities, 5)
	assert.Len(t, ko.Sections[2].AIResponsibilities, 5)

	t.Run("out of range falls back to level 0", func(t *testing.T) {
		t.Parallel()
		for _, n := range []int{-1, 7, 100} {
			assert.Equal(t, g.LevelContent(0, i18n.KO), g.LevelContent(n, i18n.KO), n)
		}
	})

	t.Run("unsupported locale uses default track", func(t *testing.T) {
		t.Parallel()
		assert.Equal(t, g.LevelContent(4, i18n.EN), g.LevelContent(4, "fr"))
	})

	t.Run("untranslated fields fall back to default", func(t *testing.T) {
		t.Parallel()
		ko3 := g.LevelContent(3, i18n.KO)
		en3 := g.LevelContent(3, i18n.EN)
		assert.NotEqual(t, en3.Sections[1].Title, ko3.Sections[1].Title)
		assert.Equal(t, en3.Sections[1].Intro, ko3.Sections[1].Intro)
		assert.Equal(t, en3.Sections[1].Blocks, ko3.Sections[1].Blocks)
	})
}

func TestLevel_Strict(t *testing.T) {
	t.Parallel()

	g := newGuide(t)
	for _, n := range []int{-1, 7} {
		_, ok := g.Level(n, i18n.EN)
		assert.False(t, ok, n)
	}
}

func TestSectionBlocksKeepSourceOrder(t *testing.T) {
	t.Parallel()

	g := newGuide(t)
	metaphor := g.LevelContent(3, i18n.EN).Sections[1]
	require.Equal(t, "buildingMetaphor", metaphor.Key)
	require.Len(t, metaphor.Blocks, 1)

	comparisons := metaphor.Blocks[0]
	assert.Equal(t, "comparisons", comparisons.Key)
	assert.True(t, comparisons.IsList())
	require.Len(t, comparisons.Children, 5)

	first := comparisons.Children[0]
	assert.False(t, first.IsList())
	keys := make([]string, 0, len(first.Children))
	for _, c := range first.Children {
		keys = append(keys, c.Key)
	}
	assert.Equal(t, []string{"building", "code", "meaning", "whatToLook"}, keys)
	assert.Equal(t, "The Foundation", first.Children[0].Text)
}

func TestOverview(t *testing.T) {
	t.Parallel()

	g := newGuide(t)

	en := g.Overview(i18n.EN)
	assert.Equal(t, "The Vibe Coding Roadmap", en.Headline)
	assert.Len(t, en.ForWho, 5)
	assert.Len(t, en.NotFor.Reasons, 5)
	assert.Equal(t, "Mindset Reset", en.Milestones[0].Title)

	ko := g.Overview(i18n.KO)
	assert.Equal(t, "바이브 코딩 로드맵", ko.Headline)
	assert.Equal(t, "마인드셋 리셋", ko.Milestones[0].Title)
	assert.Equal(t, 6, ko.Milestones[6].Level)
}

func TestParseLevelSegment(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in   string
		want int
		ok   bool
	}{
		{"level-0", 0, true},
		{"level-6", 6, true},
		{"level-7", 0, false},
		{"level--1", 0, false},
		{"level-03", 0, false},
		{"level-+3", 0, false},
		{"level-3abc", 0, false},
		{"level-", 0, false},
		{"Level-3", 0, false},
		{"3", 0, false},
		{"", 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			t.Parallel()
			got, ok := guide.ParseLevelSegment(tt.in)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.want, got)
		})
	}

	for _, n := range guide.Levels() {
		got, ok := guide.ParseLevelSegment(guide.LevelSegment(n))
		assert.True(t, ok)
		assert.Equal(t, n, got)
	}
}

const minimalEN = `
levels:
- {level: 0, title: L0, sections: [{key: a, title: A}]}
- {level: 1, title: L1, sections: [{key: a, title: A}]}
- {level: 2, title: L2, sections: [{key: a, title: A}]}
- {level: 3, title: L3, sections: [{key: a, title: A}]}
- {level: 4, title: L4, sections: [{key: a, title: A}]}
- {level: 5, title: L5, sections: [{key: a, title: A}]}
- {level: 6, title: L6, sections: [{key: a, title: A, extra: {x: 1}}]}
overview:
  headline: Roadmap
  milestones: [{level: 0}, {level: 1}, {level: 2}, {level: 3}, {level: 4}, {level: 5}, {level: 6}]
`

func TestNew_CustomFS(t *testing.T) {
	t.Parallel()

	fsys := fstest.MapFS{
		"c/en.yaml": {Data: []byte(minimalEN)},
		"c/ko.yaml": {Data: []byte("overview:\n  headline: 로드맵\n")},
	}

	g := newGuide(t, guide.WithFS(fsys, "c"))
	assert.Equal(t, "로드맵", g.Overview(i18n.KO).Headline)
	assert.Equal(t, "L6", g.LevelContent(6, i18n.KO).Title)
	assert.Equal(t, []guide.Block{{Key: "extra", Children: []guide.Block{{Key: "x", Text: "1"}}}},
		g.LevelContent(6, i18n.KO).Sections[0].Blocks)
}

func TestNew_Errors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		en      string
		ko      string
		wantErr error
	}{
		{
			name:    "missing locale file",
			en:      minimalEN,
			wantErr: guide.ErrMissingContent,
		},
		{
			name:    "malformed yaml",
			en:      "levels: [",
			ko:      "{}",
			wantErr: guide.ErrInvalidContent,
		},
		{
			name:    "too few levels",
			en:      "levels: [{level: 0, title: L0}]\noverview: {}\n",
			ko:      "{}",
			wantErr: guide.ErrLevelCount,
		},
		{
			name:    "section keys differ",
			en:      minimalEN,
			ko:      "levels: [{}, {}, {sections: [{key: b}]}, {}, {}, {}, {}]\n",
			wantErr: guide.ErrSectionMismatch,
		},
		{
			name:    "extra section in translation",
			en:      minimalEN,
			ko:      "levels: [{sections: [{key: a}, {key: b}]}, {}, {}, {}, {}, {}, {}]\n",
			wantErr: guide.ErrSectionMismatch,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			fsys := fstest.MapFS{"c/en.yaml": {Data: []byte(tt.en)}}
			if tt.ko != "" {
				fsys["c/ko.yaml"] = &fstest.MapFile{Data: []byte(tt.ko)}
			}

			_, err := guide.New(context.Background(), guide.WithFS(fsys, "c"))
			require.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestNew_Options(t *testing.T) {
	t.Parallel()

	_, err := guide.New(context.Background(), guide.WithDefaultLocale("fr"))
	require.ErrorIs(t, err, guide.ErrUnknownLocale)

	g := newGuide(t, guide.WithLocales(i18n.KO), guide.WithDefaultLocale(i18n.EN), guide.WithLogger(nil))
	assert.Equal(t, []i18n.Locale{i18n.EN, i18n.KO}, g.Locales())

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = guide.New(ctx)
	require.ErrorIs(t, err, context.Canceled)
}
