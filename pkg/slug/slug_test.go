package slug_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/vibecoders/site/pkg/slug"
)

func TestMake(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		in   string
		opts []slug.Option
		want string
	}{
		{"simple title", "React for Beginners", nil, "react-for-beginners"},
		{"dots and digits", "Next.js 15 Full Course", nil, "next-js-15-full-course"},
		{"ampersand", "AWS & Cloud", nil, "aws-and-cloud"},
		{"plus and sharp", "C++ vs C#", nil, "c-plus-plus-vs-c-sharp"},
		{"diacritics", "Crème Brûlée", nil, "creme-brulee"},
		{"leading and trailing junk", "  --Hello, World!--  ", nil, "hello-world"},
		{"collapses separators", "a   b___c", nil, "a-b-c"},
		{"non latin dropped", "바이브 코딩 roadmap", nil, "roadmap"},
		{"empty", "", nil, ""},
		{"max length", "Advanced Node.js Patterns", []slug.Option{slug.MaxLength(13)}, "advanced-node"},
		{"max length trims separator", "Advanced Node", []slug.Option{slug.MaxLength(9)}, "advanced"},
		{"custom separator", "Vibe Coding", []slug.Option{slug.Separator("_")}, "vibe_coding"},
		{"custom replace", "Dev @ Home", []slug.Option{slug.CustomReplace(map[string]string{"@": " at "})}, "dev-at-home"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, slug.Make(tt.in, tt.opts...))
		})
	}
}

func TestIsValid(t *testing.T) {
	t.Parallel()

	valid := []string{"react-for-beginners", "nextjs-15-full-course", "vibe-coding", "a", "level-0"}
	invalid := []string{"", "-a", "a-", "a--b", "React", "a_b", "a b", "한국어", "a/b"}

	for _, s := range valid {
		assert.True(t, slug.IsValid(s), s)
	}
	for _, s := range invalid {
		assert.False(t, slug.IsValid(s), s)
	}
}

func TestMake_ProducesValidSlugs(t *testing.T) {
	t.Parallel()

	for _, in := range []string{"Frontend Developer Roadmap", "AWS & Cloud", "  Node.js!! ", "Ünïcödé Tëst 2"} {
		assert.True(t, slug.IsValid(slug.Make(in)), in)
	}
}
