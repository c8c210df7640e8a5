package projects

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestProjectByID(t *testing.T) {
	p, ok := ProjectByID(1)
	assert.True(t, ok)
	assert.Equal(t, "Twitter Clone", p.Title)
	assert.NotNil(t, p.NextProject)
	assert.Equal(t, "E-commerce Platform", p.NextProject.Title)

	_, ok = ProjectByID(999)
	assert.False(t, ok)
}

func TestAllIsACopy(t *testing.T) {
	all := All()
	assert.Len(t, all, 3)
	all[0].Title = "mutated"

	p, _ := ProjectByID(all[0].ID)
	assert.NotEqual(t, "mutated", p.Title)
}

func TestSeriesBySlug(t *testing.T) {
	s, ok := SeriesBySlug("farcaster")
	assert.True(t, ok)
	assert.Len(t, s.Ideas, 39)

	s, ok = SeriesBySlug("fullstack")
	assert.True(t, ok)
	assert.NotEmpty(t, s.Ideas)

	_, ok = SeriesBySlug("nope")
	assert.False(t, ok)

	assert.Equal(t, "farcaster", DefaultSeries().Slug)
}
