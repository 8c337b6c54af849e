package search

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pawarnirmal/portfolio/internal/content"
)

func newIndex(t *testing.T) *Index {
	t.Helper()
	idx, err := New(content.Default(), nil)
	require.NoError(t, err)
	t.Cleanup(func() { _ = idx.Close() })
	return idx
}

func TestSearch_FindsProjectByTitle(t *testing.T) {
	idx := newIndex(t)

	hits, err := idx.Search("honeypot", 0)
	require.NoError(t, err)
	require.NotEmpty(t, hits)

	assert.Equal(t, KindProject, hits[0].Kind)
	assert.Equal(t, "Cloud Honeypot Network", hits[0].Title)
	assert.Equal(t, "#project-cloud-honeypot-network", hits[0].Anchor)
}

func TestSearch_FindsSkillGroupByItem(t *testing.T) {
	idx := newIndex(t)

	hits, err := idx.Search("wireshark", 5)
	require.NoError(t, err)
	require.Len(t, hits, 1)

	assert.Equal(t, KindSkillGroup, hits[0].Kind)
	assert.Equal(t, "Networking", hits[0].Title)
	assert.Equal(t, "#skills", hits[0].Anchor)
}

func TestSearch_FindsCertificationByIssuer(t *testing.T) {
	idx := newIndex(t)

	hits, err := idx.Search("EC-Council", 5)
	require.NoError(t, err)
	require.NotEmpty(t, hits)
	assert.Equal(t, KindCertification, hits[0].Kind)
}

func TestSearch_EmptyQuery(t *testing.T) {
	idx := newIndex(t)

	hits, err := idx.Search("   ", 5)
	require.NoError(t, err)
	assert.Empty(t, hits)
}

func TestSearch_LimitIsCapped(t *testing.T) {
	idx := newIndex(t)

	hits, err := idx.Search("python security cloud ai", 1)
	require.NoError(t, err)
	assert.Len(t, hits, 1)
}

func TestIndex_RebuildOnReplace(t *testing.T) {
	idx := newIndex(t)
	store := content.NewStore(content.Default())
	idx.Attach(store)

	next := content.Default()
	next.Projects = append(next.Projects, content.Project{
		Slug: "packet-sniffer", Title: "Packet Sniffer", Desc: "Raw socket capture.", Link: "#",
	})
	require.NoError(t, store.Replace(next))

	hits, err := idx.Search("sniffer", 5)
	require.NoError(t, err)
	require.Len(t, hits, 1)
	assert.Equal(t, "Packet Sniffer", hits[0].Title)
}

func TestSearch_DuplicateTitlesKeepBothRecords(t *testing.T) {
	p := content.Default()
	p.Certifications = append(p.Certifications, content.Certification{
		Name: "AWS Cloud Practitioner", Issuer: "Amazon Web Services", Year: "2025",
	})
	p.Skills = append(p.Skills, content.SkillGroup{Title: "日本語", Items: []string{"Kanji"}})
	p.Skills = append(p.Skills, content.SkillGroup{Title: "中文", Items: []string{"Hanzi"}})
	require.NoError(t, p.Validate())

	idx, err := New(p, nil)
	require.NoError(t, err)
	t.Cleanup(func() { _ = idx.Close() })

	hits, err := idx.Search("practitioner", 10)
	require.NoError(t, err)
	assert.Len(t, hits, 2)

	for _, q := range []string{"kanji", "hanzi"} {
		hits, err := idx.Search(q, 10)
		require.NoError(t, err)
		require.Len(t, hits, 1, q)
		assert.Equal(t, KindSkillGroup, hits[0].Kind)
	}
}
