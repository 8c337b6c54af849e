package content

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pawarnirmal/portfolio/internal/domain"
)

func writeFile(t *testing.T, name, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestLoad_TOML(t *testing.T) {
	path := writeFile(t, "portfolio.toml", `
[profile]
name = "Ada"
email = "ada@example.com"

[[projects]]
title = "Analytical Engine"
desc = "A general purpose computer."
link = "https://example.com/engine"
tags = ["Hardware"]
`)

	p, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "Ada", p.Profile.Name)
	assert.Equal(t, Default().Profile.Headline, p.Profile.Headline)
	require.Len(t, p.Projects, 1)
	assert.Equal(t, "analytical-engine", p.Projects[0].Slug)
	if diff := cmp.Diff(Default().Skills, p.Skills); diff != "" {
		t.Errorf("skills should come from defaults (-want +got):\n%s", diff)
	}
}

func TestLoad_YAML(t *testing.T) {
	path := writeFile(t, "portfolio.yaml", `
skills:
  - title: Go
    items: [Concurrency, Testing]
certifications:
  - name: CKA
    issuer: CNCF
    year: "2025"
`)

	p, err := Load(path)
	require.NoError(t, err)

	if diff := cmp.Diff([]SkillGroup{{Title: "Go", Items: []string{"Concurrency", "Testing"}}}, p.Skills); diff != "" {
		t.Errorf("skills mismatch (-want +got):\n%s", diff)
	}
	require.Len(t, p.Certifications, 1)
	assert.Empty(t, p.Certifications[0].Badge)
}

func TestLoad_JSON(t *testing.T) {
	path := writeFile(t, "portfolio.json", `{"profile": {"name": "Grace"}}`)

	p, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "Grace", p.Profile.Name)
}

func TestLoad_Errors(t *testing.T) {
	t.Run("missing file", func(t *testing.T) {
		_, err := Load(filepath.Join(t.TempDir(), "nope.toml"))
		assert.ErrorContains(t, err, "read content file")
	})

	t.Run("unsupported extension", func(t *testing.T) {
		_, err := Load(writeFile(t, "portfolio.ini", "name=x"))
		assert.ErrorContains(t, err, "unsupported content format")
	})

	t.Run("unknown toml key", func(t *testing.T) {
		_, err := Load(writeFile(t, "portfolio.toml", "colour = \"red\"\n"))
		assert.ErrorContains(t, err, "unknown keys")
	})

	t.Run("invalid content", func(t *testing.T) {
		_, err := Load(writeFile(t, "portfolio.yaml", "certifications:\n  - name: X\n    issuer: Y\n    year: soon\n"))
		assert.ErrorIs(t, err, domain.ErrInvalidContent)
	})
}
