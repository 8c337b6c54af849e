package content

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

// Load reads a portfolio from a .toml, .yaml/.yml or .json file. Sections the
// file leaves empty are taken from Default, then the result is validated.
func Load(path string) (*Portfolio, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read content file: %w", err)
	}

	p, err := Decode(filepath.Ext(path), data)
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", path, err)
	}

	p.fillDefaults(Default())
	if err := p.Validate(); err != nil {
		return nil, err
	}
	return p, nil
}

// Decode parses data according to the file extension ext (with leading dot).
func Decode(ext string, data []byte) (*Portfolio, error) {
	p := &Portfolio{}
	switch strings.ToLower(ext) {
	case ".toml":
		md, err := toml.Decode(string(data), p)
		if err != nil {
			return nil, err
		}
		if undecoded := md.Undecoded(); len(undecoded) > 0 {
			return nil, fmt.Errorf("unknown keys: %v", undecoded)
		}
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, p); err != nil {
			return nil, err
		}
	case ".json":
		if err := json.Unmarshal(data, p); err != nil {
			return nil, err
		}
	default:
		return nil, fmt.Errorf("unsupported content format %q", ext)
	}
	return p, nil
}

func (p *Portfolio) fillDefaults(d *Portfolio) {
	fill(&p.Profile.Name, d.Profile.Name)
	fill(&p.Profile.Brand, d.Profile.Brand)
	fill(&p.Profile.Badge, d.Profile.Badge)
	fill(&p.Profile.Headline, d.Profile.Headline)
	fill(&p.Profile.Bio, d.Profile.Bio)
	fill(&p.Profile.AboutTitle, d.Profile.AboutTitle)
	fill(&p.Profile.AboutSummary, d.Profile.AboutSummary)
	fill(&p.Profile.ContactTitle, d.Profile.ContactTitle)
	fill(&p.Profile.ContactSummary, d.Profile.ContactSummary)
	fill(&p.Profile.Email, d.Profile.Email)
	fill(&p.Profile.SceneURL, d.Profile.SceneURL)

	if len(p.Nav) == 0 {
		p.Nav = d.Nav
	}
	if len(p.Socials) == 0 {
		p.Socials = d.Socials
	}
	if len(p.Pills) == 0 {
		p.Pills = d.Pills
	}
	if len(p.Features) == 0 {
		p.Features = d.Features
	}
	if len(p.Skills) == 0 {
		p.Skills = d.Skills
	}
	if len(p.Projects) == 0 {
		p.Projects = d.Projects
	}
	if len(p.Certifications) == 0 {
		p.Certifications = d.Certifications
	}

	for i := range p.Projects {
		if p.Projects[i].Slug == "" {
			p.Projects[i].Slug = Slugify(p.Projects[i].Title)
		}
	}
}

func fill(dst *string, fallback string) {
	if *dst == "" {
		*dst = fallback
	}
}
