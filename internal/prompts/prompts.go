package prompts

import (
	_ "embed"
	"fmt"
	"os"
	"strings"
	"text/template"

	"gopkg.in/yaml.v3"
)

// Names of the catalog entries every catalog must define.
const (
	Strategy = "strategy"
	Risk     = "risk"
	Market   = "market"
	Reports  = "reports"
)

var required = []string{Strategy, Risk, Market, Reports}

//go:embed default.yaml
var defaultCatalog []byte

type Style struct {
	Temperature float32 `yaml:"temperature"`
	MaxTokens   int     `yaml:"max_tokens"`
}

// Prompt is one templated system+user message pair.
type Prompt struct {
	System   string `yaml:"system"`
	Template string `yaml:"template"`
	Style    Style  `yaml:"style"`

	tmpl *template.Template
}

// Render executes the user template against data.
func (p *Prompt) Render(data any) (string, error) {
	var b strings.Builder
	if err := p.tmpl.Execute(&b, data); err != nil {
		return "", err
	}
	return b.String(), nil
}

type Catalog struct {
	prompts map[string]*Prompt
}

// Default returns the built-in catalog.
func Default() (*Catalog, error) {
	return Parse(defaultCatalog)
}

// Load reads a catalog from path, or the built-in one when path is empty.
func Load(path string) (*Catalog, error) {
	if path == "" {
		return Default()
	}
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read prompt catalog: %w", err)
	}
	c, err := Parse(b)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return c, nil
}

func Parse(b []byte) (*Catalog, error) {
	var raw map[string]*Prompt
	if err := yaml.Unmarshal(b, &raw); err != nil {
		return nil, fmt.Errorf("invalid prompt catalog: %w", err)
	}
	for _, name := range required {
		p, ok := raw[name]
		if !ok || p == nil {
			return nil, fmt.Errorf("prompt %q is missing", name)
		}
		if strings.TrimSpace(p.Template) == "" {
			return nil, fmt.Errorf("prompt %q has an empty template", name)
		}
		t, err := template.New(name).Option("missingkey=error").Parse(p.Template)
		if err != nil {
			return nil, fmt.Errorf("prompt %q: %w", name, err)
		}
		p.tmpl = t
		if p.Style.MaxTokens <= 0 {
			p.Style.MaxTokens = 300
		}
	}
	return &Catalog{prompts: raw}, nil
}

// Get returns the named prompt. Only names validated by Parse are present.
func (c *Catalog) Get(name string) (*Prompt, error) {
	p, ok := c.prompts[name]
	if !ok || p.tmpl == nil {
		return nil, fmt.Errorf("unknown prompt %q", name)
	}
	return p, nil
}
