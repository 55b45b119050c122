package guide

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// LevelContent is the long-form content of one roadmap level.
type LevelContent struct {
	Level    int            `yaml:"level" json:"level"`
	Title    string         `yaml:"title" json:"title"`
	Subtitle string         `yaml:"subtitle" json:"subtitle"`
	Intro    string         `yaml:"intro" json:"intro"`
	Sections []NamedSection `yaml:"sections" json:"sections"`
	Closing  string         `yaml:"closing" json:"closing"`
}

// SectionKeys returns the section keys in display order.
func (c LevelContent) SectionKeys() []string {
	keys := make([]string, 0, len(c.Sections))
	for _, s := range c.Sections {
		keys = append(keys, s.Key)
	}
	return keys
}

// FearResponse pairs a beginner fear with the answer to it.
type FearResponse struct {
	Fear     string `yaml:"fear" json:"fear"`
	Response string `yaml:"response" json:"response"`
}

// Section is a bag of optional fields. Fields without a dedicated slot are
// kept as Blocks in source order.
type Section struct {
	Title                string         `json:"title,omitempty"`
	Intro                string         `json:"intro,omitempty"`
	Content              string         `json:"content,omitempty"`
	Items                []string       `json:"items,omitempty"`
	Fears                []FearResponse `json:"fears,omitempty"`
	YourResponsibilities []string       `json:"yourResponsibilities,omitempty"`
	AIResponsibilities   []string       `json:"aiResponsibilities,omitempty"`
	Summary              string         `json:"summary,omitempty"`
	Blocks               []Block        `json:"blocks,omitempty"`
}

// NamedSection is a Section together with its stable key.
type NamedSection struct {
	Key string `json:"key"`
	Section
}

// Block is a structured value of a section: a scalar Text, or Children
// for maps and lists. List elements have an empty Key.
type Block struct {
	Key      string  `json:"key,omitempty"`
	Text     string  `json:"text,omitempty"`
	Children []Block `json:"children,omitempty"`
}

// IsList reports whether the block came from a YAML sequence.
func (b Block) IsList() bool {
	return len(b.Children) > 0 && b.Children[0].Key == ""
}

// UnmarshalYAML decodes the known section fields and keeps every other
// field as a Block.
func (s *NamedSection) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind != yaml.MappingNode {
		return fmt.Errorf("%w: section at line %d is not a mapping", ErrInvalidContent, value.Line)
	}

	for i := 0; i+1 < len(value.Content); i += 2 {
		key, val := value.Content[i].Value, value.Content[i+1]

		var err error
		switch key {
		case "key":
			err = val.Decode(&s.Key)
		case "title":
			err = val.Decode(&s.Title)
		case "intro":
			err = val.Decode(&s.Intro)
		case "content":
			err = val.Decode(&s.Content)
		case "items":
			err = val.Decode(&s.Items)
		case "fears":
			err = val.Decode(&s.Fears)
		case "yourResponsibilities":
			err = val.Decode(&s.YourResponsibilities)
		case "aiResponsibilities":
			err = val.Decode(&s.AIResponsibilities)
		case "summary":
			err = val.Decode(&s.Summary)
		default:
			s.Blocks = append(s.Blocks, blockFromNode(key, val))
		}
		if err != nil {
			return fmt.Errorf("section field %q: %w", key, err)
		}
	}
	return nil
}

func blockFromNode(key string, n *yaml.Node) Block {
	if n.Kind == yaml.AliasNode && n.Alias != nil {
		n = n.Alias
	}

	b := Block{Key: key}
	switch n.Kind {
	case yaml.MappingNode:
		b.Children = make([]Block, 0, len(n.Content)/2)
		for i := 0; i+1 < len(n.Content); i += 2 {
			b.Children = append(b.Children, blockFromNode(n.Content[i].Value, n.Content[i+1]))
		}
	case yaml.SequenceNode:
		b.Children = make([]Block, 0, len(n.Content))
		for _, item := range n.Content {
			b.Children = append(b.Children, blockFromNode("", item))
		}
	default:
		b.Text = n.Value
	}
	return b
}

// Milestone is the overview entry of one level.
type Milestone struct {
	Level        int      `yaml:"level" json:"level"`
	Title        string   `yaml:"title" json:"title"`
	Philosophy   string   `yaml:"philosophy" json:"philosophy"`
	WillLearn    []string `yaml:"willLearn" json:"willLearn"`
	WillNotLearn []string `yaml:"willNotLearn" json:"willNotLearn"`
	Outcome      string   `yaml:"outcome" json:"outcome"`
	Example      Example  `yaml:"example" json:"example"`
}

// Example is a short story illustrating a milestone.
type Example struct {
	Scenario    string `yaml:"scenario" json:"scenario"`
	Description string `yaml:"description" json:"description"`
}

// Overview is the landing content of the roadmap.
type Overview struct {
	Headline    string      `yaml:"headline" json:"headline"`
	Subheadline string      `yaml:"subheadline" json:"subheadline"`
	Description string      `yaml:"description" json:"description"`
	ForWho      []string    `yaml:"forWho" json:"forWho"`
	NotFor      NotFor      `yaml:"notFor" json:"notFor"`
	Milestones  []Milestone `yaml:"milestones" json:"milestones"`
}

// NotFor lists who the roadmap does not serve.
type NotFor struct {
	Headline    string   `yaml:"headline" json:"headline"`
	Description string   `yaml:"description" json:"description"`
	Reasons     []string `yaml:"reasons" json:"reasons"`
}

type document struct {
	Levels   []LevelContent `yaml:"levels"`
	Overview Overview       `yaml:"overview"`
}
