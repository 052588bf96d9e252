package markup

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// Table declares which tags exist, which children and attributes each one
// accepts, and optional parent constraints. It is the input to the builder
// generator.
type Table struct {
	Namespace string `toml:"namespace" yaml:"namespace"`
	// Attributes are accepted by every tag.
	Attributes []string `toml:"attributes" yaml:"attributes"`
	Tags       []Tag    `toml:"tag" yaml:"tags"`
}

type Tag struct {
	Name       string   `toml:"name" yaml:"name"`
	Children   []string `toml:"children" yaml:"children"`
	Attributes []string `toml:"attributes" yaml:"attributes"`
	// Parents lists tags this tag may appear in, in addition to the tags
	// that name it as a child.
	Parents []string `toml:"parents" yaml:"parents"`
	// Void tags have no children and render as <name />.
	Void bool `toml:"void" yaml:"void"`
	// Text allows character content.
	Text bool `toml:"text" yaml:"text"`
}

type Format string

const (
	FormatTOML Format = "toml"
	FormatYAML Format = "yaml"
)

// FormatFor picks the table format from a file name's extension.
func FormatFor(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		return FormatTOML, nil
	case ".yaml", ".yml":
		return FormatYAML, nil
	}
	return "", fmt.Errorf("unsupported tag table extension %q", filepath.Ext(path))
}

// Load reads a tag table from a .toml, .yaml or .yml file.
func Load(path string) (*Table, error) {
	format, err := FormatFor(path)
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(err, "read tag table")
	}
	t, err := Parse(data, format)
	if err != nil {
		return nil, errors.Wrapf(err, "parse %s", path)
	}
	log.Debugf("loaded %d tags from %s", len(t.Tags), path)
	return t, nil
}

func Parse(data []byte, format Format) (*Table, error) {
	var t Table
	switch format {
	case FormatTOML:
		md, err := toml.NewDecoder(bytes.NewReader(data)).Decode(&t)
		if err != nil {
			return nil, err
		}
		if undecoded := md.Undecoded(); len(undecoded) > 0 {
			keys := make([]string, len(undecoded))
			for i, k := range undecoded {
				keys[i] = k.String()
			}
			return nil, fmt.Errorf("unknown keys: %s", strings.Join(keys, ", "))
		}
	case FormatYAML:
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		if err := dec.Decode(&t); err != nil {
			return nil, err
		}
	default:
		return nil, fmt.Errorf("unsupported tag table format %q", format)
	}
	return &t, nil
}

// Lookup returns the tag with the given name.
func (t *Table) Lookup(name string) (Tag, bool) {
	for _, tag := range t.Tags {
		if tag.Name == name {
			return tag, true
		}
	}
	return Tag{}, false
}

// Problem is one inconsistency found in a table.
type Problem struct {
	Tag     string
	Message string
}

func (p Problem) String() string {
	if p.Tag == "" {
		return p.Message
	}
	return fmt.Sprintf("<%s>: %s", p.Tag, p.Message)
}

// TableError collects every problem Validate found.
type TableError struct {
	Problems []Problem
}

func (e *TableError) Error() string {
	msgs := make([]string, len(e.Problems))
	for i, p := range e.Problems {
		msgs[i] = p.String()
	}
	return "markup: invalid tag table: " + strings.Join(msgs, "; ")
}

// Validate checks that tag and attribute names are well formed, that tag
// names are unique and that every child and parent reference names a
// declared tag.
func (t *Table) Validate() error {
	var problems []Problem
	add := func(tag, format string, args ...any) {
		problems = append(problems, Problem{Tag: tag, Message: fmt.Sprintf(format, args...)})
	}

	for _, a := range t.Attributes {
		if !validAttributeName(a) {
			add("", "invalid attribute name %q", a)
		}
	}

	known := make(map[string]bool, len(t.Tags))
	classes := make(map[string]string, len(t.Tags))
	for _, tag := range t.Tags {
		switch {
		case tag.Name == "":
			add("", "tag without a name")
		case known[tag.Name]:
			add(tag.Name, "declared more than once")
		case !validTagName(tag.Name):
			add(tag.Name, "invalid tag name")
		default:
			class := ClassName(tag.Name)
			if other, ok := classes[class]; ok {
				add(tag.Name, "builder %s is also generated for <%s>", class, other)
			} else {
				classes[class] = tag.Name
			}
		}
		known[tag.Name] = true
		for _, a := range tag.Attributes {
			if !validAttributeName(a) {
				add(tag.Name, "invalid attribute name %q", a)
			}
		}
	}

	for _, tag := range t.Tags {
		if tag.Name == "" {
			continue
		}
		for _, c := range tag.Children {
			if !known[c] {
				add(tag.Name, "unknown child tag %q", c)
			}
		}
		for _, p := range tag.Parents {
			if !known[p] {
				add(tag.Name, "unknown parent tag %q", p)
				continue
			}
			if parent, _ := t.Lookup(p); parent.Void {
				add(tag.Name, "parent %q is a void tag", p)
			}
		}
		if tag.Void && (len(tag.Children) > 0 || tag.Text) {
			add(tag.Name, "void tag cannot have content")
		}
		seen := make(map[string]bool)
		methods := make(map[string]string)
		for _, a := range append(append([]string{}, t.Attributes...), tag.Attributes...) {
			if seen[a] {
				add(tag.Name, "attribute %q declared more than once", a)
				continue
			}
			seen[a] = true
			method := attributeMethodName(a)
			if other, ok := methods[method]; ok {
				add(tag.Name, "attributes %q and %q both generate %s", other, a, method)
				continue
			}
			methods[method] = a
		}
	}

	if len(problems) > 0 {
		return &TableError{Problems: problems}
	}
	return nil
}

// Closure maps each tag to the sorted set of tags allowed directly inside
// it: its declared children plus every tag that lists it as a parent.
func (t *Table) Closure() map[string][]string {
	sets := make(map[string]map[string]bool, len(t.Tags))
	for _, tag := range t.Tags {
		if sets[tag.Name] == nil {
			sets[tag.Name] = make(map[string]bool)
		}
		for _, c := range tag.Children {
			sets[tag.Name][c] = true
		}
	}
	for _, tag := range t.Tags {
		for _, p := range tag.Parents {
			if sets[p] == nil {
				sets[p] = make(map[string]bool)
			}
			sets[p][tag.Name] = true
		}
	}

	closure := make(map[string][]string, len(sets))
	for name, set := range sets {
		children := make([]string, 0, len(set))
		for c := range set {
			children = append(children, c)
		}
		sort.Strings(children)
		closure[name] = children
	}
	return closure
}

// AttributesOf returns the global attributes followed by the tag's own.
func (t *Table) AttributesOf(tag Tag) []string {
	out := make([]string, 0, len(t.Attributes)+len(tag.Attributes))
	out = append(out, t.Attributes...)
	return append(out, tag.Attributes...)
}
