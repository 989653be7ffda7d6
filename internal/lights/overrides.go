package lights

import (
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
)

// ApplyOverrides patches o with key=value pairs. Keys use the YAML field
// names, with dots for nesting (colors.roadColor=0x101010). Values are YAML,
// so ranges are written as [min, max]. The result is validated.
func (o *Options) ApplyOverrides(overrides []string) error {
	if len(overrides) == 0 {
		return nil
	}
	root := &yaml.Node{Kind: yaml.MappingNode}
	for _, kv := range overrides {
		key, raw, ok := strings.Cut(kv, "=")
		if !ok || key == "" {
			return fmt.Errorf("override %q: expected key=value", kv)
		}
		var doc yaml.Node
		if err := yaml.Unmarshal([]byte(raw), &doc); err != nil {
			return fmt.Errorf("override %q: %w", kv, err)
		}
		if len(doc.Content) == 0 {
			return fmt.Errorf("override %q: empty value", kv)
		}
		parts := strings.Split(key, ".")
		node := root
		for _, p := range parts[:len(parts)-1] {
			node = mappingChild(node, p)
		}
		node.Content = append(node.Content,
			&yaml.Node{Kind: yaml.ScalarNode, Value: parts[len(parts)-1]},
			doc.Content[0],
		)
	}
	patched := *o
	if err := root.Decode(&patched); err != nil {
		return fmt.Errorf("failed to apply overrides: %w", err)
	}
	if err := patched.Validate(); err != nil {
		return fmt.Errorf("invalid options: %w", err)
	}
	*o = patched
	return nil
}

func mappingChild(m *yaml.Node, key string) *yaml.Node {
	for i := 0; i+1 < len(m.Content); i += 2 {
		if m.Content[i].Value == key && m.Content[i+1].Kind == yaml.MappingNode {
			return m.Content[i+1]
		}
	}
	child := &yaml.Node{Kind: yaml.MappingNode}
	m.Content = append(m.Content, &yaml.Node{Kind: yaml.ScalarNode, Value: key}, child)
	return child
}
