package guide

import "gopkg.in/yaml.v3"

// mergeNodes overlays over on base and returns a new tree; neither input is
// modified. Mappings merge key by key, sequences of equal length merge
// element-wise, anything else is replaced by over.
func mergeNodes(base, over *yaml.Node) *yaml.Node {
	base, over = unwrapDocument(base), unwrapDocument(over)
	switch {
	case over == nil:
		return base
	case base == nil:
		return over
	}

	switch {
	case base.Kind == yaml.MappingNode && over.Kind == yaml.MappingNode:
		out := *base
		out.Content = append([]*yaml.Node(nil), base.Content...)
		for i := 0; i+1 < len(over.Content); i += 2 {
			key, val := over.Content[i], over.Content[i+1]
			if idx := mappingIndex(&out, key.Value); idx >= 0 {
				out.Content[idx+1] = mergeNodes(out.Content[idx+1], val)
				continue
			}
			out.Content = append(out.Content, key, val)
		}
		return &out

	case base.Kind == yaml.SequenceNode && over.Kind == yaml.SequenceNode && len(base.Content) == len(over.Content):
		out := *base
		out.Content = make([]*yaml.Node, len(base.Content))
		for i := range base.Content {
			out.Content[i] = mergeNodes(base.Content[i], over.Content[i])
		}
		return &out
	}

	return over
}

func unwrapDocument(n *yaml.Node) *yaml.Node {
	if n != nil && n.Kind == yaml.DocumentNode && len(n.Content) > 0 {
		return n.Content[0]
	}
	return n
}

func mappingIndex(n *yaml.Node, key string) int {
	for i := 0; i+1 < len(n.Content); i += 2 {
		if n.Content[i].Value == key {
			return i
		}
	}
	return -1
}
