package querynode

import "fmt"

// Format renders a single node as one postfix-output token, in the
// manner of the teacher's prettyprinter: compact, human-readable, and
// meant for test snapshots and CLI output rather than round-tripping.
func Format(n Node) string {
	switch v := n.(type) {
	case Operator:
		return string(v.Kind)
	case Leaf:
		return formatLeaf(v)
	default:
		return fmt.Sprintf("%v", n)
	}
}

func formatLeaf(l Leaf) string {
	switch l.Kind {
	case KindWord:
		return fmt.Sprintf("Word(%q)", l.Text)
	case KindMatchEverything:
		return "MatchEverything"
	case KindMatchNothing:
		return "MatchNothing"
	case KindExtension:
		if !l.HasText {
			return "Extension(none)"
		}
		return fmt.Sprintf("Extension(%q)", l.Text)
	case KindContentType:
		return fmt.Sprintf("ContentType(%q)", l.Text)
	case KindParent:
		return fmt.Sprintf("Parent(%q)", l.Text)
	case KindSize, KindDepth, KindChildCount, KindChildFileCount, KindChildFolderCount, KindDateModified:
		return fmt.Sprintf("%s(%d,%d,%s)", l.Kind, l.Start, l.End, l.Comparison)
	default:
		return string(l.Kind)
	}
}

// FormatAll renders a postfix node list as a single space-separated line.
func FormatAll(nodes []Node) string {
	out := ""
	for i, n := range nodes {
		if i > 0 {
			out += " "
		}
		out += Format(n)
	}
	return out
}
