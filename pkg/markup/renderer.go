package markup

import "strings"

// Render translates the answer dialect (doubled-asterisk bold, ##/###
// headings, fenced and inline code, bullet and numbered list lines, emoji
// glyphs) into a structural node tree. It is a pure, total function of the
// text: unbalanced or absent markup degrades to plain paragraphs, never an
// error.
func Render(text string) Root {
	lines := strings.Split(text, "\n")
	root := Node{Type: "root", Version: nodeVersion}

	i := 0
	for i < len(lines) {
		line := lines[i]
		trimmed := strings.TrimSpace(line)

		switch {
		case trimmed == "":
			i++

		case strings.HasPrefix(trimmed, "```"):
			node, next := renderCodeBlock(lines, i)
			root.Children = append(root.Children, node)
			i = next

		case strings.HasPrefix(trimmed, "### "):
			root.Children = append(root.Children, Node{
				Type:     "heading",
				Version:  nodeVersion,
				Tag:      "h3",
				Children: renderInline(strings.TrimPrefix(trimmed, "### ")),
			})
			i++

		case strings.HasPrefix(trimmed, "## "):
			root.Children = append(root.Children, Node{
				Type:     "heading",
				Version:  nodeVersion,
				Tag:      "h2",
				Children: renderInline(strings.TrimPrefix(trimmed, "## ")),
			})
			i++

		case isBulletLine(trimmed):
			node, next := renderList(lines, i, "bullet")
			root.Children = append(root.Children, node)
			i = next

		case isNumberedLine(trimmed):
			node, next := renderList(lines, i, "number")
			root.Children = append(root.Children, node)
			i = next

		default:
			node, next := renderParagraph(lines, i)
			root.Children = append(root.Children, node)
			i = next
		}
	}

	return Root{Root: root}
}

func isBulletLine(line string) bool {
	return strings.HasPrefix(line, "- ") || strings.HasPrefix(line, "* ")
}

func isNumberedLine(line string) bool {
	dot := strings.Index(line, ". ")
	if dot <= 0 {
		return false
	}
	for _, r := range line[:dot] {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

// renderCodeBlock consumes a fenced block. A fence that never closes still
// renders: everything to the end of the text becomes the code body.
func renderCodeBlock(lines []string, start int) (Node, int) {
	language := strings.TrimSpace(strings.TrimPrefix(strings.TrimSpace(lines[start]), "```"))

	var body []string
	i := start + 1
	for i < len(lines) {
		if strings.TrimSpace(lines[i]) == "```" {
			i++
			break
		}
		body = append(body, lines[i])
		i++
	}

	return Node{
		Type:     "code",
		Version:  nodeVersion,
		Language: language,
		Children: []Node{{Type: "text", Version: nodeVersion, Text: strings.Join(body, "\n")}},
	}, i
}

// renderList consumes the run of consecutive list lines of one type.
func renderList(lines []string, start int, listType string) (Node, int) {
	list := Node{Type: "list", Version: nodeVersion, ListType: listType, Start: 1}

	i := start
	value := 1
	for i < len(lines) {
		trimmed := strings.TrimSpace(lines[i])
		var content string
		switch listType {
		case "bullet":
			if !isBulletLine(trimmed) {
				return list, i
			}
			content = trimmed[2:]
		case "number":
			if !isNumberedLine(trimmed) {
				return list, i
			}
			content = trimmed[strings.Index(trimmed, ". ")+2:]
		}

		list.Children = append(list.Children, Node{
			Type:     "listitem",
			Version:  nodeVersion,
			Value:    value,
			Children: renderInline(content),
		})
		value++
		i++
	}
	return list, i
}

// renderParagraph consumes consecutive plain lines into one paragraph,
// joined by spaces.
func renderParagraph(lines []string, start int) (Node, int) {
	var parts []string
	i := start
	for i < len(lines) {
		trimmed := strings.TrimSpace(lines[i])
		if trimmed == "" || strings.HasPrefix(trimmed, "```") ||
			strings.HasPrefix(trimmed, "## ") || strings.HasPrefix(trimmed, "### ") ||
			isBulletLine(trimmed) || isNumberedLine(trimmed) {
			break
		}
		parts = append(parts, trimmed)
		i++
	}

	return Node{
		Type:     "paragraph",
		Version:  nodeVersion,
		Children: renderInline(strings.Join(parts, " ")),
	}, i
}

// renderInline splits a line into text nodes, honoring **bold** and `code`
// spans. An unmatched marker is kept as literal text.
func renderInline(text string) []Node {
	var nodes []Node
	var plain strings.Builder

	flush := func() {
		if plain.Len() > 0 {
			nodes = append(nodes, Node{Type: "text", Version: nodeVersion, Text: plain.String()})
			plain.Reset()
		}
	}

	i := 0
	for i < len(text) {
		switch {
		case strings.HasPrefix(text[i:], "**"):
			end := strings.Index(text[i+2:], "**")
			if end < 0 {
				plain.WriteString(text[i:])
				i = len(text)
				continue
			}
			flush()
			nodes = append(nodes, Node{
				Type:    "text",
				Version: nodeVersion,
				Text:    text[i+2 : i+2+end],
				Format:  FormatBold,
			})
			i += end + 4

		case text[i] == '`':
			end := strings.IndexByte(text[i+1:], '`')
			if end < 0 {
				plain.WriteString(text[i:])
				i = len(text)
				continue
			}
			flush()
			nodes = append(nodes, Node{
				Type:    "text",
				Version: nodeVersion,
				Text:    text[i+1 : i+1+end],
				Format:  FormatCode,
			})
			i += end + 2

		default:
			plain.WriteByte(text[i])
			i++
		}
	}
	flush()

	if nodes == nil {
		nodes = []Node{{Type: "text", Version: nodeVersion}}
	}
	return nodes
}
