package markup

import "testing"

func TestRenderParagraphAndBold(t *testing.T) {
	root := Render("The **third quarter** numbers improved.").Root

	if len(root.Children) != 1 {
		t.Fatalf("children = %d, want 1", len(root.Children))
	}
	p := root.Children[0]
	if p.Type != "paragraph" {
		t.Fatalf("type = %q, want paragraph", p.Type)
	}
	if len(p.Children) != 3 {
		t.Fatalf("inline nodes = %d, want 3", len(p.Children))
	}
	if p.Children[0].Text != "The " || p.Children[0].Format != 0 {
		t.Errorf("leading text wrong: %+v", p.Children[0])
	}
	if p.Children[1].Text != "third quarter" || p.Children[1].Format != FormatBold {
		t.Errorf("bold span wrong: %+v", p.Children[1])
	}
	if p.Children[2].Text != " numbers improved." {
		t.Errorf("trailing text wrong: %+v", p.Children[2])
	}
}

func TestRenderHeadings(t *testing.T) {
	root := Render("## Summary\n### Details").Root

	if len(root.Children) != 2 {
		t.Fatalf("children = %d, want 2", len(root.Children))
	}
	if root.Children[0].Tag != "h2" {
		t.Errorf("tag = %q, want h2", root.Children[0].Tag)
	}
	if root.Children[1].Tag != "h3" {
		t.Errorf("tag = %q, want h3", root.Children[1].Tag)
	}
}

func TestRenderLists(t *testing.T) {
	root := Render("- first\n- second\n\n1. one\n2. two").Root

	if len(root.Children) != 2 {
		t.Fatalf("children = %d, want 2", len(root.Children))
	}

	bullets := root.Children[0]
	if bullets.Type != "list" || bullets.ListType != "bullet" {
		t.Fatalf("first block = %+v, want bullet list", bullets)
	}
	if len(bullets.Children) != 2 {
		t.Errorf("bullet items = %d, want 2", len(bullets.Children))
	}

	numbered := root.Children[1]
	if numbered.ListType != "number" {
		t.Fatalf("second block = %+v, want numbered list", numbered)
	}
	if numbered.Children[1].Value != 2 {
		t.Errorf("second item value = %d, want 2", numbered.Children[1].Value)
	}
}

func TestRenderCodeBlock(t *testing.T) {
	root := Render("```go\nfmt.Println(1)\n```").Root

	if len(root.Children) != 1 {
		t.Fatalf("children = %d, want 1", len(root.Children))
	}
	code := root.Children[0]
	if code.Type != "code" || code.Language != "go" {
		t.Fatalf("node = %+v, want go code block", code)
	}
	if code.Children[0].Text != "fmt.Println(1)" {
		t.Errorf("body = %q", code.Children[0].Text)
	}
}

func TestRenderUnclosedFence(t *testing.T) {
	root := Render("```\nfirst\nsecond").Root

	if len(root.Children) != 1 {
		t.Fatalf("children = %d, want 1", len(root.Children))
	}
	if root.Children[0].Children[0].Text != "first\nsecond" {
		t.Errorf("body = %q, want remainder of text", root.Children[0].Children[0].Text)
	}
}

func TestRenderUnbalancedInlineMarkers(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{name: "dangling bold", input: "this **never closes"},
		{name: "dangling backtick", input: "code ` span"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			root := Render(tt.input).Root
			p := root.Children[0]
			// Unmatched markers stay literal in a single text node.
			if len(p.Children) != 1 {
				t.Fatalf("inline nodes = %d, want 1", len(p.Children))
			}
			if p.Children[0].Text != tt.input || p.Children[0].Format != 0 {
				t.Errorf("node = %+v, want literal text", p.Children[0])
			}
		})
	}
}

func TestRenderMultiLineParagraph(t *testing.T) {
	root := Render("first line\nsecond line").Root

	if len(root.Children) != 1 {
		t.Fatalf("children = %d, want 1", len(root.Children))
	}
	if root.Children[0].Children[0].Text != "first line second line" {
		t.Errorf("text = %q, want joined lines", root.Children[0].Children[0].Text)
	}
}

func TestRenderEmojiPassthrough(t *testing.T) {
	root := Render("💭 **Analysis:** thinking").Root

	p := root.Children[0]
	if p.Children[0].Text != "💭 " {
		t.Errorf("emoji not preserved: %q", p.Children[0].Text)
	}
	if p.Children[1].Text != "Analysis:" || p.Children[1].Format != FormatBold {
		t.Errorf("bold label wrong: %+v", p.Children[1])
	}
}

func TestRenderEmpty(t *testing.T) {
	root := Render("").Root
	if len(root.Children) != 0 {
		t.Errorf("children = %d, want 0", len(root.Children))
	}
	if root.Type != "root" {
		t.Errorf("type = %q, want root", root.Type)
	}
}
