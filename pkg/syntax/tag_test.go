package syntax_test

import (
	"context"
	"errors"
	"testing"

	"github.com/yaklabco/taglint/pkg/parser/tagscan"
	"github.com/yaklabco/taglint/pkg/syntax"
)

// parseFirstTag parses src and resolves its first tag node.
func parseFirstTag(t *testing.T, src string) *syntax.Tag {
	t.Helper()

	file, err := tagscan.New().Parse(context.Background(), "test.html", []byte(src))
	if err != nil {
		t.Fatalf("parse %q: %v", src, err)
	}

	node := syntax.FindFirst(file.Root, func(n *syntax.Node) bool { return n.IsTag() })
	if node == nil {
		t.Fatalf("no tag node found in %q", src)
	}

	tag, err := syntax.ResolveTag(node)
	if err != nil {
		t.Fatalf("ResolveTag for %q: %v", src, err)
	}
	return tag
}

func TestResolveTag_Kinds(t *testing.T) {
	tests := []struct {
		src  string
		kind syntax.NodeKind
		name string
	}{
		{"<div>", syntax.NodeOpeningTag, "div"},
		{"<div class=\"x\">", syntax.NodeOpeningTag, "div"},
		{"<br/>", syntax.NodeSelfClosingTag, "br"},
		{"<br />", syntax.NodeSelfClosingTag, "br"},
		{"</div>", syntax.NodeClosingTag, "div"},
		{"</ div>", syntax.NodeClosingTag, "div"},
		{"<>", syntax.NodeOpeningTag, ""},
		{"</>", syntax.NodeClosingTag, ""},
	}

	for _, tt := range tests {
		t.Run(tt.src, func(t *testing.T) {
			tag := parseFirstTag(t, tt.src)
			if tag.Kind != tt.kind {
				t.Errorf("kind = %v, want %v", tag.Kind, tt.kind)
			}
			if tag.Name() != tt.name {
				t.Errorf("Name() = %q, want %q", tag.Name(), tt.name)
			}
		})
	}
}

func TestTag_Delimiters(t *testing.T) {
	tag := parseFirstTag(t, "<br/>")

	content := []byte("<br/>")
	if got := string(tag.OpenBracket().Text(content)); got != "<" {
		t.Errorf("OpenBracket() = %q, want <", got)
	}
	if got := string(tag.CloseBracket().Text(content)); got != ">" {
		t.Errorf("CloseBracket() = %q, want >", got)
	}

	slash, ok := tag.SlashToken()
	if !ok {
		t.Fatal("SlashToken() not found for self-closing tag")
	}
	if got := string(slash.Text(content)); got != "/" {
		t.Errorf("SlashToken() = %q, want /", got)
	}

	opening := parseFirstTag(t, "<div>")
	if _, ok := opening.SlashToken(); ok {
		t.Error("opening tag should have no slash token")
	}
}

func TestTag_ClosingSlashAdjacency(t *testing.T) {
	t.Run("self-closing pairs slash and close bracket", func(t *testing.T) {
		tag := parseFirstTag(t, "<br/ >")
		adj, ok := tag.ClosingSlashAdjacency()
		if !ok {
			t.Fatal("expected adjacency for self-closing tag")
		}
		if got := string(adj.Trivia()); got != " " {
			t.Errorf("trivia = %q, want single space", got)
		}
	})

	t.Run("closing pairs open bracket and slash", func(t *testing.T) {
		tag := parseFirstTag(t, "< /div>")
		adj, ok := tag.ClosingSlashAdjacency()
		if !ok {
			t.Fatal("expected adjacency for closing tag")
		}
		if got := string(adj.Trivia()); got != " " {
			t.Errorf("trivia = %q, want single space", got)
		}
	})

	t.Run("opening tag has none", func(t *testing.T) {
		tag := parseFirstTag(t, "<div>")
		if _, ok := tag.ClosingSlashAdjacency(); ok {
			t.Error("opening tag should have no closing-slash adjacency")
		}
	})
}

func TestTag_AfterOpeningAdjacency(t *testing.T) {
	t.Run("opening tag pairs bracket and name", func(t *testing.T) {
		tag := parseFirstTag(t, "<  div>")
		adj := tag.AfterOpeningAdjacency()
		if got := string(adj.Trivia()); got != "  " {
			t.Errorf("trivia = %q, want two spaces", got)
		}
		if adj.Later.Kind != syntax.TokName {
			t.Errorf("later token kind = %v, want TokName", adj.Later.Kind)
		}
	})

	t.Run("closing tag pairs slash and name", func(t *testing.T) {
		tag := parseFirstTag(t, "</ div>")
		adj := tag.AfterOpeningAdjacency()
		if adj.Earlier.Kind != syntax.TokSlash {
			t.Errorf("earlier token kind = %v, want TokSlash", adj.Earlier.Kind)
		}
		if got := string(adj.Trivia()); got != " " {
			t.Errorf("trivia = %q, want single space", got)
		}
	})

	t.Run("gap before slash belongs to closing-slash boundary", func(t *testing.T) {
		tag := parseFirstTag(t, "< /div>")
		adj := tag.AfterOpeningAdjacency()
		if len(adj.Trivia()) != 0 {
			t.Errorf("trivia = %q, want empty: the gap sits before the slash", adj.Trivia())
		}
	})
}

func TestTag_BeforeSelfClosingAdjacency(t *testing.T) {
	t.Run("no attributes pairs name and slash", func(t *testing.T) {
		tag := parseFirstTag(t, "<br />")
		adj, ok := tag.BeforeSelfClosingAdjacency()
		if !ok {
			t.Fatal("expected adjacency")
		}
		if adj.Earlier.Kind != syntax.TokName {
			t.Errorf("earlier kind = %v, want TokName", adj.Earlier.Kind)
		}
		if !adj.IsSingleSpace() {
			t.Error("expected single-space gap")
		}
	})

	t.Run("with attributes pairs last attribute and slash", func(t *testing.T) {
		tag := parseFirstTag(t, `<img src="x"/>`)
		adj, ok := tag.BeforeSelfClosingAdjacency()
		if !ok {
			t.Fatal("expected adjacency")
		}
		if adj.Earlier.Kind != syntax.TokString {
			t.Errorf("earlier kind = %v, want TokString", adj.Earlier.Kind)
		}
		if adj.Gap().HasWhitespace {
			t.Error("expected no gap")
		}
	})

	t.Run("non-self-closing tags have none", func(t *testing.T) {
		for _, src := range []string{"<div>", "</div>"} {
			tag := parseFirstTag(t, src)
			if _, ok := tag.BeforeSelfClosingAdjacency(); ok {
				t.Errorf("%q should have no before-self-closing adjacency", src)
			}
		}
	})
}

func TestTag_BeforeClosingAdjacency(t *testing.T) {
	t.Run("opening tag", func(t *testing.T) {
		tag := parseFirstTag(t, "<div >")
		adj, ok := tag.BeforeClosingAdjacency()
		if !ok {
			t.Fatal("expected adjacency")
		}
		if !adj.IsSingleSpace() {
			t.Error("expected single-space gap")
		}
	})

	t.Run("closing tag", func(t *testing.T) {
		tag := parseFirstTag(t, "</div >")
		adj, ok := tag.BeforeClosingAdjacency()
		if !ok {
			t.Fatal("expected adjacency")
		}
		if !adj.Gap().HasWhitespace {
			t.Error("expected whitespace gap")
		}
	})

	t.Run("self-closing tag has none", func(t *testing.T) {
		tag := parseFirstTag(t, "<br />")
		if _, ok := tag.BeforeClosingAdjacency(); ok {
			t.Error("self-closing tag should have no before-closing adjacency")
		}
	})
}

func TestTag_LastContentToken(t *testing.T) {
	tests := []struct {
		src      string
		wantKind syntax.TokenKind
	}{
		{"<div>", syntax.TokName},
		{`<div class="x">`, syntax.TokString},
		{"<br/>", syntax.TokName},
		{"</div>", syntax.TokName},
		{"<>", syntax.TokOpenBracket},
	}

	for _, tt := range tests {
		t.Run(tt.src, func(t *testing.T) {
			tag := parseFirstTag(t, tt.src)
			if got := tag.LastContentToken().Kind; got != tt.wantKind {
				t.Errorf("LastContentToken().Kind = %v, want %v", got, tt.wantKind)
			}
		})
	}
}

func TestResolveTag_Malformed(t *testing.T) {
	t.Run("nil node", func(t *testing.T) {
		_, err := syntax.ResolveTag(nil)
		if !errors.Is(err, syntax.ErrMalformedTag) {
			t.Errorf("error = %v, want ErrMalformedTag", err)
		}
	})

	t.Run("non-tag node", func(t *testing.T) {
		file := syntax.NewFile("test.html", []byte("text"))
		node := &syntax.Node{Kind: syntax.NodeText, FirstToken: -1, LastToken: -1, File: file}
		_, err := syntax.ResolveTag(node)
		if !errors.Is(err, syntax.ErrMalformedTag) {
			t.Errorf("error = %v, want ErrMalformedTag", err)
		}
	})

	t.Run("tag node without tokens", func(t *testing.T) {
		file := syntax.NewFile("test.html", []byte(""))
		node := &syntax.Node{Kind: syntax.NodeOpeningTag, FirstToken: -1, LastToken: -1, File: file}
		_, err := syntax.ResolveTag(node)
		if !errors.Is(err, syntax.ErrMalformedTag) {
			t.Errorf("error = %v, want ErrMalformedTag", err)
		}
	})
}
