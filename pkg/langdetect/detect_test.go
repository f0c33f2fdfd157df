package langdetect

import "testing"

func TestDetect_ByExtension(t *testing.T) {
	tests := []struct {
		name    string
		path    string
		content string
		want    string
	}{
		{"html file", "index.html", "<p>hi</p>", DialectHTML},
		{"htm file", "legacy.htm", "<p>hi</p>", DialectHTML},
		{"xml file", "data.xml", "<root/>", DialectXML},
		{"svg maps to xml", "icon.svg", "<svg></svg>", DialectXML},
		{"jsx with tags", "app.jsx", "const x = <div/>;", DialectJSX},
		{"tsx with tags", "app.tsx", "const x = <div/>;", DialectJSX},
		{"js without tags", "plain.js", "const x = 1;", DialectUnknown},
		{"vue component", "App.vue", "<template><div/></template>", DialectVue},
		{"svelte component", "App.svelte", "<div/>", DialectSvelte},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Detect(tt.path, []byte(tt.content))
			if got != tt.want {
				t.Errorf("Detect(%q) = %q, want %q", tt.path, got, tt.want)
			}
		})
	}
}

func TestDetect_ByContent(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    string
	}{
		{"xml declaration", "<?xml version=\"1.0\"?>\n<root/>", DialectXML},
		{"doctype", "<!DOCTYPE html>\n<p>hi</p>", DialectHTML},
		{"html element", "<html lang=\"en\"><p>hi</p></html>", DialectHTML},
		{"body element", "<body>\n<p>hi</p>\n</body>", DialectHTML},
		{"tag density", "<item>1</item>\n<item>2</item>\n<item>3</item>", DialectXML},
		{"prose", "once upon a time\nthere was a file\nwith no tags", DialectUnknown},
		{"empty", "", DialectUnknown},
		{"comparison operators", "a < b\nb > c", DialectUnknown},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Extensionless paths force the content tiers.
			got := Detect("README", []byte(tt.content))
			if got != tt.want {
				t.Errorf("Detect = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestIsMarkup(t *testing.T) {
	if !IsMarkup("index.html", []byte("<p>hi</p>")) {
		t.Error("html file not recognized as markup")
	}
	if IsMarkup("notes.txt", []byte("plain text")) {
		t.Error("plain text misclassified as markup")
	}
}

func TestMarkupExtensions(t *testing.T) {
	exts := MarkupExtensions()
	seen := make(map[string]bool, len(exts))
	for _, ext := range exts {
		if ext == "" || ext[0] != '.' {
			t.Errorf("extension %q missing leading dot", ext)
		}
		if seen[ext] {
			t.Errorf("duplicate extension %q", ext)
		}
		seen[ext] = true
	}
	for _, want := range []string{".html", ".xml", ".jsx", ".vue", ".svelte"} {
		if !seen[want] {
			t.Errorf("missing extension %q", want)
		}
	}
}

func TestHasMarkupExtension(t *testing.T) {
	tests := []struct {
		path string
		want bool
	}{
		{"index.html", true},
		{"INDEX.HTML", true},
		{"icon.svg", true},
		{"app.tsx", true},
		{"main.go", false},
		{"README", false},
		{"archive.html.bak", false},
	}

	for _, tt := range tests {
		if got := HasMarkupExtension(tt.path); got != tt.want {
			t.Errorf("HasMarkupExtension(%q) = %v, want %v", tt.path, got, tt.want)
		}
	}
}

func TestHasTagContent(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    bool
	}{
		{"tag", "let a = <div/>;", true},
		{"no brackets", "let a = 1;", false},
		{"open only", "if (a < b) {}", false},
		{"close before open", "a > b && b < c", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := hasTagContent([]byte(tt.content)); got != tt.want {
				t.Errorf("hasTagContent(%q) = %v, want %v", tt.content, got, tt.want)
			}
		})
	}
}
