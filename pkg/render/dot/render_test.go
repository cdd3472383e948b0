package dot

import (
	"bytes"
	"context"
	"testing"

	"github.com/goccy/go-graphviz"

	"github.com/matzehuels/modgraph/pkg/depgraph"
	"github.com/matzehuels/modgraph/pkg/errors"
)

func TestEmptyGraphParses(t *testing.T) {
	ctx := context.Background()
	gv, err := graphviz.New(ctx)
	if err != nil {
		t.Fatalf("graphviz.New() error: %v", err)
	}
	defer gv.Close()

	src := FromGraph(depgraph.New(nil), Options{})
	g, err := graphviz.ParseBytes([]byte(src))
	if err != nil {
		t.Fatalf("ParseBytes() error: %v\n%s", err, src)
	}
	defer g.Close()
}

func TestDigitClusterParses(t *testing.T) {
	b := NewBuffer(BufferOptions{Cluster: true, MaxClusterSize: 10, Target: "app"})
	b.AddNode("1lib.a", nil)
	b.AddNode("1lib.b", nil)
	b.AddRule("1lib.a", "1lib.b", nil)
	src := b.String()

	g, err := graphviz.ParseBytes([]byte(src))
	if err != nil {
		t.Fatalf("ParseBytes() error: %v\n%s", err, src)
	}
	defer g.Close()
}

func TestRender_SVG(t *testing.T) {
	g := buildGraph(t, map[string][]string{
		"app":      {"app.core", "my-lib"},
		"app.core": {"graph"},
	}, nil)

	svg, err := Render(context.Background(), FromGraph(g, Options{}), FormatSVG)
	if err != nil {
		t.Fatalf("Render() error: %v", err)
	}
	if !bytes.Contains(svg, []byte("<svg")) {
		t.Errorf("Render() output is not SVG: %.200s", svg)
	}
	if !bytes.Contains(svg, []byte(`viewBox="0 0 `)) {
		t.Errorf("Render() viewBox not normalized: %.300s", svg)
	}
}

func TestRender_PNG(t *testing.T) {
	g := buildGraph(t, map[string][]string{"a": {"b"}}, nil)
	png, err := Render(context.Background(), FromGraph(g, Options{}), FormatPNG)
	if err != nil {
		t.Fatalf("Render() error: %v", err)
	}
	if !bytes.HasPrefix(png, []byte("\x89PNG")) {
		t.Errorf("Render() output is not PNG: % x", png[:min(8, len(png))])
	}
}

func TestRender_UnknownFormat(t *testing.T) {
	_, err := Render(context.Background(), "digraph G {}", "pdf")
	if !errors.Is(err, errors.ErrCodeInvalidFormat) {
		t.Errorf("Render(pdf) error = %v, want ErrCodeInvalidFormat", err)
	}
}

func TestNormalizeViewBox(t *testing.T) {
	tests := []struct {
		name string
		svg  string
		want string
	}{
		{
			name: "with viewBox",
			svg:  `<svg viewBox="10 20 800 600" xmlns="http://www.w3.org/2000/svg">content</svg>`,
			want: `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 800.00 600.00" width="800" height="600">content</svg>`,
		},
		{
			name: "no viewBox",
			svg:  `<svg xmlns="http://www.w3.org/2000/svg">content</svg>`,
			want: `<svg xmlns="http://www.w3.org/2000/svg">content</svg>`,
		},
		{
			name: "zero dimensions",
			svg:  `<svg viewBox="0 0 0 0">content</svg>`,
			want: `<svg viewBox="0 0 0 0">content</svg>`,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := string(normalizeViewBox([]byte(tt.svg))); got != tt.want {
				t.Errorf("normalizeViewBox() = %q, want %q", got, tt.want)
			}
		})
	}
}
