package jobposting

import (
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"

	"github.com/artem13815/resume-optimizer/pkg/nlp"
)

var skipped = map[atom.Atom]bool{
	atom.Script:   true,
	atom.Style:    true,
	atom.Noscript: true,
	atom.Template: true,
}

// HTMLToText сводит документ к однострочному видимому тексту и возвращает
// заодно заголовок страницы.
func HTMLToText(doc string) (text, title string) {
	doc = strings.ToValidUTF8(doc, "\uFFFD")
	root, err := html.Parse(strings.NewReader(doc))
	if err != nil {
		return nlp.NormalizeText(doc), ""
	}
	var b strings.Builder
	var walk func(n *html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode {
			if n.DataAtom == atom.Title && title == "" {
				title = nlp.NormalizeText(nodeText(n))
			}
			if skipped[n.DataAtom] {
				return
			}
		}
		if n.Type == html.TextNode {
			b.WriteString(n.Data)
			b.WriteByte(' ')
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(root)
	return nlp.NormalizeText(b.String()), title
}

func nodeText(n *html.Node) string {
	var b strings.Builder
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if c.Type == html.TextNode {
			b.WriteString(c.Data)
		}
	}
	return b.String()
}
