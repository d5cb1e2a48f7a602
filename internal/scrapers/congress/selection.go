package congress

import (
	"bytes"
	"io"

	"congress-scraper/pkg/htmlutil"

	"github.com/PuerkitoBio/goquery"
)

// Selection is the subset of tree selection the listing parser needs, it keeps
// the extraction rules independent of the markup library.
type Selection interface {
	// Find selects the descendants matching selector.
	Find(selector string) Selection
	// Children selects the direct children matching selector.
	Children(selector string) Selection
	Parent() Selection
	// Next selects the next element sibling.
	Next() Selection
	Each(fn func(i int, s Selection))
	Text() string
	Attr(name string) (string, bool)
	Len() int
}

type goquerySelection struct {
	sel *goquery.Selection
}

// NewSelection wraps a goquery selection.
func NewSelection(sel *goquery.Selection) Selection {
	return goquerySelection{sel: sel}
}

// LoadHTML parses r into a document and selects its root.
func LoadHTML(r io.Reader) (Selection, error) {
	doc, err := goquery.NewDocumentFromReader(r)
	if err != nil {
		return nil, err
	}
	return goquerySelection{sel: doc.Selection}, nil
}

// LoadHTMLString is LoadHTML for an in-memory document.
func LoadHTMLString(html string) (Selection, error) {
	return LoadHTML(bytes.NewBufferString(html))
}

func (g goquerySelection) Find(selector string) Selection {
	return goquerySelection{sel: g.sel.Find(selector)}
}

func (g goquerySelection) Children(selector string) Selection {
	return goquerySelection{sel: g.sel.ChildrenFiltered(selector)}
}

func (g goquerySelection) Parent() Selection {
	return goquerySelection{sel: g.sel.Parent()}
}

func (g goquerySelection) Next() Selection {
	return goquerySelection{sel: g.sel.Next()}
}

func (g goquerySelection) Each(fn func(i int, s Selection)) {
	g.sel.Each(func(i int, s *goquery.Selection) {
		fn(i, goquerySelection{sel: s})
	})
}

func (g goquerySelection) Text() string {
	var out bytes.Buffer
	for _, node := range g.sel.Nodes {
		out.WriteString(htmlutil.GetText(node))
	}
	return out.String()
}

func (g goquerySelection) Attr(name string) (string, bool) {
	return g.sel.Attr(name)
}

func (g goquerySelection) Len() int {
	return g.sel.Length()
}
