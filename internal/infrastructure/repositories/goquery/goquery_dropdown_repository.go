package goquery

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"

	"github.com/rios0rios0/docversions/internal/domain/entities"
	"github.com/rios0rios0/docversions/internal/domain/repositories"
)

// GoqueryDropdownRepository implements repositories.DropdownRepository by
// parsing the page into a DOM, rewriting the dropdown and rendering it back.
type GoqueryDropdownRepository struct{}

// NewGoqueryDropdownRepository creates a new goquery dropdown repository.
func NewGoqueryDropdownRepository() repositories.DropdownRepository {
	return &GoqueryDropdownRepository{}
}

// Populate clears the next sibling of the anchor element and appends one
// `li > a > code` item per version, in order.
func (r *GoqueryDropdownRepository) Populate(
	page string,
	dropdown entities.DropdownSettings,
	versions entities.VersionList,
) (string, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(page))
	if err != nil {
		return "", fmt.Errorf("failed to parse HTML: %w", err)
	}

	container, err := findContainer(doc, dropdown.AnchorID)
	if err != nil {
		return "", err
	}

	container.Empty()
	for _, entry := range versions.Entries(dropdown.HrefPattern) {
		container.AppendNodes(newItem(entry, dropdown.LinkClass))
	}

	var buf bytes.Buffer
	if renderErr := html.Render(&buf, doc.Nodes[0]); renderErr != nil {
		return "", fmt.Errorf("failed to render HTML: %w", renderErr)
	}
	return buf.String(), nil
}

// findContainer returns the element right after the one whose id is anchorID.
// The id is compared literally so it needs no CSS escaping.
func findContainer(doc *goquery.Document, anchorID string) (*goquery.Selection, error) {
	selector := "#" + anchorID

	anchor := doc.Find("[id]").FilterFunction(func(_ int, sel *goquery.Selection) bool {
		id, _ := sel.Attr("id")
		return id == anchorID
	}).First()
	if anchor.Length() == 0 {
		return nil, &entities.ElementNotFoundError{Selector: selector, Reason: "is missing"}
	}

	container := anchor.Next()
	if container.Length() == 0 {
		return nil, &entities.ElementNotFoundError{Selector: selector, Reason: "has no next sibling element"}
	}
	return container, nil
}

// newItem builds <li><a class="..." href="..."><code>version</code></a></li>.
func newItem(entry entities.VersionEntry, linkClass string) *html.Node {
	code := newElement(atom.Code)
	code.AppendChild(&html.Node{Type: html.TextNode, Data: entry.Version})

	attrs := make([]html.Attribute, 0, 2) //nolint:mnd // class and href
	if linkClass != "" {
		attrs = append(attrs, html.Attribute{Key: "class", Val: linkClass})
	}
	attrs = append(attrs, html.Attribute{Key: "href", Val: entry.Href})

	link := newElement(atom.A, attrs...)
	link.AppendChild(code)

	item := newElement(atom.Li)
	item.AppendChild(link)
	return item
}

func newElement(a atom.Atom, attrs ...html.Attribute) *html.Node {
	return &html.Node{
		Type:     html.ElementNode,
		DataAtom: a,
		Data:     a.String(),
		Attr:     attrs,
	}
}
