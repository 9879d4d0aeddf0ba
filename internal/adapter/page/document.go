package page

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"

	"postboard/internal/domain/model"
)

// ContainerID is the id of the element that receives the publication blocks.
const ContainerID = "publication-container"

// ErrMissingMountPoint is returned when the host document has no container element.
var ErrMissingMountPoint = errors.New("missing mount point")

// Document is a parsed host page.
type Document struct {
	root *html.Node
}

// ParseDocument parses a host page.
func ParseDocument(r io.Reader) (*Document, error) {
	root, err := html.Parse(r)
	if err != nil {
		return nil, fmt.Errorf("parse host page: %w", err)
	}
	return &Document{root: root}, nil
}

// Mount clears the container and appends one block per card, in order.
func (d *Document) Mount(board model.Board) error {
	container := findByID(d.root, ContainerID)
	if container == nil {
		return fmt.Errorf("%w: no element with id %q", ErrMissingMountPoint, ContainerID)
	}

	for child := container.FirstChild; child != nil; child = container.FirstChild {
		container.RemoveChild(child)
	}

	for _, card := range board.Cards {
		container.AppendChild(cardNode(card))
	}
	return nil
}

// Render writes the document as HTML.
func (d *Document) Render(w io.Writer) error {
	if err := html.Render(w, d.root); err != nil {
		return fmt.Errorf("render host page: %w", err)
	}
	return nil
}

// Cards reads the blocks currently mounted in the container.
func (d *Document) Cards() ([]model.Card, error) {
	container := findByID(d.root, ContainerID)
	if container == nil {
		return nil, fmt.Errorf("%w: no element with id %q", ErrMissingMountPoint, ContainerID)
	}

	cards := make([]model.Card, 0)
	for block := container.FirstChild; block != nil; block = block.NextSibling {
		if !hasClass(block, model.ClassPublication) {
			continue
		}
		var card model.Card
		if icon := findByClass(block, model.ClassPublicationIcon); icon != nil {
			card.IconSrc = attr(icon, "src")
			card.IconAlt = attr(icon, "alt")
		}
		if title := findByClass(block, model.ClassPublicationTitle); title != nil {
			card.Title = textContent(title)
		}
		if body := findByClass(block, model.ClassPublicationBody); body != nil {
			card.Body = textContent(body)
		}
		cards = append(cards, card)
	}
	return cards, nil
}

//	<div class="publication">
//	  <div class="title-container">
//	    <img src="assets/icon.png" alt="Publication Icon" class="publication-icon">
//	    <h2 class="publication-title">title</h2>
//	  </div>
//	  <p class="publication-body">body</p>
//	</div>
func cardNode(card model.Card) *html.Node {
	block := element(atom.Div, model.ClassPublication)

	titleContainer := element(atom.Div, model.ClassTitleContainer)
	icon := element(atom.Img, model.ClassPublicationIcon,
		html.Attribute{Key: "src", Val: card.IconSrc},
		html.Attribute{Key: "alt", Val: card.IconAlt},
	)
	title := element(atom.H2, model.ClassPublicationTitle)
	title.AppendChild(&html.Node{Type: html.TextNode, Data: card.Title})
	titleContainer.AppendChild(icon)
	titleContainer.AppendChild(title)

	body := element(atom.P, model.ClassPublicationBody)
	body.AppendChild(&html.Node{Type: html.TextNode, Data: card.Body})

	block.AppendChild(titleContainer)
	block.AppendChild(body)
	return block
}

func element(a atom.Atom, class string, attrs ...html.Attribute) *html.Node {
	return &html.Node{
		Type:     html.ElementNode,
		DataAtom: a,
		Data:     a.String(),
		Attr:     append(attrs, html.Attribute{Key: "class", Val: class}),
	}
}

func findByID(n *html.Node, id string) *html.Node {
	return find(n, func(n *html.Node) bool { return attr(n, "id") == id })
}

func findByClass(n *html.Node, class string) *html.Node {
	return find(n, func(n *html.Node) bool { return hasClass(n, class) })
}

func find(n *html.Node, match func(*html.Node) bool) *html.Node {
	if n.Type == html.ElementNode && match(n) {
		return n
	}
	for child := n.FirstChild; child != nil; child = child.NextSibling {
		if found := find(child, match); found != nil {
			return found
		}
	}
	return nil
}

func attr(n *html.Node, key string) string {
	for _, a := range n.Attr {
		if a.Namespace == "" && a.Key == key {
			return a.Val
		}
	}
	return ""
}

func hasClass(n *html.Node, class string) bool {
	if n.Type != html.ElementNode {
		return false
	}
	for _, c := range strings.Fields(attr(n, "class")) {
		if c == class {
			return true
		}
	}
	return false
}

func textContent(n *html.Node) string {
	var b strings.Builder
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.TextNode {
			b.WriteString(n.Data)
		}
		for child := n.FirstChild; child != nil; child = child.NextSibling {
			walk(child)
		}
	}
	walk(n)
	return b.String()
}
