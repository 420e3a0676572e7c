/*
Package html extracts the textual content of HTML fragments into text buffers,
ready for segmentation.
*/
package html

import (
	"io"

	"github.com/npillmayer/striter"
	"golang.org/x/net/html"
)

// InnerText creates a text buffer for the textual content of an HTML element and all
// its descendents. It resembles the text produced by
//
//	document.getElementById("myNode").innerText
//
// in JavaScript (except that html.InnerText cannot respect CSS styling suppressing
// the visibility of the node's descendents).
func InnerText(n *html.Node) (striter.TextBuffer, error) {
	if n == nil {
		return striter.TextBuffer{}, striter.ErrIllegalArguments
	}
	b := striter.NewBuilder()
	if err := collectText(n, b); err != nil {
		return striter.TextBuffer{}, err
	}
	return b.Buffer(), nil
}

// TextFromHTML creates a text buffer from the textual content of an HTML fragment.
// It does no interpretation of layout and styling, but extracts the pure text.
func TextFromHTML(input io.Reader) (striter.TextBuffer, error) {
	if input == nil {
		return striter.TextBuffer{}, striter.ErrIllegalArguments
	}
	nodes, err := html.ParseFragment(input, nil)
	if err != nil {
		return striter.TextBuffer{}, err
	}
	b := striter.NewBuilder()
	for _, n := range nodes {
		if err := collectText(n, b); err != nil {
			return striter.TextBuffer{}, err
		}
	}
	return b.Buffer(), nil
}

func collectText(n *html.Node, b *striter.Builder) error {
	switch n.Type {
	case html.TextNode:
		if err := b.AppendString(n.Data); err != nil {
			return err
		}
	case html.CommentNode, html.DoctypeNode:
		return nil
	case html.ElementNode:
		if n.Data == "script" || n.Data == "style" {
			return nil
		}
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if err := collectText(c, b); err != nil {
			return err
		}
	}
	return nil
}
