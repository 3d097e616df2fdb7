package boxes

import (
	"fmt"
	"strconv"
	"strings"

	pr "github.com/benoitkugler/gridlayout/css/properties"
	"github.com/benoitkugler/gridlayout/html/tree"
	"github.com/benoitkugler/gridlayout/logger"
)

type handlerFunction = func(element *tree.Element, box *Box) error

// htmlHandlers map a tag name to a callback setting the content
// of the boxes needing special care.
var htmlHandlers = map[string]handlerFunction{
	"img": handleImg,
}

// Handle “<img>“ elements : the "width" and "height"
// attributes give the intrinsic size of the image.
func handleImg(element *tree.Element, box *Box) error {
	width, err := parsePixels(element, "width")
	if err != nil {
		return err
	}
	height, err := parsePixels(element, "height")
	if err != nil {
		return err
	}
	box.Content = Content{MinContent: width, MaxContent: width, Height: height}
	return nil
}

// parsePixels returns 0 for a missing attribute.
func parsePixels(element *tree.Element, attr string) (pr.Float, error) {
	s := strings.TrimSuffix(strings.TrimSpace(element.Get(attr)), "px")
	if s == "" {
		return 0, nil
	}
	v, err := strconv.ParseFloat(s, 32)
	if err != nil || v < 0 {
		return 0, fmt.Errorf("invalid %s attribute on <%s>: %q", attr, element.Tag, element.Get(attr))
	}
	return pr.Float(v), nil
}

// contentFromAttributes reads the data-min-content, data-max-content,
// data-content-height and data-baseline attributes, falling back to
// the text of the element for the missing sizes.
func contentFromAttributes(element *tree.Element) (Content, error) {
	out := textContent(element.Text())
	hasMin, hasMax := element.Has("data-min-content"), element.Has("data-max-content")
	if hasMin || hasMax {
		min, err := parsePixels(element, "data-min-content")
		if err != nil {
			return out, err
		}
		max, err := parsePixels(element, "data-max-content")
		if err != nil {
			return out, err
		}
		if !hasMin {
			min = max
		} else if !hasMax {
			max = min
		}
		if max < min {
			max = min
		}
		out.MinContent, out.MaxContent = min, max
	}
	if element.Has("data-content-height") {
		h, err := parsePixels(element, "data-content-height")
		if err != nil {
			return out, err
		}
		out.Height = h
		out.Baseline = nil
	}
	if element.Has("data-baseline") {
		b, err := parsePixels(element, "data-baseline")
		if err != nil {
			return out, err
		}
		out.Baseline = b
	}
	return out, nil
}

// Build returns the formatting structure of the grid container `element`.
func Build(element *tree.Element) (*Box, error) {
	if d := element.Style.GetDisplay(); d != "grid" && d != "inline-grid" {
		return nil, fmt.Errorf("<%s> is not a grid container (display: %s)", element.Tag, d)
	}
	return buildBox(element)
}

func buildBox(element *tree.Element) (*Box, error) {
	box := &Box{Element: element, Style: element.Style}
	if box.IsGridContainer() {
		for _, child := range element.Children {
			if child.Style.GetDisplay() == "none" {
				continue
			}
			childBox, err := buildBox(child)
			if err != nil {
				return nil, err
			}
			box.Children = append(box.Children, childBox)
		}
		return box, nil
	}

	var err error
	if handler, ok := htmlHandlers[element.Tag]; ok {
		err = handler(element, box)
	} else {
		box.Content, err = contentFromAttributes(element)
	}
	if err != nil {
		return nil, fmt.Errorf("building box for %s: %w", box, err)
	}
	return box, nil
}

// BuildDocument returns the outermost grid containers of `doc`, in tree order.
// Elements with invalid attributes are skipped and reported.
func BuildDocument(doc *tree.Document) []*Box {
	logger.ProgressLogger.Println("Step 3 - Creating formatting structure")

	var out []*Box
	var walk func(element *tree.Element)
	walk = func(element *tree.Element) {
		if element.Style.GetDisplay() == "none" {
			return
		}
		if d := element.Style.GetDisplay(); d == "grid" || d == "inline-grid" {
			box, err := Build(element)
			if err != nil {
				logger.WarningLogger.Println(err)
				return
			}
			out = append(out, box)
			return
		}
		for _, child := range element.Children {
			walk(child)
		}
	}
	walk(doc.Root)
	return out
}
