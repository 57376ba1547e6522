package bitmap

import (
	"encoding/xml"
	"fmt"
	"io"
)

// descriptor is the XML form of a bitmap font.
type descriptor struct {
	XMLName xml.Name `xml:"font"`
	Texture string   `xml:"texture,attr"`
	Columns int      `xml:"columns,attr"`
	Rows    int      `xml:"rows,attr"`
	First   int      `xml:"first,attr"`
	Ascent  int      `xml:"ascent,attr"`
	Descent int      `xml:"descent,attr"`
	Advance int      `xml:"advance,attr"`
	LineGap int      `xml:"linegap,attr"`
}

// parseDescriptor reads an XML descriptor. Missing grid attributes fall
// back to DefaultLayout.
func parseDescriptor(r io.Reader) (descriptor, Layout, error) {
	var d descriptor
	if err := xml.NewDecoder(r).Decode(&d); err != nil {
		return d, Layout{}, fmt.Errorf("bitmap: failed to parse descriptor: %w", err)
	}
	if d.Texture == "" {
		return d, Layout{}, fmt.Errorf("bitmap: descriptor has no texture attribute: %w", ErrBadLayout)
	}

	l := DefaultLayout
	if d.Columns > 0 {
		l.Columns = d.Columns
	}
	if d.Rows > 0 {
		l.Rows = d.Rows
	}
	if d.First > 0 {
		l.First = rune(d.First)
	}
	l.Ascent = d.Ascent
	l.Descent = d.Descent
	l.Advance = d.Advance
	l.LineGap = d.LineGap
	return d, l, nil
}
