// Package formatter renders named, counted sets of integers.
//
// The XML form is the canonical one:
//
//	<name amount="N"><result><number>v1</number>...<number>vN</number></result></name>
//
// Other encodings (json, yaml, msgpack, text) are available through the
// registry in registry.go and carry the same name/amount/numbers triple.
package formatter

import (
	"bytes"
	"encoding/xml"
	"strconv"
	"unicode"

	"github.com/l3aro/intcalc/pkg/calcerr"
)

const opToXML = "toXML"

// Options controls presentation details that do not change document structure.
type Options struct {
	// Declaration prepends <?xml version="1.0" encoding="UTF-8"?>.
	Declaration bool
	// Indent is the per-level indent. Empty renders on a single line.
	Indent string
}

// DefaultOptions returns the options used by ToXML.
func DefaultOptions() Options {
	return Options{Declaration: true}
}

// XMLFormatter serializes integer sets to XML. It holds no mutable state.
type XMLFormatter struct {
	opts Options
}

// NewXML creates an XMLFormatter with the given options.
func NewXML(opts Options) *XMLFormatter {
	return &XMLFormatter{opts: opts}
}

// ToXML formats numbers with the default options.
func ToXML(elementName string, numbers []int) (string, error) {
	return NewXML(DefaultOptions()).ToXML(elementName, numbers)
}

// ToXML renders numbers under a root element named elementName.
// It fails with a formatting input error when numbers is empty or the name is
// not a valid XML element name.
func (f *XMLFormatter) ToXML(elementName string, numbers []int) (string, error) {
	if len(numbers) == 0 {
		return "", calcerr.Formatting(opToXML, calcerr.ReasonEmpty, "input array cannot be empty")
	}
	if !validElementName(elementName) {
		return "", calcerr.Formatting(opToXML, calcerr.ReasonInvalidName, "invalid element name %q", elementName)
	}

	var buf bytes.Buffer
	if f.opts.Declaration {
		buf.WriteString(xml.Header)
	}

	enc := xml.NewEncoder(&buf)
	if f.opts.Indent != "" {
		enc.Indent("", f.opts.Indent)
	}

	root := xml.StartElement{
		Name: xml.Name{Local: elementName},
		Attr: []xml.Attr{{Name: xml.Name{Local: "amount"}, Value: strconv.Itoa(len(numbers))}},
	}
	result := xml.StartElement{Name: xml.Name{Local: "result"}}
	number := xml.StartElement{Name: xml.Name{Local: "number"}}

	if err := enc.EncodeToken(root); err != nil {
		return "", err
	}
	if err := enc.EncodeToken(result); err != nil {
		return "", err
	}
	for _, n := range numbers {
		if err := enc.EncodeElement(strconv.Itoa(n), number); err != nil {
			return "", err
		}
	}
	if err := enc.EncodeToken(result.End()); err != nil {
		return "", err
	}
	if err := enc.EncodeToken(root.End()); err != nil {
		return "", err
	}
	if err := enc.Flush(); err != nil {
		return "", err
	}

	return buf.String(), nil
}

// validElementName accepts unprefixed XML names (NCName): a letter or
// underscore followed by letters, digits, '-', '.' or '_'.
func validElementName(name string) bool {
	if name == "" {
		return false
	}
	for i, r := range name {
		switch {
		case r == '_' || unicode.IsLetter(r):
		case i > 0 && (r == '-' || r == '.' || unicode.IsDigit(r)):
		default:
			return false
		}
	}
	return true
}
