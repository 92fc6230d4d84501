// Package xmlproc validates, parses and serializes XML payloads for logging.
package xmlproc

import (
	"encoding/xml"
	"errors"
	"io"
	"strings"

	domainerr "github.com/amirhossein-jamali/logfacade/internal/domain/error"
	"github.com/clbanning/mxj/v2"
)

func init() {
	// escape &, <, >, ' and " in values on Build
	mxj.XMLEscapeChars(true)
}

var (
	errMultipleRoots   = errors.New("more than one root element")
	errNoRoot          = errors.New("no root element")
	errTextOutsideRoot = errors.New("character data outside the root element")
)

// Option configures a Processor
type Option func(*Processor)

// WithIndent makes Build emit indented output
func WithIndent(prefix, indent string) Option {
	return func(p *Processor) {
		p.indent = true
		p.prefix = prefix
		p.indentStr = indent
	}
}

// Processor is the XML pipeline. Trees use mxj conventions: attributes are
// keys prefixed with "-", element text next to attributes is under "#text",
// and repeated elements become slices.
type Processor struct {
	indent    bool
	prefix    string
	indentStr string
}

// NewProcessor creates a new XML processor
func NewProcessor(opts ...Option) *Processor {
	p := &Processor{}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Validate reports whether xmlText is a well-formed document with exactly
// one root element. No schema validation is performed.
func (p *Processor) Validate(xmlText string) bool {
	return checkWellFormed(xmlText) == nil
}

// Parse converts a well-formed document into a nested map
func (p *Processor) Parse(xmlText string) (map[string]any, error) {
	if err := checkWellFormed(xmlText); err != nil {
		return nil, domainerr.NewXMLProcessingError(domainerr.StageParse, xmlText, err)
	}

	m, err := mxj.NewMapXml([]byte(xmlText))
	if err != nil {
		return nil, domainerr.NewXMLProcessingError(domainerr.StageParse, xmlText, err)
	}
	return map[string]any(m), nil
}

// Build serializes tree back into XML text. The result is structurally
// equivalent to the parsed document; attribute order and whitespace may differ.
func (p *Processor) Build(tree map[string]any) (string, error) {
	if len(tree) == 0 {
		return "", domainerr.NewXMLProcessingError(domainerr.StageBuild, "", errNoRoot)
	}

	var (
		out []byte
		err error
	)
	if p.indent {
		out, err = mxj.Map(tree).XmlIndent(p.prefix, p.indentStr)
	} else {
		out, err = mxj.Map(tree).Xml()
	}
	if err != nil {
		return "", domainerr.NewXMLProcessingError(domainerr.StageBuild, "", err)
	}
	return string(out), nil
}

func checkWellFormed(xmlText string) error {
	dec := xml.NewDecoder(strings.NewReader(xmlText))
	dec.Strict = true

	depth, roots := 0, 0
	for {
		tok, err := dec.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			return err
		}
		switch t := tok.(type) {
		case xml.StartElement:
			if depth == 0 {
				roots++
				if roots > 1 {
					return errMultipleRoots
				}
			}
			depth++
		case xml.EndElement:
			depth--
		case xml.CharData:
			if depth == 0 && len(strings.TrimSpace(string(t))) > 0 {
				return errTextOutsideRoot
			}
		}
	}

	if roots == 0 {
		return errNoRoot
	}
	return nil
}
