package discovery

import (
	"encoding/xml"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"testkit/internal/domain"
)

// testList is the XML listing written by the test executable.
// The root element name is not checked; only its direct TestCase children are read.
type testList struct {
	TestCases []testCaseElement `xml:"TestCase"`
}

type testCaseElement struct {
	Attrs []xml.Attr `xml:",any,attr"`
}

func (e testCaseElement) attr(name string) (string, bool) {
	for _, a := range e.Attrs {
		if a.Name.Local == name {
			return a.Value, true
		}
	}
	return "", false
}

// Parser parses the XML test listing into test descriptors
type Parser struct{}

// NewParser creates a new Parser
func NewParser() *Parser {
	return &Parser{}
}

// ParseFile parses the XML test listing at path
func (p *Parser) ParseFile(path string) ([]domain.TestDescriptor, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("error reading test list %s: %w", path, err)
	}
	defer f.Close()

	tests, err := p.Parse(f)
	if err != nil {
		return nil, fmt.Errorf("error parsing test list %s: %w", path, err)
	}
	return tests, nil
}

// Parse reads test descriptors in document order
func (p *Parser) Parse(r io.Reader) ([]domain.TestDescriptor, error) {
	var list testList
	if err := xml.NewDecoder(r).Decode(&list); err != nil {
		return nil, fmt.Errorf("decode xml: %w", err)
	}

	tests := make([]domain.TestDescriptor, 0, len(list.TestCases))
	for i, element := range list.TestCases {
		test, err := p.parseTestCase(element)
		if err != nil {
			return nil, fmt.Errorf("test case %d: %w", i, err)
		}
		tests = append(tests, test)
	}
	return tests, nil
}

func (p *Parser) parseTestCase(element testCaseElement) (domain.TestDescriptor, error) {
	name, ok := element.attr("name")
	if !ok {
		return domain.TestDescriptor{}, domain.ErrMissingName
	}

	components := domain.SplitName(name)
	if len(components) < 2 {
		return domain.TestDescriptor{}, fmt.Errorf("%w: %q", domain.ErrMalformedName, name)
	}

	test := domain.TestDescriptor{
		Name:       name,
		Components: components,
	}
	test.SourceFile, _ = element.attr("filename")
	test.Description, _ = element.attr("description")
	if line, ok := element.attr("line"); ok {
		// line is informational, a bad value is ignored
		test.Line, _ = strconv.Atoi(line)
	}
	if skipped, ok := element.attr("skipped"); ok {
		test.Skipped = strings.EqualFold(skipped, "true")
	}
	return test, nil
}
