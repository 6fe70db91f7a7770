package carousel

import (
	"bytes"
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

// ResourcePrefix marks an attribute value as a string resource reference,
// e.g. title="@string/size_kids".
const ResourcePrefix = "@string/"

// itemRecord is the attribute set of one declarative item, shared by the
// XML, YAML and TOML forms.
type itemRecord struct {
	Value       any    `yaml:"value" toml:"value"`
	Title       string `yaml:"title" toml:"title"`
	Description string `yaml:"description" toml:"description"`
	Image       string `yaml:"image" toml:"image"`
}

// ParseItems reads an XML item list. Every <item> element, at any depth,
// becomes one Item in document order:
//
//	<items>
//	    <item value="0" title="@string/size_kids" description="For the small appetite."/>
//	    <item value="1" title="Normal"/>
//	</items>
//
// Attribute values starting with ResourcePrefix are looked up through res.
// Integer values become int, anything else stays a string. Unknown
// attributes are ignored.
func ParseItems(r io.Reader, res Resolver) ([]Item, error) {
	return parseXML(r, "", res)
}

// LoadItemsFile reads an item list from path. The format follows the
// extension: .xml, .yaml/.yml (a list under "items") or .toml ([[item]]
// tables).
func LoadItemsFile(path string, res Resolver) ([]Item, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &MarkupParseError{Source: path, Err: err}
	}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".xml":
		return parseXML(bytes.NewReader(data), path, res)
	case ".yaml", ".yml":
		return parseYAML(data, path, res)
	case ".toml":
		return parseTOML(data, path, res)
	default:
		return nil, &MarkupParseError{Source: path, Err: errors.New("unsupported item list format")}
	}
}

func parseXML(r io.Reader, source string, res Resolver) ([]Item, error) {
	dec := xml.NewDecoder(r)

	var (
		items   []Item
		current *itemRecord
	)

	for {
		line, col := dec.InputPos()
		tok, err := dec.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			var syntaxErr *xml.SyntaxError
			if errors.As(err, &syntaxErr) {
				return nil, &MarkupParseError{Source: source, Line: syntaxErr.Line, Err: errors.New(syntaxErr.Msg)}
			}
			return nil, &MarkupParseError{Source: source, Line: line, Column: col, Err: err}
		}

		switch t := tok.(type) {
		case xml.StartElement:
			if t.Name.Local != "item" {
				continue
			}
			if current != nil {
				return nil, &MarkupParseError{Source: source, Line: line, Column: col, Err: errors.New("nested item element")}
			}
			current = &itemRecord{}
			for _, attr := range t.Attr {
				switch attr.Name.Local {
				case "value":
					current.Value = attr.Value
				case "title":
					current.Title = attr.Value
				case "description":
					current.Description = attr.Value
				case "image":
					current.Image = attr.Value
				}
			}
		case xml.EndElement:
			if t.Name.Local != "item" || current == nil {
				continue
			}
			item, err := current.resolve(res)
			if err != nil {
				return nil, &MarkupParseError{Source: source, Line: line, Column: col, Err: err}
			}
			items = append(items, item)
			current = nil
		}
	}

	return items, nil
}

func parseYAML(data []byte, source string, res Resolver) ([]Item, error) {
	var doc struct {
		Items []itemRecord `yaml:"items"`
	}
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, &MarkupParseError{Source: source, Err: err}
	}
	return resolveRecords(doc.Items, source, res)
}

func parseTOML(data []byte, source string, res Resolver) ([]Item, error) {
	var doc struct {
		Items []itemRecord `toml:"item"`
	}
	if _, err := toml.Decode(string(data), &doc); err != nil {
		parseErr := &MarkupParseError{Source: source, Err: err}
		var tomlErr toml.ParseError
		if errors.As(err, &tomlErr) {
			parseErr.Line = tomlErr.Position.Line
			parseErr.Column = tomlErr.Position.Col
		}
		return nil, parseErr
	}
	return resolveRecords(doc.Items, source, res)
}

func resolveRecords(records []itemRecord, source string, res Resolver) ([]Item, error) {
	items := make([]Item, 0, len(records))
	for i, rec := range records {
		item, err := rec.resolve(res)
		if err != nil {
			return nil, &MarkupParseError{Source: source, Err: fmt.Errorf("item %d: %w", i, err)}
		}
		items = append(items, item)
	}
	return items, nil
}

func (rec itemRecord) resolve(res Resolver) (Item, error) {
	spec := ItemSpec{
		Value:       normalizeValue(rec.Value),
		Title:       attributeContent(rec.Title),
		Description: attributeContent(rec.Description),
	}
	item, err := spec.Resolve(res)
	if err != nil {
		return Item{}, err
	}
	item.Image = rec.Image
	return item, nil
}

func attributeContent(v string) Content {
	if v == "" {
		return Content{}
	}
	if id, ok := strings.CutPrefix(v, ResourcePrefix); ok {
		return Resource(id)
	}
	return Text(v)
}

// normalizeValue maps decoded values onto the types callers compare
// against: integers of any width and integer strings become int. Numbers
// that do not fit an int keep their decoded type, so a large value never
// wraps onto UnselectedValue.
func normalizeValue(v any) any {
	switch val := v.(type) {
	case string:
		if n, err := strconv.Atoi(strings.TrimSpace(val)); err == nil {
			return n
		}
		return val
	case int64:
		if val < math.MinInt || val > math.MaxInt {
			return val
		}
		return int(val)
	case uint64:
		if val > math.MaxInt {
			return val
		}
		return int(val)
	case float64:
		// float64(math.MaxInt) rounds up to 2^63, so the upper bound is exclusive.
		if val >= math.MinInt && val < math.MaxInt && val == math.Trunc(val) {
			return int(val)
		}
		return val
	default:
		return v
	}
}
