package lib

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/blevesearch/bleve"
)

/*
	IndexedComponent is the searchable record of an accepted component
*/
type IndexedComponent struct {
	LCSCPart     string
	DeviceName   string
	Group        string
	Package      string
	Value        string
	Manufacturer string
	Basic        bool
}

/*
	ComponentIndex is a full-text index of the components in the generated
	libraries
*/
type ComponentIndex struct {
	index bleve.Index
}

/*
	CreateComponentIndex replaces any index at path with an empty one
*/
func CreateComponentIndex(path string) (*ComponentIndex, error) {
	if err := os.RemoveAll(path); err != nil {
		return nil, err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return nil, err
	}

	index, err := bleve.New(path, bleve.NewIndexMapping())
	if err != nil {
		return nil, fmt.Errorf("failed to create index: %w", err)
	}

	return &ComponentIndex{index: index}, nil
}

func OpenComponentIndex(path string) (*ComponentIndex, error) {
	if !exists(path) {
		return nil, fmt.Errorf("no index at %s, run build first", path)
	}

	index, err := bleve.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open index: %w", err)
	}

	return &ComponentIndex{index: index}, nil
}

func (ci *ComponentIndex) Close() error {
	return ci.index.Close()
}

/*
	Add indexes the accepted components of an assembly
*/
func (ci *ComponentIndex) Add(a *Assembly) error {
	batch := ci.index.NewBatch()
	for _, m := range a.Matches {
		component := m.Candidate.Component
		doc := IndexedComponent{
			LCSCPart:     component.LCSCPart,
			DeviceName:   m.Candidate.DeviceName,
			Group:        a.Group,
			Package:      m.Package.Name,
			Value:        m.Candidate.Value,
			Manufacturer: component.Manufacturer,
			Basic:        !component.Expanded,
		}

		if err := batch.Index(doc.LCSCPart, doc); err != nil {
			return err
		}
	}

	return ci.index.Batch(batch)
}

/*
	Find returns up to size components matching text
*/
func (ci *ComponentIndex) Find(text string, size int) ([]*IndexedComponent, error) {
	query := bleve.NewMatchQuery(text)
	request := bleve.NewSearchRequestOptions(query, size, 0, false)
	request.Fields = []string{"*"}

	result, err := ci.index.Search(request)
	if err != nil {
		return nil, err
	}

	components := []*IndexedComponent{}
	for _, hit := range result.Hits {
		components = append(components, fromFields(hit.ID, hit.Fields))
	}

	return components, nil
}

func fromFields(id string, fields map[string]interface{}) *IndexedComponent {
	str := func(name string) string {
		s, _ := fields[name].(string)
		return s
	}
	basic, _ := fields["Basic"].(bool)

	return &IndexedComponent{
		LCSCPart:     id,
		DeviceName:   str("DeviceName"),
		Group:        str("Group"),
		Package:      str("Package"),
		Value:        str("Value"),
		Manufacturer: str("Manufacturer"),
		Basic:        basic,
	}
}

func exists(path string) bool {
	_, err := os.Stat(path)
	return err == nil || !os.IsNotExist(err)
}
