package layout

import (
	"encoding/json"
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/goliatone/go-gridkit/pkg/grid"
)

// Layout is a named tree of rows.
type Layout struct {
	ID     string
	Title  string
	Source string
	Rows   []Row
}

// Row is a row node with its direct columns.
type Row struct {
	ID      string
	Spec    grid.RowSpec
	Columns []Column
}

// Column is a column node. Content is raw HTML; renderers sanitise it.
type Column struct {
	ID      string
	Spec    grid.ColumnSpec
	Content string
	Rows    []Row
}

type rowMeta struct {
	ID      string   `json:"id" yaml:"id"`
	Columns []Column `json:"columns" yaml:"columns"`
}

type columnMeta struct {
	ID      string `json:"id" yaml:"id"`
	Content string `json:"content" yaml:"content"`
	Rows    []Row  `json:"rows" yaml:"rows"`
}

// UnmarshalJSON reads the row properties and its columns from one object.
func (r *Row) UnmarshalJSON(data []byte) error {
	var meta rowMeta
	if err := json.Unmarshal(data, &meta); err != nil {
		return fmt.Errorf("layout: decode row: %w", err)
	}
	var spec grid.RowSpec
	if err := json.Unmarshal(data, &spec); err != nil {
		return err
	}
	*r = Row{ID: meta.ID, Spec: spec, Columns: meta.Columns}
	return nil
}

// UnmarshalYAML reads the row properties and its columns from one mapping.
func (r *Row) UnmarshalYAML(node *yaml.Node) error {
	var meta rowMeta
	if err := node.Decode(&meta); err != nil {
		return fmt.Errorf("layout: decode row (line %d): %w", node.Line, err)
	}
	var spec grid.RowSpec
	if err := node.Decode(&spec); err != nil {
		return err
	}
	*r = Row{ID: meta.ID, Spec: spec, Columns: meta.Columns}
	return nil
}

// UnmarshalJSON reads the column properties, content and nested rows.
func (c *Column) UnmarshalJSON(data []byte) error {
	var meta columnMeta
	if err := json.Unmarshal(data, &meta); err != nil {
		return fmt.Errorf("layout: decode column: %w", err)
	}
	var spec grid.ColumnSpec
	if err := json.Unmarshal(data, &spec); err != nil {
		return err
	}
	*c = Column{ID: meta.ID, Spec: spec, Content: meta.Content, Rows: meta.Rows}
	return nil
}

// UnmarshalYAML reads the column properties, content and nested rows.
func (c *Column) UnmarshalYAML(node *yaml.Node) error {
	var meta columnMeta
	if err := node.Decode(&meta); err != nil {
		return fmt.Errorf("layout: decode column (line %d): %w", node.Line, err)
	}
	var spec grid.ColumnSpec
	if err := node.Decode(&spec); err != nil {
		return err
	}
	*c = Column{ID: meta.ID, Spec: spec, Content: meta.Content, Rows: meta.Rows}
	return nil
}
