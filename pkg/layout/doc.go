// Package layout loads grid layout documents (JSON or YAML) and resolves them
// into the classes and inline styles of every row and column.
//
// A document declares layouts keyed by id:
//
//	layouts:
//	  dashboard:
//	    title: Dashboard
//	    rows:
//	      - gutter: 20
//	        justify: center
//	        columns:
//	          - span: 12
//	            md: {span: 6, offset: 2}
//	            content: "<p>Sales</p>"
//
// Columns may hold nested rows. Resolve evaluates each row before its columns
// so the row gutter reaches the columns directly inside it and no deeper.
package layout
