// Package schemafile materializes cleaned schemas from YAML documents.
//
// A document declares named schemas; each schema is an ordered list of
// fields with a type and optional constraints. Field order in the document
// becomes field declaration order in the schema.
//
// # Document Format
//
//	schemas:
//	  account:
//	    fields:
//	      - name: username
//	        type: string
//	        blank: false
//	        min_length: 3
//	        pattern: "[a-zA-Z_]+"
//	      - name: age
//	        type: int
//	        min: 0
//	      - name: role
//	        type: enum
//	        choices: [admin, member]
//	      - name: tags
//	        type: list
//	        of: {type: string}
//	      - name: manager
//	        type: account   # named reference, self-references allowed
//	        optional: true
//
// Supported types: string, int, float, bool, uuid, enum, list, map,
// either, object (inline fields), and the name of any schema declared in
// the same document. Named references resolve lazily, so forward and
// self-references work. An "expr" key attaches a CEL predicate to any
// field.
//
// # Usage
//
//	schemas, err := schemafile.Load(data)
//	if err != nil {
//		return err
//	}
//	rec, err := schemas["account"].Validate(input)
//
// # Error Handling
//
// Load returns descriptive errors for unknown types, missing element
// specs, invalid patterns, and invalid expressions; it never panics on a
// malformed document.
package schemafile
