package store

import (
	"database/sql"
	"sync"

	"github.com/engineer-dilnawaz/dynamic-forms/model"
)

const schemasKey = "form-schemas"

// SchemaStore owns the persisted collection of category schemas. It is the
// sole source of truth for which forms exist; every mutation flushes the full
// collection to its kv slot before returning.
type SchemaStore struct {
	mu      sync.Mutex
	slot    slot
	schemas []model.CategorySchema
}

// OpenSchemas loads the persisted schema collection from the database.
func OpenSchemas(db *sql.DB) (*SchemaStore, error) {
	s := &SchemaStore{slot: slot{db, schemasKey}}
	if err := s.slot.load(&s.schemas); err != nil {
		return nil, err
	}
	return s, nil
}

// SchemaPatch carries the mutable parts of an update. Nil members are left
// untouched; a non-nil Fields replaces the field list wholesale.
type SchemaPatch struct {
	Name   *string
	Fields *[]model.FieldSchema
}

// Add appends a schema to the collection. Name uniqueness is the builder's
// responsibility, not enforced here.
func (s *SchemaStore) Add(schema model.CategorySchema) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.schemas = append(s.schemas, schema)
	return s.slot.save(s.schemas)
}

// Update merges a patch into the matching record. An absent id is a no-op and
// reports found=false.
func (s *SchemaStore) Update(id string, patch SchemaPatch) (found bool, err error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.schemas {
		if s.schemas[i].ID != id {
			continue
		}
		if patch.Name != nil {
			s.schemas[i].Name = *patch.Name
		}
		if patch.Fields != nil {
			s.schemas[i].Fields = *patch.Fields
		}
		return true, s.slot.save(s.schemas)
	}
	return false, nil
}

// Delete removes the matching record. Entries referencing it are left alone;
// there is no cascade.
func (s *SchemaStore) Delete(id string) (found bool, err error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.schemas {
		if s.schemas[i].ID == id {
			s.schemas = append(s.schemas[:i], s.schemas[i+1:]...)
			return true, s.slot.save(s.schemas)
		}
	}
	return false, nil
}

// Get returns the schema with the given id.
func (s *SchemaStore) Get(id string) (model.CategorySchema, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, schema := range s.schemas {
		if schema.ID == id {
			return schema, true
		}
	}
	return model.CategorySchema{}, false
}

// All returns the collection in insertion order.
func (s *SchemaStore) All() []model.CategorySchema {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]model.CategorySchema, len(s.schemas))
	copy(out, s.schemas)
	return out
}
