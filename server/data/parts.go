//
// Copyright (c) 2025-2026 PartDesk Systems Inc.
// Please see the LICENSE file for details
//

package data

import (
	"github.com/PartDesk/PartDesk/common/schema"
)

// CreatePart validates and stores a new part
func (d *Data) CreatePart(req schema.PartRequest) (schema.Part, error) {
	if err := validatePart(req); err != nil {
		return schema.Part{}, err
	}

	part := schema.Part{
		Name:        req.Name,
		IPN:         req.IPN,
		Description: req.Description,
		CategoryPK:  req.CategoryPK,
		Units:       req.Units,
		Active:      req.Active,
	}
	return d.database.SetPart(part)
}

// UpdatePart applies a request to an existing part
func (d *Data) UpdatePart(pk int, req schema.PartRequest) (schema.Part, error) {
	if err := validatePart(req); err != nil {
		return schema.Part{}, err
	}

	part, err := d.database.GetPart(pk)
	if err != nil {
		return schema.Part{}, err
	}

	part.Name = req.Name
	part.IPN = req.IPN
	part.Description = req.Description
	part.CategoryPK = req.CategoryPK
	part.Units = req.Units
	part.Active = req.Active
	return d.database.SetPart(part)
}

// GetPart returns one part with its in-stock total calculated from the
// stock bucket
func (d *Data) GetPart(pk int) (schema.Part, error) {
	part, err := d.database.GetPart(pk)
	if err != nil {
		return schema.Part{}, err
	}

	part.InStock, err = d.database.PartStockTotal(pk)
	if err != nil {
		return schema.Part{}, err
	}
	return part, nil
}

// ListParts returns all parts with in-stock totals
func (d *Data) ListParts() ([]schema.Part, error) {
	parts, err := d.database.ListParts()
	if err != nil {
		return nil, err
	}
	for i := range parts {
		parts[i].InStock, err = d.database.PartStockTotal(parts[i].PK)
		if err != nil {
			return nil, err
		}
	}
	return parts, nil
}

// DeletePart removes a part
func (d *Data) DeletePart(pk int) error {
	if _, err := d.database.GetPart(pk); err != nil {
		return err
	}
	return d.database.DeletePart(pk)
}

// ListCategories returns all part categories
func (d *Data) ListCategories() ([]schema.PartCategory, error) {
	return d.database.ListCategories()
}

// CategoryTree returns a category and all its descendants, root first
func (d *Data) CategoryTree(pk int) ([]schema.PartCategory, error) {
	root, err := d.database.GetCategory(pk)
	if err != nil {
		return nil, err
	}

	all, err := d.database.ListCategories()
	if err != nil {
		return nil, err
	}

	tree := []schema.PartCategory{root}
	// Walk breadth-first so parents precede children
	frontier := []int{root.PK}
	for len(frontier) > 0 {
		var next []int
		for _, cat := range all {
			for _, parent := range frontier {
				if cat.ParentPK == parent {
					tree = append(tree, cat)
					next = append(next, cat.PK)
				}
			}
		}
		frontier = next
	}
	return tree, nil
}

// validatePart returns a ValidationError for any rejected field
func validatePart(req schema.PartRequest) error {
	fields := make(map[string][]string)
	if req.Name == "" {
		fields["name"] = append(fields["name"], "This field may not be blank.")
	}
	if len(fields) > 0 {
		return &schema.ValidationError{Fields: fields}
	}
	return nil
}
