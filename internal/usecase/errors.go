package usecase

import (
	"errors"
	"fmt"

	"portfolio-builder/internal/domain"
	"portfolio-builder/internal/model"
)

var (
	// ErrTransform marks a mapper failure. The record returned alongside it is
	// a fresh empty record that is still safe to render.
	ErrTransform = errors.New("transform failed")
	// ErrNotFound is returned when a stored portfolio does not exist.
	ErrNotFound = domain.ErrNotFound
	// ErrNotPublishable is returned when publishing a record with hard
	// validation errors.
	ErrNotPublishable = errors.New("portfolio has validation errors")
	// ErrInvalidInput is returned for requests the core cannot act on.
	ErrInvalidInput = errors.New("invalid input")
)

// guard runs fn and turns a panic into ErrTransform. Whatever fn returns, a
// failed transform always yields Empty().
func guard(kind string, fn func() (*model.Portfolio, error)) (p *model.Portfolio, err error) {
	defer func() {
		if r := recover(); r != nil {
			p = model.Empty()
			err = fmt.Errorf("%w: %s: %v", ErrTransform, kind, r)
		}
	}()
	p, err = fn()
	if err != nil {
		return model.Empty(), fmt.Errorf("%w: %s: %v", ErrTransform, kind, err)
	}
	return p, nil
}
