package models

import (
	"fmt"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New(validator.WithRequiredStructEnabled())

// Validate checks the field constraints of a post.
func (p *Post) Validate() error {
	if err := validate.Struct(p); err != nil {
		return fmt.Errorf("invalid post %d: %w", p.ID, err)
	}
	return nil
}

// Validate checks the field constraints of a comment, including the email shape.
func (c *Comment) Validate() error {
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("invalid comment %d: %w", c.ID, err)
	}
	return nil
}
