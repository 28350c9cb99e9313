package services

import (
	"errors"
	"fmt"

	"portfolio/repositories"
)

var (
	ErrPostNotFound    = errors.New("post not found")
	ErrProjectNotFound = errors.New("project not found")
	ErrUserNotFound    = errors.New("user not found")

	// ErrInvalidAuthor is returned when a post is created without a valid author id.
	ErrInvalidAuthor = errors.New("invalid author id")

	// ErrSlugTaken is returned when a post write collides with an existing slug.
	ErrSlugTaken = errors.New("slug already exists")
)

// mapNotFound swaps the store's not-found error for the resource specific one and
// leaves every other error untouched.
func mapNotFound(err, notFound error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, repositories.ErrNotFound) {
		return notFound
	}
	return err
}

func mapPostWriteError(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, repositories.ErrDuplicate) {
		return fmt.Errorf("%w: %v", ErrSlugTaken, err)
	}
	return mapNotFound(err, ErrPostNotFound)
}
