package services

import (
	"errors"

	"news-api/models"
	"news-api/repositories"

	"gorm.io/gorm"
)

// notFound turns a missing row into the 404 domain error and passes
// anything else through untouched.
func notFound(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return models.NewNotFound(err)
	}
	return err
}

// missingReference is notFound for references carried in a request body,
// which are the client's mistake rather than a missing resource.
func missingReference(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return models.NewBadRequest(err)
	}
	return err
}

// voteFailure is notFound for vote updates, where a delta that overflows
// the stored total is the client's mistake.
func voteFailure(err error) error {
	if repositories.IsOutOfRange(err) {
		return models.NewBadRequest(err)
	}
	return notFound(err)
}
