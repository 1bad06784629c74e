package usecase

import (
	"fmt"
	"strings"

	domainErrors "github.com/polkiloo/suitopia/internal/domain/errors"
	"github.com/polkiloo/suitopia/internal/domain/model"
)

// validateApplication checks the fields every order application needs.
func validateApplication(userID, productName string, application *model.ApplicationData) error {
	if strings.TrimSpace(userID) == "" {
		return fmt.Errorf("%w: userId is required", domainErrors.ErrValidation)
	}
	if strings.TrimSpace(productName) == "" {
		return fmt.Errorf("%w: product is required", domainErrors.ErrValidation)
	}
	if application == nil {
		return fmt.Errorf("%w: applicationData is required", domainErrors.ErrValidation)
	}
	return nil
}

// validateStatus rejects values outside the status enum.
func validateStatus(status model.OrderStatus) error {
	if !status.Valid() {
		return fmt.Errorf("%w: unknown status %q", domainErrors.ErrValidation, status)
	}
	return nil
}
