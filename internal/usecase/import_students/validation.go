package import_students

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// validatePreview валидирует запрос предпросмотра
func validatePreview(req *PreviewRequest) error {
	for i := range req.Rows {
		req.Rows[i].Name = strings.TrimSpace(req.Rows[i].Name)
	}
	if err := validate.Struct(req); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	if !req.Role.IsPrivileged() {
		return ErrAccessDenied
	}
	return nil
}

// validateCommit валидирует запрос применения импорта
func validateCommit(req *CommitRequest) error {
	for i := range req.Rows {
		req.Rows[i].Name = strings.TrimSpace(req.Rows[i].Name)
	}
	if err := validate.Struct(req); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	if !req.Role.IsPrivileged() {
		return ErrAccessDenied
	}
	return nil
}
