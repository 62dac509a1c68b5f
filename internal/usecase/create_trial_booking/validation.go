package create_trial_booking

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/go-playground/validator/v10"

	"github.com/m04kA/SMC-StudioSchedule/internal/domain"
)

var validate = validator.New()

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if err := validate.Struct(req); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	if strings.TrimSpace(req.ContactName) == "" {
		return fmt.Errorf("%w: contact name is blank", ErrInvalidInput)
	}
	if len(normalizePhone(req.ContactPhone)) < 8 {
		return fmt.Errorf("%w: contact phone must contain at least 8 digits", ErrInvalidInput)
	}
	return nil
}

// normalizePhone оставляет только цифры
func normalizePhone(phone string) string {
	var b strings.Builder
	for _, r := range phone {
		if unicode.IsDigit(r) {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// isDuplicate true, если контакт уже занимает место в занятии
func isDuplicate(snap *domain.Snapshot, occ domain.Occurrence, phone string) bool {
	for _, t := range snap.TrialsFor(occ) {
		if t.CountsTowardOccupancy() && normalizePhone(t.ContactPhone) == phone {
			return true
		}
	}
	return false
}
