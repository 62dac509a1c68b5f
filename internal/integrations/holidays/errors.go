package holidays

import "errors"

var (
	// ErrInternal возвращается при внутренних ошибках клиента
	ErrInternal = errors.New("holidays client: internal error")

	// ErrInvalidResponse возвращается при некорректном ответе календаря
	ErrInvalidResponse = errors.New("holidays client: invalid response")

	// ErrServiceDegraded возвращается, когда календарь недоступен и используются только локальные праздники
	ErrServiceDegraded = errors.New("holidays calendar unavailable: graceful degradation applied")
)
