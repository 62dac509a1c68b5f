package snapshot

import "errors"

var (
	// ErrInternal возвращается, если данные для снимка не удалось загрузить
	ErrInternal = errors.New("snapshot: internal error")
)
