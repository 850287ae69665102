package service

import "errors"

// Детерминированные отказы движка. На HTTP-границе сопоставляются
// с кодами ответов через errors.Is.
var (
	// ErrUnauthenticated - попытка голосовать без идентификатора пользователя
	ErrUnauthenticated = errors.New("user is not authenticated")
	// ErrNotFound - отчет отсутствует в текущей проекции
	ErrNotFound = errors.New("report not found")
	// ErrAlreadyVoted - пользователь уже голосовал за этот отчет
	ErrAlreadyVoted = errors.New("user has already voted for this report")
	// ErrUnavailable - хранилище недоступно после исчерпания повторов
	ErrUnavailable = errors.New("storage is unavailable")
	// ErrValidation - некорректные входные данные
	ErrValidation = errors.New("validation failed")
)
