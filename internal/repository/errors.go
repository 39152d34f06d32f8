package repository

import (
	"errors"
	"fmt"
)

var ErrNotFound = errors.New("задача не найдена")

// IOError - ошибка работы с файлом хранилища: открытие, блокировка, чтение, запись.
type IOError struct {
	Op   string
	Path string
	Err  error
}

func (e *IOError) Error() string {
	return fmt.Sprintf("хранилище %s: %s: %v", e.Path, e.Op, e.Err)
}

func (e *IOError) Unwrap() error {
	return e.Err
}

// DecodeError - файл хранилища прочитан, но содержимое не соответствует схеме.
// Line считается с 1, заголовок - первая строка.
type DecodeError struct {
	Path   string
	Line   int
	Column string
	Err    error
}

func (e *DecodeError) Error() string {
	switch {
	case e.Column != "":
		return fmt.Sprintf("хранилище %s: строка %d, поле %s: %v", e.Path, e.Line, e.Column, e.Err)
	case e.Line > 0:
		return fmt.Sprintf("хранилище %s: строка %d: %v", e.Path, e.Line, e.Err)
	default:
		return fmt.Sprintf("хранилище %s: %v", e.Path, e.Err)
	}
}

func (e *DecodeError) Unwrap() error {
	return e.Err
}

func IsIOError(err error) bool {
	var ioErr *IOError
	return errors.As(err, &ioErr)
}

func IsDecodeError(err error) bool {
	var decErr *DecodeError
	return errors.As(err, &decErr)
}
