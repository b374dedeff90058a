// Package lsterr коды ошибок списков, стеков и их файлового хранения.
package lsterr

import "strings"

// Error тип ошибки с кодом.
type Error struct {
	Code ErrorCode
	Msg  string
	Err  error
}

func (e Error) Error() string {
	var b strings.Builder
	b.WriteString(e.Code.String())
	if e.Msg != "" {
		b.WriteByte('[')
		b.WriteString(e.Msg)
		b.WriteByte(']')
	}
	if e.Err != nil {
		b.WriteString(": ")
		b.WriteString(e.Err.Error())
	}

	return b.String()
}

// Unwrap причина ошибки.
func (e Error) Unwrap() error {
	return e.Err
}

// WithCause ошибка с тем же кодом и данной причиной.
func (e Error) WithCause(err error) Error {
	e.Err = err
	return e
}

// Is ошибки с одинаковым кодом считаются одинаковыми.
func (e Error) Is(target error) bool {
	t, ok := target.(Error)
	if !ok {
		return false
	}

	return t.Code == e.Code
}

func newEncodedError(code ErrorCode, msg ...string) Error {
	e := Error{
		Code: code,
	}
	switch len(msg) {
	case 0:
	case 1:
		e.Msg = msg[0]
	default:
		e.Msg = strings.Join(msg, ": ")
	}

	return e
}

// NewIndexOutOfBounds ошибка обращения по индексу за пределами списка.
func NewIndexOutOfBounds(msg ...string) Error {
	return newEncodedError(CodeIndexOutOfBounds, msg...)
}

// NewEmptyStructure ошибка извлечения или удаления из пустой структуры.
func NewEmptyStructure(msg ...string) Error {
	return newEncodedError(CodeEmptyStructure, msg...)
}

// NewModifiedDuringIteration ошибка изменения списка во время обхода.
func NewModifiedDuringIteration(msg ...string) Error {
	return newEncodedError(CodeModifiedDuringIteration, msg...)
}

// NewFileRead ошибка чтения файла.
func NewFileRead(msg ...string) Error {
	return newEncodedError(CodeFileRead, msg...)
}

// NewFileWrite ошибка записи файла.
func NewFileWrite(msg ...string) Error {
	return newEncodedError(CodeFileWrite, msg...)
}
