package lsterr

import "errors"

// AsCode получить код соответствующий ошибке.
func AsCode(err error) ErrorCode {
	if err == nil {
		return CodeOK
	}

	var target Error
	if !errors.As(err, &target) {
		return CodeInternal
	}

	return target.Code
}

// IsIndexOutOfBounds проверка, что ошибка вызвана выходом за границы.
func IsIndexOutOfBounds(err error) bool {
	return AsCode(err) == CodeIndexOutOfBounds
}

// IsEmptyStructure проверка, что ошибка вызвана пустотой структуры.
func IsEmptyStructure(err error) bool {
	return AsCode(err) == CodeEmptyStructure
}

// IsModifiedDuringIteration проверка, что список менялся во время обхода.
func IsModifiedDuringIteration(err error) bool {
	return AsCode(err) == CodeModifiedDuringIteration
}

// IsFileRead проверка, что ошибка возникла при чтении файла.
func IsFileRead(err error) bool {
	return AsCode(err) == CodeFileRead
}

// IsFileWrite проверка, что ошибка возникла при записи файла.
func IsFileWrite(err error) bool {
	return AsCode(err) == CodeFileWrite
}

// ErrorCode коды ошибок.
type ErrorCode int32

const (
	// CodeUnknown неиспользуемый код ошибки.
	CodeUnknown ErrorCode = 0

	// CodeOK всё нормально
	CodeOK ErrorCode = 200

	// CodeInternal код ошибки не из этого пакета.
	CodeInternal ErrorCode = 1000

	// CodeIndexOutOfBounds индекс вне допустимого диапазона.
	CodeIndexOutOfBounds ErrorCode = 2000

	// CodeEmptyStructure операция над пустым списком или стеком.
	CodeEmptyStructure ErrorCode = 2001

	// CodeModifiedDuringIteration список изменился во время обхода
	CodeModifiedDuringIteration ErrorCode = 2002

	// CodeFileRead не удалось прочитать файл.
	CodeFileRead ErrorCode = 3000

	// CodeFileWrite не удалось записать файл.
	CodeFileWrite ErrorCode = 3001
)

func (c ErrorCode) String() string {
	switch c {
	case CodeInternal:
		return "INTERNAL_ERROR"
	case CodeOK:
		return "OK"
	case CodeIndexOutOfBounds:
		return "INDEX_OUT_OF_BOUNDS"
	case CodeEmptyStructure:
		return "EMPTY_STRUCTURE"
	case CodeModifiedDuringIteration:
		return "MODIFIED_DURING_ITERATION"
	case CodeFileRead:
		return "FILE_READ_FAILURE"
	case CodeFileWrite:
		return "FILE_WRITE_FAILURE"
	default:
		return "UNKNOWN_ERROR"
	}
}
