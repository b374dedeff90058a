// Package logging абстракция предназначенная для логирования в строго определённых ситуациях.
// Реализация логирования должна делаться пользователями библиотеки.
package logging

//go:generate mockgen -destination=../internal/mocks/logger_mock.go -package=mocks -mock_names=Logger=LoggerMock github.com/sirkon/lstack/logging Logger

// Logger получатель сообщений о нефатальных ситуациях: операции,
// проигнорированные из-за неверных аргументов, и пропущенные данные.
type Logger interface {
	// IndexOutOfBounds операция op получила индекс за пределами списка длины count.
	IndexOutOfBounds(op string, index, count int)
	// EmptyStructure операция op применена к пустому списку или стеку.
	EmptyStructure(op string)
	// LineSkipped строка line файла path не разобрана и пропущена.
	LineSkipped(path string, line int, err error)
	// FileReadFailed файл path не удалось прочитать, получен пустой список.
	FileReadFailed(path string, err error)
}

// Nop логгер который ничего не делает.
func Nop() Logger {
	return nopLogger{}
}

type nopLogger struct{}

func (nopLogger) IndexOutOfBounds(string, int, int) {}
func (nopLogger) EmptyStructure(string)             {}
func (nopLogger) LineSkipped(string, int, error)    {}
func (nopLogger) FileReadFailed(string, error)      {}
