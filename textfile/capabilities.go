// Package textfile чтение списков из текстовых файлов и запись в них.
//
// Формат: по одному элементу на строку, строки разделены '\n', без заголовка
// и без обязательного перевода строки в конце. Запись не атомарна: прерванная
// запись может оставить файл частично записанным.
package textfile

// Radix основание системы счисления для RadixParser.
const Radix = 10

// Parser разбор значения из текста.
type Parser[T any] interface {
	Parse(text string) (T, error)
}

// RadixParser разбор значения из текста в данной системе счисления.
type RadixParser[T any] interface {
	ParseRadix(text string, radix int) (T, error)
}

// Renderer текстовое представление значения.
type Renderer[T any] interface {
	Render(v T) string
}
