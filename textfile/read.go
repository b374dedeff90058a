package textfile

import (
	"bufio"
	"io"
	"os"
	"strings"

	"github.com/sirkon/errors"

	"github.com/sirkon/lstack/list"
	"github.com/sirkon/lstack/lsterr"
)

// Read чтение списка из файла по пути path. Строки, которые не удалось
// разобрать, пропускаются по одной.
//
// Если файл не удалось прочитать, возвращается пустой список вместе с ошибкой
// с кодом lsterr.CodeFileRead, так что можно как обработать ошибку, так и
// просто продолжить работу с пустым списком.
func Read[T any](path string, parser Parser[T], opts ...Option) (*list.List[T], error) {
	return read(path, parser.Parse, opts)
}

// ReadRadix то же что и Read, но с разбором чисел в десятичной системе через RadixParser.
func ReadRadix[T any](path string, parser RadixParser[T], opts ...Option) (*list.List[T], error) {
	return read(
		path,
		func(text string) (T, error) {
			return parser.ParseRadix(text, Radix)
		},
		opts,
	)
}

func read[T any](path string, parse func(text string) (T, error), opts []Option) (*list.List[T], error) {
	o := newOptions(opts)

	file, err := os.Open(path)
	if err != nil {
		return list.New[T](o.listOpts...), o.readFailed(path, errors.Wrap(err, "open file"))
	}
	defer func() {
		_ = file.Close()
	}()

	// Разбиение строго по \n: завершающий \r остаётся частью строки, а за
	// последним \n следует ещё одна, возможно пустая, строка. Пустой файл
	// строк не содержит.
	res := list.New[T](o.listOpts...)
	r := bufio.NewReader(file)
	var line int
	for {
		text, err := r.ReadString('\n')
		if err != nil && err != io.EOF {
			return list.New[T](o.listOpts...), o.readFailed(
				path,
				errors.Wrap(err, "read line").Int("failed-after-line", line),
			)
		}
		last := err == io.EOF
		if last && line == 0 && text == "" {
			break
		}

		line++
		v, perr := parse(strings.TrimSuffix(text, "\n"))
		if perr != nil {
			o.logger.LineSkipped(path, line, perr)
		} else {
			res.Append(v)
		}

		if last {
			break
		}
	}

	return res, nil
}

func (o options) readFailed(path string, err error) error {
	o.logger.FileReadFailed(path, err)
	return errors.Wrap(lsterr.NewFileRead().WithCause(err), "read list").Str("path", path)
}
