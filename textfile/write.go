package textfile

import (
	"bufio"
	"os"
	"path/filepath"

	"github.com/sirkon/errors"

	"github.com/sirkon/lstack/list"
	"github.com/sirkon/lstack/lsterr"
)

// Write запись списка в файл по пути path. Недостающие директории создаются,
// существующий файл перезаписывается.
func Write[T any, R Renderer[T]](path string, l *list.List[T], renderer R) (err error) {
	if err := prepareDir(filepath.Dir(path)); err != nil {
		return writeFailed(path, errors.Wrap(err, "prepare directory"))
	}

	file, err := os.Create(path)
	if err != nil {
		return writeFailed(path, errors.Wrap(err, "create file"))
	}
	defer func() {
		if err == nil {
			return
		}

		_ = file.Close()
	}()

	w := bufio.NewWriter(file)
	it := l.Iterate()
	first := true
	for it.Next() {
		if !first {
			if err := w.WriteByte('\n'); err != nil {
				return writeFailed(path, errors.Wrap(err, "write separator"))
			}
		}
		first = false

		if _, err := w.WriteString(renderer.Render(it.Value())); err != nil {
			return writeFailed(path, errors.Wrap(err, "write element"))
		}
	}
	if err := it.Err(); err != nil {
		return writeFailed(path, errors.Wrap(err, "iterate list"))
	}

	if err := w.Flush(); err != nil {
		return writeFailed(path, errors.Wrap(err, "flush buffered data"))
	}

	if err := file.Close(); err != nil {
		return writeFailed(path, errors.Wrap(err, "close file"))
	}

	return nil
}

// prepareDir создаёт директорию вместе с недостающими родителями, если её нет.
func prepareDir(dir string) error {
	stat, err := os.Stat(dir)
	if err == nil {
		if !stat.IsDir() {
			return errors.Newf("'%s' exists and it is not a directory", dir)
		}

		return nil
	}

	if !os.IsNotExist(err) {
		return errors.Wrap(err, "check path")
	}

	if err := os.MkdirAll(dir, 0755); err != nil {
		return errors.Wrap(err, "create directory")
	}

	return nil
}

func writeFailed(path string, err error) error {
	return errors.Wrap(lsterr.NewFileWrite().WithCause(err), "write list").Str("path", path)
}
