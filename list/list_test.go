package list

import (
	"math/rand"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/sirkon/deepequal"
	"github.com/sirkon/errors"
	"golang.org/x/exp/slices"

	"github.com/sirkon/lstack/internal/mocks"
	"github.com/sirkon/lstack/lsterr"
)

func TestList(t *testing.T) {
	t.Run("append", func(t *testing.T) {
		l := New[int]()
		for i := 0; i < 10; i++ {
			l.Append(i)
			if l.Len() != i+1 {
				t.Errorf("expected length %d after append, got %d", i+1, l.Len())
			}
			v, err := l.Element(l.Len() - 1)
			if err != nil {
				t.Error(errors.Wrap(err, "read the last element"))
				return
			}
			if v != i {
				t.Errorf("expected %d at the end, got %d", i, v)
			}
		}

		checkList(t, l, []int{0, 1, 2, 3, 4, 5, 6, 7, 8, 9})
	})

	t.Run("add", func(t *testing.T) {
		l := New[string]()
		steps := []struct {
			value string
			index int
		}{
			{"b", 0},
			{"a", 0},
			{"d", 2},
			{"c", 2},
			{"e", 4},
		}
		for _, s := range steps {
			if err := l.Add(s.value, s.index); err != nil {
				t.Error(errors.Wrapf(err, "add %q at %d", s.value, s.index))
				return
			}
		}

		checkList(t, l, []string{"a", "b", "c", "d", "e"})
	})

	t.Run("add at count is append", func(t *testing.T) {
		added := New[int]()
		appended := New[int]()
		for i := 0; i < 4; i++ {
			if err := added.Add(i, added.Len()); err != nil {
				t.Error(errors.Wrap(err, "add at count"))
				return
			}
			appended.Append(i)
		}

		if !deepequal.Equal(appended.Slice(), added.Slice()) {
			t.Error("content mismatch")
			deepequal.SideBySide(t, "lists", appended.Slice(), added.Slice())
		}
		checkList(t, added, appended.Slice())
	})

	t.Run("remove", func(t *testing.T) {
		l := New[int]()
		for i := 0; i < 10; i++ {
			l.Append(i)
		}

		for _, index := range []int{0, 8, 2} {
			if err := l.RemoveElement(index); err != nil {
				t.Error(errors.Wrapf(err, "remove element %d", index))
				return
			}
		}

		checkList(t, l, []int{1, 2, 4, 5, 6, 7, 8})
	})

	t.Run("drain to empty", func(t *testing.T) {
		for _, fromEnd := range []bool{false, true} {
			l := New[int]()
			for i := 0; i < 7; i++ {
				l.Append(i)
			}

			for l.Len() > 0 {
				index := 0
				if fromEnd {
					index = l.Len() - 1
				}
				if err := l.RemoveElement(index); err != nil {
					t.Error(errors.Wrap(err, "remove element"))
					return
				}
			}

			checkList(t, l, []int{})
			if l.nodes.First() != 0 || l.nodes.Last() != 0 {
				t.Error("drained list must not keep its ends")
			}

			l.Append(42)
			checkList(t, l, []int{42})
		}
	})

	t.Run("set element", func(t *testing.T) {
		l := New[int]()
		l.Append(1)
		l.Append(2)
		l.Append(3)

		if err := l.SetElement(20, 1); err != nil {
			t.Error(errors.Wrap(err, "set element"))
			return
		}
		if err := l.SetElement(30, 2); err != nil {
			t.Error(errors.Wrap(err, "set last element"))
			return
		}

		checkList(t, l, []int{1, 20, 30})
	})
}

func TestListOutOfBounds(t *testing.T) {
	ctrl := gomock.NewController(t)
	logger := mocks.NewLoggerMock(ctrl)

	l := New[int](WithLogger(logger))
	l.Append(1)
	l.Append(2)

	gomock.InOrder(
		logger.EXPECT().IndexOutOfBounds("add", 3, 2),
		logger.EXPECT().IndexOutOfBounds("add", -1, 2),
		logger.EXPECT().IndexOutOfBounds("element", 2, 2),
		logger.EXPECT().IndexOutOfBounds("element", -1, 2),
		logger.EXPECT().IndexOutOfBounds("set element", 2, 2),
		logger.EXPECT().IndexOutOfBounds("remove element", 2, 2),
		logger.EXPECT().IndexOutOfBounds("remove element", -5, 2),
	)

	check := func(name string, err error) {
		t.Helper()
		if err == nil {
			t.Errorf("%s: out of bounds error expected", name)
			return
		}
		if !lsterr.IsIndexOutOfBounds(err) {
			t.Error(errors.Wrapf(err, "%s: unexpected error", name))
			return
		}
		t.Log(errors.Wrapf(err, "%s: expected error", name))
	}

	check("add past count", l.Add(5, 3))
	check("add negative", l.Add(5, -1))
	_, err := l.Element(2)
	check("element at count", err)
	_, err = l.Element(-1)
	check("element negative", err)
	check("set element at count", l.SetElement(5, 2))
	check("remove at count", l.RemoveElement(2))
	check("remove negative", l.RemoveElement(-5))

	checkList(t, l, []int{1, 2})
}

func TestListRemoveFromEmpty(t *testing.T) {
	ctrl := gomock.NewController(t)
	logger := mocks.NewLoggerMock(ctrl)
	logger.EXPECT().EmptyStructure("remove element")

	l := New[int](WithLogger(logger))
	err := l.RemoveElement(0)
	if !lsterr.IsEmptyStructure(err) {
		t.Error(errors.Wrap(err, "empty structure error expected"))
	}
	checkList(t, l, []int{})
}

// TestListModel сверяет список с моделью на срезе под случайной
// последовательностью операций.
func TestListModel(t *testing.T) {
	rnd := rand.New(rand.NewSource(1))

	for round := 0; round < 50; round++ {
		l := New[int]()
		var model []int

		for step := 0; step < 200; step++ {
			v := rnd.Intn(1000)
			switch op := rnd.Intn(4); op {
			case 0:
				l.Append(v)
				model = append(model, v)
			case 1:
				index := rnd.Intn(len(model) + 2)
				err := l.Add(v, index)
				if index > len(model) {
					if !lsterr.IsIndexOutOfBounds(err) {
						t.Errorf("round %d step %d: out of bounds add %d must fail", round, step, index)
						return
					}
					break
				}
				if err != nil {
					t.Error(errors.Wrapf(err, "round %d step %d: add at %d", round, step, index))
					return
				}
				model = slices.Insert(model, index, v)
			case 2, 3:
				if len(model) == 0 {
					if err := l.RemoveElement(0); !lsterr.IsEmptyStructure(err) {
						t.Errorf("round %d step %d: removal from empty list must fail", round, step)
						return
					}
					break
				}
				index := rnd.Intn(len(model) + 1)
				err := l.RemoveElement(index)
				if index == len(model) {
					if !lsterr.IsIndexOutOfBounds(err) {
						t.Errorf("round %d step %d: out of bounds remove %d must fail", round, step, index)
						return
					}
					break
				}
				if err != nil {
					t.Error(errors.Wrapf(err, "round %d step %d: remove at %d", round, step, index))
					return
				}
				model = slices.Delete(model, index, index+1)
			}

			if l.Len() != len(model) {
				t.Errorf("round %d step %d: expected length %d, got %d", round, step, len(model), l.Len())
				return
			}
		}

		for i, want := range model {
			got, err := l.Element(i)
			if err != nil {
				t.Error(errors.Wrapf(err, "round %d: element %d", round, i))
				return
			}
			if got != want {
				t.Errorf("round %d: expected %d at %d, got %d", round, want, i, got)
				return
			}
		}
		checkList(t, l, model)
	}
}

func TestIterator(t *testing.T) {
	t.Run("restartable", func(t *testing.T) {
		l := New[int]()
		for i := 0; i < 10; i++ {
			l.Append(i)
		}

		for pass := 0; pass < 2; pass++ {
			var got []int
			it := l.Iterate()
			for it.Next() {
				got = append(got, it.Value())
			}
			if err := it.Err(); err != nil {
				t.Error(errors.Wrap(err, "iterate"))
				return
			}
			if !deepequal.Equal(l.Slice(), got) {
				t.Error("content mismatch")
				deepequal.SideBySide(t, "iteration", l.Slice(), got)
			}
		}
	})

	t.Run("empty", func(t *testing.T) {
		it := New[int]().Iterate()
		if it.Next() {
			t.Error("empty list must not yield anything")
		}
		if it.Next() {
			t.Error("finished iterator must stay finished")
		}
		if err := it.Err(); err != nil {
			t.Error(errors.Wrap(err, "iterate empty"))
		}
	})

	t.Run("modification fails fast", func(t *testing.T) {
		l := New[int]()
		l.Append(1)
		l.Append(2)
		l.Append(3)

		it := l.Iterate()
		if !it.Next() {
			t.Error("first element expected")
			return
		}
		if err := l.RemoveElement(1); err != nil {
			t.Error(errors.Wrap(err, "remove element"))
			return
		}
		if it.Next() {
			t.Error("iteration must stop after modification")
		}
		if err := it.Err(); !lsterr.IsModifiedDuringIteration(err) {
			t.Error(errors.Wrap(err, "modified during iteration error expected"))
		} else {
			t.Log(errors.Wrap(err, "expected error"))
		}
	})

	t.Run("set element is not structural", func(t *testing.T) {
		l := New[int]()
		l.Append(1)
		l.Append(2)

		var got []int
		it := l.Iterate()
		for it.Next() {
			got = append(got, it.Value())
			_ = l.SetElement(it.Value()*10, 1)
		}
		if err := it.Err(); err != nil {
			t.Error(errors.Wrap(err, "iterate"))
			return
		}
		if !deepequal.Equal([]int{1, 10}, got) {
			t.Error("content mismatch")
			deepequal.SideBySide(t, "iteration", []int{1, 10}, got)
		}
	})
}

func checkList[T any](t *testing.T, l *List[T], expected []T) {
	t.Helper()

	if err := l.nodes.Check(); err != nil {
		t.Error(errors.Wrap(err, "check list integrity"))
		return
	}

	if l.Len() != len(expected) {
		t.Errorf("expected length %d, got %d", len(expected), l.Len())
	}

	got := l.Slice()
	if len(expected) == 0 && len(got) == 0 {
		return
	}
	if !deepequal.Equal(expected, got) {
		t.Error("list content mismatch")
		deepequal.SideBySide(t, "content", expected, got)
	}
}
