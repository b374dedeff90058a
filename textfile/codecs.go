package textfile

import (
	"fmt"
	"reflect"
	"strconv"

	"github.com/sirkon/errors"
	"golang.org/x/exp/constraints"
)

var (
	_ Parser[int]      = IntCodec[int]{}
	_ RadixParser[int] = IntCodec[int]{}
	_ Renderer[int]    = IntCodec[int]{}

	_ Parser[uint]      = UintCodec[uint]{}
	_ RadixParser[uint] = UintCodec[uint]{}
	_ Renderer[uint]    = UintCodec[uint]{}

	_ Parser[float64]   = FloatCodec[float64]{}
	_ Renderer[float64] = FloatCodec[float64]{}

	_ Parser[string]   = StringCodec{}
	_ Renderer[string] = StringCodec{}
)

// Ints кодек целых чисел со знаком.
func Ints[T constraints.Signed]() IntCodec[T] {
	return IntCodec[T]{}
}

// IntCodec кодек целых чисел со знаком.
type IntCodec[T constraints.Signed] struct{}

// Parse разбор десятичного числа.
func (c IntCodec[T]) Parse(text string) (T, error) {
	return c.ParseRadix(text, Radix)
}

// ParseRadix разбор числа в системе счисления radix с проверкой на
// вместимость в T.
func (IntCodec[T]) ParseRadix(text string, radix int) (T, error) {
	v, err := strconv.ParseInt(text, radix, bitSize[T]())
	if err != nil {
		return 0, errors.Wrap(err, "parse signed integer").Int("radix", radix)
	}

	return T(v), nil
}

// Render десятичное представление числа.
func (IntCodec[T]) Render(v T) string {
	return strconv.FormatInt(int64(v), 10)
}

// Uints кодек целых чисел без знака.
func Uints[T constraints.Unsigned]() UintCodec[T] {
	return UintCodec[T]{}
}

// UintCodec кодек целых чисел без знака.
type UintCodec[T constraints.Unsigned] struct{}

// Parse разбор десятичного числа.
func (c UintCodec[T]) Parse(text string) (T, error) {
	return c.ParseRadix(text, Radix)
}

// ParseRadix разбор числа в системе счисления radix с проверкой на
// вместимость в T.
func (UintCodec[T]) ParseRadix(text string, radix int) (T, error) {
	v, err := strconv.ParseUint(text, radix, bitSize[T]())
	if err != nil {
		return 0, errors.Wrap(err, "parse unsigned integer").Int("radix", radix)
	}

	return T(v), nil
}

// Render десятичное представление числа.
func (UintCodec[T]) Render(v T) string {
	return strconv.FormatUint(uint64(v), 10)
}

// Floats кодек чисел с плавающей точкой.
func Floats[T constraints.Float]() FloatCodec[T] {
	return FloatCodec[T]{}
}

// FloatCodec кодек чисел с плавающей точкой. Представление кратчайшее из
// тех, что читаются обратно в то же значение.
type FloatCodec[T constraints.Float] struct{}

// Parse разбор числа.
func (FloatCodec[T]) Parse(text string) (T, error) {
	v, err := strconv.ParseFloat(text, bitSize[T]())
	if err != nil {
		return 0, errors.Wrap(err, "parse float")
	}

	return T(v), nil
}

// Render текстовое представление числа.
func (FloatCodec[T]) Render(v T) string {
	return strconv.FormatFloat(float64(v), 'g', -1, bitSize[T]())
}

// Strings кодек строк, строка файла и есть значение.
func Strings() StringCodec {
	return StringCodec{}
}

// StringCodec кодек строк.
type StringCodec struct{}

// Parse строка как есть.
func (StringCodec) Parse(text string) (string, error) {
	return text, nil
}

// Render строка как есть.
func (StringCodec) Render(v string) string {
	return v
}

// Stringers представление значений через их метод String.
func Stringers[T fmt.Stringer]() Renderer[T] {
	return stringerRenderer[T]{}
}

type stringerRenderer[T fmt.Stringer] struct{}

func (stringerRenderer[T]) Render(v T) string {
	return v.String()
}

func bitSize[T constraints.Integer | constraints.Float]() int {
	var v T
	return reflect.TypeOf(v).Bits()
}
