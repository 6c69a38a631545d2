package dllist

import (
	"fmt"
	"io"
	"strings"

	"github.com/sirkon/errors"
)

// New конструктор пустого двусвязного списка.
func New[T any]() *List[T] {
	return &List[T]{}
}

// List двусвязный список значений типа T.
// Список является единственным владельцем своих узлов, связи между
// узлами служат только для навигации.
// WARNING: Не предоставляет гарантий безопасности при многопоточном доступе.
type List[T any] struct {
	first *Node[T]
	last  *Node[T]
	size  int
}

// Append добавление нового значения в конец списка с возвратом созданного узла.
func (l *List[T]) Append(v T) *Node[T] {
	n := NewNode(v, l.last, nil)

	if l.first == nil {
		l.first = n
		l.last = n
		l.size++
		return n
	}

	l.last.next = n
	l.last = n
	l.size++

	return n
}

// Get получение значения по данному индексу за O(index).
// Отдаёт ErrorOutOfRange если индекс не меньше длины списка,
// список при этом не меняется.
func (l *List[T]) Get(index int) (T, error) {
	cur := l.first
	var i int
	for cur != nil {
		if i == index {
			return cur.value, nil
		}

		cur = cur.next
		i++
	}

	var zero T
	return zero, errors.Just(ErrorOutOfRange{Index: index, Size: l.size}).
		Int("index", index).
		Int("size", l.size)
}

// Len возвращает текущую длину списка.
func (l *List[T]) Len() int {
	return l.size
}

// LenNaive пересчёт длины списка прямым обходом за O(n).
// Диагностическая операция, результат обязан совпадать с Len.
func (l *List[T]) LenNaive() int {
	var result int
	for cur := l.first; cur != nil; cur = cur.next {
		result++
	}

	return result
}

// Clear удаление всех узлов списка. На пустом списке ничего не делает.
func (l *List[T]) Clear() {
	cur := l.first
	for cur != nil {
		// следующий узел берётся до разрыва связей текущего
		next := cur.next
		cur.cleanup() // для упрощения работы GC
		cur = next
	}

	l.first = nil
	l.last = nil
	l.size = 0
}

// First получение первого узла списка, nil для пустого списка.
func (l *List[T]) First() *Node[T] {
	return l.first
}

// Last получение последнего узла списка, nil для пустого списка.
func (l *List[T]) Last() *Node[T] {
	return l.last
}

// WriteTo потоковый вывод списка в виде "[ v1 v2 ... vn ]" без
// промежуточной строки. Список не меняется.
func (l *List[T]) WriteTo(w io.Writer) (int64, error) {
	var total int64

	n, err := io.WriteString(w, "[ ")
	total += int64(n)
	if err != nil {
		return total, errors.Wrap(err, "write list opening")
	}

	for cur := l.first; cur != nil; cur = cur.next {
		n, err := fmt.Fprintf(w, "%v ", cur.value)
		total += int64(n)
		if err != nil {
			return total, errors.Wrap(err, "write list item")
		}
	}

	n, err = io.WriteString(w, "]")
	total += int64(n)
	if err != nil {
		return total, errors.Wrap(err, "write list closing")
	}

	return total, nil
}

// String текстовое представление списка, пустой список отдаётся как "[ ]".
func (l *List[T]) String() string {
	var b strings.Builder
	_, _ = l.WriteTo(&b)

	return b.String()
}
