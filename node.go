package dllist

// NewNode конструктор узла с данным значением и, опционально, соседями.
// Любая из связей может быть пустой (nil), типичный случай для добавления
// в конец — задан только prev. Корректность связывания не проверяется,
// за неё отвечает список.
func NewNode[T any](value T, prev, next *Node[T]) *Node[T] {
	return &Node[T]{
		prev:  prev,
		next:  next,
		value: value,
	}
}

// Node узел содержащий данное значение в связанном списке.
// Связи prev и next служат только для навигации, узлами владеет
// исключительно список.
type Node[T any] struct {
	prev *Node[T]
	next *Node[T]

	value T
}

// Value возврат значения лежащего в узле.
func (n *Node[T]) Value() T {
	return n.value
}

// Prev возврат предыдущего узла, nil для первого узла списка.
func (n *Node[T]) Prev() *Node[T] {
	return n.prev
}

// Next возврат следующего узла, nil для последнего узла списка.
func (n *Node[T]) Next() *Node[T] {
	return n.next
}

func (n *Node[T]) cleanup() {
	n.prev = nil
	n.next = nil
}
