package dllist

import "fmt"

// ErrorOutOfRange ошибка доступа по индексу выходящему за пределы списка.
// Единственный вид ошибок отдаваемых списком.
type ErrorOutOfRange struct {
	Index int
	Size  int
}

func (e ErrorOutOfRange) Error() string {
	return fmt.Sprintf("index=%d larger than list size=%d", e.Index, e.Size)
}
