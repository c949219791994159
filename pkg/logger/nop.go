package logger

// Nop отбрасывает все записи, используется в тестах и когда логгер не передан.
type Nop struct{}

func NewNop() Nop {
	return Nop{}
}

func (Nop) Info(string, ...Field) {}
func (Nop) Warn(string, ...Field) {}
func (Nop) Error(string, ...Field) {}

func (n Nop) With(...Field) Logger {
	return n
}
