package vm

// Stack holds the program indices of loop openers awaiting their closer.
type Stack struct {
	Data []int
}

func (s *Stack) Push(pc int) {
	s.Data = append(s.Data, pc)
}

func (s *Stack) Pop() (pc int, ok bool) {
	if s.Empty() {
		return
	}

	pc, ok = s.Data[len(s.Data)-1], true
	s.Data = s.Data[:len(s.Data)-1]
	return
}

func (s *Stack) Empty() bool {
	return len(s.Data) == 0
}
