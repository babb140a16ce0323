package vm

// JumpTable pairs each loop opener with its closer, and vice versa.
type JumpTable struct {
	Jump   []int  // Partner index per bracket; 0 where unpaired or not a bracket.
	Paired []bool // True where Jump holds a real partner.

	UnmatchedClose []int // ']' with no pending '[', in the order seen.
	UnmatchedOpen  []int // '[' still pending at the end of the program.
}

// Match builds the jump table for a program in a single pass.
// Unbalanced brackets are recorded, never rejected.
func Match(prog *Program) (table *JumpTable) {
	n := prog.Len()
	table = &JumpTable{
		Jump:   make([]int, n),
		Paired: make([]bool, n),
	}

	var pending Stack
	for pc, op := range prog.Codes() {
		switch op {
		case OP_LOOP:
			pending.Push(pc)
		case OP_END:
			open, ok := pending.Pop()
			if !ok {
				table.UnmatchedClose = append(table.UnmatchedClose, pc)
				continue
			}
			table.Jump[open] = pc
			table.Jump[pc] = open
			table.Paired[open] = true
			table.Paired[pc] = true
		}
	}

	if !pending.Empty() {
		table.UnmatchedOpen = append(table.UnmatchedOpen, pending.Data...)
	}

	return
}

// Target returns the partner of the bracket at pc.
func (table *JumpTable) Target(pc int) (target int, ok bool) {
	if pc < 0 || pc >= len(table.Jump) {
		return
	}

	return table.Jump[pc], table.Paired[pc]
}

// Balanced returns true if every bracket has a partner.
func (table *JumpTable) Balanced() bool {
	return len(table.UnmatchedClose) == 0 && len(table.UnmatchedOpen) == 0
}

// Err returns an *ErrUnbalanced if the table is not balanced.
func (table *JumpTable) Err() error {
	if table.Balanced() {
		return nil
	}

	return &ErrUnbalanced{
		Open:  table.UnmatchedOpen,
		Close: table.UnmatchedClose,
	}
}
