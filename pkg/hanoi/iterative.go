package hanoi

// SolveIterative produces the same move sequence as [Solve] without
// recursion. It exploits the regular structure of the optimal solution:
// the pegs visited cycle with a period of three, and the cycle direction
// depends on the parity of n. At each step exactly one legal move exists
// between the scheduled pair of pegs.
//
// Useful when n is large enough that recursion depth matters, and as an
// independent oracle for the recursive solver in tests.
func SolveIterative(n int, src, dst, aux Peg) ([]Move, error) {
	if err := validateSolveArgs(n, src, dst, aux); err != nil {
		return nil, err
	}

	// Cycle order depends on parity: with an odd disk count the smallest
	// disk steps toward the destination, with an even count toward the
	// spare peg.
	order := [NumPegs]Peg{src, dst, aux}
	if n%2 == 0 {
		order = [NumPegs]Peg{src, aux, dst}
	}

	// Track only disk sizes; identity is irrelevant for scheduling.
	var pegs [NumPegs][]int
	for size := n; size >= 1; size-- {
		pegs[src] = append(pegs[src], size)
	}

	total := MoveCount(n)
	moves := make([]Move, 0, total)

	for step := 1; step <= total; step++ {
		var a, b Peg
		switch step % 3 {
		case 1:
			a, b = order[0], order[1]
		case 2:
			a, b = order[0], order[2]
		default:
			a, b = order[1], order[2]
		}
		moves = append(moves, legalBetween(&pegs, a, b))
	}

	return moves, nil
}

// legalBetween performs the single legal move between pegs a and b and
// returns it.
func legalBetween(pegs *[NumPegs][]int, a, b Peg) Move {
	if canShift(pegs[a], pegs[b]) {
		shift(pegs, a, b)
		return Move{From: a, To: b}
	}
	shift(pegs, b, a)
	return Move{From: b, To: a}
}

func canShift(from, to []int) bool {
	if len(from) == 0 {
		return false
	}
	return len(to) == 0 || from[len(from)-1] < to[len(to)-1]
}

func shift(pegs *[NumPegs][]int, from, to Peg) {
	top := pegs[from][len(pegs[from])-1]
	pegs[from] = pegs[from][:len(pegs[from])-1]
	pegs[to] = append(pegs[to], top)
}
