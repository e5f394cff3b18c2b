package roster

// eightRowers is the crew size whose roster is listed in two columns
const eightRowers = 8

// Len returns the number of seats including the cox
func (a Assignment) Len() int {
	return len(a.Seats)
}

// Cox returns the cox seat when the boat carries one
func (a Assignment) Cox() (Seat, bool) {
	if len(a.Seats) > 0 && a.Seats[0].Cox {
		return a.Seats[0], true
	}
	return Seat{}, false
}

// Rowers returns the rower seats in display order (Stroke first)
func (a Assignment) Rowers() []Seat {
	rowers := make([]Seat, 0, len(a.Seats))
	for _, s := range a.Seats {
		if !s.Cox {
			rowers = append(rowers, s)
		}
	}
	return rowers
}

// Columns groups rower seats for listing. Eights are split by seat parity so
// the left column holds the stroke-side seats (8, 6, 4, 2) and the right
// column the bow-side seats (7, 5, 3, 1), as they sit in the boat. Every other
// class is a single column.
func (a Assignment) Columns() [][]Seat {
	rowers := a.Rowers()
	if len(rowers) == eightRowers {
		left, right := SplitByParity(rowers)
		return [][]Seat{left, right}
	}
	return [][]Seat{rowers}
}

// SplitByParity splits seats by index: even indices into the first group,
// odd indices into the second
func SplitByParity(seats []Seat) (even, odd []Seat) {
	even = make([]Seat, 0, (len(seats)+1)/2)
	odd = make([]Seat, 0, len(seats)/2)
	for i, s := range seats {
		if i%2 == 0 {
			even = append(even, s)
		} else {
			odd = append(odd, s)
		}
	}
	return even, odd
}

// MaxColumnLength returns the number of rows the tallest column needs
func (a Assignment) MaxColumnLength() int {
	rows := 0
	for _, col := range a.Columns() {
		if len(col) > rows {
			rows = len(col)
		}
	}
	return rows
}
