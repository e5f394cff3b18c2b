package roster

import "testing"

type seatRef struct {
	label string
	name  string
	side  Side
}

func refs(seats []Seat) []seatRef {
	out := make([]seatRef, len(seats))
	for i, s := range seats {
		out[i] = seatRef{s.Label, s.Name, s.Side}
	}
	return out
}

func TestColumnsEightSplitByParity(t *testing.T) {
	a, err := AssignCode("8+", eightNames, "Ivy")
	if err != nil {
		t.Fatal(err)
	}

	// Physical seating of an eight rigged with the stroke on stroke side
	wantLeft := []seatRef{
		{StrokeLabel, "Hal", SideStroke},
		{"6", "Fay", SideStroke},
		{"4", "Dee", SideStroke},
		{"2", "Bo", SideStroke},
	}
	wantRight := []seatRef{
		{"7", "Gio", SideBow},
		{"5", "Eve", SideBow},
		{"3", "Cal", SideBow},
		{BowLabel, "Amy", SideBow},
	}

	cols := a.Columns()
	if len(cols) != 2 {
		t.Fatalf("got %d columns, want 2", len(cols))
	}
	left, right := refs(cols[0]), refs(cols[1])
	for i := range wantLeft {
		if left[i] != wantLeft[i] {
			t.Errorf("left[%d] = %+v, want %+v", i, left[i], wantLeft[i])
		}
		if right[i] != wantRight[i] {
			t.Errorf("right[%d] = %+v, want %+v", i, right[i], wantRight[i])
		}
	}
	if a.MaxColumnLength() != 4 {
		t.Errorf("MaxColumnLength = %d, want 4", a.MaxColumnLength())
	}
}

func TestColumnsSmallBoatsSingleColumn(t *testing.T) {
	for _, code := range []string{"4+", "4-", "4x", "2x", "1x"} {
		class, _ := LookupBoatClass(code)
		a, err := Assign(class, namesFor(class.RowerCount), coxFor(class))
		if err != nil {
			t.Fatal(err)
		}
		cols := a.Columns()
		if len(cols) != 1 || len(cols[0]) != class.RowerCount {
			t.Errorf("%s: columns = %d, want one column of %d", code, len(cols), class.RowerCount)
		}
		for _, s := range cols[0] {
			if s.Cox {
				t.Errorf("%s: cox listed among rowers", code)
			}
		}
	}
}

func TestSplitByParityOddLength(t *testing.T) {
	seats := []Seat{{Label: "a"}, {Label: "b"}, {Label: "c"}}
	even, odd := SplitByParity(seats)
	if len(even) != 2 || len(odd) != 1 || even[1].Label != "c" || odd[0].Label != "b" {
		t.Errorf("SplitByParity = %v / %v", even, odd)
	}
}
