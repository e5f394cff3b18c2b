package roster

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
	"testing"

	"crew-poster/models"
)

var eightNames = []string{"Amy", "Bo", "Cal", "Dee", "Eve", "Fay", "Gio", "Hal"}

func namesFor(n int) []string {
	names := make([]string, n)
	for i := range names {
		names[i] = fmt.Sprintf("Rower %d", i+1)
	}
	return names
}

func coxFor(class BoatClass) string {
	if class.HasCox {
		return "Ivy"
	}
	return ""
}

func TestRegistrySeatNamesMatchCounts(t *testing.T) {
	for _, class := range BoatClasses() {
		want := class.RowerCount
		if class.HasCox {
			want++
		}
		if len(class.SeatNames) != want {
			t.Errorf("%s: %d seat names, want %d", class.Code, len(class.SeatNames), want)
		}
		if class.HasCox && class.SeatNames[0] != CoxLabel {
			t.Errorf("%s: first seat name %q, want %q", class.Code, class.SeatNames[0], CoxLabel)
		}
	}
}

func TestLookupBoatClass(t *testing.T) {
	tests := []struct {
		code     string
		wantCode string
	}{
		{"8+", "8+"},
		{" 4X ", "4x"},
		{"eight-with-cox", "8+"},
		{"Coxless Pair", "2-"},
		{"single", "1x"},
	}
	for _, tt := range tests {
		class, err := LookupBoatClass(tt.code)
		if err != nil {
			t.Fatalf("LookupBoatClass(%q) error: %v", tt.code, err)
		}
		if class.Code != tt.wantCode {
			t.Errorf("LookupBoatClass(%q) = %s, want %s", tt.code, class.Code, tt.wantCode)
		}
	}

	_, err := LookupBoatClass("9+")
	if !errors.Is(err, models.ErrInvalidBoatClass) {
		t.Errorf("LookupBoatClass(9+) error = %v, want InvalidBoatClass", err)
	}
}

func TestLookupReturnsCopy(t *testing.T) {
	class, _ := LookupBoatClass("8+")
	class.SeatNames[1] = "Mutated"

	again, _ := LookupBoatClass("8+")
	if again.SeatNames[1] != BowLabel {
		t.Errorf("registry was mutated through a lookup: %v", again.SeatNames)
	}
}

func TestAssignSeatCountMatchesClass(t *testing.T) {
	for _, class := range BoatClasses() {
		a, err := Assign(class, namesFor(class.RowerCount), coxFor(class))
		if err != nil {
			t.Fatalf("%s: unexpected error: %v", class.Code, err)
		}
		if a.Len() != class.SeatCount() {
			t.Errorf("%s: %d seats, want %d", class.Code, a.Len(), class.SeatCount())
		}
	}
}

func TestAssignDeterministic(t *testing.T) {
	for _, class := range BoatClasses() {
		names := namesFor(class.RowerCount)
		first, err := Assign(class, names, coxFor(class))
		if err != nil {
			t.Fatalf("%s: %v", class.Code, err)
		}
		second, _ := Assign(class, names, coxFor(class))
		if !reflect.DeepEqual(first, second) {
			t.Errorf("%s: assignments differ:\n%v\n%v", class.Code, first, second)
		}
	}
}

func TestAssignCoxOrdering(t *testing.T) {
	for _, class := range BoatClasses() {
		a, err := Assign(class, namesFor(class.RowerCount), coxFor(class))
		if err != nil {
			t.Fatalf("%s: %v", class.Code, err)
		}
		if class.HasCox {
			if a.Seats[0].Label != CoxLabel || !a.Seats[0].Cox {
				t.Errorf("%s: first seat %+v, want cox", class.Code, a.Seats[0])
			}
			for _, s := range a.Seats[1:] {
				if s.Label == CoxLabel {
					t.Errorf("%s: second Cox label at %+v", class.Code, s)
				}
			}
			continue
		}
		for _, s := range a.Seats {
			if s.Label == CoxLabel {
				t.Errorf("%s: unexpected Cox label in coxless boat", class.Code)
			}
		}
	}
}

func TestAssignRejectsOffByOne(t *testing.T) {
	for _, class := range BoatClasses() {
		for _, n := range []int{class.RowerCount - 1, class.RowerCount + 1} {
			_, err := Assign(class, namesFor(n), coxFor(class))
			var rerr *models.RenderError
			if !errors.As(err, &rerr) || rerr.Kind != models.KindRosterMismatch {
				t.Fatalf("%s with %d names: error = %v, want RosterMismatch", class.Code, n, err)
			}
			if rerr.Expected != class.RowerCount || rerr.Actual != n {
				t.Errorf("%s: expected/actual = %d/%d, want %d/%d", class.Code, rerr.Expected, rerr.Actual, class.RowerCount, n)
			}
		}
	}
}

func TestAssignRejectsBlankNames(t *testing.T) {
	tests := []struct {
		code  string
		names []string
		cox   string
		seats string
	}{
		{"2x", []string{"Amy", "  "}, "", "seat 2"},
		{"8+", []string{"Amy", "Bo", "", "Dee", "Eve", "\t", "Gus", "Hal"}, "Ivy", "seat 3, 6"},
	}
	for _, tt := range tests {
		_, err := AssignCode(tt.code, tt.names, tt.cox)
		if !errors.Is(err, models.ErrRosterMismatch) {
			t.Errorf("%s: error = %v, want RosterMismatch", tt.code, err)
			continue
		}
		var rerr *models.RenderError
		if !errors.As(err, &rerr) {
			t.Fatalf("%s: error %T is not a RenderError", tt.code, err)
		}
		if rerr.Expected != 0 || rerr.Actual != 0 {
			t.Errorf("%s: blank names reported counts %d/%d, the roster length was correct", tt.code, rerr.Expected, rerr.Actual)
		}
		if msg := err.Error(); !strings.Contains(msg, tt.seats) || strings.Contains(msg, "expected") {
			t.Errorf("%s: error = %q, want it to name %q without counts", tt.code, msg, tt.seats)
		}
	}
}

func TestAssignEightWithCox(t *testing.T) {
	a, err := AssignCode("8+", eightNames, "Ivy")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if a.Len() != 9 {
		t.Fatalf("len = %d, want 9", a.Len())
	}
	if a.Seats[0] != (Seat{Label: CoxLabel, Name: "Ivy", Cox: true}) {
		t.Errorf("first seat = %+v, want Cox Ivy", a.Seats[0])
	}
	if a.Seats[1].Label != StrokeLabel || a.Seats[1].Name != "Hal" {
		t.Errorf("second seat = %+v, want Stroke Hal", a.Seats[1])
	}
	last := a.Seats[len(a.Seats)-1]
	if last.Label != BowLabel || last.Name != "Amy" || last.Number != 1 {
		t.Errorf("last seat = %+v, want Bow Amy", last)
	}

	cox, ok := a.Cox()
	if !ok || cox.Name != "Ivy" {
		t.Errorf("Cox() = %+v, %v", cox, ok)
	}
}

func TestAssignCoxlessPair(t *testing.T) {
	a, err := AssignCode("2-", []string{"Amy", "Bo"}, "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if a.Len() != 2 {
		t.Fatalf("len = %d, want 2", a.Len())
	}
	if _, ok := a.Cox(); ok {
		t.Errorf("coxless pair reported a cox")
	}
	want := []Seat{
		{Label: StrokeLabel, Name: "Bo", Number: 2, Side: SideStroke},
		{Label: BowLabel, Name: "Amy", Number: 1, Side: SideBow},
	}
	if !reflect.DeepEqual(a.Seats, want) {
		t.Errorf("seats = %+v, want %+v", a.Seats, want)
	}

	_, err = AssignCode("2-", []string{"Amy", "Bo"}, "Ivy")
	if !errors.Is(err, models.ErrRosterMismatch) {
		t.Errorf("cox in coxless pair: error = %v, want RosterMismatch", err)
	}
}

func TestAssignSingle(t *testing.T) {
	a, err := AssignCode("1x", []string{"Amy"}, "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if a.Len() != 1 || a.Seats[0].Label != SingleLabel || a.Seats[0].Name != "Amy" {
		t.Errorf("seats = %+v, want one Single seat", a.Seats)
	}
	if a.Seats[0].Side != SideNone {
		t.Errorf("single scull seat has side %v", a.Seats[0].Side)
	}
}

func TestAssignMissingCox(t *testing.T) {
	_, err := AssignCode("4+", namesFor(4), "   ")
	var rerr *models.RenderError
	if !errors.As(err, &rerr) || rerr.Kind != models.KindRosterMismatch {
		t.Fatalf("error = %v, want RosterMismatch", err)
	}
	if rerr.Expected != 1 || rerr.Actual != 0 {
		t.Errorf("expected/actual = %d/%d, want 1/0", rerr.Expected, rerr.Actual)
	}
}
