package roster

import (
	"fmt"
	"strconv"
	"strings"

	"crew-poster/models"
	"crew-poster/utils"
)

// Side is the rigging side of a sweep seat
type Side int

const (
	SideNone   Side = iota // cox and sculling seats
	SideStroke             // port, even seat numbers
	SideBow                // starboard, odd seat numbers
)

func (s Side) String() string {
	switch s {
	case SideStroke:
		return "stroke side"
	case SideBow:
		return "bow side"
	default:
		return ""
	}
}

// Seat is one occupied seat. Number counts from the bow (1 = Bow) and is 0 for the cox.
type Seat struct {
	Label  string `json:"label"`
	Name   string `json:"name"`
	Number int    `json:"number"`
	Cox    bool   `json:"cox"`
	Side   Side   `json:"side"`
}

// Assignment is the seat list in display order: cox first, then Stroke down to Bow
type Assignment struct {
	Class BoatClass `json:"class"`
	Seats []Seat    `json:"seats"`
}

// Assign derives the seat assignment for a crew.
// rowerNames are given Bow first; coxName must be non-blank exactly when the class carries a cox.
// The result depends only on its arguments.
func Assign(class BoatClass, rowerNames []string, coxName string) (Assignment, error) {
	if len(rowerNames) != class.RowerCount {
		return Assignment{}, models.NewRosterMismatch(
			fmt.Sprintf("%s needs %d rowers", class.Name, class.RowerCount),
			class.RowerCount, len(rowerNames))
	}

	cox := utils.NormalizeName(coxName)
	if class.HasCox && cox == "" {
		return Assignment{}, models.NewRosterMismatch(fmt.Sprintf("%s requires a cox", class.Name), 1, 0)
	}
	if !class.HasCox && cox != "" {
		return Assignment{}, models.NewRosterMismatch(fmt.Sprintf("%s has no cox seat", class.Name), 0, 1)
	}

	names := make([]string, len(rowerNames))
	var blank []string
	for i, n := range rowerNames {
		names[i] = utils.NormalizeName(n)
		if names[i] == "" {
			blank = append(blank, strconv.Itoa(i+1))
		}
	}
	// seat numbers count from Bow
	if len(blank) > 0 {
		return Assignment{}, models.NewRenderError(models.KindRosterMismatch,
			"%s has blank rower names at seat %s", class.Name, strings.Join(blank, ", "))
	}

	labels := class.RowerSeatNames()
	seats := make([]Seat, 0, class.SeatCount())
	if class.HasCox {
		seats = append(seats, Seat{Label: CoxLabel, Name: cox, Cox: true})
	}
	for i := class.RowerCount - 1; i >= 0; i-- {
		number := i + 1
		seats = append(seats, Seat{
			Label:  labels[i],
			Name:   names[i],
			Number: number,
			Side:   sideOf(class, number),
		})
	}

	return Assignment{Class: class, Seats: seats}, nil
}

// AssignCode looks up the boat class by code and assigns seats
func AssignCode(code string, rowerNames []string, coxName string) (Assignment, error) {
	class, err := LookupBoatClass(code)
	if err != nil {
		return Assignment{}, err
	}
	return Assign(class, rowerNames, coxName)
}

// sideOf uses the standard rig: stroke seat on stroke side (port), alternating to the bow
func sideOf(class BoatClass, number int) Side {
	if class.Sculling || class.RowerCount == 1 {
		return SideNone
	}
	if number%2 == 0 {
		return SideStroke
	}
	return SideBow
}
