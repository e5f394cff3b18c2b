package roster

import (
	"slices"
	"strconv"
	"strings"

	"crew-poster/models"
)

// Seat labels shared by every boat class
const (
	CoxLabel    = "Cox"
	BowLabel    = "Bow"
	StrokeLabel = "Stroke"
	SingleLabel = "Single"
)

// BoatClass describes a rowing shell configuration.
// SeatNames runs Cox (when present), then Bow through Stroke.
type BoatClass struct {
	Code       string   `json:"code"`
	Name       string   `json:"name"`
	RowerCount int      `json:"rowerCount"`
	HasCox     bool     `json:"hasCox"`
	Sculling   bool     `json:"sculling"`
	SeatNames  []string `json:"seatNames"`
}

// SeatCount returns the number of occupied seats including the cox
func (b BoatClass) SeatCount() int {
	if b.HasCox {
		return b.RowerCount + 1
	}
	return b.RowerCount
}

// RowerSeatNames returns the rower seat labels, Bow first
func (b BoatClass) RowerSeatNames() []string {
	if b.HasCox {
		return slices.Clone(b.SeatNames[1:])
	}
	return slices.Clone(b.SeatNames)
}

// classOrder is the display order used when listing classes
var classOrder = []string{"8+", "4+", "4-", "4x+", "4x", "2+", "2-", "2x", "1x"}

var boatClasses = map[string]BoatClass{
	"8+":  newBoatClass("8+", "Coxed Eight", 8, true, false),
	"4+":  newBoatClass("4+", "Coxed Four", 4, true, false),
	"4-":  newBoatClass("4-", "Coxless Four", 4, false, false),
	"4x+": newBoatClass("4x+", "Coxed Quad", 4, true, true),
	"4x":  newBoatClass("4x", "Quad Scull", 4, false, true),
	"2+":  newBoatClass("2+", "Coxed Pair", 2, true, false),
	"2-":  newBoatClass("2-", "Coxless Pair", 2, false, false),
	"2x":  newBoatClass("2x", "Double Scull", 2, false, true),
	"1x":  newBoatClass("1x", "Single Scull", 1, false, true),
}

// aliases maps spelled-out class names to registry codes
var aliases = map[string]string{
	"eight":            "8+",
	"coxed eight":      "8+",
	"eight-with-cox":   "8+",
	"coxed four":       "4+",
	"four-with-cox":    "4+",
	"coxless four":     "4-",
	"four-without-cox": "4-",
	"coxed quad":       "4x+",
	"quad":             "4x",
	"quad scull":       "4x",
	"coxed pair":       "2+",
	"pair":             "2-",
	"coxless pair":     "2-",
	"coxless-pair":     "2-",
	"double":           "2x",
	"double scull":     "2x",
	"single":           "1x",
	"single scull":     "1x",
}

func newBoatClass(code, name string, rowers int, cox, sculling bool) BoatClass {
	return BoatClass{
		Code:       code,
		Name:       name,
		RowerCount: rowers,
		HasCox:     cox,
		Sculling:   sculling,
		SeatNames:  seatNames(rowers, cox),
	}
}

// seatNames builds Cox?, Bow, 2, 3, ..., Stroke. A single has one seat named Single.
func seatNames(rowers int, cox bool) []string {
	names := make([]string, 0, rowers+1)
	if cox {
		names = append(names, CoxLabel)
	}
	if rowers == 1 {
		return append(names, SingleLabel)
	}
	for i := 1; i <= rowers; i++ {
		switch i {
		case 1:
			names = append(names, BowLabel)
		case rowers:
			names = append(names, StrokeLabel)
		default:
			names = append(names, strconv.Itoa(i))
		}
	}
	return names
}

// LookupBoatClass returns the boat class for a code such as "8+" or an alias such as "quad"
func LookupBoatClass(code string) (BoatClass, error) {
	key := strings.ToLower(strings.TrimSpace(code))
	if canonical, ok := aliases[key]; ok {
		key = canonical
	}
	class, ok := boatClasses[key]
	if !ok {
		return BoatClass{}, models.NewRenderError(models.KindInvalidBoatClass, "unknown boat class %q", code)
	}
	class.SeatNames = slices.Clone(class.SeatNames)
	return class, nil
}

// BoatClasses returns every registered boat class in display order
func BoatClasses() []BoatClass {
	classes := make([]BoatClass, 0, len(classOrder))
	for _, code := range classOrder {
		class := boatClasses[code]
		class.SeatNames = slices.Clone(class.SeatNames)
		classes = append(classes, class)
	}
	return classes
}
