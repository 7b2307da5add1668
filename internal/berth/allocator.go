package berth

import (
	"fmt"
	"math/rand"

	"github.com/Domenick1991/railbooking/internal/domain"
)

var coachPrefixes = map[string]string{
	"AC1":          "A",
	"AC2":          "B",
	"AC3":          "C",
	"SL":           "S",
	"GN":           "G",
	"AC Chair Car": "CC",
	"Executive":    "E",
}

var berthTypes = []string{"Lower", "Middle", "Upper", "Side Lower", "Side Upper"}

// sleeper classes get a typed berth, everything else a generic seat
var typedClasses = map[string]bool{"AC2": true, "AC3": true, "SL": true}

// Allocate assigns one coach/berth/type tuple per seat. Allocation is
// randomized and not deduplicated across seats, matching the legacy
// behavior.
func Allocate(className string, seats int) []domain.BerthAllocation {
	prefix, ok := coachPrefixes[className]
	if !ok {
		prefix = "X"
	}

	allocations := make([]domain.BerthAllocation, 0, seats)
	for i := 0; i < seats; i++ {
		berthType := "Seat"
		if typedClasses[className] {
			berthType = berthTypes[rand.Intn(len(berthTypes))]
		}
		allocations = append(allocations, domain.BerthAllocation{
			Coach: fmt.Sprintf("%s%d", prefix, rand.Intn(10)+1),
			Berth: fmt.Sprintf("%d", rand.Intn(72)+1),
			Type:  berthType,
		})
	}
	return allocations
}
