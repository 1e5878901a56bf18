package engine

import (
	"math/rand"
	"time"
)

// DefaultRollDelay is advisory: the display layer may animate the dice for
// this long. The engine itself never sleeps.
const DefaultRollDelay = time.Second

// Roller produces one two-die roll. Tests inject a scripted Roller;
// production uses a seeded random one.
type Roller func() (int, int)

func RandomRoller(rng *rand.Rand) Roller {
	return func() (int, int) {
		return rng.Intn(6) + 1, rng.Intn(6) + 1
	}
}

// FixedRolls returns a Roller that replays the given pairs in order and
// repeats the last pair once exhausted.
func FixedRolls(pairs ...[2]int) Roller {
	i := 0
	return func() (int, int) {
		pair := pairs[i]
		if i < len(pairs)-1 {
			i++
		}
		return pair[0], pair[1]
	}
}
