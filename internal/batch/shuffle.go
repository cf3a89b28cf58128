package batch

import (
	"math/rand/v2"

	"kino/internal/game"
)

// Shuffle permutes games uniformly in place.
func Shuffle(games []game.Game) {
	rand.Shuffle(len(games), func(i, j int) {
		games[i], games[j] = games[j], games[i]
	})
}
