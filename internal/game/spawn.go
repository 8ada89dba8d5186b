package game

// spawnFallback is used when every draw landed inside the exclusion zone.
var spawnFallback = Vec2{X: SpawnMinX, Y: SpawnMinY}

// SpawnPoint draws integer points over the spawn area until one falls
// outside SpawnExclusion, giving up after SpawnMaxDraws draws.
func SpawnPoint(rng *Rand) Vec2 {
	for range SpawnMaxDraws {
		p := Vec2{
			X: float64(rng.Range(SpawnMinX, SpawnMaxX)),
			Y: float64(rng.Range(SpawnMinY, SpawnMaxY)),
		}
		if !SpawnExclusion.ContainsPoint(p) {
			return p
		}
	}
	return spawnFallback
}

// SpawnAdult creates an Adult just off the visible field.
func SpawnAdult(rng *Rand) *Spider {
	return NewSpider(SpiderAdult, SpawnPoint(rng))
}
