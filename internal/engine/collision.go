package engine

// Collides reports whether an actor at actorY overlaps an obstacle at
// obstacleX whose gap starts at gapTop.
//
// The actor occupies the fixed horizontal slot [0, ObstacleWidth]; a hit
// requires the obstacle to be inside that slot and the actor to be at least
// partly outside the gap.
func Collides(cfg Config, actorY, obstacleX, gapTop float64) bool {
	if obstacleX < 0 || obstacleX > cfg.ObstacleWidth {
		return false
	}
	return actorY < gapTop || actorY+cfg.ActorSize > gapTop+cfg.GapSize
}
