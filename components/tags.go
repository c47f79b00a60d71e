package components

// PlayerComponent marks the single player-controlled entity
type PlayerComponent struct{}

// MonsterComponent marks non-player occupants spawned in rooms
type MonsterComponent struct{}

// NameComponent is a display label
type NameComponent struct {
	Name string
}
