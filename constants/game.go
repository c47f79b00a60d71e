package constants

// Map Generation Defaults
const (
	// MapWidth is the default grid width in cells
	MapWidth = 80

	// MapHeight is the default grid height in cells
	MapHeight = 50

	// MaxRooms is the number of room placement slots
	MaxRooms = 30

	// RoomMinSize and RoomMaxSize bound sampled room width and height
	RoomMinSize = 6
	RoomMaxSize = 10

	// RoomPlacementAttempts is how often a slot resamples an overlapping candidate before giving up
	RoomPlacementAttempts = 16

	// RoomMargin is the gap kept between accepted rooms
	RoomMargin = 1
)

// Movement Constants
const (
	// FastStep is the distance covered by one fast move
	FastStep = 5
)

// Visibility Constants
const (
	// PlayerViewRange is the player's sight radius in cells
	PlayerViewRange = 8

	// MonsterViewRange is the sight radius of spawned occupants
	MonsterViewRange = 8
)

// Occupant Constants
const (
	// MaxOccupants caps how many rooms beyond the first receive a monster
	MaxOccupants = 29
)
