// Code generated from the canonical campaign rosters; see DESIGN.md for
// provenance. Do not reorder entries — iteration order is part of the
// simulation's determinism contract.
package entity

import "midnight/enums"

// CharacterSeed is the static definition of one of the 32 starting
// characters, in canonical roster order.
type CharacterSeed struct {
	ID             int
	Name           string
	Title          string
	Race           enums.Race
	X, Y           int
	Life           int
	Energy         int
	Strength       int
	CourageBase    int
	RecruitingKey  int
	RecruitedByKey int
	Riders         int
	Warriors       int
	Direction      enums.Direction
}

// CharacterRoster holds the 32 starting characters in roster (iteration) order.
var CharacterRoster = []CharacterSeed{
	{ID: 0, Name: "Luxor", Title: "Luxor the Moonprince", Race: enums.Free, X: 12, Y: 40, Life: 180, Energy: 127, Strength: 25, CourageBase: 80, RecruitingKey: 0x17, RecruitedByKey: 0x00, Riders: 0, Warriors: 0, Direction: enums.Southeast},
	{ID: 1, Name: "Morkin", Title: "Morkin", Race: enums.MorkinRace, X: 12, Y: 40, Life: 200, Energy: 127, Strength: 5, CourageBase: 127, RecruitingKey: 0x7e, RecruitedByKey: 0x00, Riders: 0, Warriors: 0, Direction: enums.Southeast},
	{ID: 2, Name: "Corleth", Title: "Corleth the Fey", Race: enums.Fey, X: 12, Y: 40, Life: 180, Energy: 127, Strength: 20, CourageBase: 96, RecruitingKey: 0x6b, RecruitedByKey: 0x00, Riders: 0, Warriors: 0, Direction: enums.East},
	{ID: 3, Name: "Rothron", Title: "Rothron the Wise", Race: enums.Wise, X: 12, Y: 40, Life: 220, Energy: 127, Strength: 40, CourageBase: 80, RecruitingKey: 0x7f, RecruitedByKey: 0x00, Riders: 0, Warriors: 0, Direction: enums.Northeast},
	{ID: 4, Name: "Gard", Title: "the Lord of Gard", Race: enums.Free, X: 10, Y: 55, Life: 150, Energy: 64, Strength: 10, CourageBase: 64, RecruitingKey: 0x01, RecruitedByKey: 0x01, Riders: 500, Warriors: 1000, Direction: enums.East},
	{ID: 5, Name: "Marakith", Title: "the Lord of Marakith", Race: enums.Free, X: 43, Y: 32, Life: 150, Energy: 64, Strength: 10, CourageBase: 64, RecruitingKey: 0x01, RecruitedByKey: 0x01, Riders: 500, Warriors: 1000, Direction: enums.West},
	{ID: 6, Name: "Xajorkith", Title: "the Lord of Xajorkith", Race: enums.Free, X: 45, Y: 59, Life: 150, Energy: 64, Strength: 15, CourageBase: 64, RecruitingKey: 0x01, RecruitedByKey: 0x01, Riders: 800, Warriors: 1200, Direction: enums.North},
	{ID: 7, Name: "Gloom", Title: "the Lord of Gloom", Race: enums.Free, X: 8, Y: 0, Life: 150, Energy: 64, Strength: 15, CourageBase: 56, RecruitingKey: 0x01, RecruitedByKey: 0x01, Riders: 500, Warriors: 1000, Direction: enums.East},
	{ID: 8, Name: "Shimeril", Title: "the Lord of Shimeril", Race: enums.Free, X: 28, Y: 42, Life: 150, Energy: 64, Strength: 15, CourageBase: 64, RecruitingKey: 0x01, RecruitedByKey: 0x01, Riders: 800, Warriors: 1000, Direction: enums.Northwest},
	{ID: 9, Name: "Kumar", Title: "the Lord of Kumar", Race: enums.Free, X: 57, Y: 29, Life: 150, Energy: 64, Strength: 10, CourageBase: 64, RecruitingKey: 0x01, RecruitedByKey: 0x01, Riders: 700, Warriors: 1000, Direction: enums.North},
	{ID: 10, Name: "Ithrorn", Title: "the Lord of Ithrorn", Race: enums.Free, X: 57, Y: 15, Life: 150, Energy: 64, Strength: 15, CourageBase: 64, RecruitingKey: 0x09, RecruitedByKey: 0x01, Riders: 1000, Warriors: 1200, Direction: enums.Northwest},
	{ID: 11, Name: "Dawn", Title: "the Lord of Dawn", Race: enums.Free, X: 44, Y: 45, Life: 150, Energy: 64, Strength: 8, CourageBase: 48, RecruitingKey: 0x01, RecruitedByKey: 0x01, Riders: 500, Warriors: 800, Direction: enums.North},
	{ID: 12, Name: "Dreams", Title: "the Lord Of Dreams", Race: enums.Fey, X: 42, Y: 16, Life: 180, Energy: 64, Strength: 20, CourageBase: 90, RecruitingKey: 0x1f, RecruitedByKey: 0x08, Riders: 800, Warriors: 1200, Direction: enums.North},
	{ID: 13, Name: "Dregrim", Title: "the Lord Of Dregrim", Race: enums.Fey, X: 59, Y: 43, Life: 150, Energy: 64, Strength: 15, CourageBase: 80, RecruitingKey: 0x1f, RecruitedByKey: 0x08, Riders: 400, Warriors: 1000, Direction: enums.North},
	{ID: 14, Name: "Thimrath", Title: "Thimrath the Fey", Race: enums.Fey, X: 33, Y: 60, Life: 130, Energy: 64, Strength: 12, CourageBase: 90, RecruitingKey: 0x1a, RecruitedByKey: 0x02, Riders: 600, Warriors: 400, Direction: enums.West},
	{ID: 15, Name: "Whispers", Title: "the Lord Of Whispers", Race: enums.Fey, X: 57, Y: 20, Life: 150, Energy: 64, Strength: 12, CourageBase: 80, RecruitingKey: 0x1a, RecruitedByKey: 0x02, Riders: 300, Warriors: 600, Direction: enums.Northwest},
	{ID: 16, Name: "Shadows", Title: "the Lord Of Shadows", Race: enums.Fey, X: 11, Y: 37, Life: 130, Energy: 64, Strength: 12, CourageBase: 70, RecruitingKey: 0x1a, RecruitedByKey: 0x02, Riders: 0, Warriors: 1000, Direction: enums.North},
	{ID: 17, Name: "Lothoril", Title: "the Lord Of Lothoril", Race: enums.Fey, X: 11, Y: 10, Life: 100, Energy: 64, Strength: 8, CourageBase: 60, RecruitingKey: 0x1a, RecruitedByKey: 0x02, Riders: 200, Warriors: 500, Direction: enums.East},
	{ID: 18, Name: "Korinel", Title: "Korinel the Fey", Race: enums.Fey, X: 23, Y: 21, Life: 120, Energy: 64, Strength: 12, CourageBase: 60, RecruitingKey: 0x1a, RecruitedByKey: 0x02, Riders: 0, Warriors: 1000, Direction: enums.North},
	{ID: 19, Name: "Thrall", Title: "the Lord Of Thrall", Race: enums.Fey, X: 33, Y: 38, Life: 150, Energy: 64, Strength: 10, CourageBase: 70, RecruitingKey: 0x1a, RecruitedByKey: 0x02, Riders: 300, Warriors: 600, Direction: enums.Northwest},
	{ID: 20, Name: "Brith", Title: "Lord Brith", Race: enums.Free, X: 21, Y: 49, Life: 100, Energy: 64, Strength: 8, CourageBase: 40, RecruitingKey: 0x01, RecruitedByKey: 0x01, Riders: 500, Warriors: 300, Direction: enums.Northeast},
	{ID: 21, Name: "Rorath", Title: "Lord Rorath", Race: enums.Free, X: 23, Y: 60, Life: 100, Energy: 64, Strength: 8, CourageBase: 50, RecruitingKey: 0x01, RecruitedByKey: 0x01, Riders: 800, Warriors: 400, Direction: enums.North},
	{ID: 22, Name: "Trorn", Title: "Lord Trorn", Race: enums.Free, X: 54, Y: 50, Life: 100, Energy: 64, Strength: 8, CourageBase: 35, RecruitingKey: 0x01, RecruitedByKey: 0x01, Riders: 400, Warriors: 800, Direction: enums.Northwest},
	{ID: 23, Name: "Morning", Title: "the Lord Of Morning", Race: enums.Free, X: 39, Y: 51, Life: 120, Energy: 64, Strength: 8, CourageBase: 40, RecruitingKey: 0x01, RecruitedByKey: 0x01, Riders: 300, Warriors: 800, Direction: enums.North},
	{ID: 24, Name: "Athoril", Title: "Lord Athoril", Race: enums.Free, X: 54, Y: 38, Life: 120, Energy: 64, Strength: 8, CourageBase: 50, RecruitingKey: 0x01, RecruitedByKey: 0x01, Riders: 800, Warriors: 300, Direction: enums.North},
	{ID: 25, Name: "Blood", Title: "Lord Blood", Race: enums.Free, X: 21, Y: 36, Life: 150, Energy: 64, Strength: 15, CourageBase: 80, RecruitingKey: 0x01, RecruitedByKey: 0x01, Riders: 1200, Warriors: 0, Direction: enums.North},
	{ID: 26, Name: "Herath", Title: "Lord Herath", Race: enums.Free, X: 45, Y: 26, Life: 130, Energy: 64, Strength: 8, CourageBase: 40, RecruitingKey: 0x01, RecruitedByKey: 0x01, Riders: 500, Warriors: 600, Direction: enums.Northeast},
	{ID: 27, Name: "Mitharg", Title: "Lord Mitharg", Race: enums.Free, X: 29, Y: 46, Life: 130, Energy: 64, Strength: 8, CourageBase: 50, RecruitingKey: 0x01, RecruitedByKey: 0x01, Riders: 500, Warriors: 600, Direction: enums.North},
	{ID: 28, Name: "Utarg", Title: "the Utarg Of Utarg", Race: enums.Targ, X: 59, Y: 34, Life: 180, Energy: 64, Strength: 20, CourageBase: 80, RecruitingKey: 0x00, RecruitedByKey: 0x04, Riders: 1000, Warriors: 0, Direction: enums.West},
	{ID: 29, Name: "Fawkrin", Title: "Fawkrin the Skulkrin", Race: enums.Skulkrin, X: 1, Y: 10, Life: 200, Energy: 64, Strength: 1, CourageBase: 30, RecruitingKey: 0x00, RecruitedByKey: 0x20, Riders: 0, Warriors: 0, Direction: enums.East},
	{ID: 30, Name: "Lorgrim", Title: "Lorgrim the Wise", Race: enums.Wise, X: 62, Y: 0, Life: 200, Energy: 64, Strength: 20, CourageBase: 70, RecruitingKey: 0x7f, RecruitedByKey: 0x10, Riders: 0, Warriors: 0, Direction: enums.South},
	{ID: 31, Name: "Farflame", Title: "Farflame the Dragonlord", Race: enums.Dragon, X: 12, Y: 23, Life: 200, Energy: 64, Strength: 100, CourageBase: 127, RecruitingKey: 0x00, RecruitedByKey: 0x40, Riders: 0, Warriors: 0, Direction: enums.Southeast},
}

// GuardSeed is one of the static guard armies bound to a keep or citadel.
type GuardSeed struct {
	Race    enums.Race
	HowMany int
	Kind    enums.UnitKind
	X, Y    int
}

// GuardRoster holds the 102 static guard armies, in canonical order.
var GuardRoster = []GuardSeed{
	{Race: enums.Free, HowMany: 600, Kind: enums.Warriors, X: 8, Y: 0},
	{Race: enums.Free, HowMany: 200, Kind: enums.Riders, X: 46, Y: 3},
	{Race: enums.Foul, HowMany: 400, Kind: enums.Warriors, X: 28, Y: 4},
	{Race: enums.Foul, HowMany: 1000, Kind: enums.Warriors, X: 22, Y: 5},
	{Race: enums.Foul, HowMany: 300, Kind: enums.Riders, X: 32, Y: 6},
	{Race: enums.Foul, HowMany: 500, Kind: enums.Warriors, X: 23, Y: 7},
	{Race: enums.Foul, HowMany: 1200, Kind: enums.Riders, X: 29, Y: 7},
	{Race: enums.Foul, HowMany: 1100, Kind: enums.Warriors, X: 37, Y: 7},
	{Race: enums.Foul, HowMany: 400, Kind: enums.Riders, X: 40, Y: 8},
	{Race: enums.Free, HowMany: 300, Kind: enums.Warriors, X: 57, Y: 8},
	{Race: enums.Foul, HowMany: 500, Kind: enums.Warriors, X: 39, Y: 9},
	{Race: enums.Fey, HowMany: 200, Kind: enums.Warriors, X: 11, Y: 10},
	{Race: enums.Foul, HowMany: 300, Kind: enums.Warriors, X: 21, Y: 11},
	{Race: enums.Foul, HowMany: 250, Kind: enums.Warriors, X: 25, Y: 11},
	{Race: enums.Foul, HowMany: 1000, Kind: enums.Riders, X: 29, Y: 12},
	{Race: enums.Foul, HowMany: 300, Kind: enums.Riders, X: 36, Y: 12},
	{Race: enums.Free, HowMany: 200, Kind: enums.Riders, X: 51, Y: 12},
	{Race: enums.Free, HowMany: 150, Kind: enums.Warriors, X: 62, Y: 12},
	{Race: enums.Foul, HowMany: 200, Kind: enums.Warriors, X: 16, Y: 13},
	{Race: enums.Free, HowMany: 300, Kind: enums.Warriors, X: 55, Y: 13},
	{Race: enums.Free, HowMany: 700, Kind: enums.Warriors, X: 57, Y: 15},
	{Race: enums.Foul, HowMany: 250, Kind: enums.Warriors, X: 14, Y: 16},
	{Race: enums.Foul, HowMany: 500, Kind: enums.Warriors, X: 27, Y: 16},
	{Race: enums.Foul, HowMany: 200, Kind: enums.Warriors, X: 34, Y: 16},
	{Race: enums.Fey, HowMany: 550, Kind: enums.Warriors, X: 42, Y: 16},
	{Race: enums.Free, HowMany: 150, Kind: enums.Riders, X: 52, Y: 16},
	{Race: enums.Foul, HowMany: 250, Kind: enums.Warriors, X: 19, Y: 17},
	{Race: enums.Foul, HowMany: 150, Kind: enums.Warriors, X: 22, Y: 18},
	{Race: enums.Free, HowMany: 250, Kind: enums.Warriors, X: 54, Y: 18},
	{Race: enums.Foul, HowMany: 100, Kind: enums.Warriors, X: 14, Y: 20},
	{Race: enums.Free, HowMany: 300, Kind: enums.Warriors, X: 49, Y: 20},
	{Race: enums.Fey, HowMany: 150, Kind: enums.Warriors, X: 57, Y: 20},
	{Race: enums.Foul, HowMany: 900, Kind: enums.Warriors, X: 18, Y: 21},
	{Race: enums.Foul, HowMany: 100, Kind: enums.Warriors, X: 42, Y: 21},
	{Race: enums.Foul, HowMany: 350, Kind: enums.Warriors, X: 31, Y: 22},
	{Race: enums.Free, HowMany: 400, Kind: enums.Riders, X: 46, Y: 22},
	{Race: enums.Foul, HowMany: 250, Kind: enums.Warriors, X: 39, Y: 23},
	{Race: enums.Free, HowMany: 200, Kind: enums.Warriors, X: 56, Y: 24},
	{Race: enums.Foul, HowMany: 200, Kind: enums.Warriors, X: 32, Y: 25},
	{Race: enums.Free, HowMany: 300, Kind: enums.Warriors, X: 45, Y: 26},
	{Race: enums.Free, HowMany: 150, Kind: enums.Riders, X: 54, Y: 26},
	{Race: enums.Foul, HowMany: 200, Kind: enums.Riders, X: 34, Y: 27},
	{Race: enums.Foul, HowMany: 250, Kind: enums.Warriors, X: 17, Y: 28},
	{Race: enums.Free, HowMany: 250, Kind: enums.Warriors, X: 42, Y: 28},
	{Race: enums.Foul, HowMany: 1000, Kind: enums.Warriors, X: 24, Y: 29},
	{Race: enums.Foul, HowMany: 150, Kind: enums.Warriors, X: 30, Y: 29},
	{Race: enums.Free, HowMany: 150, Kind: enums.Riders, X: 51, Y: 29},
	{Race: enums.Free, HowMany: 600, Kind: enums.Riders, X: 57, Y: 29},
	{Race: enums.Targ, HowMany: 200, Kind: enums.Riders, X: 55, Y: 31},
	{Race: enums.Foul, HowMany: 300, Kind: enums.Warriors, X: 21, Y: 32},
	{Race: enums.Foul, HowMany: 300, Kind: enums.Warriors, X: 23, Y: 32},
	{Race: enums.Free, HowMany: 700, Kind: enums.Warriors, X: 43, Y: 32},
	{Race: enums.Free, HowMany: 250, Kind: enums.Warriors, X: 13, Y: 33},
	{Race: enums.Free, HowMany: 150, Kind: enums.Warriors, X: 34, Y: 33},
	{Race: enums.Free, HowMany: 100, Kind: enums.Riders, X: 30, Y: 34},
	{Race: enums.Targ, HowMany: 350, Kind: enums.Riders, X: 59, Y: 34},
	{Race: enums.Free, HowMany: 400, Kind: enums.Warriors, X: 21, Y: 36},
	{Race: enums.Free, HowMany: 150, Kind: enums.Warriors, X: 54, Y: 38},
	{Race: enums.Free, HowMany: 200, Kind: enums.Warriors, X: 27, Y: 39},
	{Race: enums.Free, HowMany: 200, Kind: enums.Warriors, X: 22, Y: 40},
	{Race: enums.Free, HowMany: 200, Kind: enums.Warriors, X: 25, Y: 40},
	{Race: enums.Free, HowMany: 100, Kind: enums.Warriors, X: 48, Y: 40},
	{Race: enums.Free, HowMany: 150, Kind: enums.Riders, X: 42, Y: 41},
	{Race: enums.Fey, HowMany: 100, Kind: enums.Riders, X: 55, Y: 41},
	{Race: enums.Free, HowMany: 250, Kind: enums.Riders, X: 17, Y: 42},
	{Race: enums.Free, HowMany: 750, Kind: enums.Warriors, X: 28, Y: 42},
	{Race: enums.Free, HowMany: 100, Kind: enums.Riders, X: 37, Y: 43},
	{Race: enums.Fey, HowMany: 500, Kind: enums.Warriors, X: 59, Y: 43},
	{Race: enums.Free, HowMany: 550, Kind: enums.Warriors, X: 44, Y: 45},
	{Race: enums.Free, HowMany: 150, Kind: enums.Warriors, X: 29, Y: 46},
	{Race: enums.Free, HowMany: 100, Kind: enums.Riders, X: 42, Y: 46},
	{Race: enums.Free, HowMany: 150, Kind: enums.Warriors, X: 7, Y: 47},
	{Race: enums.Free, HowMany: 250, Kind: enums.Warriors, X: 10, Y: 47},
	{Race: enums.Free, HowMany: 200, Kind: enums.Warriors, X: 48, Y: 48},
	{Race: enums.Free, HowMany: 150, Kind: enums.Riders, X: 21, Y: 49},
	{Race: enums.Free, HowMany: 250, Kind: enums.Riders, X: 45, Y: 49},
	{Race: enums.Free, HowMany: 150, Kind: enums.Warriors, X: 54, Y: 50},
	{Race: enums.Free, HowMany: 200, Kind: enums.Warriors, X: 39, Y: 51},
	{Race: enums.Free, HowMany: 150, Kind: enums.Warriors, X: 42, Y: 51},
	{Race: enums.Free, HowMany: 150, Kind: enums.Warriors, X: 50, Y: 51},
	{Race: enums.Free, HowMany: 200, Kind: enums.Warriors, X: 46, Y: 52},
	{Race: enums.Free, HowMany: 250, Kind: enums.Warriors, X: 12, Y: 54},
	{Race: enums.Free, HowMany: 250, Kind: enums.Warriors, X: 25, Y: 54},
	{Race: enums.Free, HowMany: 200, Kind: enums.Warriors, X: 44, Y: 54},
	{Race: enums.Free, HowMany: 150, Kind: enums.Warriors, X: 55, Y: 54},
	{Race: enums.Free, HowMany: 100, Kind: enums.Riders, X: 7, Y: 55},
	{Race: enums.Free, HowMany: 600, Kind: enums.Riders, X: 10, Y: 55},
	{Race: enums.Free, HowMany: 250, Kind: enums.Warriors, X: 17, Y: 56},
	{Race: enums.Free, HowMany: 150, Kind: enums.Warriors, X: 21, Y: 56},
	{Race: enums.Free, HowMany: 150, Kind: enums.Warriors, X: 37, Y: 56},
	{Race: enums.Free, HowMany: 150, Kind: enums.Warriors, X: 8, Y: 57},
	{Race: enums.Free, HowMany: 200, Kind: enums.Warriors, X: 12, Y: 57},
	{Race: enums.Free, HowMany: 200, Kind: enums.Warriors, X: 39, Y: 58},
	{Race: enums.Free, HowMany: 250, Kind: enums.Warriors, X: 56, Y: 58},
	{Race: enums.Free, HowMany: 150, Kind: enums.Riders, X: 63, Y: 58},
	{Race: enums.Free, HowMany: 300, Kind: enums.Warriors, X: 42, Y: 59},
	{Race: enums.Free, HowMany: 750, Kind: enums.Riders, X: 45, Y: 59},
	{Race: enums.Free, HowMany: 50, Kind: enums.Riders, X: 4, Y: 60},
	{Race: enums.Fey, HowMany: 300, Kind: enums.Riders, X: 33, Y: 60},
	{Race: enums.Free, HowMany: 250, Kind: enums.Riders, X: 23, Y: 60},
	{Race: enums.Free, HowMany: 250, Kind: enums.Warriors, X: 59, Y: 60},
	{Race: enums.Free, HowMany: 200, Kind: enums.Warriors, X: 14, Y: 60},
}

// DoomguardSeedTargetKind distinguishes what a Doomguard's seed target
// refers to: Luxor or Morkin by name, another character by roster id, or
// no target (WANDER).
type DoomguardSeedTargetKind int

const (
	TargetNone DoomguardSeedTargetKind = iota
	TargetLuxor
	TargetMorkin
	TargetCharacter
)

// DoomguardSeed is one of the static doomguard armies present at world start.
type DoomguardSeed struct {
	HowMany         int
	Kind            enums.UnitKind
	Orders          enums.Orders
	TargetKind      DoomguardSeedTargetKind
	TargetCharacterID int // valid only when TargetKind == TargetCharacter
	X, Y            int
}

// DoomguardRoster holds the 46 static doomguard armies, in canonical order.
// All are FOLLOW or WANDER at world start (no GOTO/ROUTE doomguard starts the
// game already in motion toward a route node in the canonical roster).
var DoomguardRoster = []DoomguardSeed{
	{HowMany: 1000, Kind: enums.Riders, Orders: enums.Follow, TargetKind: TargetLuxor, TargetCharacterID: 0, X: 29, Y: 7},
	{HowMany: 1000, Kind: enums.Riders, Orders: enums.Follow, TargetKind: TargetLuxor, TargetCharacterID: 0, X: 29, Y: 7},
	{HowMany: 1000, Kind: enums.Riders, Orders: enums.Follow, TargetKind: TargetLuxor, TargetCharacterID: 0, X: 29, Y: 7},
	{HowMany: 1000, Kind: enums.Riders, Orders: enums.Follow, TargetKind: TargetLuxor, TargetCharacterID: 0, X: 29, Y: 7},
	{HowMany: 1000, Kind: enums.Riders, Orders: enums.Follow, TargetKind: TargetLuxor, TargetCharacterID: 0, X: 29, Y: 7},
	{HowMany: 1000, Kind: enums.Riders, Orders: enums.Follow, TargetKind: TargetLuxor, TargetCharacterID: 0, X: 29, Y: 7},
	{HowMany: 1000, Kind: enums.Riders, Orders: enums.Follow, TargetKind: TargetLuxor, TargetCharacterID: 0, X: 29, Y: 7},
	{HowMany: 1000, Kind: enums.Riders, Orders: enums.Follow, TargetKind: TargetLuxor, TargetCharacterID: 0, X: 29, Y: 7},
	{HowMany: 1000, Kind: enums.Riders, Orders: enums.Follow, TargetKind: TargetLuxor, TargetCharacterID: 0, X: 29, Y: 7},
	{HowMany: 1000, Kind: enums.Riders, Orders: enums.Follow, TargetKind: TargetLuxor, TargetCharacterID: 0, X: 29, Y: 7},
	{HowMany: 1000, Kind: enums.Riders, Orders: enums.Follow, TargetKind: TargetMorkin, TargetCharacterID: 0, X: 29, Y: 7},
	{HowMany: 1000, Kind: enums.Riders, Orders: enums.Follow, TargetKind: TargetCharacter, TargetCharacterID: 2, X: 29, Y: 7},
	{HowMany: 1000, Kind: enums.Riders, Orders: enums.Follow, TargetKind: TargetCharacter, TargetCharacterID: 3, X: 29, Y: 7},
	{HowMany: 1000, Kind: enums.Riders, Orders: enums.Follow, TargetKind: TargetCharacter, TargetCharacterID: 4, X: 29, Y: 7},
	{HowMany: 1000, Kind: enums.Riders, Orders: enums.Follow, TargetKind: TargetCharacter, TargetCharacterID: 5, X: 29, Y: 7},
	{HowMany: 1000, Kind: enums.Riders, Orders: enums.Follow, TargetKind: TargetCharacter, TargetCharacterID: 6, X: 29, Y: 7},
	{HowMany: 1000, Kind: enums.Riders, Orders: enums.Follow, TargetKind: TargetCharacter, TargetCharacterID: 8, X: 29, Y: 7},
	{HowMany: 1000, Kind: enums.Riders, Orders: enums.Follow, TargetKind: TargetCharacter, TargetCharacterID: 9, X: 29, Y: 7},
	{HowMany: 1000, Kind: enums.Riders, Orders: enums.Follow, TargetKind: TargetCharacter, TargetCharacterID: 10, X: 29, Y: 7},
	{HowMany: 1000, Kind: enums.Riders, Orders: enums.Follow, TargetKind: TargetCharacter, TargetCharacterID: 11, X: 29, Y: 7},
	{HowMany: 1000, Kind: enums.Riders, Orders: enums.Follow, TargetKind: TargetCharacter, TargetCharacterID: 13, X: 29, Y: 7},
	{HowMany: 1000, Kind: enums.Riders, Orders: enums.Follow, TargetKind: TargetCharacter, TargetCharacterID: 14, X: 29, Y: 7},
	{HowMany: 1000, Kind: enums.Riders, Orders: enums.Follow, TargetKind: TargetCharacter, TargetCharacterID: 16, X: 29, Y: 7},
	{HowMany: 1000, Kind: enums.Riders, Orders: enums.Follow, TargetKind: TargetCharacter, TargetCharacterID: 19, X: 29, Y: 7},
	{HowMany: 1000, Kind: enums.Riders, Orders: enums.Follow, TargetKind: TargetCharacter, TargetCharacterID: 20, X: 29, Y: 7},
	{HowMany: 1000, Kind: enums.Riders, Orders: enums.Follow, TargetKind: TargetCharacter, TargetCharacterID: 21, X: 29, Y: 7},
	{HowMany: 1000, Kind: enums.Riders, Orders: enums.Follow, TargetKind: TargetCharacter, TargetCharacterID: 22, X: 29, Y: 7},
	{HowMany: 1000, Kind: enums.Riders, Orders: enums.Follow, TargetKind: TargetCharacter, TargetCharacterID: 23, X: 29, Y: 7},
	{HowMany: 1000, Kind: enums.Riders, Orders: enums.Follow, TargetKind: TargetCharacter, TargetCharacterID: 24, X: 29, Y: 7},
	{HowMany: 1000, Kind: enums.Riders, Orders: enums.Follow, TargetKind: TargetCharacter, TargetCharacterID: 25, X: 29, Y: 7},
	{HowMany: 1000, Kind: enums.Riders, Orders: enums.Follow, TargetKind: TargetCharacter, TargetCharacterID: 26, X: 29, Y: 7},
	{HowMany: 1000, Kind: enums.Riders, Orders: enums.Follow, TargetKind: TargetCharacter, TargetCharacterID: 27, X: 29, Y: 7},
	{HowMany: 1000, Kind: enums.Riders, Orders: enums.Follow, TargetKind: TargetMorkin, TargetCharacterID: 0, X: 29, Y: 7},
	{HowMany: 1000, Kind: enums.Riders, Orders: enums.Follow, TargetKind: TargetMorkin, TargetCharacterID: 0, X: 29, Y: 7},
	{HowMany: 1000, Kind: enums.Riders, Orders: enums.Wander, TargetKind: TargetNone, TargetCharacterID: 0, X: 7, Y: 21},
	{HowMany: 1000, Kind: enums.Riders, Orders: enums.Wander, TargetKind: TargetNone, TargetCharacterID: 0, X: 27, Y: 16},
	{HowMany: 1000, Kind: enums.Riders, Orders: enums.Wander, TargetKind: TargetNone, TargetCharacterID: 0, X: 40, Y: 8},
	{HowMany: 1000, Kind: enums.Riders, Orders: enums.Wander, TargetKind: TargetNone, TargetCharacterID: 0, X: 39, Y: 23},
	{HowMany: 1000, Kind: enums.Riders, Orders: enums.Wander, TargetKind: TargetNone, TargetCharacterID: 0, X: 21, Y: 32},
	{HowMany: 1000, Kind: enums.Riders, Orders: enums.Wander, TargetKind: TargetNone, TargetCharacterID: 0, X: 23, Y: 32},
	{HowMany: 1000, Kind: enums.Warriors, Orders: enums.Wander, TargetKind: TargetNone, TargetCharacterID: 0, X: 17, Y: 28},
	{HowMany: 1000, Kind: enums.Warriors, Orders: enums.Wander, TargetKind: TargetNone, TargetCharacterID: 0, X: 18, Y: 3},
	{HowMany: 1000, Kind: enums.Warriors, Orders: enums.Wander, TargetKind: TargetNone, TargetCharacterID: 0, X: 30, Y: 29},
	{HowMany: 1000, Kind: enums.Warriors, Orders: enums.Wander, TargetKind: TargetNone, TargetCharacterID: 0, X: 16, Y: 13},
	{HowMany: 1000, Kind: enums.Warriors, Orders: enums.Wander, TargetKind: TargetNone, TargetCharacterID: 0, X: 31, Y: 22},
	{HowMany: 1000, Kind: enums.Warriors, Orders: enums.Wander, TargetKind: TargetNone, TargetCharacterID: 0, X: 6, Y: 37},
}
