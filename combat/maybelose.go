package combat

import (
	"midnight/entity"
	"midnight/randsrc"
)

// MaybeLose is the shared horse-loss/possible-death roll, used both when
// a character fights a beast unaided and when a battle's free side loses
// to the foul side. If the character is mounted, the horse is lost with
// probability 1/2 (random(2)==0 keeps it); the character then dies if
// random(256) > energy/2 - 64 + life.
func MaybeLose(rng randsrc.Source, char *entity.Character, unit *entity.Unit) {
	if char.OnHorse {
		if rng.Intn(2) != 0 {
			char.OnHorse = false
		}
	}
	threshold := unit.Energy/2 - 64 + char.Life
	if rng.Intn(256) > threshold {
		char.Life = 0
	}
}
