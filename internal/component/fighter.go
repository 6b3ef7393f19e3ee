package component

// DeathBehavior selects the transition applied when a fighter's HP runs out.
type DeathBehavior uint8

const (
	DeathNone    DeathBehavior = iota // hp may drop, nothing happens
	DeathPlayer                       // game over
	DeathMonster                      // becomes inert remains
)

// Fighter holds the combat stats of an entity.
type Fighter struct {
	HP      int
	maxHP   int
	Defense int
	Power   int
	Death   DeathBehavior
	Dead    bool // set once the death transition has fired
}

// NewFighter returns a fighter at full health.
func NewFighter(hp, defense, power int, death DeathBehavior) *Fighter {
	return &Fighter{HP: hp, maxHP: hp, Defense: defense, Power: power, Death: death}
}

// MaxHP returns the hit points the fighter was created with.
func (f *Fighter) MaxHP() int { return f.maxHP }
