package log

// EventType enumerates all observable combat events.
type EventType int

const (
	EventNewTurn EventType = iota
	EventPhaseChange
	EventDraw
	EventRoll
	EventAllocate
	EventUnallocate
	EventActivate
	EventActivateFailed
	EventDamage
	EventDefense
	EventStatusApplied
	EventStatusDecay
	EventCardDamaged
	EventDestroy
	EventMalfunction
	EventRustDamage
	EventBlazingBurn
	EventFusedLock
	EventFusedCharge
	EventAbilitySelected
	EventAbilityConfirmed
	EventAbilityCancelled
	EventScavengeToggle
	EventScavengeConfirm
	EventWin
)

func (e EventType) String() string {
	switch e {
	case EventNewTurn:
		return "NewTurn"
	case EventPhaseChange:
		return "PhaseChange"
	case EventDraw:
		return "Draw"
	case EventRoll:
		return "Roll"
	case EventAllocate:
		return "Allocate"
	case EventUnallocate:
		return "Unallocate"
	case EventActivate:
		return "Activate"
	case EventActivateFailed:
		return "ActivateFailed"
	case EventDamage:
		return "Damage"
	case EventDefense:
		return "Defense"
	case EventStatusApplied:
		return "StatusApplied"
	case EventStatusDecay:
		return "StatusDecay"
	case EventCardDamaged:
		return "CardDamaged"
	case EventDestroy:
		return "Destroy"
	case EventMalfunction:
		return "Malfunction"
	case EventRustDamage:
		return "RustDamage"
	case EventBlazingBurn:
		return "BlazingBurn"
	case EventFusedLock:
		return "FusedLock"
	case EventFusedCharge:
		return "FusedCharge"
	case EventAbilitySelected:
		return "AbilitySelected"
	case EventAbilityConfirmed:
		return "AbilityConfirmed"
	case EventAbilityCancelled:
		return "AbilityCancelled"
	case EventScavengeToggle:
		return "ScavengeToggle"
	case EventScavengeConfirm:
		return "ScavengeConfirm"
	case EventWin:
		return "Win"
	default:
		return "Unknown"
	}
}

// GameEvent represents a single observable event in a combat.
type GameEvent struct {
	Seq     int       // monotonic sequence number
	Turn    int       // which turn (1-based)
	Phase   string    // current phase name (e.g. "Power-Up Phase")
	Side    int       // acting side (0 = player, 1 = enemy)
	Type    EventType // event type
	Card    string    // card name (if applicable)
	Details string    // human-readable detail string
}
