package config

// StateID identifies the current step of an entity's state machine.
type StateID int

const (
	StateNone StateID = iota

	// Player swing: Idle -> Windup -> ActiveHit -> Recovery -> Idle
	Idle
	Running
	Windup
	ActiveHit
	Recovery

	// Enemy AI
	StateChase
	StateHold
)

var stateNames = map[StateID]string{
	StateNone:  "none",
	Idle:       "idle",
	Running:    "running",
	Windup:     "windup",
	ActiveHit:  "active_hit",
	Recovery:   "recovery",
	StateChase: "chase",
	StateHold:  "hold",
}

func (s StateID) String() string {
	if name, ok := stateNames[s]; ok {
		return name
	}
	return "unknown"
}
