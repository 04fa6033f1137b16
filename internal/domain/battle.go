package domain

// Side identifies a participant in a battle
type Side string

const (
	SidePlayer   Side = "player"
	SideOpponent Side = "opponent"
)

// Other returns the opposing side
func (s Side) Other() Side {
	if s == SidePlayer {
		return SideOpponent
	}
	return SidePlayer
}

// Winner is the verdict of a battle. The zero value means undetermined.
type Winner string

const (
	WinnerUndetermined Winner = ""
	WinnerPlayer       Winner = "player"
	WinnerOpponent     Winner = "opponent"
	WinnerDraw         Winner = "draw"
)

// BattleStatus is the state of the battle state machine
type BattleStatus string

const (
	BattleNotStarted BattleStatus = "not_started"
	BattleRunning    BattleStatus = "running"
	BattleComplete   BattleStatus = "complete"
)

// BattleEventType classifies log entries
type BattleEventType string

const (
	BattleEventAttack           BattleEventType = "attack"
	BattleEventEffect           BattleEventType = "effect"
	BattleEventHeal             BattleEventType = "heal"
	BattleEventSpeedIncrease    BattleEventType = "speed_increase"
	BattleEventDamageMultiplier BattleEventType = "damage_multiplier"
	BattleEventTurnStart        BattleEventType = "turn_start"
	BattleEventTurnEnd          BattleEventType = "turn_end"
	BattleEventBattleEnd        BattleEventType = "battle_end"
)

// BattleEventDetail attributes a numeric contribution to an item or effect
type BattleEventDetail struct {
	ItemID       string  `json:"item_id,omitempty"`
	ItemName     string  `json:"item_name,omitempty"`
	ItemEmoji    string  `json:"item_emoji,omitempty"`
	RawDamage    int     `json:"raw_damage,omitempty"`
	BlockAmount  int     `json:"block_amount,omitempty"`
	BlockPercent float64 `json:"block_percent,omitempty"`
	HealAmount   int     `json:"heal_amount,omitempty"`
	FinalDamage  int     `json:"final_damage,omitempty"`
	Description  string  `json:"description"`
}

// BattleEvent is an immutable log record
type BattleEvent struct {
	Turn       int                 `json:"turn"`
	Attacker   Side                `json:"attacker"`
	Type       BattleEventType     `json:"type"`
	Details    []BattleEventDetail `json:"details"`
	PlayerHP   int                 `json:"player_hp"`
	OpponentHP int                 `json:"opponent_hp"`
	Message    string              `json:"message"`
}

// BattleDelta is what one side dealt, received and blocked during a battle
type BattleDelta struct {
	DamageDealt    int `json:"damage_dealt"`
	DamageReceived int `json:"damage_received"`
	DamageBlocked  int `json:"damage_blocked"`
}

// BattleState is the full record of one battle. Player and Opponent are the
// battle clones and hold the post-battle item state.
type BattleState struct {
	ID                string        `json:"id"`
	Round             int           `json:"round"`
	Turn              int           `json:"turn"`
	Player            *Player       `json:"player"`
	Opponent          *Player       `json:"opponent"`
	Events            []BattleEvent `json:"events"`
	Status            BattleStatus  `json:"status"`
	Winner            Winner        `json:"winner"`
	PlayerHPHistory   []int         `json:"player_hp_history"`
	OpponentHPHistory []int         `json:"opponent_hp_history"`
	SpeedMultiplier   float64       `json:"speed_multiplier"`
	DamageMultiplier  float64       `json:"damage_multiplier"`
	PlayerDelta       BattleDelta   `json:"player_delta"`
	OpponentDelta     BattleDelta   `json:"opponent_delta"`
}

// IsComplete reports whether the battle reached a verdict
func (b *BattleState) IsComplete() bool {
	return b.Status == BattleComplete
}

// Participant returns the clone fighting on the given side
func (b *BattleState) Participant(s Side) *Player {
	if s == SidePlayer {
		return b.Player
	}
	return b.Opponent
}

// Delta returns a pointer to the stat delta of the given side
func (b *BattleState) Delta(s Side) *BattleDelta {
	if s == SidePlayer {
		return &b.PlayerDelta
	}
	return &b.OpponentDelta
}
