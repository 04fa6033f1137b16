package domain

// Game rule defaults. Settings loaded by the config package override these at runtime.
const (
	MaxRounds     = 15
	MaxItems      = 15
	MaxLives      = 5
	MaxBattleTurn = 75

	MaxDefensePercent = 0.9

	SpeedIncreaseInterval = 5
	SpeedIncreaseValue    = 0.1

	DamageMultiplierStart = 20
	DamageMultiplierValue = 0.2

	StartingHP      = 100
	StartingMoney   = 200
	StartingAttack  = 10
	StartingDefense = 5
	MoneyPerRound   = 100

	ShopSize = 9
)

// GamePhase is where a session currently is
type GamePhase string

const (
	PhaseMenu     GamePhase = "menu"
	PhaseShop     GamePhase = "shop"
	PhaseBattle   GamePhase = "battle"
	PhaseGameOver GamePhase = "game_over"
)
