package domain

import "errors"

// Error message string constants - single source of truth for error messages
// Use these in assert.Contains() checks when testing error messages
const (
	// Battle sequencing errors
	ErrMsgNoOpponent     = "no opponent available for battle"
	ErrMsgNoPlayer       = "no player available for battle"
	ErrMsgNoActiveBattle = "no battle to end"
	ErrMsgBattleNotEnded = "battle has not been resolved"
	ErrMsgGameOver       = "game is over"
	ErrMsgGameNotStarted = "game has not been started"
	ErrMsgWrongPhase     = "action not allowed in current phase"

	// Item errors
	ErrMsgItemNotFound = "item not found"

	// Economy errors
	ErrMsgInsufficientFunds = "insufficient funds"
	ErrMsgNotSellable       = "item is not sellable"
	ErrMsgInventoryFull     = "inventory is full"

	// Skill errors
	ErrMsgUnknownSkill            = "skill not found"
	ErrMsgSkillMaxed              = "skill is already at max level"
	ErrMsgInsufficientSkillPoints = "not enough skill points"
	ErrMsgUnknownDifficulty       = "unknown difficulty"
	ErrMsgDifficultyLocked        = "difficulty is locked"

	// Input errors
	ErrMsgInvalidInput = "invalid input"
)

var (
	// ErrNoOpponent is returned when a battle is started without an opponent
	ErrNoOpponent = errors.New(ErrMsgNoOpponent)
	// ErrNoPlayer is returned when a battle is started without a player
	ErrNoPlayer = errors.New(ErrMsgNoPlayer)
	// ErrNoActiveBattle is returned when a round is ended before a battle ran
	ErrNoActiveBattle = errors.New(ErrMsgNoActiveBattle)
	// ErrBattleNotEnded is returned when a shop action is attempted before the round was closed
	ErrBattleNotEnded = errors.New(ErrMsgBattleNotEnded)
	// ErrGameOver is returned for any action after the game finished
	ErrGameOver = errors.New(ErrMsgGameOver)
	// ErrGameNotStarted is returned when a session has no game
	ErrGameNotStarted = errors.New(ErrMsgGameNotStarted)
	// ErrWrongPhase is returned when an action does not fit the current phase
	ErrWrongPhase = errors.New(ErrMsgWrongPhase)

	// ErrItemNotFound is returned when an item lookup fails
	ErrItemNotFound = errors.New(ErrMsgItemNotFound)

	// ErrInsufficientFunds is returned when a player cannot afford an item
	ErrInsufficientFunds = errors.New(ErrMsgInsufficientFunds)
	// ErrNotSellable is returned when selling a broken item
	ErrNotSellable = errors.New(ErrMsgNotSellable)
	// ErrInventoryFull is returned when a roster already holds the maximum number of items
	ErrInventoryFull = errors.New(ErrMsgInventoryFull)

	// ErrUnknownSkill is returned for ids missing from the skill tree
	ErrUnknownSkill = errors.New(ErrMsgUnknownSkill)
	// ErrSkillMaxed is returned when a skill is already at its max level
	ErrSkillMaxed = errors.New(ErrMsgSkillMaxed)
	// ErrInsufficientSkillPoints is returned when a skill costs more points than available
	ErrInsufficientSkillPoints = errors.New(ErrMsgInsufficientSkillPoints)
	// ErrUnknownDifficulty is returned for difficulty ids without a preset
	ErrUnknownDifficulty = errors.New(ErrMsgUnknownDifficulty)
	// ErrDifficultyLocked is returned when a torment level is above the unlocked range
	ErrDifficultyLocked = errors.New(ErrMsgDifficultyLocked)

	// ErrInvalidInput is returned for malformed arguments
	ErrInvalidInput = errors.New(ErrMsgInvalidInput)
)
