package progression

import (
	"fmt"

	"github.com/osse101/EmojiBattler_Go/internal/domain"
)

// presets holds the AI tuning of every difficulty
var presets = map[domain.DifficultyID]domain.Difficulty{
	domain.DifficultyNormal: {
		ID:                   domain.DifficultyNormal,
		AISkillPoints:        0,
		AIMoneyBonus:         0,
		AIStatMultiplier:     1.0,
		AIOptimalPlayPercent: 0.5,
	},
	domain.DifficultyHard: {
		ID:                   domain.DifficultyHard,
		AISkillPoints:        5,
		AIMoneyBonus:         50,
		AIStatMultiplier:     1.1,
		AIOptimalPlayPercent: 0.7,
	},
	domain.DifficultyExpert: {
		ID:                   domain.DifficultyExpert,
		AISkillPoints:        10,
		AIMoneyBonus:         100,
		AIStatMultiplier:     1.2,
		AIOptimalPlayPercent: 0.85,
	},
	domain.DifficultyMaster: {
		ID:                   domain.DifficultyMaster,
		AISkillPoints:        15,
		AIMoneyBonus:         150,
		AIStatMultiplier:     1.3,
		AIOptimalPlayPercent: 0.95,
	},
	domain.DifficultyTorment: {
		ID:                   domain.DifficultyTorment,
		TormentLevel:         MinTormentLevel,
		AISkillPoints:        20,
		AIMoneyBonus:         200,
		AIStatMultiplier:     1.5,
		AIOptimalPlayPercent: 1.0,
	},
}

// DifficultyOrder lists the presets from easiest to hardest
var DifficultyOrder = []domain.DifficultyID{
	domain.DifficultyNormal,
	domain.DifficultyHard,
	domain.DifficultyExpert,
	domain.DifficultyMaster,
	domain.DifficultyTorment,
}

// Preset returns the tuning for id. tormentLevel is only read for torment
// and must be at least 1 there.
func Preset(id domain.DifficultyID, tormentLevel int) (domain.Difficulty, error) {
	d, ok := presets[id]
	if !ok {
		return domain.Difficulty{}, fmt.Errorf(ErrMsgDifficultyNameFmt, id, domain.ErrUnknownDifficulty)
	}
	if id == domain.DifficultyTorment {
		if tormentLevel < MinTormentLevel {
			return domain.Difficulty{}, fmt.Errorf(ErrMsgTormentLevelFmt, tormentLevel, domain.ErrInvalidInput)
		}
		d.TormentLevel = tormentLevel
	}
	return d, nil
}

// CanSelect reports whether d is unlocked. Every preset except torment is
// always open; torment levels open up to two above the highest one beaten.
func CanSelect(d domain.Difficulty, progress domain.DifficultyProgress) bool {
	if d.ID != domain.DifficultyTorment {
		return true
	}
	level := max(d.TormentLevel, MinTormentLevel)
	return level <= progress.Torment+TormentUnlockWindow
}

// Select resolves a preset and checks it against progress
func Select(id domain.DifficultyID, tormentLevel int, progress domain.DifficultyProgress) (domain.Difficulty, error) {
	d, err := Preset(id, tormentLevel)
	if err != nil {
		return domain.Difficulty{}, err
	}
	if !CanSelect(d, progress) {
		return domain.Difficulty{}, fmt.Errorf(ErrMsgTormentLockedFmt, d.TormentLevel, d.TormentLevel-TormentUnlockWindow, domain.ErrDifficultyLocked)
	}
	return d, nil
}

// UpdateDifficultyProgress records a finished game. Losses change nothing.
func UpdateDifficultyProgress(progress domain.DifficultyProgress, d domain.Difficulty, won bool) domain.DifficultyProgress {
	if !won {
		return progress
	}
	switch d.ID {
	case domain.DifficultyNormal:
		progress.Normal = true
	case domain.DifficultyHard:
		progress.Hard = true
	case domain.DifficultyExpert:
		progress.Expert = true
	case domain.DifficultyMaster:
		progress.Master = true
	case domain.DifficultyTorment:
		progress.Torment = max(progress.Torment, d.TormentLevel)
	}
	return progress
}

// SkillPointsForWin is the award for a won battle given the win streak
// including that battle.
//
//	normal:  1 point every 3rd consecutive win
//	hard:    1 point every 2nd consecutive win
//	expert:  1 point per win
//	master:  2 points per win
//	torment: 4 points per win
func SkillPointsForWin(d domain.Difficulty, consecutiveWins int) int {
	if consecutiveWins <= 0 {
		return 0
	}
	switch d.ID {
	case domain.DifficultyNormal:
		if consecutiveWins%NormalWinsPerPoint == 0 {
			return 1
		}
	case domain.DifficultyHard:
		if consecutiveWins%HardWinsPerPoint == 0 {
			return 1
		}
	case domain.DifficultyExpert:
		return ExpertPointsPerWin
	case domain.DifficultyMaster:
		return MasterPointsPerWin
	case domain.DifficultyTorment:
		return TormentPointsPerWin
	}
	return 0
}
