package game

import (
	"time"

	"github.com/osse101/EmojiBattler_Go/internal/domain"
)

// Stats summarizes a game. Draws count as won battles, as they do for
// lives and skill points.
type Stats struct {
	TotalBattles        int           `json:"total_battles"`
	BattlesWon          int           `json:"battles_won"`
	BattlesLost         int           `json:"battles_lost"`
	Draws               int           `json:"draws"`
	LivesLost           int           `json:"lives_lost"`
	LivesSaved          int           `json:"lives_saved"`
	LivesRemaining      int           `json:"lives_remaining"`
	TotalDamageDealt    int           `json:"total_damage_dealt"`
	TotalDamageReceived int           `json:"total_damage_received"`
	TotalDamageBlocked  int           `json:"total_damage_blocked"`
	TotalMoneySpent     int           `json:"total_money_spent"`
	TotalItemsBought    int           `json:"total_items_bought"`
	CurrentRound        int           `json:"current_round"`
	RoundsSurvived      int           `json:"rounds_survived"`
	SkillPoints         int           `json:"skill_points"`
	LongestWinStreak    int           `json:"longest_win_streak"`
	Duration            time.Duration `json:"duration"`
}

// Stats returns the statistics of the current or finished game
func (s *Session) Stats() Stats {
	if s.player == nil {
		return Stats{}
	}
	st := Stats{
		TotalBattles:        len(s.timeline),
		LivesRemaining:      s.player.Stats.Lives,
		TotalDamageDealt:    s.player.Stats.DamageDealt,
		TotalDamageReceived: s.player.Stats.DamageReceived,
		TotalDamageBlocked:  s.player.Stats.DamageBlocked,
		TotalMoneySpent:     s.player.Stats.MoneySpent,
		TotalItemsBought:    s.player.Stats.ItemsBought,
		CurrentRound:        s.round,
		RoundsSurvived:      len(s.timeline),
		SkillPoints:         s.skillPoints,
	}
	for _, r := range s.timeline {
		if r.PlayerWon {
			st.BattlesWon++
		} else {
			st.BattlesLost++
		}
		if r.Winner == domain.WinnerDraw {
			st.Draws++
		}
		if r.LostLife {
			st.LivesLost++
		}
		if r.LifeSaved {
			st.LivesSaved++
		}
		st.LongestWinStreak = max(st.LongestWinStreak, r.ConsecutiveWins)
	}

	end := s.endedAt
	if end.IsZero() {
		end = s.now()
	}
	st.Duration = end.Sub(s.startedAt)
	return st
}
