package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Event Metrics
var (
	EventsPublished = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameEventsPublished,
			Help: HelpTextEventsPublished,
		},
		[]string{LabelType},
	)

	EventHandlerErrors = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameEventHandlerErrors,
			Help: HelpTextEventHandlerErrors,
		},
		[]string{LabelType},
	)
)

// Battle Metrics
var (
	BattlesCompleted = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameBattlesCompleted,
			Help: HelpTextBattlesCompleted,
		},
		[]string{LabelWinner},
	)

	BattleTurns = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    MetricNameBattleTurns,
			Help:    HelpTextBattleTurns,
			Buckets: BattleTurnBuckets,
		},
	)

	DamageDealt = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameDamageDealt,
			Help: HelpTextDamageDealt,
		},
	)

	DamageReceived = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameDamageReceived,
			Help: HelpTextDamageReceived,
		},
	)

	LivesLost = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameLivesLost,
			Help: HelpTextLivesLost,
		},
	)
)

// Economy Metrics
var (
	ItemsSold = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameItemsSold,
			Help: HelpTextItemsSold,
		},
		[]string{LabelRarity},
	)

	ItemsBought = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameItemsBought,
			Help: HelpTextItemsBought,
		},
		[]string{LabelRarity},
	)

	ItemsBroken = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameItemsBroken,
			Help: HelpTextItemsBroken,
		},
		[]string{LabelItem},
	)

	MoneyEarned = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameMoneyEarned,
			Help: HelpTextMoneyEarned,
		},
	)

	MoneySpent = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameMoneySpent,
			Help: HelpTextMoneySpent,
		},
	)

	RoundIncome = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameRoundIncome,
			Help: HelpTextRoundIncome,
		},
	)

	RoundsPlayed = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameRoundsPlayed,
			Help: HelpTextRoundsPlayed,
		},
	)
)

// Game Metrics
var (
	GamesCompleted = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameGamesCompleted,
			Help: HelpTextGamesCompleted,
		},
		[]string{LabelOutcome, LabelDifficulty},
	)
)
