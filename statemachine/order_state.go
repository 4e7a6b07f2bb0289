package statemachine

import (
	"errors"

	"bistro-api/models"
)

// AllStatuses is the closed set of order states
var AllStatuses = []models.OrderStatus{
	models.StatusPending,
	models.StatusConfirmed,
	models.StatusPreparing,
	models.StatusReady,
	models.StatusDelivered,
	models.StatusCancelled,
}

// nextStates is the authoritative lifecycle definition:
// pending → confirmed → preparing → ready → delivered, with
// cancellation possible while the order is still pending or confirmed.
var nextStates = map[models.OrderStatus][]models.OrderStatus{
	models.StatusPending:   {models.StatusConfirmed, models.StatusCancelled},
	models.StatusConfirmed: {models.StatusPreparing, models.StatusCancelled},
	models.StatusPreparing: {models.StatusReady},
	models.StatusReady:     {models.StatusDelivered},
	models.StatusDelivered: {},
	models.StatusCancelled: {},
}

// IsValidStatus reports whether s is one of the six defined states.
// Admin status updates are gated on membership only, not on the
// transition table; an admin may jump states directly.
func IsValidStatus(s models.OrderStatus) bool {
	_, ok := nextStates[s]
	return ok
}

// IsTerminal reports whether no further transitions exist from s
func IsTerminal(s models.OrderStatus) bool {
	return len(nextStates[s]) == 0 && IsValidStatus(s)
}

// ValidTransitionsFrom returns all valid next states from a given state
func ValidTransitionsFrom(s models.OrderStatus) []models.OrderStatus {
	return nextStates[s]
}

// CanCancel checks whether an order in the given state may still be
// cancelled by its owner or an admin
func CanCancel(s models.OrderStatus) error {
	if s == models.StatusPending || s == models.StatusConfirmed {
		return nil
	}
	return errors.New(
		"cannot cancel an order in state '" + string(s) +
			"'. Cancellation is only allowed while pending or confirmed",
	)
}

// Transition describes one edge of the lifecycle, for documentation
type Transition struct {
	From models.OrderStatus `json:"from"`
	To   models.OrderStatus `json:"to"`
}

// AllTransitions returns the full lifecycle edge list
func AllTransitions() []Transition {
	var out []Transition
	for _, from := range AllStatuses {
		for _, to := range nextStates[from] {
			out = append(out, Transition{From: from, To: to})
		}
	}
	return out
}
