package statemachine

import (
	"errors"

	"restaurant-management-api/models"
)

// Transition defines a state change staff may perform from the order board
type Transition struct {
	From models.OrderStatus
	To   models.OrderStatus
}

// validTransitions is the authoritative state machine definition.
// The graph is deliberately open: orders follow new → on_cook → completed in
// the happy path, but kitchen staff use the board for corrective re-marking,
// so every status stays reachable from every other (completed → new re-opens
// an order, cancelled → on_cook resumes one, and so on).
var validTransitions = []Transition{
	// Forward pipeline
	{From: models.StatusNew, To: models.StatusOnCook},
	{From: models.StatusOnCook, To: models.StatusCompleted},
	// Cancellation from any state
	{From: models.StatusNew, To: models.StatusCancelled},
	{From: models.StatusOnCook, To: models.StatusCancelled},
	{From: models.StatusCompleted, To: models.StatusCancelled},
	// Corrective re-marking
	{From: models.StatusNew, To: models.StatusCompleted},
	{From: models.StatusOnCook, To: models.StatusNew},
	{From: models.StatusCompleted, To: models.StatusNew},
	{From: models.StatusCompleted, To: models.StatusOnCook},
	{From: models.StatusCancelled, To: models.StatusNew},
	{From: models.StatusCancelled, To: models.StatusOnCook},
	{From: models.StatusCancelled, To: models.StatusCompleted},
}

// statusLabels maps statuses to the labels shown on the board
var statusLabels = map[models.OrderStatus]string{
	models.StatusNew:       "New Order",
	models.StatusOnCook:    "On Cook",
	models.StatusCompleted: "Complete",
	models.StatusCancelled: "Cancelled",
}

// transitionKey is used to look up valid transitions quickly
type transitionKey struct {
	From models.OrderStatus
	To   models.OrderStatus
}

// Build a lookup map for O(1) validation
var transitionMap = func() map[transitionKey]bool {
	m := make(map[transitionKey]bool)
	for _, t := range validTransitions {
		m[transitionKey{t.From, t.To}] = true
	}
	return m
}()

// AllStatuses returns every status an order can hold, in board order.
func AllStatuses() []models.OrderStatus {
	return []models.OrderStatus{
		models.StatusNew,
		models.StatusOnCook,
		models.StatusCompleted,
		models.StatusCancelled,
	}
}

// IsValidStatus reports whether s names a known order status.
func IsValidStatus(s models.OrderStatus) bool {
	_, ok := statusLabels[s]
	return ok
}

// StatusLabel returns the display label for a status ("on_cook" → "On Cook").
func StatusLabel(s models.OrderStatus) string {
	return statusLabels[s]
}

// ValidTransitionsFrom returns all valid next states from a given state
func ValidTransitionsFrom(status models.OrderStatus) []models.OrderStatus {
	var nexts []models.OrderStatus
	seen := map[models.OrderStatus]bool{}
	for _, t := range validTransitions {
		if t.From == status && !seen[t.To] {
			nexts = append(nexts, t.To)
			seen[t.To] = true
		}
	}
	return nexts
}

// CanTransition checks whether an order may move from one state to another.
// Re-marking an order with its current status is a legal no-op.
func CanTransition(from, to models.OrderStatus) error {
	if !IsValidStatus(to) {
		return errors.New("unknown status '" + string(to) + "'")
	}
	if from == to {
		return nil
	}
	if transitionMap[transitionKey{From: from, To: to}] {
		return nil
	}
	return errors.New(
		"invalid transition: " + string(from) + " to " + string(to) +
			" is not allowed. Valid transitions from " + string(from) +
			" are: " + describeValidFrom(from),
	)
}

func describeValidFrom(status models.OrderStatus) string {
	nexts := ValidTransitionsFrom(status)
	if len(nexts) == 0 {
		return "none (terminal state)"
	}
	result := ""
	for i, s := range nexts {
		if i > 0 {
			result += ", "
		}
		result += string(s)
	}
	return result
}

// GetAllTransitions returns the full state machine for documentation
func GetAllTransitions() []Transition {
	return validTransitions
}
