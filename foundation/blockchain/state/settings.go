package state

import "fmt"

// errorInvalidParameter wraps ErrInvalidParameter with detail about
// the rejected value.
func errorInvalidParameter(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrInvalidParameter, fmt.Sprintf(format, args...))
}

// SetDifficulty updates the mining difficulty for the next mining
// operation. The value must be a positive integer.
func (s *State) SetDifficulty(difficulty int) error {
	if difficulty <= 0 {
		return errorInvalidParameter("difficulty must be a positive integer, got %d", difficulty)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.settings.Difficulty = uint(difficulty)
	s.evHandler("state: SetDifficulty: difficulty[%d]", difficulty)

	return nil
}

// SetReward updates the mining reward for the next mining operation.
// The value must not be negative.
func (s *State) SetReward(reward float64) error {
	if reward < 0 {
		return errorInvalidParameter("mining reward must not be negative, got %g", reward)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.settings.MiningReward = reward
	s.evHandler("state: SetReward: reward[%g]", reward)

	return nil
}
