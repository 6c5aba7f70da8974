package outcome

import "sync"

// All returns an Outcome that fulfills with the values of all inputs, in
// input order, once every input fulfills, or rejects with the first rejection
// among them. With no inputs it fulfills immediately with an empty slice.
func All(outcomes ...*Outcome) *Outcome {
	result := newOutcome(schedulerOf(outcomes))

	if 0 == len(outcomes) {
		result.settle(StateFulfilled, []interface{}{}, nil)
		return result
	}

	var mutex sync.Mutex
	values := make([]interface{}, len(outcomes))
	remaining := len(outcomes)

	for i, o := range outcomes {
		i := i

		o.onSettled(func(state State, value interface{}, reason error) {
			if StateRejected == state {
				result.reject(reason)
				return
			}

			mutex.Lock()
			values[i] = value
			remaining--
			last := 0 == remaining
			mutex.Unlock()

			if last {
				result.settle(StateFulfilled, values, nil)
			}
		})
	}

	return result
}

// Any returns an Outcome that fulfills with the first fulfillment among the
// inputs, or rejects with an AggregateError once every input has rejected.
// With no inputs it stays pending forever.
func Any(outcomes ...*Outcome) *Outcome {
	result := newOutcome(schedulerOf(outcomes))

	var mutex sync.Mutex
	reasons := make([]error, len(outcomes))
	remaining := len(outcomes)

	for i, o := range outcomes {
		i := i

		o.onSettled(func(state State, value interface{}, reason error) {
			if StateFulfilled == state {
				result.settle(StateFulfilled, value, nil)
				return
			}

			mutex.Lock()
			reasons[i] = reason
			remaining--
			last := 0 == remaining
			mutex.Unlock()

			if last {
				result.reject(newAggregateError(reasons))
			}
		})
	}

	return result
}

// Race returns an Outcome adopting the first settlement of any kind among
// the inputs. With no inputs it stays pending forever.
func Race(outcomes ...*Outcome) *Outcome {
	result := newOutcome(schedulerOf(outcomes))

	for _, o := range outcomes {
		o.onSettled(func(state State, value interface{}, reason error) {
			result.settle(state, value, reason)
		})
	}

	return result
}

func schedulerOf(outcomes []*Outcome) Scheduler {
	if 0 < len(outcomes) {
		return outcomes[0].scheduler
	}

	return Async()
}
