package outcome

type State string

const (
	StatePending   = State("pending")
	StateFulfilled = State("fulfilled")
	StateRejected  = State("rejected")
)

// Initializer receives the resolve and reject capabilities of a new Outcome.
// It runs synchronously, inside New, before New returns.
type Initializer func(resolve Resolver, reject Rejector)

type Resolver func(value interface{})
type Rejector func(reason error)

// FulfillHandler reacts to a fulfilled outcome. A non-nil err rejects the
// downstream outcome; otherwise result resolves it (and is adopted when it
// is itself an *Outcome).
type FulfillHandler func(value interface{}) (result interface{}, err error)

// RejectHandler reacts to a rejected outcome. Returning a nil err recovers
// the chain: the downstream outcome fulfills with result.
type RejectHandler func(reason error) (result interface{}, err error)

type FinallyHandler func()

// Scheduler dispatches continuation reactions. Reactions are never run inside
// resolve, reject or Then; they are handed to the scheduler after the
// registering call has completed.
type Scheduler interface {
	Schedule(task func())
}

type Outcomer interface {
	Then(onFulfilled FulfillHandler, onRejected RejectHandler) *Outcome
	Catch(onRejected RejectHandler) *Outcome
	Finally(handler FinallyHandler) *Outcome
	Wait()
	Result() (interface{}, error)
	State() State
}
