package outcome

import (
	"sync"
	"time"

	"github.com/google/uuid"
)

// adoptable is the capability an outcome-like value must expose to have its
// eventual state adopted by resolve, instead of being wrapped as a plain value.
type adoptable interface {
	onSettled(observer func(state State, value interface{}, reason error))
}

// Outcome is a value that will exist, or an error that will occur, at most
// once, at an unknown future time.
type Outcome struct {
	id        uuid.UUID
	createdAt time.Time
	scheduler Scheduler

	mutex         sync.Mutex
	state         State
	value         interface{}
	reason        error
	settledAt     time.Time
	continuations []continuation
	observers     []func(state State, value interface{}, reason error)
	observed      bool
	reported      bool
	done          chan struct{}
}

// continuation is one registered reaction pair plus the outcome representing
// its result.
type continuation struct {
	onFulfilled FulfillHandler
	onRejected  RejectHandler
	onFinalized FinallyHandler
	next        *Outcome
}

func newOutcome(scheduler Scheduler) *Outcome {
	if nil == scheduler {
		scheduler = Async()
	}

	return &Outcome{
		id:        uuid.New(),
		createdAt: time.Now().UTC(),
		scheduler: scheduler,
		state:     StatePending,
		done:      make(chan struct{}),
	}
}

// New creates a pending Outcome and runs initializer synchronously with its
// resolve and reject capabilities. A nil initializer fails with
// ErrNotAFunction before any asynchronous work begins.
func New(initializer Initializer) (*Outcome, error) {
	return NewOn(Async(), initializer)
}

// NewOn is New with an injected scheduler for continuation dispatch.
func NewOn(scheduler Scheduler, initializer Initializer) (*Outcome, error) {
	if nil == initializer {
		return nil, ErrNotAFunction
	}

	o := newOutcome(scheduler)
	initializer(o.resolve, o.reject)

	return o, nil
}

// Resolve creates an Outcome fulfilled with value, or one adopting value's
// eventual state when value is itself an *Outcome.
func Resolve(value interface{}) *Outcome {
	return ResolveOn(Async(), value)
}

func ResolveOn(scheduler Scheduler, value interface{}) *Outcome {
	o := newOutcome(scheduler)
	o.resolve(value)

	return o
}

// Reject creates an Outcome rejected with reason.
func Reject(reason error) *Outcome {
	return RejectOn(Async(), reason)
}

func RejectOn(scheduler Scheduler, reason error) *Outcome {
	o := newOutcome(scheduler)
	o.reject(reason)

	return o
}

// Then registers a reaction pair, both members optional, and returns a new
// Outcome representing the result of whichever handler runs. Handlers are
// invoked through the scheduler, never inside the Then call itself, even if
// this outcome is already settled.
func (o *Outcome) Then(onFulfilled FulfillHandler, onRejected RejectHandler) *Outcome {
	return o.register(continuation{
		onFulfilled: onFulfilled,
		onRejected:  onRejected,
	})
}

// Catch is sugar for Then(nil, onRejected).
func (o *Outcome) Catch(onRejected RejectHandler) *Outcome {
	return o.Then(nil, onRejected)
}

// Finally registers a handler that runs on either terminal state. The
// returned Outcome carries this outcome's settlement through unchanged,
// unless the handler panics, in which case it rejects with a HandlerFailure.
func (o *Outcome) Finally(handler FinallyHandler) *Outcome {
	return o.register(continuation{
		onFinalized: handler,
	})
}

// Wait blocks until the outcome settles. If it settled rejected and nothing
// downstream was ever registered to observe the rejection, the unhandled
// rejection hook fires, once.
func (o *Outcome) Wait() {
	<-o.done
	o.reportUnhandled()
}

// Result blocks until the outcome settles, then returns its terminal value
// or reason. Calling Result counts as observing a rejection.
func (o *Outcome) Result() (interface{}, error) {
	o.mutex.Lock()
	o.observed = true
	o.mutex.Unlock()

	<-o.done

	return o.value, o.reason
}

// State returns the current state without blocking.
func (o *Outcome) State() State {
	o.mutex.Lock()
	defer o.mutex.Unlock()

	return o.state
}

// Done returns a channel closed when the outcome settles.
func (o *Outcome) Done() <-chan struct{} {
	return o.done
}

// ID identifies this outcome, for correlating chains in host diagnostics.
func (o *Outcome) ID() uuid.UUID {
	return o.id
}

func (o *Outcome) CreatedAt() time.Time {
	return o.createdAt
}

// SettledAt returns when the outcome settled, or the zero time while pending.
func (o *Outcome) SettledAt() time.Time {
	o.mutex.Lock()
	defer o.mutex.Unlock()

	return o.settledAt
}

func (o *Outcome) resolve(value interface{}) {
	if inner, ok := value.(adoptable); ok {
		if adoptable(o) == inner {
			o.reject(ErrSelfResolution)
			return
		}

		inner.onSettled(func(state State, value interface{}, reason error) {
			if StateFulfilled == state {
				o.settle(StateFulfilled, value, nil)
			} else {
				o.settle(StateRejected, nil, reason)
			}
		})

		return
	}

	o.settle(StateFulfilled, value, nil)
}

func (o *Outcome) reject(reason error) {
	o.settle(StateRejected, nil, reason)
}

// settle performs the one-shot Pending -> terminal transition. Calls past the
// first are no-ops.
func (o *Outcome) settle(state State, value interface{}, reason error) {
	o.mutex.Lock()
	if StatePending != o.state {
		o.mutex.Unlock()
		return
	}

	o.state = state
	o.value = value
	o.reason = reason
	o.settledAt = time.Now().UTC()
	continuations := o.continuations
	o.continuations = nil
	observers := o.observers
	o.observers = nil
	close(o.done)
	o.mutex.Unlock()

	for _, observer := range observers {
		observer(state, value, reason)
	}

	for _, c := range continuations {
		o.dispatch(c)
	}
}

// onSettled registers an internal settlement observer, used for adoption and
// by the combinators. Unlike continuations, observers run directly inside
// settle; they only ever forward the settlement into another outcome's settle,
// which is where reaction scheduling happens.
func (o *Outcome) onSettled(observer func(state State, value interface{}, reason error)) {
	o.mutex.Lock()
	o.observed = true
	if StatePending == o.state {
		o.observers = append(o.observers, observer)
		o.mutex.Unlock()
		return
	}

	state, value, reason := o.state, o.value, o.reason
	o.mutex.Unlock()

	observer(state, value, reason)
}

func (o *Outcome) register(c continuation) *Outcome {
	c.next = newOutcome(o.scheduler)

	o.mutex.Lock()
	o.observed = true
	if StatePending == o.state {
		o.continuations = append(o.continuations, c)
		o.mutex.Unlock()
		return c.next
	}
	o.mutex.Unlock()

	o.dispatch(c)

	return c.next
}

// dispatch hands one settled continuation to the scheduler. Only called once
// the state is terminal, so the settled fields are immutable here.
func (o *Outcome) dispatch(c continuation) {
	state, value, reason := o.state, o.value, o.reason

	o.scheduler.Schedule(func() {
		if nil != c.onFinalized {
			runFinalizer(c.next, c.onFinalized, state, value, reason)
			return
		}

		switch state {
		case StateFulfilled:
			if nil == c.onFulfilled {
				c.next.resolve(value)
			} else {
				runHandler(c.next, func() (interface{}, error) {
					return c.onFulfilled(value)
				})
			}

		case StateRejected:
			if nil == c.onRejected {
				c.next.reject(reason)
			} else {
				runHandler(c.next, func() (interface{}, error) {
					return c.onRejected(reason)
				})
			}
		}
	})
}

// runHandler invokes one reaction handler and settles next from its return.
// A panic inside the handler becomes a HandlerFailure rejection of next
// rather than a host-level crash.
func runHandler(next *Outcome, invoke func() (interface{}, error)) {
	defer func() {
		if v := recover(); nil != v {
			next.reject(newHandlerFailure(v))
		}
	}()

	result, err := invoke()
	if nil != err {
		next.reject(err)
		return
	}

	next.resolve(result)
}

func runFinalizer(next *Outcome, handler FinallyHandler, state State, value interface{}, reason error) {
	defer func() {
		if v := recover(); nil != v {
			next.reject(newHandlerFailure(v))
		}
	}()

	handler()

	if StateFulfilled == state {
		next.settle(StateFulfilled, value, nil)
	} else {
		next.reject(reason)
	}
}
