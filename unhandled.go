package outcome

import "sync"

var (
	unhandledMutex sync.Mutex
	unhandledHook  func(reason error)
)

// OnUnhandledRejection installs hook, called from Wait for outcomes that
// settled rejected without any continuation, observer or Result call ever
// attached to them. Passing nil removes the hook. The core itself never logs
// or crashes on an unhandled rejection.
func OnUnhandledRejection(hook func(reason error)) {
	unhandledMutex.Lock()
	unhandledHook = hook
	unhandledMutex.Unlock()
}

func (o *Outcome) reportUnhandled() {
	o.mutex.Lock()
	if StateRejected != o.state || o.observed || o.reported {
		o.mutex.Unlock()
		return
	}
	o.reported = true
	reason := o.reason
	o.mutex.Unlock()

	unhandledMutex.Lock()
	hook := unhandledHook
	unhandledMutex.Unlock()

	if nil != hook {
		hook(reason)
	}
}
