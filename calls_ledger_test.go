package outcome

import (
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func NewCallsLedger(expectedCalls uint) *callsLedger {
	return &callsLedger{
		expectedCalls: expectedCalls,
	}
}

// callsLedger records handler invocations by name so tests can assert how
// often and in what order reactions fired.
type callsLedger struct {
	mutex sync.RWMutex

	ledger        []string
	expectedCalls uint
}

func (l *callsLedger) Record(place string) {
	l.mutex.Lock()
	defer l.mutex.Unlock()

	if 0 == l.expectedCalls {
		panic("trying to record unexpected call: " + place)
	}

	l.ledger = append(l.ledger, place)
	l.expectedCalls--
}

func (l *callsLedger) Summarize() string {
	l.mutex.RLock()
	defer l.mutex.RUnlock()

	return strings.Join(l.ledger, "|")
}

func (l *callsLedger) AssertCompletedBefore(t *testing.T, expectedLedger string, timeLimit time.Duration) {
	timeLimiter := time.After(timeLimit)

	for {
		select {
		case <-timeLimiter:
			require.FailNowf(
				t,
				"Calls ledger assertion timeout",
				"There are still %d expected call(s) left. Calls recorded: %v.",
				l.expectedCalls,
				l.ledger,
			)
			return

		default:
			l.mutex.RLock()
			waitsForCalls := 0 != l.expectedCalls
			l.mutex.RUnlock()

			if waitsForCalls {
				time.Sleep(time.Millisecond)
				continue
			}

			require.Equal(t, expectedLedger, l.Summarize())
			return
		}
	}
}

func (l *callsLedger) AssertCurrentCallsStackIs(t *testing.T, expectedLedger string) {
	require.Equal(t, expectedLedger, l.Summarize())
}

func (l *callsLedger) AssertNothingRecorded(t *testing.T) {
	require.Empty(t, l.Summarize())
}
