package scheduler

import (
	"testing"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/stretchr/testify/suite"

	"github.com/openconf/meetpool/internal/log"
)

type KeyedSchedulerTestSuite struct {
	suite.Suite
	clock *clockwork.FakeClock
	ks    *KeyedScheduler
}

func TestKeyedSchedulerSuite(t *testing.T) {
	suite.Run(t, new(KeyedSchedulerTestSuite))
}

func (s *KeyedSchedulerTestSuite) SetupTest() {
	s.clock = clockwork.NewFakeClock()
	s.ks = newKeyedSchedulerWithClock(log.NewTest(s.T()), s.clock)
}

func (s *KeyedSchedulerTestSuite) TearDownTest() {
	s.ks.Shutdown()
}

func (s *KeyedSchedulerTestSuite) waitFired(expect string) {
	select {
	case key := <-s.ks.Chan():
		s.Equal(expect, key)
	case <-time.After(2 * time.Second):
		s.FailNow("timed out waiting for key", expect)
	}
}

func (s *KeyedSchedulerTestSuite) TestFiresAfterDelay() {
	s.ks.Enqueue("a", 5*time.Second)

	s.Require().NoError(s.clock.BlockUntilContext(s.T().Context(), 1))
	s.clock.Advance(5 * time.Second)

	s.waitFired("a")
}

func (s *KeyedSchedulerTestSuite) TestEarliestWinsForSameKey() {
	s.ks.Enqueue("retry", 10*time.Second)
	s.ks.Enqueue("retry", 5*time.Second)
	s.ks.Enqueue("retry", 15*time.Second)

	s.Require().NoError(s.clock.BlockUntilContext(s.T().Context(), 1))
	s.clock.Advance(5 * time.Second)

	s.waitFired("retry")

	// nothing pending afterwards
	select {
	case key := <-s.ks.Chan():
		s.FailNow("unexpected fire", key)
	case <-time.After(50 * time.Millisecond):
	}
}

func (s *KeyedSchedulerTestSuite) TestFiresInTimestampOrder() {
	s.ks.Enqueue("late", 10*time.Second)
	s.ks.Enqueue("early", 2*time.Second)

	s.Require().NoError(s.clock.BlockUntilContext(s.T().Context(), 1))
	s.clock.Advance(2 * time.Second)
	s.waitFired("early")

	s.clock.Advance(8 * time.Second)
	s.waitFired("late")
}

func (s *KeyedSchedulerTestSuite) TestCancel() {
	s.ks.Enqueue("gone", time.Second)
	s.ks.Cancel("gone")

	s.Require().NoError(s.clock.BlockUntilContext(s.T().Context(), 1))
	s.clock.Advance(2 * time.Second)

	select {
	case key := <-s.ks.Chan():
		s.FailNow("unexpected fire", key)
	case <-time.After(50 * time.Millisecond):
	}
}

func (s *KeyedSchedulerTestSuite) TestClear() {
	s.ks.Enqueue("a", time.Second)
	s.ks.Enqueue("b", time.Second)
	s.ks.Clear()

	s.Require().NoError(s.clock.BlockUntilContext(s.T().Context(), 1))
	s.clock.Advance(2 * time.Second)

	select {
	case key := <-s.ks.Chan():
		s.FailNow("unexpected fire", key)
	case <-time.After(50 * time.Millisecond):
	}
}
