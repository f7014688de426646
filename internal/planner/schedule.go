package planner

import (
	"math"
	"sort"
	"time"
)

// SessionType classifies a scheduled block of time.
type SessionType string

const (
	SessionStudy         SessionType = "study"
	SessionRevision      SessionType = "revision"
	SessionPractice      SessionType = "practice"
	SessionMockTest      SessionType = "mock_test"
	SessionFinalRevision SessionType = "final_revision"
)

const (
	// FocusBlock is the atomic unit of scheduled study or revision time,
	// in minutes.
	FocusBlock = 30

	// MaxBlocksPerTopicPerDay caps how many focus blocks a single topic
	// may receive from the study rotation on one day.
	MaxBlocksPerTopicPerDay = 2
)

// Session is one scheduled activity. Study and revision sessions are always
// exactly one focus block; practice, mock-test, and final-revision sessions
// may be any positive number of minutes.
type Session struct {
	Type    SessionType `json:"type"`
	Topic   string      `json:"topic"`
	Minutes int         `json:"minutes"`
}

// DayPlan is the ordered set of sessions for one calendar day.
type DayPlan struct {
	Date     time.Time `json:"date"`
	Sessions []Session `json:"sessions"`
}

// Plan is the complete schedule, sorted by date. The mock-test and
// final-revision entries are appended as their own DayPlans and are never
// merged with a regular day that happens to share the date, so two entries
// may carry the same date near the exam.
type Plan []DayPlan

// topicState is the mutable working record for one topic during a single
// BuildSchedule call. It never escapes the call.
type topicState struct {
	name       string
	difficulty string
	weight     float64
	remaining  int // minutes of study rotation still owed
	exposure   int // study blocks received so far (counts blocks, not days)
	lastSeen   int // day index of the most recent study block
}

// lastSeenSentinel keeps the repeat check from blocking a topic's first day.
const lastSeenSentinel = -10

// BuildSchedule builds a plan starting from the current wall-clock date.
func BuildSchedule(topics []Topic, examDate time.Time, dailyHours int) (Plan, error) {
	return BuildScheduleFrom(time.Now(), topics, examDate, dailyHours)
}

// BuildScheduleFrom builds a day-by-day study plan covering every day from
// the day after today through the day before examDate, then appends a
// mock-test day (exam minus two, when that still lies in the future) and a
// final-revision day (exam minus one). It is a pure function of its inputs
// plus the static difficulty table and is safe to call concurrently.
//
// The three sentinel errors are all returned before any scheduling state is
// created; no partial plan is ever produced.
func BuildScheduleFrom(today time.Time, topics []Topic, examDate time.Time, dailyHours int) (Plan, error) {
	today = dateOnly(today)
	examDate = dateOnly(examDate)

	if len(topics) == 0 {
		return nil, ErrNoTopics
	}
	if !examDate.After(today) {
		return nil, ErrExamDateNotFuture
	}

	minutesPerDay := dailyHours * 60
	totalDays := int(examDate.Sub(today) / (24 * time.Hour))
	totalMinutes := minutesPerDay * totalDays
	if totalMinutes <= 0 {
		return nil, ErrInsufficientTime
	}

	pool := make([]topicState, 0, len(topics))
	totalWeight := 0.0
	for _, t := range topics {
		w := Weight(t.Difficulty)
		totalWeight += w
		pool = append(pool, topicState{
			name:       t.Name,
			difficulty: t.Difficulty,
			weight:     w,
			lastSeen:   lastSeenSentinel,
		})
	}

	// Split the total budget proportionally by weight, with a two-block
	// floor per topic. The floor can over-allocate past totalMinutes when
	// many topics share little time; low-priority topics then simply run
	// out of days before running out of minutes.
	for i := range pool {
		share := pool[i].weight / totalWeight
		pool[i].remaining = int(math.Round(share * float64(totalMinutes)))
		if pool[i].remaining < 2*FocusBlock {
			pool[i].remaining = 2 * FocusBlock
		}
	}

	var plan Plan
	current := today
	for dayIndex := 0; current.Before(examDate); dayIndex++ {
		minutesLeft := minutesPerDay
		var sessions []Session

		// Study rotation in fixed input order. A topic with prior
		// exposure is skipped when it was last seen on this same day
		// index; the sentinel keeps day zero unblocked.
		for i := range pool {
			ts := &pool[i]
			if minutesLeft < FocusBlock {
				break
			}
			if ts.remaining <= 0 {
				continue
			}
			if dayIndex-ts.lastSeen < 1 && ts.exposure >= 1 {
				continue
			}

			blocks := ts.remaining / FocusBlock
			if blocks > MaxBlocksPerTopicPerDay {
				blocks = MaxBlocksPerTopicPerDay
			}
			for b := 0; b < blocks; b++ {
				if minutesLeft < FocusBlock {
					break
				}
				sessions = append(sessions, Session{
					Type:    SessionStudy,
					Topic:   ts.name,
					Minutes: FocusBlock,
				})
				ts.remaining -= FocusBlock
				minutesLeft -= FocusBlock
				ts.lastSeen = dayIndex
				ts.exposure++
			}
		}

		// Revision: rotate deterministically over every topic that has
		// been studied before, without touching its remaining budget.
		var revisable []*topicState
		for i := range pool {
			if pool[i].exposure >= 1 {
				revisable = append(revisable, &pool[i])
			}
		}
		if minutesLeft >= FocusBlock && len(revisable) > 0 {
			pick := revisable[dayIndex%len(revisable)]
			sessions = append(sessions, Session{
				Type:    SessionRevision,
				Topic:   pick.name,
				Minutes: FocusBlock,
			})
			minutesLeft -= FocusBlock
		}

		// Practice soaks up whatever is left of the day.
		if minutesLeft >= FocusBlock {
			sessions = append(sessions, Session{
				Type:    SessionPractice,
				Topic:   "Practice questions",
				Minutes: minutesLeft,
			})
		}

		plan = append(plan, DayPlan{Date: current, Sessions: sessions})
		current = current.AddDate(0, 0, 1)
	}

	mockDay := examDate.AddDate(0, 0, -2)
	if mockDay.After(today) {
		plan = append(plan, DayPlan{
			Date: mockDay,
			Sessions: []Session{{
				Type:    SessionMockTest,
				Topic:   "Full syllabus mock test",
				Minutes: minutesPerDay,
			}},
		})
	}

	finalMinutes := minutesPerDay / 2
	if finalMinutes < FocusBlock {
		finalMinutes = FocusBlock
	}
	plan = append(plan, DayPlan{
		Date: examDate.AddDate(0, 0, -1),
		Sessions: []Session{{
			Type:    SessionFinalRevision,
			Topic:   "Light revision + rest",
			Minutes: finalMinutes,
		}},
	})

	sort.SliceStable(plan, func(i, j int) bool {
		return plan[i].Date.Before(plan[j].Date)
	})

	return plan, nil
}

// dateOnly takes the calendar date as seen in t's own location and pins it
// to midnight UTC, so day arithmetic stays exact while a local wall clock
// near midnight still means the day the caller is living in.
func dateOnly(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
