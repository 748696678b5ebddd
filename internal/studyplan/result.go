package studyplan

import "github.com/google/uuid"

type Outcome string

const (
	OutcomeCreated Outcome = "created"
	OutcomeSkipped Outcome = "skipped"
	OutcomeFailed  Outcome = "failed"
)

type SkipReason string

const (
	ReasonNoSchedule   SkipReason = "no_schedule"
	ReasonNoMembership SkipReason = "no_membership"
)

// UserResult — итог обработки одного пользователя.
type UserResult struct {
	UserID  uuid.UUID
	Outcome Outcome
	Created int
	Reason  SkipReason
	Err     error
}

func created(id uuid.UUID, n int) UserResult {
	return UserResult{UserID: id, Outcome: OutcomeCreated, Created: n}
}

func skipped(id uuid.UUID, reason SkipReason) UserResult {
	return UserResult{UserID: id, Outcome: OutcomeSkipped, Reason: reason}
}

func failed(id uuid.UUID, err error) UserResult {
	return UserResult{UserID: id, Outcome: OutcomeFailed, Err: err}
}

// Summary агрегирует результаты одного запуска.
type Summary struct {
	ProfilesProcessed int          `json:"profilesProcessed"`
	TotalCreated      int          `json:"totalCreated"`
	Skipped           int          `json:"skipped"`
	Failed            int          `json:"failed"`
	Results           []UserResult `json:"-"`
}

func (s *Summary) add(r UserResult) {
	s.Results = append(s.Results, r)
	switch r.Outcome {
	case OutcomeCreated:
		s.TotalCreated += r.Created
	case OutcomeSkipped:
		s.Skipped++
	case OutcomeFailed:
		s.Failed++
	}
}

func (s Summary) Message() string {
	if s.ProfilesProcessed == 0 {
		return MessageNoProfiles
	}
	return MessageScheduledDone
}
