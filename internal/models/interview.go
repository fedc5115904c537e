package models

import "time"

// Candidate is a participant of a scheduled interview room. The applicationId
// doubles as the room identifier and is assigned by the hiring side, not the
// database.
type Candidate struct {
	ID            string `bson:"_id,omitempty" json:"id"`
	ApplicationID string `bson:"applicationId" json:"applicationId"`
	Name          string `bson:"name" json:"name"`
	Email         string `bson:"email" json:"email"`
	Topic         string `bson:"topic,omitempty" json:"topic,omitempty"`
}

// QuestionScore is one asked question with the score it received.
type QuestionScore struct {
	Question string  `bson:"question" json:"question"`
	Score    float64 `bson:"score" json:"score"`
}

// InterviewResult is the append-only record of one scored interview.
type InterviewResult struct {
	ID             string          `bson:"_id,omitempty" json:"id"`
	ApplicationID  string          `bson:"applicationId" json:"applicationId"`
	ApplicantName  string          `bson:"applicantName" json:"applicantName"`
	ApplicantEmail string          `bson:"applicantEmail" json:"applicantEmail"`
	Questions      []QuestionScore `bson:"questions" json:"questions"`
	TotalScore     float64         `bson:"totalScore" json:"totalScore"`
	Feedback       string          `bson:"feedback,omitempty" json:"feedback,omitempty"`
	CreatedAt      time.Time       `bson:"createdAt" json:"createdAt"`
}

// LeaderboardEntry accumulates a candidate's scores across interviews. It is
// keyed by email and only ever mutated through an atomic increment-or-create,
// never replaced wholesale.
type LeaderboardEntry struct {
	ID              string    `bson:"_id,omitempty" json:"id"`
	Email           string    `bson:"email" json:"email"`
	Name            string    `bson:"name" json:"name"`
	TotalScore      float64   `bson:"totalScoreAccumulated" json:"totalScoreAccumulated"`
	InterviewsCount int64     `bson:"interviewsCount" json:"interviewsCount"`
	LastUpdated     time.Time `bson:"lastUpdated" json:"lastUpdated"`
}
